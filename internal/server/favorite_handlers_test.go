package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"holocron/internal/config"
	"holocron/internal/featureflags"
	"holocron/internal/middleware"
	"holocron/internal/models"
	"holocron/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Create(ctx context.Context, kind models.FavoriteKind, userID, entityID uint) (models.FavoriteRow, error) {
	args := m.Called(ctx, kind, userID, entityID)
	return args.Get(0).(models.FavoriteRow), args.Error(1)
}

func (m *MockFavoriteRepository) GetByID(ctx context.Context, kind models.FavoriteKind, userID, favoriteID uint) (models.FavoriteRow, error) {
	args := m.Called(ctx, kind, userID, favoriteID)
	return args.Get(0).(models.FavoriteRow), args.Error(1)
}

func (m *MockFavoriteRepository) CountByEntity(ctx context.Context, kind models.FavoriteKind, userID, entityID uint) (int64, error) {
	args := m.Called(ctx, kind, userID, entityID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFavoriteRepository) ListByUser(ctx context.Context, kind models.FavoriteKind, userID uint) ([]models.FavoriteRow, error) {
	args := m.Called(ctx, kind, userID)
	return args.Get(0).([]models.FavoriteRow), args.Error(1)
}

func (m *MockFavoriteRepository) Delete(ctx context.Context, kind models.FavoriteKind, userID, favoriteID uint) error {
	args := m.Called(ctx, kind, userID, favoriteID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Repoint(ctx context.Context, kind models.FavoriteKind, userID, favoriteID, entityID uint) error {
	args := m.Called(ctx, kind, userID, favoriteID, entityID)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type existsAll struct{}

func (existsAll) Exists(context.Context, uint) (bool, error) { return true, nil }

// newMockedApp routes the favorite handlers over mocked repositories.
func newMockedApp(favRepo *MockFavoriteRepository, userRepo *MockUserRepository) *fiber.App {
	s := &Server{
		favoriteService: service.NewFavoriteService(service.FavoriteDeps{
			Favorites:   favRepo,
			Users:       userRepo,
			Characters:  existsAll{},
			Planets:     existsAll{},
			Vehicles:    existsAll{},
			Flags:       featureflags.Parse(""),
			UniqueKinds: map[models.FavoriteKind]bool{models.KindPlanet: true},
		}),
	}

	app := NewApp()
	app.Use(middleware.Identity(1))
	app.Get("/favorite/:kind", s.ListFavorites)
	app.Post("/favorite/:kind", s.AddFavorite)
	app.Post("/favorite/:kind/:entityId", s.AddFavorite)
	app.Delete("/favorite/:kind/:favoriteId", s.DeleteFavorite)
	return app
}

func TestAddFavorite_Mocked(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		mockSetup      func(f *MockFavoriteRepository, u *MockUserRepository)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Created",
			path: "/favorite/planet/4",
			mockSetup: func(f *MockFavoriteRepository, u *MockUserRepository) {
				u.On("Exists", mock.Anything, uint(1)).Return(true, nil)
				f.On("CountByEntity", mock.Anything, models.KindPlanet, uint(1), uint(4)).Return(int64(0), nil)
				f.On("Create", mock.Anything, models.KindPlanet, uint(1), uint(4)).
					Return(models.FavoriteRow{ID: 1, Kind: models.KindPlanet, UserID: 1, EntityID: 4}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"msg":"Favorite planet added"}`,
		},
		{
			name: "Duplicate",
			path: "/favorite/planet/4",
			mockSetup: func(f *MockFavoriteRepository, u *MockUserRepository) {
				u.On("Exists", mock.Anything, uint(1)).Return(true, nil)
				f.On("CountByEntity", mock.Anything, models.KindPlanet, uint(1), uint(4)).Return(int64(1), nil)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"msg":"Favorite planet already exists"}`,
		},
		{
			name: "Database failure hides cause",
			path: "/favorite/vehicle/14",
			mockSetup: func(f *MockFavoriteRepository, u *MockUserRepository) {
				u.On("Exists", mock.Anything, uint(1)).Return(true, nil)
				f.On("Create", mock.Anything, models.KindVehicle, uint(1), uint(14)).
					Return(models.FavoriteRow{}, models.NewInternalError(errors.New("pq: connection refused")))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"msg":"Internal server error"}`,
		},
		{
			name: "Unwrapped error is 500",
			path: "/favorite/people/1",
			mockSetup: func(f *MockFavoriteRepository, u *MockUserRepository) {
				u.On("Exists", mock.Anything, uint(1)).Return(false, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"msg":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			favRepo, userRepo := new(MockFavoriteRepository), new(MockUserRepository)
			tt.mockSetup(favRepo, userRepo)
			app := newMockedApp(favRepo, userRepo)

			status, body := doRequest(t, app, http.MethodPost, tt.path, nil)
			assert.Equal(t, tt.expectedStatus, status)
			assert.JSONEq(t, tt.expectedBody, string(body))
			favRepo.AssertExpectations(t)
			userRepo.AssertExpectations(t)
		})
	}
}

func TestDeleteFavorite_Mocked(t *testing.T) {
	favRepo, userRepo := new(MockFavoriteRepository), new(MockUserRepository)
	favRepo.On("Delete", mock.Anything, models.KindVehicle, uint(1), uint(3)).Return(nil)
	favRepo.On("Delete", mock.Anything, models.KindVehicle, uint(1), uint(4)).
		Return(models.NewNotFoundError("Favorite vehicle"))
	app := newMockedApp(favRepo, userRepo)

	status, body := doRequest(t, app, http.MethodDelete, "/favorite/vehicle/3", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"msg":"Favorite vehicle deleted"}`, string(body))

	status, body = doRequest(t, app, http.MethodDelete, "/favorite/vehicle/4", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"msg":"Favorite vehicle not found"}`, string(body))

	status, _ = doRequest(t, app, http.MethodDelete, "/favorite/vehicle/abc", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	favRepo.AssertExpectations(t)
}

func TestAddFavorite_UpstreamValidation(t *testing.T) {
	tests := []struct {
		name     string
		mode     string
		upstream int
		status   int
		msg      string
	}{
		{"found", config.SWAPIModeStrict, http.StatusOK, http.StatusCreated, "Favorite planet added"},
		{"missing", config.SWAPIModeStrict, http.StatusNotFound, http.StatusNotFound, "Planet not found"},
		{"strict upstream error", config.SWAPIModeStrict, http.StatusInternalServerError, http.StatusBadGateway, "Upstream validation failed"},
		{"lenient upstream error", config.SWAPIModeLenient, http.StatusInternalServerError, http.StatusNotFound, "Planet not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hits int32
			upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&hits, 1)
				assert.Equal(t, "/planets/4/", r.URL.Path)
				w.WriteHeader(tt.upstream)
			}))
			defer upstream.Close()

			app, db := newTestServer(t, func(c *config.Config) {
				c.FeatureFlags = "swapi_validation=on"
				c.SWAPIBaseURL = upstream.URL
				c.SWAPIMode = tt.mode
			})
			seedCatalog(t, db)

			status, body := doRequest(t, app, http.MethodPost, "/favorite/planet", map[string]any{"planet_id": 4})
			assert.Equal(t, tt.status, status)
			assert.JSONEq(t, `{"msg":"`+tt.msg+`"}`, string(body))
			assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
		})
	}
}
