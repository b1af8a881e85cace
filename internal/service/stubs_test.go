package service

import (
	"context"
	"errors"
	"testing"

	"holocron/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userRepoStub struct {
	listFn    func(ctx context.Context) ([]models.User, error)
	getByIDFn func(ctx context.Context, id uint) (*models.User, error)
	existsFn  func(ctx context.Context, id uint) (bool, error)
	createFn  func(ctx context.Context, u *models.User) error
	deleteFn  func(ctx context.Context, id uint) error
}

func (s *userRepoStub) List(ctx context.Context) ([]models.User, error) { return s.listFn(ctx) }
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) Exists(ctx context.Context, id uint) (bool, error) { return s.existsFn(ctx, id) }
func (s *userRepoStub) Create(ctx context.Context, u *models.User) error  { return s.createFn(ctx, u) }
func (s *userRepoStub) Delete(ctx context.Context, id uint) error         { return s.deleteFn(ctx, id) }

// usersWith returns a stub where only the given ids exist.
func usersWith(ids ...uint) *userRepoStub {
	set := map[uint]bool{}
	for _, id := range ids {
		set[id] = true
	}
	return &userRepoStub{
		listFn: func(context.Context) ([]models.User, error) { return []models.User{}, nil },
		existsFn: func(_ context.Context, id uint) (bool, error) {
			return set[id], nil
		},
	}
}

type catalogRepoStub[T models.CatalogEntity] struct {
	listFn          func(ctx context.Context) ([]T, error)
	getByIDFn       func(ctx context.Context, id uint) (*T, error)
	existsFn        func(ctx context.Context, id uint) (bool, error)
	listFavoritedFn func(ctx context.Context, userID uint) ([]T, error)
}

func (s *catalogRepoStub[T]) List(ctx context.Context) ([]T, error) { return s.listFn(ctx) }
func (s *catalogRepoStub[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	return s.getByIDFn(ctx, id)
}
func (s *catalogRepoStub[T]) Exists(ctx context.Context, id uint) (bool, error) {
	return s.existsFn(ctx, id)
}
func (s *catalogRepoStub[T]) Create(context.Context, *T) error { return errors.New("not implemented") }
func (s *catalogRepoStub[T]) Delete(context.Context, uint) error {
	return errors.New("not implemented")
}
func (s *catalogRepoStub[T]) ListFavoritedBy(ctx context.Context, userID uint) ([]T, error) {
	return s.listFavoritedFn(ctx, userID)
}

// entitiesWith returns a checker where only the given ids exist.
type entitiesWith []uint

func (e entitiesWith) Exists(_ context.Context, id uint) (bool, error) {
	for _, have := range e {
		if have == id {
			return true, nil
		}
	}
	return false, nil
}

// memFavorites is an in-memory FavoriteRepository.
type memFavorites struct {
	nextID  uint
	rows    []models.FavoriteRow
	failErr error
}

func (m *memFavorites) Create(_ context.Context, kind models.FavoriteKind, userID, entityID uint) (models.FavoriteRow, error) {
	if m.failErr != nil {
		return models.FavoriteRow{}, m.failErr
	}
	m.nextID++
	row := models.FavoriteRow{ID: m.nextID, Kind: kind, UserID: userID, EntityID: entityID}
	m.rows = append(m.rows, row)
	return row, nil
}

func (m *memFavorites) GetByID(_ context.Context, kind models.FavoriteKind, userID, favoriteID uint) (models.FavoriteRow, error) {
	for _, r := range m.rows {
		if r.Kind == kind && r.UserID == userID && r.ID == favoriteID {
			return r, nil
		}
	}
	return models.FavoriteRow{}, models.NewNotFoundError("Favorite " + kind.Label())
}

func (m *memFavorites) matching(_ context.Context, kind models.FavoriteKind, userID, entityID uint) ([]models.FavoriteRow, error) {
	out := []models.FavoriteRow{}
	for _, r := range m.rows {
		if r.Kind == kind && r.UserID == userID && r.EntityID == entityID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memFavorites) CountByEntity(ctx context.Context, kind models.FavoriteKind, userID, entityID uint) (int64, error) {
	rows, _ := m.matching(ctx, kind, userID, entityID)
	return int64(len(rows)), nil
}

func (m *memFavorites) ListByUser(_ context.Context, kind models.FavoriteKind, userID uint) ([]models.FavoriteRow, error) {
	out := []models.FavoriteRow{}
	for _, r := range m.rows {
		if r.Kind == kind && r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memFavorites) Delete(_ context.Context, kind models.FavoriteKind, userID, favoriteID uint) error {
	for i, r := range m.rows {
		if r.Kind == kind && r.UserID == userID && r.ID == favoriteID {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return models.NewNotFoundError("Favorite " + kind.Label())
}

func (m *memFavorites) Repoint(_ context.Context, kind models.FavoriteKind, userID, favoriteID, entityID uint) error {
	for i, r := range m.rows {
		if r.Kind == kind && r.UserID == userID && r.ID == favoriteID {
			m.rows[i].EntityID = entityID
			return nil
		}
	}
	return models.NewNotFoundError("Favorite " + kind.Label())
}

type validatorStub struct {
	calls  int
	found  bool
	err    error
	called []string
}

func (v *validatorStub) Exists(_ context.Context, entityType string, _ uint) (bool, error) {
	v.calls++
	v.called = append(v.called, entityType)
	return v.found, v.err
}

// assertAppError asserts that err is an AppError with the given code and message.
func assertAppError(t *testing.T, err error, code, msg string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
	if msg != "" {
		assert.Equal(t, msg, appErr.Message)
	}
}
