package service

import (
	"context"
	"testing"

	"holocron/internal/featureflags"
	"holocron/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFavoriteService(repo *memFavorites, flags string, unique map[models.FavoriteKind]bool, v *validatorStub) *FavoriteService {
	deps := FavoriteDeps{
		Favorites:   repo,
		Users:       usersWith(1, 2),
		Characters:  entitiesWith{1, 2},
		Planets:     entitiesWith{4, 5},
		Vehicles:    entitiesWith{14},
		Flags:       featureflags.Parse(flags),
		UniqueKinds: unique,
	}
	if v != nil {
		deps.Validator = v
	}
	return NewFavoriteService(deps)
}

func TestFavoriteService_Add_Preconditions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		kind     models.FavoriteKind
		userID   uint
		entityID uint
		code     string
		msg      string
	}{
		{"missing id", models.KindPlanet, 1, 0, models.CodeValidation, "planet_id is required"},
		{"unknown user", models.KindPlanet, 9, 4, models.CodeNotFound, "User not found"},
		{"unknown planet", models.KindPlanet, 1, 99, models.CodeNotFound, "Planet not found"},
		{"unknown character", models.KindPeople, 1, 99, models.CodeNotFound, "Character not found"},
		{"unknown vehicle", models.KindVehicle, 1, 99, models.CodeNotFound, "Vehicle not found"},
		{"unknown kind", models.FavoriteKind("starship"), 1, 1, models.CodeNotFound, "Favorite kind not found"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo := &memFavorites{}
			svc := newFavoriteService(repo, "", nil, nil)

			_, err := svc.Add(context.Background(), tt.kind, tt.userID, tt.entityID)
			assertAppError(t, err, tt.code, tt.msg)
			assert.Empty(t, repo.rows, "no row may be written on a failed precondition")
		})
	}
}

func TestFavoriteService_Add_Uniqueness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		unique     map[models.FavoriteKind]bool
		kind       models.FavoriteKind
		entityID   uint
		wantSecond string // empty means the duplicate is accepted
	}{
		{"planet only rejects planet", map[models.FavoriteKind]bool{models.KindPlanet: true}, models.KindPlanet, 4, models.CodeConflict},
		{"planet only allows people", map[models.FavoriteKind]bool{models.KindPlanet: true}, models.KindPeople, 1, ""},
		{"all rejects vehicle", map[models.FavoriteKind]bool{models.KindPeople: true, models.KindPlanet: true, models.KindVehicle: true}, models.KindVehicle, 14, models.CodeConflict},
		{"none allows planet", nil, models.KindPlanet, 4, ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo := &memFavorites{}
			svc := newFavoriteService(repo, "", tt.unique, nil)
			ctx := context.Background()

			first, err := svc.Add(ctx, tt.kind, 1, tt.entityID)
			require.NoError(t, err)
			assert.Equal(t, uint(1), first.ID)

			_, err = svc.Add(ctx, tt.kind, 1, tt.entityID)
			if tt.wantSecond == "" {
				require.NoError(t, err)
				assert.Len(t, repo.rows, 2)
				return
			}
			assertAppError(t, err, tt.wantSecond, "Favorite "+tt.kind.Label()+" already exists")
			assert.Len(t, repo.rows, 1)

			// Another user may still favorite the same entity.
			_, err = svc.Add(ctx, tt.kind, 2, tt.entityID)
			require.NoError(t, err)
		})
	}
}

func TestFavoriteService_Add_UpstreamValidation(t *testing.T) {
	t.Parallel()

	t.Run("flag off skips validator", func(t *testing.T) {
		t.Parallel()
		v := &validatorStub{found: false}
		svc := newFavoriteService(&memFavorites{}, "swapi_validation=off", nil, v)

		_, err := svc.Add(context.Background(), models.KindPlanet, 1, 4)
		require.NoError(t, err)
		assert.Zero(t, v.calls)
	})

	t.Run("flag on and upstream missing is not found", func(t *testing.T) {
		t.Parallel()
		v := &validatorStub{found: false}
		repo := &memFavorites{}
		svc := newFavoriteService(repo, "swapi_validation=on", nil, v)

		_, err := svc.Add(context.Background(), models.KindPeople, 1, 1)
		assertAppError(t, err, models.CodeNotFound, "Character not found")
		assert.Equal(t, []string{"people"}, v.called)
		assert.Empty(t, repo.rows)
	})

	t.Run("flag on and upstream error propagates", func(t *testing.T) {
		t.Parallel()
		v := &validatorStub{err: models.NewBadUpstreamError("Upstream validation failed", nil)}
		svc := newFavoriteService(&memFavorites{}, "swapi_validation=on", nil, v)

		_, err := svc.Add(context.Background(), models.KindPlanet, 1, 4)
		assertAppError(t, err, models.CodeBadUpstream, "")
		assert.Equal(t, []string{"planets"}, v.called)
	})

	t.Run("flag on and upstream found stores row", func(t *testing.T) {
		t.Parallel()
		v := &validatorStub{found: true}
		repo := &memFavorites{}
		svc := newFavoriteService(repo, "swapi_validation=on", nil, v)

		_, err := svc.Add(context.Background(), models.KindVehicle, 1, 14)
		require.NoError(t, err)
		assert.Equal(t, []string{"vehicles"}, v.called)
		assert.Len(t, repo.rows, 1)
	})
}

func TestFavoriteService_Remove(t *testing.T) {
	t.Parallel()
	repo := &memFavorites{}
	svc := newFavoriteService(repo, "", nil, nil)
	ctx := context.Background()

	row, err := svc.Add(ctx, models.KindPlanet, 1, 4)
	require.NoError(t, err)

	err = svc.Remove(ctx, models.KindPlanet, 2, row.ID)
	assertAppError(t, err, models.CodeNotFound, "Favorite planet not found")

	require.NoError(t, svc.Remove(ctx, models.KindPlanet, 1, row.ID))
	assert.Empty(t, repo.rows)

	err = svc.Remove(ctx, models.KindPlanet, 1, 0)
	assertAppError(t, err, models.CodeValidation, "")
}

func TestFavoriteService_Repoint(t *testing.T) {
	t.Parallel()

	t.Run("disabled flag", func(t *testing.T) {
		t.Parallel()
		svc := newFavoriteService(&memFavorites{}, "favorite_repoint=off", nil, nil)
		err := svc.Repoint(context.Background(), models.KindPlanet, 1, 1, 5)
		assertAppError(t, err, models.CodeNotFound, "Favorite repoint is disabled")
	})

	t.Run("moves the row", func(t *testing.T) {
		t.Parallel()
		repo := &memFavorites{}
		svc := newFavoriteService(repo, "favorite_repoint=on", nil, nil)
		ctx := context.Background()

		row, err := svc.Add(ctx, models.KindPlanet, 1, 4)
		require.NoError(t, err)
		require.NoError(t, svc.Repoint(ctx, models.KindPlanet, 1, row.ID, 5))
		assert.Equal(t, uint(5), repo.rows[0].EntityID)
	})

	t.Run("missing target entity", func(t *testing.T) {
		t.Parallel()
		repo := &memFavorites{}
		svc := newFavoriteService(repo, "favorite_repoint=on", nil, nil)
		ctx := context.Background()

		row, err := svc.Add(ctx, models.KindPlanet, 1, 4)
		require.NoError(t, err)
		err = svc.Repoint(ctx, models.KindPlanet, 1, row.ID, 99)
		assertAppError(t, err, models.CodeNotFound, "Planet not found")
	})

	t.Run("unique kind conflict", func(t *testing.T) {
		t.Parallel()
		repo := &memFavorites{}
		svc := newFavoriteService(repo, "favorite_repoint=on", map[models.FavoriteKind]bool{models.KindPlanet: true}, nil)
		ctx := context.Background()

		_, err := svc.Add(ctx, models.KindPlanet, 1, 4)
		require.NoError(t, err)
		second, err := svc.Add(ctx, models.KindPlanet, 1, 5)
		require.NoError(t, err)

		err = svc.Repoint(ctx, models.KindPlanet, 1, second.ID, 4)
		assertAppError(t, err, models.CodeConflict, "Favorite planet already exists")
	})

	t.Run("unknown favorite", func(t *testing.T) {
		t.Parallel()
		svc := newFavoriteService(&memFavorites{}, "favorite_repoint=on", nil, nil)
		err := svc.Repoint(context.Background(), models.KindVehicle, 1, 7, 14)
		assertAppError(t, err, models.CodeNotFound, "Favorite vehicle not found")
	})
}

func TestFavoriteService_List(t *testing.T) {
	t.Parallel()
	repo := &memFavorites{}
	svc := newFavoriteService(repo, "", nil, nil)
	ctx := context.Background()

	_, err := svc.Add(ctx, models.KindPeople, 1, 1)
	require.NoError(t, err)
	_, err = svc.Add(ctx, models.KindPeople, 2, 2)
	require.NoError(t, err)

	rows, err := svc.List(ctx, models.KindPeople, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, uint(1), rows[0].EntityID)
}
