package service

import (
	"context"
	"fmt"

	"holocron/internal/featureflags"
	"holocron/internal/models"
	"holocron/internal/observability"
	"holocron/internal/repository"
	"holocron/internal/swapi"

	"github.com/gofiber/fiber/v2"
)

// EntityChecker reports whether a catalog row exists.
type EntityChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// FavoriteDeps wires a FavoriteService.
type FavoriteDeps struct {
	Favorites  repository.FavoriteRepository
	Users      repository.UserRepository
	Characters EntityChecker
	Planets    EntityChecker
	Vehicles   EntityChecker
	// Validator is consulted only when the swapi_validation flag is on. May be nil.
	Validator swapi.Validator
	Flags     *featureflags.Set
	// UniqueKinds lists kinds that reject a second favorite of the same entity.
	UniqueKinds map[models.FavoriteKind]bool
}

type FavoriteService struct {
	favorites repository.FavoriteRepository
	users     repository.UserRepository
	entities  map[models.FavoriteKind]EntityChecker
	validator swapi.Validator
	flags     *featureflags.Set
	unique    map[models.FavoriteKind]bool
}

func NewFavoriteService(deps FavoriteDeps) *FavoriteService {
	unique := deps.UniqueKinds
	if unique == nil {
		unique = map[models.FavoriteKind]bool{}
	}
	return &FavoriteService{
		favorites: deps.Favorites,
		users:     deps.Users,
		entities: map[models.FavoriteKind]EntityChecker{
			models.KindPeople:  deps.Characters,
			models.KindPlanet:  deps.Planets,
			models.KindVehicle: deps.Vehicles,
		},
		validator: deps.Validator,
		flags:     deps.Flags,
		unique:    unique,
	}
}

var errRepointDisabled = &models.AppError{
	Code:    models.CodeNotFound,
	Message: "Favorite repoint is disabled",
	Status:  fiber.StatusNotFound,
}

// Add stores a favorite of entityID for userID. Checks run in order: id
// present, user exists, entity exists, upstream validation, uniqueness.
func (s *FavoriteService) Add(ctx context.Context, kind models.FavoriteKind, userID, entityID uint) (models.FavoriteRow, error) {
	if err := checkKind(kind); err != nil {
		return models.FavoriteRow{}, err
	}
	if entityID == 0 {
		return models.FavoriteRow{}, missingID(kind)
	}

	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return models.FavoriteRow{}, err
	}
	if !exists {
		return models.FavoriteRow{}, models.NewNotFoundError("User")
	}

	if err := s.ensureEntity(ctx, kind, userID, entityID); err != nil {
		return models.FavoriteRow{}, err
	}

	if s.unique[kind] {
		count, err := s.favorites.CountByEntity(ctx, kind, userID, entityID)
		if err != nil {
			return models.FavoriteRow{}, err
		}
		if count > 0 {
			return models.FavoriteRow{}, duplicate(kind)
		}
	}

	row, err := s.favorites.Create(ctx, kind, userID, entityID)
	if err != nil {
		return models.FavoriteRow{}, err
	}
	observability.FavoriteMutations.WithLabelValues(string(kind), "create").Inc()
	return row, nil
}

// Remove deletes the favorite row favoriteID owned by userID.
func (s *FavoriteService) Remove(ctx context.Context, kind models.FavoriteKind, userID, favoriteID uint) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	if favoriteID == 0 {
		return models.NewValidationError("favorite id is required")
	}
	if err := s.favorites.Delete(ctx, kind, userID, favoriteID); err != nil {
		return err
	}
	observability.FavoriteMutations.WithLabelValues(string(kind), "delete").Inc()
	return nil
}

// Repoint moves an existing favorite row to another entity of the same kind.
func (s *FavoriteService) Repoint(ctx context.Context, kind models.FavoriteKind, userID, favoriteID, entityID uint) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	if !s.flags.Enabled(featureflags.FavoriteRepoint, userID) {
		return errRepointDisabled
	}
	if favoriteID == 0 {
		return models.NewValidationError("favorite id is required")
	}
	if entityID == 0 {
		return missingID(kind)
	}

	current, err := s.favorites.GetByID(ctx, kind, userID, favoriteID)
	if err != nil {
		return err
	}
	if current.EntityID == entityID {
		return nil
	}

	if err := s.ensureEntity(ctx, kind, userID, entityID); err != nil {
		return err
	}

	if s.unique[kind] {
		count, err := s.favorites.CountByEntity(ctx, kind, userID, entityID)
		if err != nil {
			return err
		}
		if count > 0 {
			return duplicate(kind)
		}
	}

	if err := s.favorites.Repoint(ctx, kind, userID, favoriteID, entityID); err != nil {
		return err
	}
	observability.FavoriteMutations.WithLabelValues(string(kind), "repoint").Inc()
	return nil
}

// List returns userID's favorite rows of kind.
func (s *FavoriteService) List(ctx context.Context, kind models.FavoriteKind, userID uint) ([]models.FavoriteRow, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	return s.favorites.ListByUser(ctx, kind, userID)
}

func (s *FavoriteService) ensureEntity(ctx context.Context, kind models.FavoriteKind, userID, entityID uint) error {
	exists, err := s.entities[kind].Exists(ctx, entityID)
	if err != nil {
		return err
	}
	if !exists {
		return models.NewNotFoundError(kind.Resource())
	}

	if s.validator == nil || !s.flags.Enabled(featureflags.SwapiValidation, userID) {
		return nil
	}
	ok, err := s.validator.Exists(ctx, kind.UpstreamResource(), entityID)
	if err != nil {
		return err
	}
	if !ok {
		return models.NewNotFoundError(kind.Resource())
	}
	return nil
}

func checkKind(kind models.FavoriteKind) error {
	if !kind.Valid() {
		return models.NewNotFoundError("Favorite kind")
	}
	return nil
}

func missingID(kind models.FavoriteKind) *models.AppError {
	return models.NewValidationError(fmt.Sprintf("%s is required", kind.Column()))
}

func duplicate(kind models.FavoriteKind) *models.AppError {
	return models.NewConflictError(fmt.Sprintf("Favorite %s already exists", kind.Label()))
}
