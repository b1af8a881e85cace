// Package service holds the catalog, user and favorite use cases.
package service

import (
	"context"

	"holocron/internal/models"
	"holocron/internal/repository"
)

type UserService struct {
	userRepo   repository.UserRepository
	characters repository.CatalogRepository[models.Character]
	planets    repository.CatalogRepository[models.Planet]
	vehicles   repository.CatalogRepository[models.Vehicle]
}

func NewUserService(
	userRepo repository.UserRepository,
	characters repository.CatalogRepository[models.Character],
	planets repository.CatalogRepository[models.Planet],
	vehicles repository.CatalogRepository[models.Vehicle],
) *UserService {
	return &UserService{
		userRepo:   userRepo,
		characters: characters,
		planets:    planets,
		vehicles:   vehicles,
	}
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

// Favorites resolves every favorite of userID into the referenced entities.
func (s *UserService) Favorites(ctx context.Context, userID uint) (*models.UserFavorites, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("User")
	}

	characters, err := s.characters.ListFavoritedBy(ctx, userID)
	if err != nil {
		return nil, err
	}
	planets, err := s.planets.ListFavoritedBy(ctx, userID)
	if err != nil {
		return nil, err
	}
	vehicles, err := s.vehicles.ListFavoritedBy(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.UserFavorites{
		Characters: characters,
		Planets:    planets,
		Vehicles:   vehicles,
	}, nil
}
