package service

import (
	"context"

	"holocron/internal/models"
	"holocron/internal/repository"
)

// CatalogService serves the read-only catalog of one entity type.
type CatalogService[T models.CatalogEntity] struct {
	repo repository.CatalogRepository[T]
}

func NewCatalogService[T models.CatalogEntity](repo repository.CatalogRepository[T]) *CatalogService[T] {
	return &CatalogService[T]{repo: repo}
}

func (s *CatalogService[T]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx)
}

func (s *CatalogService[T]) Get(ctx context.Context, id uint) (*T, error) {
	return s.repo.GetByID(ctx, id)
}
