package repository

import (
	"context"

	"holocron/internal/models"
	"holocron/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FavoriteRepository defines persistence operations on the favorite join tables.
// Every call is scoped to one kind and one user.
type FavoriteRepository interface {
	Create(ctx context.Context, kind models.FavoriteKind, userID, entityID uint) (models.FavoriteRow, error)
	GetByID(ctx context.Context, kind models.FavoriteKind, userID, favoriteID uint) (models.FavoriteRow, error)
	CountByEntity(ctx context.Context, kind models.FavoriteKind, userID, entityID uint) (int64, error)
	ListByUser(ctx context.Context, kind models.FavoriteKind, userID uint) ([]models.FavoriteRow, error)
	Delete(ctx context.Context, kind models.FavoriteKind, userID, favoriteID uint) error
	Repoint(ctx context.Context, kind models.FavoriteKind, userID, favoriteID, entityID uint) error
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository returns a new FavoriteRepository implementation.
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// favoriteRecord is the scan target shared by the three join tables.
type favoriteRecord struct {
	ID       uint
	UserID   uint
	EntityID uint
}

func (rec favoriteRecord) row(kind models.FavoriteKind) models.FavoriteRow {
	return models.FavoriteRow{ID: rec.ID, Kind: kind, UserID: rec.UserID, EntityID: rec.EntityID}
}

func notFoundFavorite(kind models.FavoriteKind) *models.AppError {
	return models.NewNotFoundError("Favorite " + kind.Label())
}

func (r *favoriteRepository) scoped(ctx context.Context, kind models.FavoriteKind, userID uint) *gorm.DB {
	return r.db.WithContext(ctx).
		Table(kind.Table()).
		Select("id, user_id, ? AS entity_id", clause.Column{Name: kind.Column()}).
		Where("user_id = ?", userID)
}

func (r *favoriteRepository) Create(ctx context.Context, kind models.FavoriteKind, userID, entityID uint) (models.FavoriteRow, error) {
	ctx, span := observability.StartRepositorySpan(ctx, kind.Table(), "Create")
	defer span.End()
	defer observability.TrackQuery("create", kind.Table())()
	log := observability.NewRepoLogger(kind.Table())

	fav, err := models.NewFavorite(kind, userID, entityID)
	if err != nil {
		return models.FavoriteRow{}, models.NewValidationError(err.Error())
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(fav).Error; err != nil {
		observability.RecordError(span, err)
		if isForeignKeyError(err) {
			return models.FavoriteRow{}, models.NewNotFoundError(kind.Resource())
		}
		log.LogError(ctx, err, "create")
		return models.FavoriteRow{}, models.NewInternalError(err)
	}

	row := fav.Row()
	log.LogCreate(ctx, map[string]any{"id": row.ID, "user_id": userID, kind.Column(): entityID})
	return row, nil
}

func (r *favoriteRepository) GetByID(ctx context.Context, kind models.FavoriteKind, userID, favoriteID uint) (models.FavoriteRow, error) {
	defer observability.TrackQuery("get", kind.Table())()

	var rec favoriteRecord
	res := r.scoped(ctx, kind, userID).Where("id = ?", favoriteID).Limit(1).Scan(&rec)
	if res.Error != nil {
		observability.NewRepoLogger(kind.Table()).LogError(ctx, res.Error, "get")
		return models.FavoriteRow{}, models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.FavoriteRow{}, notFoundFavorite(kind)
	}
	return rec.row(kind), nil
}

func (r *favoriteRepository) CountByEntity(ctx context.Context, kind models.FavoriteKind, userID, entityID uint) (int64, error) {
	defer observability.TrackQuery("count", kind.Table())()

	var count int64
	err := r.db.WithContext(ctx).
		Table(kind.Table()).
		Where("user_id = ? AND ? = ?", userID, clause.Column{Name: kind.Column()}, entityID).
		Count(&count).Error
	if err != nil {
		observability.NewRepoLogger(kind.Table()).LogError(ctx, err, "count")
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *favoriteRepository) ListByUser(ctx context.Context, kind models.FavoriteKind, userID uint) ([]models.FavoriteRow, error) {
	defer observability.TrackQuery("list", kind.Table())()

	var recs []favoriteRecord
	if err := r.scoped(ctx, kind, userID).Order("id").Scan(&recs).Error; err != nil {
		observability.NewRepoLogger(kind.Table()).LogError(ctx, err, "list")
		return nil, models.NewInternalError(err)
	}
	return toRows(kind, recs), nil
}

func (r *favoriteRepository) Delete(ctx context.Context, kind models.FavoriteKind, userID, favoriteID uint) error {
	ctx, span := observability.StartRepositorySpan(ctx, kind.Table(), "Delete")
	defer span.End()
	defer observability.TrackQuery("delete", kind.Table())()
	log := observability.NewRepoLogger(kind.Table())

	target, err := models.NewFavorite(kind, 0, 0)
	if err != nil {
		return models.NewValidationError(err.Error())
	}

	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", favoriteID, userID).Delete(target)
	if res.Error != nil {
		observability.RecordError(span, res.Error)
		log.LogError(ctx, res.Error, "delete")
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return notFoundFavorite(kind)
	}
	log.LogDelete(ctx, map[string]any{"id": favoriteID, "user_id": userID})
	return nil
}

func (r *favoriteRepository) Repoint(ctx context.Context, kind models.FavoriteKind, userID, favoriteID, entityID uint) error {
	ctx, span := observability.StartRepositorySpan(ctx, kind.Table(), "Repoint")
	defer span.End()
	defer observability.TrackQuery("update", kind.Table())()
	log := observability.NewRepoLogger(kind.Table())

	target, err := models.NewFavorite(kind, 0, 0)
	if err != nil {
		return models.NewValidationError(err.Error())
	}

	res := r.db.WithContext(ctx).
		Model(target).
		Where("id = ? AND user_id = ?", favoriteID, userID).
		Update(kind.Column(), entityID)
	if res.Error != nil {
		observability.RecordError(span, res.Error)
		if isForeignKeyError(res.Error) {
			return models.NewNotFoundError(kind.Resource())
		}
		log.LogError(ctx, res.Error, "update")
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return notFoundFavorite(kind)
	}
	log.LogUpdate(ctx, map[string]any{"id": favoriteID, kind.Column(): entityID})
	return nil
}

func toRows(kind models.FavoriteKind, recs []favoriteRecord) []models.FavoriteRow {
	rows := make([]models.FavoriteRow, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, rec.row(kind))
	}
	return rows
}
