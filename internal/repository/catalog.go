package repository

import (
	"context"
	"errors"

	"holocron/internal/models"
	"holocron/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CatalogRepository defines persistence operations for one catalog entity type.
type CatalogRepository[T models.CatalogEntity] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id uint) (*T, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uint) error
	ListFavoritedBy(ctx context.Context, userID uint) ([]T, error)
}

type catalogRepository[T models.CatalogEntity] struct {
	db    *gorm.DB
	kind  models.FavoriteKind
	table string
	log   *observability.RepoLogger
}

// NewCatalogRepository returns a CatalogRepository for T.
func NewCatalogRepository[T models.CatalogEntity](db *gorm.DB) CatalogRepository[T] {
	kind := kindOf[T]()
	table := any(new(T)).(interface{ TableName() string }).TableName()
	return &catalogRepository[T]{
		db:    db,
		kind:  kind,
		table: table,
		log:   observability.NewRepoLogger(table),
	}
}

func kindOf[T models.CatalogEntity]() models.FavoriteKind {
	switch any(new(T)).(type) {
	case *models.Character:
		return models.KindPeople
	case *models.Planet:
		return models.KindPlanet
	default:
		return models.KindVehicle
	}
}

func (r *catalogRepository[T]) List(ctx context.Context) ([]T, error) {
	defer observability.TrackQuery("list", r.table)()

	items := make([]T, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		r.log.LogError(ctx, err, "list")
		return nil, models.NewInternalError(err)
	}
	return items, nil
}

func (r *catalogRepository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	defer observability.TrackQuery("get", r.table)()

	var item T
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError(r.kind.Resource())
		}
		r.log.LogError(ctx, err, "get")
		return nil, models.NewInternalError(err)
	}
	return &item, nil
}

func (r *catalogRepository[T]) Exists(ctx context.Context, id uint) (bool, error) {
	defer observability.TrackQuery("exists", r.table)()

	var count int64
	if err := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		r.log.LogError(ctx, err, "exists")
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *catalogRepository[T]) Create(ctx context.Context, entity *T) error {
	defer observability.TrackQuery("create", r.table)()

	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		r.log.LogError(ctx, err, "create")
		return models.NewInternalError(err)
	}
	r.log.LogCreate(ctx, nil)
	return nil
}

func (r *catalogRepository[T]) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", r.table)()

	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		r.log.LogError(ctx, res.Error, "delete")
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError(r.kind.Resource())
	}
	r.log.LogDelete(ctx, map[string]any{"id": id})
	return nil
}

// ListFavoritedBy returns the entities userID has favorited, in favorite order.
// An entity favorited twice appears twice.
func (r *catalogRepository[T]) ListFavoritedBy(ctx context.Context, userID uint) ([]T, error) {
	ctx, span := observability.StartRepositorySpan(ctx, r.table, "ListFavoritedBy")
	defer span.End()
	defer observability.TrackQuery("list_favorited", r.table)()

	fav := r.kind.Table()
	items := make([]T, 0)
	err := r.db.WithContext(ctx).
		Model(new(T)).
		Joins("JOIN ? ON ? = ?",
			clause.Table{Name: fav},
			clause.Column{Table: fav, Name: r.kind.Column()},
			clause.Column{Table: r.table, Name: "id"},
		).
		Where("? = ?", clause.Column{Table: fav, Name: "user_id"}, userID).
		Order(clause.OrderByColumn{Column: clause.Column{Table: fav, Name: "id"}}).
		Find(&items).Error
	if err != nil {
		observability.RecordError(span, err)
		r.log.LogError(ctx, err, "list_favorited")
		return nil, models.NewInternalError(err)
	}
	return items, nil
}
