// Package seed populates a development database with catalog fixtures and fake users.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"holocron/internal/middleware"
	"holocron/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultPassword is set on every seeded user.
const DefaultPassword = "password123"

//go:embed catalog.yaml
var catalogFixtures []byte

// Catalog is the fixture document shape.
type Catalog struct {
	Characters []models.Character `yaml:"characters"`
	Planets    []models.Planet    `yaml:"planets"`
	Vehicles   []models.Vehicle   `yaml:"vehicles"`
}

// Options controls a seeding run.
type Options struct {
	Users int
	Clean bool
	// RandSeed makes generated users reproducible when non-zero.
	RandSeed int64
}

// Seeder writes fixtures into db.
type Seeder struct {
	db   *gorm.DB
	fake *gofakeit.Faker
}

// NewSeeder creates a Seeder. A zero randSeed picks a random one.
func NewSeeder(db *gorm.DB, randSeed int64) *Seeder {
	return &Seeder{db: db, fake: gofakeit.New(randSeed)}
}

// LoadCatalog parses the embedded catalog fixtures.
func LoadCatalog() (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(catalogFixtures, &c); err != nil {
		return nil, fmt.Errorf("parse catalog fixtures: %w", err)
	}
	return &c, nil
}

// Run seeds the catalog and opts.Users users. User id 1 always exists afterwards.
func Run(ctx context.Context, db *gorm.DB, opts Options) error {
	s := NewSeeder(db, opts.RandSeed)

	if opts.Clean {
		if err := s.ClearAll(ctx); err != nil {
			return fmt.Errorf("clear data: %w", err)
		}
	}

	catalog, err := LoadCatalog()
	if err != nil {
		return err
	}
	if err := s.SeedCatalog(ctx, catalog); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	users, err := s.SeedUsers(ctx, opts.Users)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	if err := s.resetSequences(ctx); err != nil {
		return fmt.Errorf("reset sequences: %w", err)
	}

	middleware.Logger.Info("seeding complete",
		slog.Int("characters", len(catalog.Characters)),
		slog.Int("planets", len(catalog.Planets)),
		slog.Int("vehicles", len(catalog.Vehicles)),
		slog.Int("users", len(users)),
	)
	return nil
}

// ClearAll removes favorites, users and catalog rows. Join tables go first.
func (s *Seeder) ClearAll(ctx context.Context) error {
	tables := []any{
		&models.FavoriteCharacter{}, &models.FavoritePlanet{}, &models.FavoriteVehicle{},
		&models.User{}, &models.Character{}, &models.Planet{}, &models.Vehicle{},
	}
	db := s.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, t := range tables {
		if err := db.Delete(t).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedCatalog upserts the catalog rows by id, so it can be re-run safely.
func (s *Seeder) SeedCatalog(ctx context.Context, c *Catalog) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		upsert := tx.Clauses(clause.OnConflict{UpdateAll: true})
		if len(c.Characters) > 0 {
			if err := upsert.Create(&c.Characters).Error; err != nil {
				return err
			}
		}
		if len(c.Planets) > 0 {
			if err := upsert.Create(&c.Planets).Error; err != nil {
				return err
			}
		}
		if len(c.Vehicles) > 0 {
			if err := upsert.Create(&c.Vehicles).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// SeedUsers makes sure user 1 exists and adds n generated users after it.
func (s *Seeder) SeedUsers(ctx context.Context, n int) ([]models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)
	var created []models.User

	var count int64
	if err := db.Model(&models.User{}).Where("id = ?", 1).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		owner := models.User{ID: 1, Username: "luke", Email: "luke@tatooine.net", Password: string(hash)}
		if err := db.Create(&owner).Error; err != nil {
			return nil, err
		}
		created = append(created, owner)
		if err := s.resetSequences(ctx); err != nil {
			return nil, err
		}
	}

	for i := 0; i < n; i++ {
		u := models.User{
			Username: fmt.Sprintf("%s%d", s.fake.Username(), s.fake.Number(100, 999)),
			Email:    s.fake.Email(),
			Password: string(hash),
		}
		if err := db.Create(&u).Error; err != nil {
			return nil, err
		}
		created = append(created, u)
	}
	return created, nil
}

// resetSequences moves postgres id sequences past rows inserted with explicit ids.
func (s *Seeder) resetSequences(ctx context.Context) error {
	if s.db.Dialector.Name() != "postgres" {
		return nil
	}
	for _, table := range []string{"user", "character", "planet", "vehicle"} {
		err := s.db.WithContext(ctx).Exec(
			"SELECT setval(pg_get_serial_sequence(?, 'id'), COALESCE((SELECT MAX(id) FROM ?), 0) + 1, false)",
			`"`+table+`"`, clause.Table{Name: table},
		).Error
		if err != nil {
			return err
		}
	}
	return nil
}
