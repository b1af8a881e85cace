package repository

import (
	"context"
	"errors"
	"testing"

	"holocron/internal/database"
	"holocron/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newTestDB returns a private in-memory SQLite database with the schema applied.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.ApplySchema(context.Background(), db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// setupMockDB creates a GORM *gorm.DB backed by sqlmock using the PostgreSQL dialect.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

func seedUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	u := models.User{Username: username, Email: username + "@example.com", Password: "x"}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func seedPlanet(t *testing.T, db *gorm.DB, name string) models.Planet {
	t.Helper()
	p := models.Planet{Name: name}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected *models.AppError, got %v", err)
	require.Equal(t, code, appErr.Code)
}
