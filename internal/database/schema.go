package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// ApplySchema creates or updates every table in PersistentModels.
func ApplySchema(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(PersistentModels()...); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

// TableStatus reports whether a schema-managed table exists.
type TableStatus struct {
	Table  string
	Exists bool
}

// GetSchemaStatus lists the schema-managed tables and whether each exists.
func GetSchemaStatus(ctx context.Context, db *gorm.DB) ([]TableStatus, error) {
	migrator := db.WithContext(ctx).Migrator()
	out := make([]TableStatus, 0, len(PersistentModels()))
	for _, m := range PersistentModels() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(m); err != nil {
			return nil, fmt.Errorf("parse model %T: %w", m, err)
		}
		out = append(out, TableStatus{
			Table:  stmt.Schema.Table,
			Exists: migrator.HasTable(m),
		})
	}
	return out, nil
}
