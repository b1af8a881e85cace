package database

import "holocron/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models,
// parents before the join tables referencing them.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Character{},
		&models.Planet{},
		&models.Vehicle{},
		&models.FavoriteCharacter{},
		&models.FavoritePlanet{},
		&models.FavoriteVehicle{},
	}
}
