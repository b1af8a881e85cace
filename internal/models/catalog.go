package models

// Character is a person from the catalog.
type Character struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:250;not null" json:"name" yaml:"name"`
	BirthYear string `gorm:"size:20" json:"birth_year" yaml:"birth_year"`
	Gender    string `gorm:"size:20" json:"gender" yaml:"gender"`
	Height    string `gorm:"size:20" json:"height" yaml:"height"`
	SkinColor string `gorm:"size:20" json:"skin_color" yaml:"skin_color"`
	EyeColor  string `gorm:"size:20" json:"eye_color" yaml:"eye_color"`
}

func (Character) TableName() string {
	return "character"
}

// Planet is a planet from the catalog.
type Planet struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"size:250;not null" json:"name" yaml:"name"`
	Climate    string `gorm:"size:50" json:"climate" yaml:"climate"`
	Diameter   string `gorm:"size:50" json:"diameter" yaml:"diameter"`
	Population string `gorm:"size:50" json:"population" yaml:"population"`
	Terrain    string `gorm:"size:50" json:"terrain" yaml:"terrain"`
}

func (Planet) TableName() string {
	return "planet"
}

// Vehicle is a vehicle from the catalog.
type Vehicle struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"size:250;not null" json:"name" yaml:"name"`
	Model         string `gorm:"size:50" json:"model" yaml:"model"`
	Manufacturer  string `gorm:"size:50" json:"manufacturer" yaml:"manufacturer"`
	CostInCredits string `gorm:"size:50" json:"cost_in_credits" yaml:"cost_in_credits"`
	Passengers    string `gorm:"size:50" json:"passengers" yaml:"passengers"`
	VehicleClass  string `gorm:"size:50" json:"vehicle_class" yaml:"vehicle_class"`
}

func (Vehicle) TableName() string {
	return "vehicle"
}

// CatalogEntity is the set of read-only reference types served by the API.
type CatalogEntity interface {
	Character | Planet | Vehicle
}
