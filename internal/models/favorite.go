package models

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// The User/Character/Planet/Vehicle fields on favorite rows only declare the
// foreign-key constraints for the schema. They are never preloaded; joins are
// done explicitly by the repository.

// FavoriteCharacter links a user to a character.
type FavoriteCharacter struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	CharacterID uint      `gorm:"not null;index" json:"character_id"`
	User        User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Character   Character `gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE" json:"-"`
}

func (FavoriteCharacter) TableName() string { return "favorite_character" }

// FavoritePlanet links a user to a planet.
type FavoritePlanet struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	UserID   uint   `gorm:"not null;index" json:"user_id"`
	PlanetID uint   `gorm:"not null;index" json:"planet_id"`
	User     User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Planet   Planet `gorm:"foreignKey:PlanetID;constraint:OnDelete:CASCADE" json:"-"`
}

func (FavoritePlanet) TableName() string { return "favorite_planet" }

// FavoriteVehicle links a user to a vehicle.
type FavoriteVehicle struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	UserID    uint    `gorm:"not null;index" json:"user_id"`
	VehicleID uint    `gorm:"not null;index" json:"vehicle_id"`
	User      User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Vehicle   Vehicle `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE" json:"-"`
}

func (FavoriteVehicle) TableName() string { return "favorite_vehicle" }

// FavoriteKind names one of the three favorite tables by its route segment.
type FavoriteKind string

const (
	KindPeople  FavoriteKind = "people"
	KindPlanet  FavoriteKind = "planet"
	KindVehicle FavoriteKind = "vehicle"
)

// FavoriteKinds lists every kind in response order.
var FavoriteKinds = []FavoriteKind{KindPeople, KindPlanet, KindVehicle}

type kindInfo struct {
	resource string
	label    string
	table    string
	column   string
	upstream string
}

var kindRegistry = map[FavoriteKind]kindInfo{
	KindPeople:  {resource: "Character", label: "character", table: "favorite_character", column: "character_id", upstream: "people"},
	KindPlanet:  {resource: "Planet", label: "planet", table: "favorite_planet", column: "planet_id", upstream: "planets"},
	KindVehicle: {resource: "Vehicle", label: "vehicle", table: "favorite_vehicle", column: "vehicle_id", upstream: "vehicles"},
}

// ParseFavoriteKind resolves a route segment into a kind.
func ParseFavoriteKind(s string) (FavoriteKind, bool) {
	k := FavoriteKind(strings.ToLower(strings.TrimSpace(s)))
	_, ok := kindRegistry[k]
	return k, ok
}

// Valid reports whether k is a registered kind.
func (k FavoriteKind) Valid() bool {
	_, ok := kindRegistry[k]
	return ok
}

// Resource is the catalog type name, e.g. "Character".
func (k FavoriteKind) Resource() string { return kindRegistry[k].resource }

// Label is the lowercase name used in messages, e.g. "character".
func (k FavoriteKind) Label() string { return kindRegistry[k].label }

// Table is the favorite join table.
func (k FavoriteKind) Table() string { return kindRegistry[k].table }

// Column is the foreign key column on the join table, also the request body field.
func (k FavoriteKind) Column() string { return kindRegistry[k].column }

// UpstreamResource is the path segment used by the external catalog service.
func (k FavoriteKind) UpstreamResource() string { return kindRegistry[k].upstream }

// FavoriteRow is the kind-independent projection of a favorite join row.
type FavoriteRow struct {
	ID       uint
	Kind     FavoriteKind
	UserID   uint
	EntityID uint
}

// MarshalJSON renders the row with the kind's own foreign key name,
// e.g. {"id":1,"user_id":1,"planet_id":4}.
func (r FavoriteRow) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]uint{
		"id":            r.ID,
		"user_id":       r.UserID,
		r.Kind.Column(): r.EntityID,
	})
}

// Favorite is implemented by the three join models.
type Favorite interface {
	TableName() string
	Row() FavoriteRow
}

func (f *FavoriteCharacter) Row() FavoriteRow {
	return FavoriteRow{ID: f.ID, Kind: KindPeople, UserID: f.UserID, EntityID: f.CharacterID}
}

func (f *FavoritePlanet) Row() FavoriteRow {
	return FavoriteRow{ID: f.ID, Kind: KindPlanet, UserID: f.UserID, EntityID: f.PlanetID}
}

func (f *FavoriteVehicle) Row() FavoriteRow {
	return FavoriteRow{ID: f.ID, Kind: KindVehicle, UserID: f.UserID, EntityID: f.VehicleID}
}

// NewFavorite builds the join model for kind. A zero userID and entityID
// yields an empty model usable as a gorm Model/Delete target.
func NewFavorite(kind FavoriteKind, userID, entityID uint) (Favorite, error) {
	switch kind {
	case KindPeople:
		return &FavoriteCharacter{UserID: userID, CharacterID: entityID}, nil
	case KindPlanet:
		return &FavoritePlanet{UserID: userID, PlanetID: entityID}, nil
	case KindVehicle:
		return &FavoriteVehicle{UserID: userID, VehicleID: entityID}, nil
	default:
		return nil, fmt.Errorf("unknown favorite kind %q", kind)
	}
}

// UserFavorites is the aggregate served by GET /users/favorites.
type UserFavorites struct {
	Characters []Character `json:"favorite_characters"`
	Planets    []Planet    `json:"favorite_planets"`
	Vehicles   []Vehicle   `json:"favorite_vehicles"`
}
