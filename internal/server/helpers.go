package server

import (
	"strings"
	"unicode"

	"holocron/internal/middleware"
	"holocron/internal/models"

	"github.com/gofiber/fiber/v2"
)

// parseID extracts a route parameter by name as a positive uint.
// The error message is derived from the parameter name (e.g. "id" -> "Invalid ID",
// "favoriteId" -> "Invalid favorite ID").
func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		return 0, models.NewValidationError("Invalid " + humanizeParam(param))
	}
	return uint(id), nil
}

// humanizeParam converts a route param name into a human-readable label.
// Examples: "id" -> "ID", "entityId" -> "entity ID", "favoriteId" -> "favorite ID".
func humanizeParam(param string) string {
	if param == "id" {
		return "ID"
	}
	if strings.HasSuffix(param, "Id") {
		words := splitCamel(param[:len(param)-2])
		return strings.ToLower(strings.Join(words, " ")) + " ID"
	}
	return param
}

// splitCamel splits a camelCase string into words.
func splitCamel(s string) []string {
	var words []string
	start := 0
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			words = append(words, s[start:i])
			start = i
		}
	}
	words = append(words, s[start:])
	return words
}

// parseKind resolves the :kind route segment.
func parseKind(c *fiber.Ctx) (models.FavoriteKind, error) {
	kind, ok := models.ParseFavoriteKind(c.Params("kind"))
	if !ok {
		return "", models.NewNotFoundError("Favorite kind")
	}
	return kind, nil
}

// currentUser returns the acting user id set by the Identity middleware.
func currentUser(c *fiber.Ctx) (uint, error) {
	uid, ok := middleware.CurrentUserID(c)
	if !ok {
		return 0, models.NewNotFoundError("User")
	}
	return uid, nil
}

// favoriteBody is the POST/PUT payload. Only the field matching the route kind is read.
type favoriteBody struct {
	CharacterID *uint `json:"character_id"`
	PlanetID    *uint `json:"planet_id"`
	VehicleID   *uint `json:"vehicle_id"`
}

func (b favoriteBody) entityID(kind models.FavoriteKind) uint {
	var id *uint
	switch kind {
	case models.KindPeople:
		id = b.CharacterID
	case models.KindPlanet:
		id = b.PlanetID
	case models.KindVehicle:
		id = b.VehicleID
	}
	if id == nil {
		return 0
	}
	return *id
}

// parseFavoriteBody reads the kind's id field from the JSON body. A missing
// body or field yields 0, which the service rejects as missing.
func parseFavoriteBody(c *fiber.Ctx, kind models.FavoriteKind) (uint, error) {
	if len(c.Body()) == 0 {
		return 0, nil
	}
	var body favoriteBody
	if err := c.BodyParser(&body); err != nil {
		return 0, models.NewValidationError("Invalid request body")
	}
	return body.entityID(kind), nil
}
