package server

import (
	"holocron/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ListFavorites handles GET /favorite/:kind
// @Summary List the current user's favorite rows of a kind
// @Tags favorites
// @Produce json
// @Param kind path string true "people, planet or vehicle"
// @Success 200 {array} object{id=int,user_id=int}
// @Failure 404 {object} models.ErrorResponse
// @Router /favorite/{kind} [get]
func (s *Server) ListFavorites(c *fiber.Ctx) error {
	kind, err := parseKind(c)
	if err != nil {
		return err
	}
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	rows, err := s.favoriteService.List(c.UserContext(), kind, userID)
	if err != nil {
		return err
	}
	return c.JSON(rows)
}

// AddFavorite handles POST /favorite/:kind and POST /favorite/:kind/:entityId.
// The path id wins over the body field.
// @Summary Add a favorite
// @Tags favorites
// @Accept json
// @Produce json
// @Param kind path string true "people, planet or vehicle"
// @Param entityId path int false "Entity ID, takes precedence over the body field"
// @Param request body object{character_id=int,planet_id=int,vehicle_id=int} false "Entity id for the kind"
// @Success 201 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /favorite/{kind} [post]
// @Router /favorite/{kind}/{entityId} [post]
func (s *Server) AddFavorite(c *fiber.Ctx) error {
	kind, err := parseKind(c)
	if err != nil {
		return err
	}
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var entityID uint
	if c.Params("entityId") != "" {
		entityID, err = parseID(c, "entityId")
	} else {
		entityID, err = parseFavoriteBody(c, kind)
	}
	if err != nil {
		return err
	}

	if _, err := s.favoriteService.Add(c.UserContext(), kind, userID, entityID); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(models.MessageResponse{
		Msg: "Favorite " + kind.Label() + " added",
	})
}

// RepointFavorite handles PUT /favorite/:kind/:favoriteId
// @Summary Point an existing favorite at another entity
// @Tags favorites
// @Accept json
// @Produce json
// @Param kind path string true "people, planet or vehicle"
// @Param favoriteId path int true "Favorite row ID"
// @Param request body object{character_id=int,planet_id=int,vehicle_id=int} true "New entity id for the kind"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /favorite/{kind}/{favoriteId} [put]
func (s *Server) RepointFavorite(c *fiber.Ctx) error {
	kind, err := parseKind(c)
	if err != nil {
		return err
	}
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	favoriteID, err := parseID(c, "favoriteId")
	if err != nil {
		return err
	}
	entityID, err := parseFavoriteBody(c, kind)
	if err != nil {
		return err
	}

	if err := s.favoriteService.Repoint(c.UserContext(), kind, userID, favoriteID, entityID); err != nil {
		return err
	}
	return c.JSON(models.MessageResponse{Msg: "Favorite " + kind.Label() + " updated"})
}

// DeleteFavorite handles DELETE /favorite/:kind/:favoriteId
// @Summary Delete a favorite by its row id
// @Tags favorites
// @Produce json
// @Param kind path string true "people, planet or vehicle"
// @Param favoriteId path int true "Favorite row ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /favorite/{kind}/{favoriteId} [delete]
func (s *Server) DeleteFavorite(c *fiber.Ctx) error {
	kind, err := parseKind(c)
	if err != nil {
		return err
	}
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	favoriteID, err := parseID(c, "favoriteId")
	if err != nil {
		return err
	}

	if err := s.favoriteService.Remove(c.UserContext(), kind, userID, favoriteID); err != nil {
		return err
	}
	return c.JSON(models.MessageResponse{Msg: "Favorite " + kind.Label() + " deleted"})
}
