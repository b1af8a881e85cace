package server

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// ListUsers handles GET /users
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Router /users [get]
func (s *Server) ListUsers(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), readTimeout)
	defer cancel()

	users, err := s.userService.ListUsers(ctx)
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// GetUserFavorites handles GET /users/favorites for the acting user.
// @Summary Favorites of the current user
// @Tags users
// @Produce json
// @Success 200 {object} models.UserFavorites
// @Failure 404 {object} models.ErrorResponse
// @Router /users/favorites [get]
func (s *Server) GetUserFavorites(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	favorites, err := s.userService.Favorites(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(favorites)
}
