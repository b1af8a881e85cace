package server

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

const readTimeout = 5 * time.Second

// ListPeople handles GET /people
// @Summary List characters
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Character
// @Router /people [get]
func (s *Server) ListPeople(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), readTimeout)
	defer cancel()

	people, err := s.characters.List(ctx)
	if err != nil {
		return err
	}
	return c.JSON(people)
}

// GetPerson handles GET /people/:id
// @Summary Get a character
// @Tags catalog
// @Produce json
// @Param id path int true "Character ID"
// @Success 200 {object} models.Character
// @Failure 404 {object} models.ErrorResponse
// @Router /people/{id} [get]
func (s *Server) GetPerson(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	person, err := s.characters.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(person)
}

// ListPlanets handles GET /planets
// @Summary List planets
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Planet
// @Router /planets [get]
func (s *Server) ListPlanets(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), readTimeout)
	defer cancel()

	planets, err := s.planets.List(ctx)
	if err != nil {
		return err
	}
	return c.JSON(planets)
}

// GetPlanet handles GET /planets/:id
// @Summary Get a planet
// @Tags catalog
// @Produce json
// @Param id path int true "Planet ID"
// @Success 200 {object} models.Planet
// @Failure 404 {object} models.ErrorResponse
// @Router /planets/{id} [get]
func (s *Server) GetPlanet(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	planet, err := s.planets.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(planet)
}

// ListVehicles handles GET /vehicles
// @Summary List vehicles
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Vehicle
// @Router /vehicles [get]
func (s *Server) ListVehicles(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), readTimeout)
	defer cancel()

	vehicles, err := s.vehicles.List(ctx)
	if err != nil {
		return err
	}
	return c.JSON(vehicles)
}

// GetVehicle handles GET /vehicles/:id
// @Summary Get a vehicle
// @Tags catalog
// @Produce json
// @Param id path int true "Vehicle ID"
// @Success 200 {object} models.Vehicle
// @Failure 404 {object} models.ErrorResponse
// @Router /vehicles/{id} [get]
func (s *Server) GetVehicle(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	vehicle, err := s.vehicles.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(vehicle)
}
