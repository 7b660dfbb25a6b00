package server

import (
	"foundit/models"

	"github.com/gofiber/fiber/v2"
)

// ListOrganizers handles GET /organizers
func (s *Server) ListOrganizers(c *fiber.Ctx) error {
	organizers, err := s.organizerRepo.List(c.Context())
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(newOrganizerResponses(organizers))
}

// GetOrganizer handles GET /organizers/:id
func (s *Server) GetOrganizer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid organizer ID"))
	}

	organizer, err := s.organizerRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(newOrganizerResponse(*organizer))
}

// DeactivateOrganizer handles PUT /organizers/:id. The organizer row
// itself is untouched; the operation soft-deactivates the linked user.
// There is no create or destroy here: organizers come from registration.
func (s *Server) DeactivateOrganizer(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := c.ParamsInt("id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid organizer ID"))
	}

	organizer, err := s.organizerRepo.GetByID(ctx, uint(id))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	organizer.User.IsActive = false
	if err := s.userRepo.Update(ctx, &organizer.User); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
