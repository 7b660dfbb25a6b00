package server

import (
	"foundit/models"
	"foundit/validation"

	"github.com/gofiber/fiber/v2"
)

// ListUsers handles GET /users
func (s *Server) ListUsers(c *fiber.Ctx) error {
	users, err := s.userRepo.List(c.Context())
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(newUserResponses(users))
}

// GetUser handles GET /users/:id
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid user ID"))
	}

	user, err := s.userRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(newUserResponse(*user))
}

// UpdateUser handles PUT /users/:id with a partial field update.
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := c.ParamsInt("id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid user ID"))
	}

	var req struct {
		Email     string `json:"email"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userRepo.GetByID(ctx, uint(id))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	if req.Email != "" {
		if err := validation.ValidateEmail(req.Email); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError(err.Error()))
		}
		user.Email = req.Email
	}
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(newUserResponse(*user))
}

// DeleteUser handles DELETE /users/:id. The organizer row survives a user
// delete; only the store's declared cascade would remove it, and none is
// declared.
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid user ID"))
	}

	if err := s.userRepo.Delete(c.Context(), uint(id)); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
