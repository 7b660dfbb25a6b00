package server

import (
	"foundit/models"

	"github.com/gofiber/fiber/v2"
)

// ListItems handles GET /items
func (s *Server) ListItems(c *fiber.Ctx) error {
	items, err := s.itemRepo.List(c.Context())
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(newItemResponses(items))
}

// ListMyItems handles GET /items/mine: the items owned by the requesting
// organizer. 404 when the principal has no organizer row.
func (s *Server) ListMyItems(c *fiber.Ctx) error {
	organizer, err := s.principalOrganizer(c)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	items, err := s.itemRepo.ListByOrganizer(c.Context(), organizer.ID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(newItemResponses(items))
}

// CreateItem handles POST /items. The owner is always the authenticated
// principal's organizer; clients cannot create items for anyone else.
// created_at is server-assigned regardless of the request body.
func (s *Server) CreateItem(c *fiber.Ctx) error {
	ctx := c.Context()

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Quantity    *int   `json:"quantity"`
		Location    string `json:"location"`
		Category    uint   `json:"category"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Name == "" || req.Description == "" || req.Location == "" || req.Quantity == nil || req.Category == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Name, description, quantity, location, and category are required"))
	}
	if *req.Quantity < 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Quantity must not be negative"))
	}

	organizer, err := s.principalOrganizer(c)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	// The category reference must exist at write time.
	category, err := s.categoryRepo.GetByID(ctx, req.Category)
	if err != nil {
		if appErr, ok := err.(*models.AppError); ok && appErr.Code == "NOT_FOUND" {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Category does not exist"))
		}
		return models.RespondWithAppError(c, err)
	}

	item := &models.Item{
		Name:        req.Name,
		Description: req.Description,
		Quantity:    *req.Quantity,
		Location:    req.Location,
		OrganizerID: organizer.ID,
		CategoryID:  category.ID,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return models.RespondWithAppError(c, err)
	}

	// Reload with relations for the response
	created, err := s.itemRepo.GetByID(ctx, item.ID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(newItemResponse(*created))
}

// GetItem handles GET /items/:id
func (s *Server) GetItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid item ID"))
	}

	item, err := s.itemRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(newItemResponse(*item))
}

// UpdateItem handles PUT /items/:id. Only quantity is mutable; the handler
// ignores every other field and returns an empty 204 on success.
func (s *Server) UpdateItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid item ID"))
	}

	var req struct {
		Quantity *int `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Quantity == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Quantity is required"))
	}
	if *req.Quantity < 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Quantity must not be negative"))
	}

	if err := s.itemRepo.UpdateQuantity(c.Context(), uint(id), *req.Quantity); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteItem handles DELETE /items/:id
func (s *Server) DeleteItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid item ID"))
	}

	if err := s.itemRepo.Delete(c.Context(), uint(id)); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
