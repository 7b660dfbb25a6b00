package server

import (
	"fmt"
	"time"

	"foundit/cache"
	"foundit/models"

	"github.com/gofiber/fiber/v2"
)

const categoryCacheTTL = 5 * time.Minute

func categoryCacheKey(id uint) string {
	return fmt.Sprintf("category:%d", id)
}

// ListCategories handles GET /categories. Every category is returned, each
// carrying the requesting organizer's items in it (empty array when none).
func (s *Server) ListCategories(c *fiber.Ctx) error {
	ctx := c.Context()

	organizer, err := s.principalOrganizer(c)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	// One pass over the organizer's items instead of a query per category.
	items, err := s.itemRepo.ListByOrganizer(ctx, organizer.ID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	byCategory := make(map[uint][]models.Item, len(categories))
	for _, it := range items {
		byCategory[it.CategoryID] = append(byCategory[it.CategoryID], it)
	}

	details := make([]models.CategoryDetail, 0, len(categories))
	for _, cat := range categories {
		details = append(details, models.NewCategoryDetail(cat, byCategory[cat.ID]))
	}

	return c.JSON(details)
}

// CreateCategory handles POST /categories. Categories have no owner and
// are globally visible once created.
func (s *Server) CreateCategory(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Name == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Name is required"))
	}

	category := &models.Category{Name: req.Name}
	if err := s.categoryRepo.Create(c.Context(), category); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(newCategoryResponse(*category))
}

// GetCategory handles GET /categories/:id with a cache-aside read.
func (s *Server) GetCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid category ID"))
	}

	var category models.Category
	err = cache.CacheAside(c.Context(), categoryCacheKey(uint(id)), &category, categoryCacheTTL, func() error {
		found, ferr := s.categoryRepo.GetByID(c.Context(), uint(id))
		if ferr != nil {
			return ferr
		}
		category = *found
		return nil
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(newCategoryResponse(category))
}

// UpdateCategory handles PUT /categories/:id, replacing the name.
func (s *Server) UpdateCategory(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := c.ParamsInt("id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid category ID"))
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Name == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Name is required"))
	}

	category, err := s.categoryRepo.GetByID(ctx, uint(id))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	category.Name = req.Name
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return models.RespondWithAppError(c, err)
	}

	cache.Invalidate(ctx, categoryCacheKey(category.ID))

	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteCategory handles DELETE /categories/:id. Items referencing the
// category are left untouched; their reference dangles from then on.
func (s *Server) DeleteCategory(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := c.ParamsInt("id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid category ID"))
	}

	if err := s.categoryRepo.Delete(ctx, uint(id)); err != nil {
		return models.RespondWithAppError(c, err)
	}

	cache.Invalidate(ctx, categoryCacheKey(uint(id)))

	return c.SendStatus(fiber.StatusNoContent)
}
