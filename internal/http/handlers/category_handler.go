package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jeancro/internal/domain"
	applog "jeancro/internal/log"
	"jeancro/internal/services"
	"jeancro/internal/store"
	"jeancro/internal/validate"
)

type CategoryHandler struct {
	Catalog *services.CatalogService
	Store   *store.Store
}

// GET /api/v1/categories
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.Catalog.ListCategories())
}

// POST /api/v1/admin/categories
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var cat domain.Category
	if err := c.BodyParser(&cat); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed category payload")
	}
	if !validate.Localized(cat.Name) {
		return jsonError(c, fiber.StatusBadRequest, "category name requires an English value")
	}
	if cat.ID == "" {
		cat.ID = uuid.NewString()
	} else if _, ok := validate.ID(cat.ID); !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid category id")
	}
	if err := h.Store.AddCategory(cat); err != nil {
		applog.Error(c, "admin.category.create.fail", err, map[string]any{"category": cat.ID})
		return jsonError(c, fiber.StatusInternalServerError, "could not save category")
	}
	applog.Audit(c, "admin.category.create", map[string]any{"category": cat.ID})
	return c.Status(fiber.StatusCreated).JSON(cat)
}

// PUT /api/v1/admin/categories/:id
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "category not found")
	}
	var cat domain.Category
	if err := c.BodyParser(&cat); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed category payload")
	}
	if !validate.Localized(cat.Name) {
		return jsonError(c, fiber.StatusBadRequest, "category name requires an English value")
	}
	cat.ID = id
	if err := h.Store.UpdateCategory(cat); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return jsonError(c, fiber.StatusNotFound, "category not found")
		}
		applog.Error(c, "admin.category.update.fail", err, map[string]any{"category": id})
		return jsonError(c, fiber.StatusInternalServerError, "could not save category")
	}
	applog.Audit(c, "admin.category.update", map[string]any{"category": id})
	return c.JSON(cat)
}

// DELETE /api/v1/admin/categories/:id
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "category not found")
	}
	if err := h.Store.DeleteCategory(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return jsonError(c, fiber.StatusNotFound, "category not found")
		}
		applog.Error(c, "admin.category.delete.fail", err, map[string]any{"category": id})
		return jsonError(c, fiber.StatusInternalServerError, "could not delete category")
	}
	applog.Audit(c, "admin.category.delete", map[string]any{"category": id})
	return c.SendStatus(fiber.StatusNoContent)
}
