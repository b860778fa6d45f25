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

type FAQHandler struct {
	Catalog *services.CatalogService
	Store   *store.Store
}

// GET /api/v1/faqs
func (h *FAQHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.Catalog.ListFAQs())
}

func decodeFAQ(c *fiber.Ctx) (domain.FAQ, error) {
	var f domain.FAQ
	if err := c.BodyParser(&f); err != nil {
		return f, errors.New("malformed faq payload")
	}
	if !validate.Localized(f.Question) || !validate.Localized(f.Answer) {
		return f, errors.New("faq question and answer require English values")
	}
	return f, nil
}

// POST /api/v1/admin/faqs
func (h *FAQHandler) Create(c *fiber.Ctx) error {
	f, err := decodeFAQ(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if f.ID == "" {
		f.ID = uuid.NewString()
	} else if _, ok := validate.ID(f.ID); !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid faq id")
	}
	if err := h.Store.AddFAQ(f); err != nil {
		applog.Error(c, "admin.faq.create.fail", err, map[string]any{"faq": f.ID})
		return jsonError(c, fiber.StatusInternalServerError, "could not save faq")
	}
	applog.Audit(c, "admin.faq.create", map[string]any{"faq": f.ID})
	return c.Status(fiber.StatusCreated).JSON(f)
}

// PUT /api/v1/admin/faqs/:id
func (h *FAQHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "faq not found")
	}
	f, err := decodeFAQ(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}
	f.ID = id
	if err := h.Store.UpdateFAQ(f); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return jsonError(c, fiber.StatusNotFound, "faq not found")
		}
		applog.Error(c, "admin.faq.update.fail", err, map[string]any{"faq": id})
		return jsonError(c, fiber.StatusInternalServerError, "could not save faq")
	}
	applog.Audit(c, "admin.faq.update", map[string]any{"faq": id})
	return c.JSON(f)
}

// DELETE /api/v1/admin/faqs/:id
func (h *FAQHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "faq not found")
	}
	if err := h.Store.DeleteFAQ(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return jsonError(c, fiber.StatusNotFound, "faq not found")
		}
		applog.Error(c, "admin.faq.delete.fail", err, map[string]any{"faq": id})
		return jsonError(c, fiber.StatusInternalServerError, "could not delete faq")
	}
	applog.Audit(c, "admin.faq.delete", map[string]any{"faq": id})
	return c.SendStatus(fiber.StatusNoContent)
}
