package handlers

import (
	"github.com/gofiber/fiber/v2"

	"jeancro/internal/domain"
	applog "jeancro/internal/log"
	"jeancro/internal/services"
	"jeancro/internal/store"
	"jeancro/internal/validate"
)

type SettingsHandler struct {
	Catalog *services.CatalogService
	Store   *store.Store
}

// GET /api/v1/settings
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.Catalog.Settings())
}

// PUT /api/v1/admin/settings
// Whole-object replace, mirroring how the storefront edits settings as one
// form.
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var s domain.StoreSettings
	if err := c.BodyParser(&s); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed settings payload")
	}
	if s.StoreName == "" {
		return jsonError(c, fiber.StatusBadRequest, "store name is required")
	}
	if _, ok := validate.WhatsApp(s.WhatsAppNumber); !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid whatsapp number")
	}
	if !validate.Price(s.Shipping.Cost) || !validate.Price(s.Shipping.FreeThreshold) {
		return jsonError(c, fiber.StatusBadRequest, "shipping amounts out of range")
	}
	if err := h.Store.SetSettings(s); err != nil {
		applog.Error(c, "admin.settings.update.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not save settings")
	}
	applog.Audit(c, "admin.settings.update", map[string]any{"store": s.StoreName})
	return c.JSON(s)
}
