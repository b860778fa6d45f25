package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "jeancro/internal/log"
	"jeancro/internal/services"
	"jeancro/internal/store"
)

type AdminHandler struct {
	Catalog *services.CatalogService
	Store   *store.Store
}

// GET /api/v1/admin/stats
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(h.Catalog.Stats())
}

// POST /api/v1/admin/reload
// Rereads every collection from the database, for when the kv rows were
// edited out of band.
func (h *AdminHandler) Reload(c *fiber.Ctx) error {
	if err := h.Store.Reload(); err != nil {
		applog.Error(c, "admin.reload.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not reload store data")
	}
	applog.Audit(c, "admin.reload", nil)
	return c.JSON(fiber.Map{"ok": true})
}
