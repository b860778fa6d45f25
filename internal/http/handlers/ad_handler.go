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

type AdHandler struct {
	Catalog *services.CatalogService
	Store   *store.Store
}

// GET /api/v1/ads?placement=homepage-banner
// Only active ads are exposed publicly; the full list is admin-only.
func (h *AdHandler) Active(c *fiber.Ctx) error {
	placement := c.Query("placement")
	if placement != "" && !validate.Placement(placement) {
		return jsonError(c, fiber.StatusBadRequest, "unknown placement")
	}
	return c.JSON(h.Catalog.ActiveAds(placement))
}

// GET /api/v1/admin/ads
func (h *AdHandler) ListAll(c *fiber.Ctx) error {
	return c.JSON(h.Store.Ads())
}

func decodeAd(c *fiber.Ctx) (domain.Ad, error) {
	var a domain.Ad
	if err := c.BodyParser(&a); err != nil {
		return a, errors.New("malformed ad payload")
	}
	if !validate.Placement(a.Placement) {
		return a, errors.New("unknown placement")
	}
	return a, nil
}

// POST /api/v1/admin/ads
func (h *AdHandler) Create(c *fiber.Ctx) error {
	a, err := decodeAd(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	} else if _, ok := validate.ID(a.ID); !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid ad id")
	}
	if err := h.Store.AddAd(a); err != nil {
		applog.Error(c, "admin.ad.create.fail", err, map[string]any{"ad": a.ID})
		return jsonError(c, fiber.StatusInternalServerError, "could not save ad")
	}
	applog.Audit(c, "admin.ad.create", map[string]any{"ad": a.ID})
	return c.Status(fiber.StatusCreated).JSON(a)
}

// PUT /api/v1/admin/ads/:id
func (h *AdHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "ad not found")
	}
	a, err := decodeAd(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}
	a.ID = id
	if err := h.Store.UpdateAd(a); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return jsonError(c, fiber.StatusNotFound, "ad not found")
		}
		applog.Error(c, "admin.ad.update.fail", err, map[string]any{"ad": id})
		return jsonError(c, fiber.StatusInternalServerError, "could not save ad")
	}
	applog.Audit(c, "admin.ad.update", map[string]any{"ad": id})
	return c.JSON(a)
}

// DELETE /api/v1/admin/ads/:id
func (h *AdHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "ad not found")
	}
	if err := h.Store.DeleteAd(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return jsonError(c, fiber.StatusNotFound, "ad not found")
		}
		applog.Error(c, "admin.ad.delete.fail", err, map[string]any{"ad": id})
		return jsonError(c, fiber.StatusInternalServerError, "could not delete ad")
	}
	applog.Audit(c, "admin.ad.delete", map[string]any{"ad": id})
	return c.SendStatus(fiber.StatusNoContent)
}
