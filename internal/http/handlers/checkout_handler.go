package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "jeancro/internal/log"
	"jeancro/internal/services"
	"jeancro/internal/validate"
)

type CheckoutHandler struct {
	Checkout *services.CheckoutService
}

type checkoutRequest struct {
	Items []services.CartItem `json:"items"`
}

// POST /api/v1/checkout
// The cart lives client-side; this endpoint reprices it against the live
// catalog and returns the WhatsApp deep link that finishes the order.
func (h *CheckoutHandler) Create(c *fiber.Ctx) error {
	var req checkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed checkout payload")
	}
	for i := range req.Items {
		if _, ok := validate.ID(req.Items[i].ProductID); !ok {
			return jsonError(c, fiber.StatusBadRequest, "invalid product id in cart")
		}
		req.Items[i].Quantity = validate.Quantity(req.Items[i].Quantity)
	}

	res, err := h.Checkout.BuildWhatsAppLink(req.Items, lang(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			return jsonError(c, fiber.StatusBadRequest, "cart is empty")
		case errors.Is(err, services.ErrUnknownProduct):
			return jsonError(c, fiber.StatusBadRequest, "cart references an unknown product")
		case errors.Is(err, services.ErrNoWhatsAppSetup):
			return jsonError(c, fiber.StatusConflict, "store has no whatsapp number configured")
		}
		applog.Error(c, "checkout.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not build checkout link")
	}

	applog.Audit(c, "checkout.link", map[string]any{"total": res.Total, "items": len(req.Items)})
	return c.JSON(res)
}
