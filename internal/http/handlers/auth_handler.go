package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "jeancro/internal/log"
	"jeancro/internal/services"
)

type AuthHandler struct {
	Admin *services.AdminService
}

type loginRequest struct {
	Password string `json:"password"`
}

// POST /api/v1/admin/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed login payload")
	}
	token, err := h.Admin.Login(req.Password)
	if err != nil {
		if errors.Is(err, services.ErrBadPassword) {
			applog.Security(c, "admin.login.fail", nil)
			return jsonError(c, fiber.StatusUnauthorized, "invalid password")
		}
		applog.Error(c, "admin.login.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not log in")
	}
	applog.Audit(c, "admin.login", nil)
	return c.JSON(fiber.Map{"token": token})
}
