package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jeancro/internal/i18n"
)

// jsonError is the single error shape the API returns.
func jsonError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// lang resolves the response language: explicit query parameter first, then
// the Accept-Language header, defaulting to English.
func lang(c *fiber.Ctx) i18n.Lang {
	if q := c.Query("lang"); q != "" {
		return i18n.Parse(q)
	}
	return i18n.Parse(c.Get("Accept-Language"))
}

// sessionID reads the sid cookie, minting one on first contact so the chat
// transcript sticks to the browser session.
func sessionID(c *fiber.Ctx) string {
	if sid := c.Cookies("sid"); sid != "" {
		return sid
	}
	sid := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    sid,
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return sid
}
