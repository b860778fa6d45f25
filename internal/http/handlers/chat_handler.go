package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"jeancro/internal/chat"
	applog "jeancro/internal/log"
	"jeancro/internal/services"
	"jeancro/internal/validate"
)

type ChatHandler struct {
	Chat *services.ChatService
}

type chatRequest struct {
	Message string `json:"message"`
}

// chatResponse carries the reply twice in effect: the raw text still holds
// any in-band image markers, while Attachments lists the same URLs parsed
// out for clients that prefer the structured form.
type chatResponse struct {
	ID          string   `json:"id"`
	Text        string   `json:"text"`
	Sender      string   `json:"sender"`
	Timestamp   string   `json:"timestamp"`
	Attachments []string `json:"attachments,omitempty"`
}

// POST /api/v1/chat
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed chat payload")
	}
	msg, ok := validate.Message(req.Message)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "message is empty or too long")
	}

	sid := sessionID(c)
	reply, err := h.Chat.Send(c.UserContext(), sid, msg, lang(c))
	if err != nil {
		if errors.Is(err, services.ErrChatBusy) {
			return jsonError(c, fiber.StatusTooManyRequests, "previous message still processing")
		}
		if errors.Is(err, services.ErrEmptyMessage) {
			return jsonError(c, fiber.StatusBadRequest, "message is empty")
		}
		applog.Error(c, "chat.send.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not process message")
	}

	_, urls := chat.ExtractImageMarkers(reply.Text)
	return c.JSON(chatResponse{
		ID:          reply.ID,
		Text:        reply.Text,
		Sender:      reply.Sender,
		Timestamp:   reply.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
		Attachments: urls,
	})
}

// GET /api/v1/chat/history
func (h *ChatHandler) History(c *fiber.Ctx) error {
	return c.JSON(h.Chat.History(sessionID(c)))
}

// POST /api/v1/chat/reset
func (h *ChatHandler) Reset(c *fiber.Ctx) error {
	h.Chat.Reset(sessionID(c))
	return c.JSON(fiber.Map{"ok": true, "welcome": h.Chat.Welcome(lang(c))})
}
