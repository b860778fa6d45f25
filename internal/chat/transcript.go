package chat

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"jeancro/internal/domain"
)

// Transcript is one session's append-only message log. The only mutation
// besides append is the full clear a reset intent triggers.
type Transcript struct {
	mu   sync.Mutex
	msgs []domain.ChatMessage
}

func (t *Transcript) Append(text, sender string) domain.ChatMessage {
	msg := domain.ChatMessage{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    sender,
		Timestamp: time.Now().UTC(),
	}
	t.mu.Lock()
	t.msgs = append(t.msgs, msg)
	t.mu.Unlock()
	return msg
}

func (t *Transcript) Clear() {
	t.mu.Lock()
	t.msgs = nil
	t.mu.Unlock()
}

// Messages returns a copy of the log in append order.
func (t *Transcript) Messages() []domain.ChatMessage {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]domain.ChatMessage, len(t.msgs))
	copy(out, t.msgs)
	return out
}

// History converts the log into the role/text pairs the generative model
// consumes. System notices are dropped; bot turns map to the model role.
func (t *Transcript) History() []Turn {
	t.mu.Lock()
	defer t.mu.Unlock()
	turns := make([]Turn, 0, len(t.msgs))
	for _, m := range t.msgs {
		switch m.Sender {
		case domain.SenderUser:
			turns = append(turns, Turn{Role: RoleUser, Text: m.Text})
		case domain.SenderBot:
			turns = append(turns, Turn{Role: RoleModel, Text: m.Text})
		}
	}
	return turns
}

// Len reports the number of messages currently held.
func (t *Transcript) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.msgs)
}
