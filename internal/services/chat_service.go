package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"jeancro/internal/chat"
	"jeancro/internal/domain"
	"jeancro/internal/i18n"
	"jeancro/internal/store"
)

var (
	ErrEmptyMessage = errors.New("message is empty")
	ErrChatBusy     = errors.New("a reply for this session is already in flight")
)

// ChatService owns one transcript per browsing session and funnels every
// message through the responder. Sessions are held in memory only; a server
// restart starts everyone on a fresh transcript.
type ChatService struct {
	Store     *store.Store
	Responder *chat.Responder

	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	transcript chat.Transcript
	inFlight   bool
}

func NewChatService(st *store.Store, r *chat.Responder) *ChatService {
	return &ChatService{
		Store:     st,
		Responder: r,
		sessions:  make(map[string]*session),
	}
}

func (s *ChatService) session(sid string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sid]
	if !ok {
		sess = &session{}
		s.sessions[sid] = sess
	}
	return sess
}

// Send records the user turn, produces the bot reply and records that too.
// At most one reply per session is generated at a time; concurrent sends
// for the same sid get ErrChatBusy instead of queueing.
func (s *ChatService) Send(ctx context.Context, sid, message string, lang i18n.Lang) (domain.ChatMessage, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return domain.ChatMessage{}, ErrEmptyMessage
	}

	sess := s.session(sid)

	s.mu.Lock()
	if sess.inFlight {
		s.mu.Unlock()
		return domain.ChatMessage{}, ErrChatBusy
	}
	sess.inFlight = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		sess.inFlight = false
		s.mu.Unlock()
	}()

	history := sess.transcript.History()
	sess.transcript.Append(message, domain.SenderUser)

	snap := chat.Snapshot{
		Products:   s.Store.Products(),
		Categories: s.Store.Categories(),
		FAQs:       s.Store.FAQs(),
		Settings:   s.Store.Settings(),
	}

	reply := s.Responder.Reply(ctx, message, lang, snap, history, func() {
		sess.transcript.Clear()
	})
	return sess.transcript.Append(reply, domain.SenderBot), nil
}

// History returns the session transcript in append order.
func (s *ChatService) History(sid string) []domain.ChatMessage {
	return s.session(sid).transcript.Messages()
}

// Reset clears the transcript outside the chat flow, for the widget's own
// clear button.
func (s *ChatService) Reset(sid string) {
	s.session(sid).transcript.Clear()
}

// Welcome returns the configured widget greeting for the session language.
func (s *ChatService) Welcome(lang i18n.Lang) string {
	return s.Store.Settings().ChatWidget.WelcomeMessage.Get(lang)
}
