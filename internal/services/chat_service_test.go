package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"jeancro/internal/chat"
	"jeancro/internal/domain"
	"jeancro/internal/i18n"
	"jeancro/internal/repos"
	"jeancro/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	st, err := store.Open(repos.NewKVRepo(db))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return st
}

type stubCompleter struct {
	calls int
	reply string
	err   error
}

func (f *stubCompleter) Complete(context.Context, string, []chat.Turn, string) (string, error) {
	f.calls++
	return f.reply, f.err
}

func newChatService(t *testing.T, ai chat.Completer) *ChatService {
	t.Helper()
	st := newTestStore(t)
	return NewChatService(st, &chat.Responder{AI: ai})
}

func TestChatService_SendAppendsBothTurns(t *testing.T) {
	svc := newChatService(t, &stubCompleter{})

	msg, err := svc.Send(context.Background(), "sid1", "show me the products", i18n.EN)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if msg.Sender != domain.SenderBot || msg.Text == "" {
		t.Fatalf("unexpected reply message: %+v", msg)
	}

	hist := svc.History("sid1")
	if len(hist) != 2 {
		t.Fatalf("history len=%d, want 2", len(hist))
	}
	if hist[0].Sender != domain.SenderUser || hist[1].Sender != domain.SenderBot {
		t.Errorf("unexpected senders: %s, %s", hist[0].Sender, hist[1].Sender)
	}
}

func TestChatService_SessionsAreIsolated(t *testing.T) {
	svc := newChatService(t, &stubCompleter{})

	if _, err := svc.Send(context.Background(), "a", "products", i18n.EN); err != nil {
		t.Fatal(err)
	}
	if got := len(svc.History("b")); got != 0 {
		t.Fatalf("session b has %d messages, want 0", got)
	}
}

func TestChatService_EmptyMessageRejected(t *testing.T) {
	svc := newChatService(t, &stubCompleter{})

	if _, err := svc.Send(context.Background(), "sid", "   ", i18n.EN); !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("err=%v, want ErrEmptyMessage", err)
	}
}

func TestChatService_ResetIntentClearsTranscript(t *testing.T) {
	svc := newChatService(t, &stubCompleter{})

	if _, err := svc.Send(context.Background(), "sid", "products", i18n.EN); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Send(context.Background(), "sid", "reset", i18n.EN); err != nil {
		t.Fatal(err)
	}

	// Only the welcome reply survives the clear.
	hist := svc.History("sid")
	if len(hist) != 1 {
		t.Fatalf("history len=%d after reset, want 1", len(hist))
	}
	if hist[0].Sender != domain.SenderBot || !strings.Contains(hist[0].Text, "Jeancro") {
		t.Errorf("unexpected post-reset message: %+v", hist[0])
	}
}

func TestChatService_AIFailureStillAnswers(t *testing.T) {
	svc := newChatService(t, &stubCompleter{err: errors.New("network down")})

	msg, err := svc.Send(context.Background(), "sid", "tell me a joke about socks", i18n.EN)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if msg.Text == "" {
		t.Fatal("reply is empty, want the canned fallback")
	}
}

func TestChatService_Reset(t *testing.T) {
	svc := newChatService(t, &stubCompleter{})

	if _, err := svc.Send(context.Background(), "sid", "products", i18n.EN); err != nil {
		t.Fatal(err)
	}
	svc.Reset("sid")
	if got := len(svc.History("sid")); got != 0 {
		t.Fatalf("history len=%d after reset, want 0", got)
	}
}

func TestChatService_WelcomeIsLocalized(t *testing.T) {
	svc := newChatService(t, &stubCompleter{})

	en := svc.Welcome(i18n.EN)
	ar := svc.Welcome(i18n.AR)
	if en == "" || ar == "" || en == ar {
		t.Fatalf("welcome not localized: en=%q ar=%q", en, ar)
	}
}
