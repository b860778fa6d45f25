package chat

import (
	"context"
	"strings"
	"time"

	"jeancro/internal/domain"
	"jeancro/internal/i18n"
	applog "jeancro/internal/log"
)

// Turn is one prior exchange handed to the generative model.
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Completer is the generative fallback boundary. Implementations fail by
// returning an error; the dispatcher never lets that error escape.
type Completer interface {
	Complete(ctx context.Context, systemPrompt string, history []Turn, message string) (string, error)
}

// Responder is the chat entry point: classify, render a template, or fall
// back to FAQ matching and finally the generative model.
type Responder struct {
	AI  Completer
	Now func() time.Time
}

func (r *Responder) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Reply produces the bot's answer to one user message. It always returns a
// displayable string; every failure path collapses into the localized
// fallback template. onReset is invoked exactly once when the message is a
// reset request, before the welcome message is returned, and may be nil.
func (r *Responder) Reply(ctx context.Context, message string, lang i18n.Lang, snap Snapshot, history []Turn, onReset func()) string {
	symbol := snap.Settings.CurrencySymbol
	c := Classify(message, lang, snap)

	switch c.Intent {
	case IntentReset:
		if onReset != nil {
			onReset()
		}
		return WelcomeMessage(lang, snap.Settings.StoreName, r.now())
	case IntentNewProducts:
		return NewProductsMessage(snap.Products, lang, symbol)
	case IntentStoreInfo:
		return StoreInfoMessage(snap.Settings, lang)
	case IntentStoreStats:
		return StoreStatsMessage(snap, lang)
	case IntentCategory:
		for _, cat := range snap.Categories {
			if cat.ID == c.CategoryID {
				return CategoryProductsMessage(cat, snap.Products, lang, symbol)
			}
		}
	case IntentProductNumber:
		return ProductDetailsMessage(snap.Products[c.ProductIndex-1], lang, symbol)
	case IntentProducts:
		return ProductsListMessage(snap.Products, lang, symbol)
	case IntentOrdering:
		return OrderingInstructionsMessage(lang)
	case IntentPayments:
		return PaymentMethodsMessage(lang)
	case IntentShipping:
		return ShippingInfoMessage(lang)
	case IntentContact:
		return ContactMessage(lang, snap.Settings.WhatsAppNumber)
	}

	if answer, ok := matchFAQ(message, lang, snap.FAQs); ok {
		return answer
	}

	if r.AI == nil {
		return FallbackMessage(lang, snap.Settings.WhatsAppNumber)
	}
	prompt := BuildSystemPrompt(snap, lang, r.now())
	text, err := r.AI.Complete(ctx, prompt, history, message)
	if err != nil {
		applog.Error(nil, "chat.ai.complete", err, map[string]any{"lang": string(lang)})
		return FallbackMessage(lang, snap.Settings.WhatsAppNumber)
	}
	if strings.TrimSpace(text) == "" {
		return FallbackMessage(lang, snap.Settings.WhatsAppNumber)
	}
	return text
}

// matchFAQ does the loose two-way substring check: the stored question
// contains the message, or the message contains the question's first 20
// runes. First hit wins.
func matchFAQ(message string, lang i18n.Lang, faqs []domain.FAQ) (string, bool) {
	m := strings.ToLower(message)
	for _, f := range faqs {
		q := strings.ToLower(f.Question.Get(lang))
		if q == "" {
			continue
		}
		if strings.Contains(q, m) {
			return f.Answer.Get(lang), true
		}
		r := []rune(q)
		n := 20
		if len(r) < n {
			n = len(r)
		}
		if strings.Contains(m, string(r[:n])) {
			return f.Answer.Get(lang), true
		}
	}
	return "", false
}
