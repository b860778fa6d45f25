package services

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"jeancro/internal/i18n"
	"jeancro/internal/store"
)

var (
	ErrEmptyCart       = errors.New("cart has no items")
	ErrUnknownProduct  = errors.New("cart references an unknown product")
	ErrNoWhatsAppSetup = errors.New("store has no whatsapp number configured")
)

// CartItem is one client-side cart line; the server trusts only the id and
// quantity and reprices from the live catalog.
type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CheckoutService turns a cart into a prefilled WhatsApp deep link. There
// is no payment step; the conversation with the store finishes the order.
type CheckoutService struct {
	Store *store.Store
}

func NewCheckoutService(st *store.Store) *CheckoutService {
	return &CheckoutService{Store: st}
}

type CheckoutResult struct {
	URL      string  `json:"url"`
	Message  string  `json:"message"`
	Total    float64 `json:"total"`
	Shipping float64 `json:"shipping"`
}

// BuildWhatsAppLink renders the order text, one line per cart item plus a
// total, and wraps it in a wa.me URL with the number reduced to digits.
func (s *CheckoutService) BuildWhatsAppLink(items []CartItem, lang i18n.Lang) (CheckoutResult, error) {
	if len(items) == 0 {
		return CheckoutResult{}, ErrEmptyCart
	}
	settings := s.Store.Settings()
	digits := digitsOnly(settings.WhatsAppNumber)
	if digits == "" {
		return CheckoutResult{}, ErrNoWhatsAppSetup
	}

	symbol := settings.CurrencySymbol
	var lines []string
	var total float64
	for _, item := range items {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		p, err := s.Store.Product(item.ProductID)
		if err != nil {
			return CheckoutResult{}, fmt.Errorf("%w: %s", ErrUnknownProduct, item.ProductID)
		}
		lineTotal := p.Price * float64(qty)
		total += lineTotal
		lines = append(lines, fmt.Sprintf("%s x%d - %s%.2f", p.Name.Get(lang), qty, symbol, lineTotal))
	}

	shipping := 0.0
	if total < settings.Shipping.FreeThreshold {
		shipping = settings.Shipping.Cost
	}

	header := i18n.Pick(lang, "Checkout via WhatsApp", "الدفع عبر واتساب")
	totalLabel := i18n.Pick(lang, "Total", "الإجمالي")
	message := fmt.Sprintf("%s\n\n%s\n\n%s: %s%.2f",
		header, strings.Join(lines, "\n"), totalLabel, symbol, total)

	return CheckoutResult{
		URL:      "https://wa.me/" + digits + "?text=" + url.QueryEscape(message),
		Message:  message,
		Total:    total,
		Shipping: shipping,
	}, nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
