package services

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"jeancro/internal/i18n"
)

func TestCheckout_BuildWhatsAppLink(t *testing.T) {
	st := newTestStore(t)
	svc := NewCheckoutService(st)

	products := st.Products()
	items := []CartItem{
		{ProductID: products[0].ID, Quantity: 2},
		{ProductID: products[1].ID, Quantity: 1},
	}

	res, err := svc.BuildWhatsAppLink(items, i18n.EN)
	if err != nil {
		t.Fatalf("build link: %v", err)
	}

	if !strings.HasPrefix(res.URL, "https://wa.me/") {
		t.Fatalf("unexpected url: %s", res.URL)
	}
	// Number part must be digits only, trailing text is the encoded message.
	number := strings.TrimPrefix(res.URL, "https://wa.me/")
	number = number[:strings.Index(number, "?")]
	if strings.ContainsAny(number, "+- ()") {
		t.Errorf("number not reduced to digits: %q", number)
	}

	wantTotal := products[0].Price*2 + products[1].Price
	if res.Total != wantTotal {
		t.Errorf("total=%f, want %f", res.Total, wantTotal)
	}

	if !strings.Contains(res.Message, products[0].Name.Get(i18n.EN)+" x2") {
		t.Errorf("message missing first order line:\n%s", res.Message)
	}
	if !strings.Contains(res.Message, "Total:") {
		t.Errorf("message missing total line:\n%s", res.Message)
	}

	// The link must round-trip back to the plain message.
	u, err := url.Parse(res.URL)
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	if got := u.Query().Get("text"); got != res.Message {
		t.Errorf("encoded text does not round-trip:\n%q\n%q", got, res.Message)
	}
}

func TestCheckout_ArabicOrderLines(t *testing.T) {
	st := newTestStore(t)
	svc := NewCheckoutService(st)
	p := st.Products()[0]

	res, err := svc.BuildWhatsAppLink([]CartItem{{ProductID: p.ID, Quantity: 1}}, i18n.AR)
	if err != nil {
		t.Fatalf("build link: %v", err)
	}
	if !strings.Contains(res.Message, p.Name.Get(i18n.AR)) {
		t.Errorf("message missing Arabic product name:\n%s", res.Message)
	}
	if !strings.Contains(res.Message, "الإجمالي") {
		t.Errorf("message missing Arabic total label:\n%s", res.Message)
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	svc := NewCheckoutService(newTestStore(t))
	if _, err := svc.BuildWhatsAppLink(nil, i18n.EN); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("err=%v, want ErrEmptyCart", err)
	}
}

func TestCheckout_UnknownProduct(t *testing.T) {
	svc := NewCheckoutService(newTestStore(t))
	_, err := svc.BuildWhatsAppLink([]CartItem{{ProductID: "nope", Quantity: 1}}, i18n.EN)
	if !errors.Is(err, ErrUnknownProduct) {
		t.Fatalf("err=%v, want ErrUnknownProduct", err)
	}
}

func TestCheckout_QuantityClampedToOne(t *testing.T) {
	st := newTestStore(t)
	svc := NewCheckoutService(st)
	p := st.Products()[0]

	res, err := svc.BuildWhatsAppLink([]CartItem{{ProductID: p.ID, Quantity: 0}}, i18n.EN)
	if err != nil {
		t.Fatalf("build link: %v", err)
	}
	if res.Total != p.Price {
		t.Errorf("total=%f, want single unit price %f", res.Total, p.Price)
	}
}

func TestCheckout_ShippingThreshold(t *testing.T) {
	st := newTestStore(t)
	svc := NewCheckoutService(st)
	settings := st.Settings()

	// A big enough order crosses the free-shipping threshold.
	p := st.Products()[0]
	qty := int(settings.Shipping.FreeThreshold/p.Price) + 1
	res, err := svc.BuildWhatsAppLink([]CartItem{{ProductID: p.ID, Quantity: qty}}, i18n.EN)
	if err != nil {
		t.Fatal(err)
	}
	if res.Shipping != 0 {
		t.Errorf("shipping=%f above threshold, want 0", res.Shipping)
	}

	small, err := svc.BuildWhatsAppLink([]CartItem{{ProductID: p.ID, Quantity: 1}}, i18n.EN)
	if err != nil {
		t.Fatal(err)
	}
	if p.Price < settings.Shipping.FreeThreshold && small.Shipping != settings.Shipping.Cost {
		t.Errorf("shipping=%f below threshold, want %f", small.Shipping, settings.Shipping.Cost)
	}
}
