package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"jeancro/internal/chat"
	"jeancro/internal/domain"
	"jeancro/internal/http/handlers"
	"jeancro/internal/i18n"
	"jeancro/internal/repos"
	"jeancro/internal/services"
	"jeancro/internal/store"
)

type echoCompleter struct {
	reply string
	err   error
}

func (e *echoCompleter) Complete(context.Context, string, []chat.Turn, string) (string, error) {
	return e.reply, e.err
}

// newAPI wires the full route table against an in-memory database, the way
// main does minus rate limiting.
func newAPI(t *testing.T) (*fiber.App, *store.Store) {
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

	adminSvc := services.NewAdminService("test-pass", "test-secret")
	deps := handlers.NewDeps(st, adminSvc, &echoCompleter{reply: "generated answer"})

	app := fiber.New()
	api := app.Group("/api/v1")
	api.Get("/products", deps.ProductHandler.List)
	api.Get("/products/:id", deps.ProductHandler.Detail)
	api.Get("/categories", deps.CategoryHandler.List)
	api.Get("/faqs", deps.FAQHandler.List)
	api.Get("/ads", deps.AdHandler.Active)
	api.Get("/settings", deps.SettingsHandler.Get)
	api.Post("/checkout", deps.CheckoutHandler.Create)
	api.Post("/chat", deps.ChatHandler.Send)
	api.Get("/chat/history", deps.ChatHandler.History)
	api.Post("/chat/reset", deps.ChatHandler.Reset)
	api.Post("/admin/login", deps.AuthHandler.Login)
	admin := api.Group("/admin", handlers.RequireAdmin(adminSvc))
	admin.Get("/stats", deps.AdminHandler.Stats)
	admin.Get("/ads", deps.AdHandler.ListAll)
	admin.Post("/products", deps.ProductHandler.Create)
	admin.Put("/products/:id", deps.ProductHandler.Update)
	admin.Delete("/products/:id", deps.ProductHandler.Delete)
	admin.Put("/settings", deps.SettingsHandler.Update)
	return app, st
}

func jsonReq(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func login(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, err := app.Test(jsonReq("POST", "/api/v1/admin/login", fiber.Map{"password": "test-pass"}))
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status=%d", resp.StatusCode)
	}
	body := decode[map[string]string](t, resp)
	if body["token"] == "" {
		t.Fatal("login returned no token")
	}
	return body["token"]
}

func TestPublicCatalogEndpoints(t *testing.T) {
	app, st := newAPI(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/products", nil))
	if err != nil {
		t.Fatal(err)
	}
	products := decode[[]domain.Product](t, resp)
	if len(products) != len(st.Products()) {
		t.Fatalf("got %d products, want %d", len(products), len(st.Products()))
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/products/"+products[0].ID, nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("detail status=%d", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/products/does-not-exist", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("missing product status=%d, want 404", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/products?category="+products[0].CategoryID, nil))
	if err != nil {
		t.Fatal(err)
	}
	filtered := decode[[]domain.Product](t, resp)
	for _, p := range filtered {
		if p.CategoryID != products[0].CategoryID {
			t.Errorf("filter leaked product %s from category %s", p.ID, p.CategoryID)
		}
	}
}

func TestProductSearchEndpoint(t *testing.T) {
	app, st := newAPI(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/products?q=jacket", nil))
	if err != nil {
		t.Fatal(err)
	}
	found := decode[[]domain.Product](t, resp)
	if len(found) != 1 || found[0].Name.Get(i18n.EN) != "Crochet Jacket" {
		t.Fatalf("q=jacket matched %d products", len(found))
	}

	// Arabic terms match the Arabic localization when lang=ar.
	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/products?lang=ar&q="+url.QueryEscape("جاكيت"), nil))
	if err != nil {
		t.Fatal(err)
	}
	found = decode[[]domain.Product](t, resp)
	if len(found) != 1 || found[0].ID != "prod1" {
		t.Fatalf("arabic term matched %d products", len(found))
	}

	// Combining q with a category the match is not in yields nothing.
	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/products?q=jacket&category=cat2", nil))
	if err != nil {
		t.Fatal(err)
	}
	if found = decode[[]domain.Product](t, resp); len(found) != 0 {
		t.Fatalf("cross-category search matched %d products", len(found))
	}

	p, err := st.Product("prod2")
	if err != nil {
		t.Fatalf("prod2: %v", err)
	}
	out := false
	p.InStock = &out
	if err := st.UpdateProduct(p); err != nil {
		t.Fatalf("update prod2: %v", err)
	}
	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/products?inStock=true", nil))
	if err != nil {
		t.Fatal(err)
	}
	found = decode[[]domain.Product](t, resp)
	if len(found) != len(st.Products())-1 {
		t.Fatalf("inStock filter kept %d products", len(found))
	}
	for _, p := range found {
		if p.ID == "prod2" {
			t.Error("inStock filter kept an out-of-stock product")
		}
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/products?q="+strings.Repeat("a", 101), nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("overlong q status=%d, want 400", resp.StatusCode)
	}
}

func TestAdsOnlyActivePublicly(t *testing.T) {
	app, st := newAPI(t)

	if err := st.AddAd(domain.Ad{ID: "ad-paused", Placement: "sidebar", IsActive: false}); err != nil {
		t.Fatal(err)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/ads", nil))
	if err != nil {
		t.Fatal(err)
	}
	ads := decode[[]domain.Ad](t, resp)
	for _, a := range ads {
		if a.ID == "ad-paused" {
			t.Error("inactive ad exposed publicly")
		}
	}
	if len(ads) != len(st.Ads())-1 {
		t.Errorf("public ads=%d, want all but the paused one", len(ads))
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/ads?placement=popup", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad placement status=%d, want 400", resp.StatusCode)
	}
}

func TestChatFlow(t *testing.T) {
	app, _ := newAPI(t)

	resp, err := app.Test(jsonReq("POST", "/api/v1/chat", fiber.Map{"message": "show me product 1"}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("chat status=%d", resp.StatusCode)
	}
	body := decode[map[string]any](t, resp)
	text, _ := body["text"].(string)
	if !strings.Contains(text, "[PRODUCT_IMAGE:") {
		t.Errorf("detail reply missing image marker:\n%s", text)
	}
	atts, _ := body["attachments"].([]any)
	if len(atts) != 1 {
		t.Errorf("attachments=%v, want the one parsed image url", atts)
	}

	// The sid cookie set on first contact carries the transcript.
	var sid string
	for _, ck := range resp.Cookies() {
		if ck.Name == "sid" {
			sid = ck.Value
		}
	}
	if sid == "" {
		t.Fatal("no sid cookie issued")
	}

	histReq := httptest.NewRequest("GET", "/api/v1/chat/history", nil)
	histReq.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	resp, err = app.Test(histReq)
	if err != nil {
		t.Fatal(err)
	}
	hist := decode[[]domain.ChatMessage](t, resp)
	if len(hist) != 2 {
		t.Fatalf("history len=%d, want user+bot", len(hist))
	}

	resetReq := jsonReq("POST", "/api/v1/chat/reset", nil)
	resetReq.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	if _, err := app.Test(resetReq); err != nil {
		t.Fatal(err)
	}
	histReq = httptest.NewRequest("GET", "/api/v1/chat/history", nil)
	histReq.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	resp, err = app.Test(histReq)
	if err != nil {
		t.Fatal(err)
	}
	hist = decode[[]domain.ChatMessage](t, resp)
	if len(hist) != 0 {
		t.Fatalf("history len=%d after reset, want 0", len(hist))
	}
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	app, _ := newAPI(t)

	resp, err := app.Test(jsonReq("POST", "/api/v1/chat", fiber.Map{"message": "   "}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", resp.StatusCode)
	}
}

func TestChatArabicQueryParameter(t *testing.T) {
	app, _ := newAPI(t)

	resp, err := app.Test(jsonReq("POST", "/api/v1/chat?lang=ar", fiber.Map{"message": "المنتجات"}))
	if err != nil {
		t.Fatal(err)
	}
	body := decode[map[string]any](t, resp)
	text, _ := body["text"].(string)
	if !strings.Contains(text, "منتجاتنا المميزة") {
		t.Errorf("expected Arabic listing header:\n%s", text)
	}
}

func TestCheckoutEndpoint(t *testing.T) {
	app, st := newAPI(t)
	p := st.Products()[0]

	resp, err := app.Test(jsonReq("POST", "/api/v1/checkout", fiber.Map{
		"items": []fiber.Map{{"productId": p.ID, "quantity": 2}},
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("checkout status=%d", resp.StatusCode)
	}
	body := decode[map[string]any](t, resp)
	link, _ := body["url"].(string)
	if !strings.HasPrefix(link, "https://wa.me/") {
		t.Errorf("unexpected link: %s", link)
	}

	resp, err = app.Test(jsonReq("POST", "/api/v1/checkout", fiber.Map{"items": []fiber.Map{}}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("empty cart status=%d, want 400", resp.StatusCode)
	}
}

func TestAdminGuard(t *testing.T) {
	app, _ := newAPI(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/admin/stats", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("no token status=%d, want 401", resp.StatusCode)
	}

	req := httptest.NewRequest("GET", "/api/v1/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer bogus-token")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("bad token status=%d, want 403", resp.StatusCode)
	}

	token := login(t, app)
	req = httptest.NewRequest("GET", "/api/v1/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("valid token status=%d, want 200", resp.StatusCode)
	}
}

func TestAdminLoginRejectsWrongPassword(t *testing.T) {
	app, _ := newAPI(t)

	resp, err := app.Test(jsonReq("POST", "/api/v1/admin/login", fiber.Map{"password": "nope"}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status=%d, want 401", resp.StatusCode)
	}
}

func TestAdminProductCRUD(t *testing.T) {
	app, st := newAPI(t)
	token := login(t, app)
	auth := func(req *http.Request) *http.Request {
		req.Header.Set("Authorization", "Bearer "+token)
		return req
	}

	create := jsonReq("POST", "/api/v1/admin/products", fiber.Map{
		"name":        fiber.Map{"EN": "Denim Jacket", "AR": "سترة جينز"},
		"description": fiber.Map{"EN": "Classic denim", "AR": "جينز كلاسيكي"},
		"price":       420.0,
		"categoryId":  "cat1",
	})
	resp, err := app.Test(auth(create))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status=%d", resp.StatusCode)
	}
	created := decode[domain.Product](t, resp)
	if created.ID == "" {
		t.Fatal("created product has no id")
	}
	if created.Name.Get(i18n.AR) != "سترة جينز" {
		t.Errorf("arabic name lost: %q", created.Name.Get(i18n.AR))
	}

	update := jsonReq("PUT", fmt.Sprintf("/api/v1/admin/products/%s", created.ID), fiber.Map{
		"name":       fiber.Map{"EN": "Denim Jacket v2"},
		"price":      399.0,
		"categoryId": "cat1",
	})
	resp, err = app.Test(auth(update))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update status=%d", resp.StatusCode)
	}

	p, err := st.Product(created.ID)
	if err != nil {
		t.Fatalf("updated product not in store: %v", err)
	}
	if p.Price != 399 {
		t.Errorf("price=%f, want 399", p.Price)
	}

	del := httptest.NewRequest("DELETE", fmt.Sprintf("/api/v1/admin/products/%s", created.ID), nil)
	resp, err = app.Test(auth(del))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status=%d", resp.StatusCode)
	}
	if _, err := st.Product(created.ID); err == nil {
		t.Error("deleted product still readable")
	}
}

func TestAdminProductValidation(t *testing.T) {
	app, _ := newAPI(t)
	token := login(t, app)

	req := jsonReq("POST", "/api/v1/admin/products", fiber.Map{
		"name":  fiber.Map{"AR": "بدون إنجليزية"},
		"price": 10.0,
	})
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400 for missing English name", resp.StatusCode)
	}
}

func TestAdminSettingsUpdatePersists(t *testing.T) {
	app, st := newAPI(t)
	token := login(t, app)

	settings := st.Settings()
	settings.StoreName = "Jeancro Renamed"
	req := jsonReq("PUT", "/api/v1/admin/settings", settings)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", resp.StatusCode)
	}
	if st.Settings().StoreName != "Jeancro Renamed" {
		t.Error("settings update did not persist")
	}
}
