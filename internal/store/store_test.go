package store_test

import (
	"testing"

	"jeancro/internal/domain"
	"jeancro/internal/i18n"
	"jeancro/internal/repos"
	"jeancro/internal/store"
)

func open(t *testing.T) (*store.Store, *repos.KVRepo) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	kv := repos.NewKVRepo(db)
	s, err := store.Open(kv)
	if err != nil {
		t.Fatal(err)
	}
	return s, kv
}

func TestOpen_SeedsEmptyDatabase(t *testing.T) {
	s, kv := open(t)

	if n := len(s.Products()); n != 6 {
		t.Fatalf("want 6 seeded products, got %d", n)
	}
	if n := len(s.Categories()); n != 4 {
		t.Fatalf("want 4 seeded categories, got %d", n)
	}
	if n := len(s.FAQs()); n != 3 {
		t.Fatalf("want 3 seeded faqs, got %d", n)
	}
	if got := s.Settings().StoreName; got != "Jeancro" {
		t.Fatalf("want default store name, got %q", got)
	}

	// Seeds must have been written back.
	for _, key := range []string{repos.KeyProducts, repos.KeyCategories, repos.KeyFAQs, repos.KeyAds, repos.KeySettings} {
		if ok, _ := kv.Exists(key); !ok {
			t.Fatalf("seed key %s missing from kv", key)
		}
	}
}

func TestCRUD_WritesThrough(t *testing.T) {
	s, kv := open(t)

	p := domain.Product{
		ID:         "prod-test",
		Name:       i18n.Text{i18n.EN: "Wool Scarf", i18n.AR: "وشاح صوف"},
		Price:      25,
		CategoryID: "cat4",
	}
	if err := s.AddProduct(p); err != nil {
		t.Fatal(err)
	}

	var persisted []domain.Product
	if ok, _ := kv.GetJSON(repos.KeyProducts, &persisted); !ok || len(persisted) != 7 {
		t.Fatalf("add not written through, got %d products", len(persisted))
	}

	p.Price = 29
	if err := s.UpdateProduct(p); err != nil {
		t.Fatal(err)
	}
	got, err := s.Product("prod-test")
	if err != nil {
		t.Fatal(err)
	}
	if got.Price != 29 {
		t.Fatalf("update lost: %+v", got)
	}

	if err := s.DeleteProduct("prod-test"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Product("prod-test"); err != store.ErrNotFound {
		t.Fatalf("want ErrNotFound after delete, got %v", err)
	}
}

func TestUpdateMissingRecord(t *testing.T) {
	s, _ := open(t)

	err := s.UpdateCategory(domain.Category{ID: "nope", Name: i18n.Text{i18n.EN: "X"}})
	if err != store.ErrNotFound {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestReload_PicksUpPersistedState(t *testing.T) {
	s, kv := open(t)

	cfg := s.Settings()
	cfg.StoreName = "Jeancro Outlet"
	if err := kv.SetJSON(repos.KeySettings, cfg); err != nil {
		t.Fatal(err)
	}
	if err := s.Reload(); err != nil {
		t.Fatal(err)
	}
	if got := s.Settings().StoreName; got != "Jeancro Outlet" {
		t.Fatalf("reload missed persisted settings: %q", got)
	}
}
