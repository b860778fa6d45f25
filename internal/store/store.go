// Package store keeps the live storefront records in memory and writes every
// mutation back to the key→JSON repository as a whole collection, the same
// write-through discipline the storefront UI used for its saved state.
package store

import (
	"errors"
	"sync"

	"jeancro/internal/domain"
	"jeancro/internal/repos"
)

var ErrNotFound = errors.New("record not found")

type Store struct {
	mu         sync.RWMutex
	kv         *repos.KVRepo
	products   []domain.Product
	categories []domain.Category
	faqs       []domain.FAQ
	ads        []domain.Ad
	settings   domain.StoreSettings
}

// Open loads all collections from the repository, seeding any missing key
// with the default catalog.
func Open(kv *repos.KVRepo) (*Store, error) {
	s := &Store{kv: kv}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads every collection from the repository. Missing keys are
// seeded with defaults and written back so the next start finds them.
func (s *Store) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := loadOrSeed(s.kv, repos.KeyProducts, &s.products, DefaultProducts()); err != nil {
		return err
	}
	if err := loadOrSeed(s.kv, repos.KeyCategories, &s.categories, DefaultCategories()); err != nil {
		return err
	}
	if err := loadOrSeed(s.kv, repos.KeyFAQs, &s.faqs, DefaultFAQs()); err != nil {
		return err
	}
	if err := loadOrSeed(s.kv, repos.KeyAds, &s.ads, DefaultAds()); err != nil {
		return err
	}
	if err := loadOrSeed(s.kv, repos.KeySettings, &s.settings, DefaultSettings()); err != nil {
		return err
	}
	return nil
}

func loadOrSeed[T any](kv *repos.KVRepo, key string, dst *T, def T) error {
	ok, err := kv.GetJSON(key, dst)
	if err != nil {
		return err
	}
	if !ok {
		*dst = def
		return kv.SetJSON(key, def)
	}
	return nil
}

// ---------- reads ----------

func (s *Store) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) Product(id string) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrNotFound
}

func (s *Store) Categories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *Store) FAQs() []domain.FAQ {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.FAQ, len(s.faqs))
	copy(out, s.faqs)
	return out
}

func (s *Store) Ads() []domain.Ad {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Ad, len(s.ads))
	copy(out, s.ads)
	return out
}

func (s *Store) Settings() domain.StoreSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// ---------- writes (admin CRUD) ----------

func (s *Store) AddProduct(p domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
	return s.kv.SetJSON(repos.KeyProducts, s.products)
}

func (s *Store) UpdateProduct(p domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			return s.kv.SetJSON(repos.KeyProducts, s.products)
		}
	}
	return ErrNotFound
}

func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return s.kv.SetJSON(repos.KeyProducts, s.products)
		}
	}
	return ErrNotFound
}

func (s *Store) AddCategory(c domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append(s.categories, c)
	return s.kv.SetJSON(repos.KeyCategories, s.categories)
}

func (s *Store) UpdateCategory(c domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID == c.ID {
			s.categories[i] = c
			return s.kv.SetJSON(repos.KeyCategories, s.categories)
		}
	}
	return ErrNotFound
}

func (s *Store) DeleteCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return s.kv.SetJSON(repos.KeyCategories, s.categories)
		}
	}
	return ErrNotFound
}

func (s *Store) AddFAQ(f domain.FAQ) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faqs = append(s.faqs, f)
	return s.kv.SetJSON(repos.KeyFAQs, s.faqs)
}

func (s *Store) UpdateFAQ(f domain.FAQ) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.faqs {
		if s.faqs[i].ID == f.ID {
			s.faqs[i] = f
			return s.kv.SetJSON(repos.KeyFAQs, s.faqs)
		}
	}
	return ErrNotFound
}

func (s *Store) DeleteFAQ(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.faqs {
		if s.faqs[i].ID == id {
			s.faqs = append(s.faqs[:i], s.faqs[i+1:]...)
			return s.kv.SetJSON(repos.KeyFAQs, s.faqs)
		}
	}
	return ErrNotFound
}

func (s *Store) AddAd(a domain.Ad) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ads = append(s.ads, a)
	return s.kv.SetJSON(repos.KeyAds, s.ads)
}

func (s *Store) UpdateAd(a domain.Ad) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.ads {
		if s.ads[i].ID == a.ID {
			s.ads[i] = a
			return s.kv.SetJSON(repos.KeyAds, s.ads)
		}
	}
	return ErrNotFound
}

func (s *Store) DeleteAd(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.ads {
		if s.ads[i].ID == id {
			s.ads = append(s.ads[:i], s.ads[i+1:]...)
			return s.kv.SetJSON(repos.KeyAds, s.ads)
		}
	}
	return ErrNotFound
}

func (s *Store) SetSettings(cfg domain.StoreSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = cfg
	return s.kv.SetJSON(repos.KeySettings, cfg)
}
