package services

import (
	"strings"

	"jeancro/internal/domain"
	"jeancro/internal/i18n"
	"jeancro/internal/store"
)

type CatalogService struct {
	Store *store.Store
}

func NewCatalogService(st *store.Store) *CatalogService {
	return &CatalogService{Store: st}
}

func (s *CatalogService) ListProducts() []domain.Product {
	return s.Store.Products()
}

func (s *CatalogService) GetProduct(id string) (domain.Product, error) {
	return s.Store.Product(id)
}

// Search filters the catalog by a case-insensitive substring over the
// localized name and description, an optional category, and an in-stock
// flag. Empty filters pass everything through in catalog order, so an
// unknown category id just yields an empty slice.
func (s *CatalogService) Search(q, catID string, inStockOnly bool, lang i18n.Lang) []domain.Product {
	q = strings.ToLower(strings.TrimSpace(q))
	var out []domain.Product
	for _, p := range s.Store.Products() {
		if catID != "" && p.CategoryID != catID {
			continue
		}
		if inStockOnly && !p.Available() {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name.Get(lang)), q) &&
			!strings.Contains(strings.ToLower(p.Description.Get(lang)), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (s *CatalogService) ListCategories() []domain.Category {
	return s.Store.Categories()
}

func (s *CatalogService) ListFAQs() []domain.FAQ {
	return s.Store.FAQs()
}

// ActiveAds filters by placement; empty placement means all active ads.
func (s *CatalogService) ActiveAds(placement string) []domain.Ad {
	var out []domain.Ad
	for _, a := range s.Store.Ads() {
		if !a.IsActive {
			continue
		}
		if placement != "" && a.Placement != placement {
			continue
		}
		out = append(out, a)
	}
	return out
}

func (s *CatalogService) Settings() domain.StoreSettings {
	return s.Store.Settings()
}

type StoreStats struct {
	Products     int            `json:"products"`
	Categories   int            `json:"categories"`
	FAQs         int            `json:"faqs"`
	Ads          int            `json:"ads"`
	ActiveAds    int            `json:"activeAds"`
	OutOfStock   int            `json:"outOfStock"`
	PerCategory  map[string]int `json:"perCategory"`
	AveragePrice float64        `json:"averagePrice"`
}

// Stats powers the admin dashboard cards and the chat statistics intent.
func (s *CatalogService) Stats() StoreStats {
	products := s.Store.Products()
	ads := s.Store.Ads()

	st := StoreStats{
		Products:    len(products),
		Categories:  len(s.Store.Categories()),
		FAQs:        len(s.Store.FAQs()),
		Ads:         len(ads),
		PerCategory: make(map[string]int),
	}
	var sum float64
	for _, p := range products {
		st.PerCategory[p.CategoryID]++
		sum += p.Price
		if !p.Available() {
			st.OutOfStock++
		}
	}
	if len(products) > 0 {
		st.AveragePrice = sum / float64(len(products))
	}
	for _, a := range ads {
		if a.IsActive {
			st.ActiveAds++
		}
	}
	return st
}
