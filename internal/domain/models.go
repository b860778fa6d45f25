package domain

import (
	"time"

	"jeancro/internal/i18n"
)

// Product is a catalog entry. Name, description and details carry one value
// per supported language; English is the fallback for blank entries.
type Product struct {
	ID          string                       `json:"id"`
	Name        i18n.Text                    `json:"name"`
	Description i18n.Text                    `json:"description"`
	Price       float64                      `json:"price"`
	ImageURL    string                       `json:"imageUrl"`
	Images      []string                     `json:"images,omitempty"`
	CategoryID  string                       `json:"categoryId"`
	InStock     *bool                        `json:"inStock,omitempty"`
	Details     map[i18n.Lang]ProductDetails `json:"details,omitempty"`
}

type ProductDetails struct {
	Features       []string          `json:"features,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
}

// Available reports the stock flag; a product with no flag counts as in stock.
func (p Product) Available() bool {
	return p.InStock == nil || *p.InStock
}

// DetailsFor returns the details block for lang, falling back to English.
func (p Product) DetailsFor(lang i18n.Lang) ProductDetails {
	if d, ok := p.Details[lang]; ok && (len(d.Features) > 0 || len(d.Specifications) > 0) {
		return d
	}
	return p.Details[i18n.EN]
}

type Category struct {
	ID   string    `json:"id"`
	Name i18n.Text `json:"name"`
}

type FAQ struct {
	ID       string    `json:"id"`
	Question i18n.Text `json:"question"`
	Answer   i18n.Text `json:"answer"`
}

// Ad is a store-managed promotional banner.
type Ad struct {
	ID          string    `json:"id"`
	ImageURL    string    `json:"imageUrl"`
	LinkURL     string    `json:"linkUrl"`
	Title       i18n.Text `json:"title"`
	Description i18n.Text `json:"description"`
	Placement   string    `json:"placement"` // homepage-banner | sidebar
	IsActive    bool      `json:"isActive"`
}

// ChatMessage is one turn of a chat transcript.
type ChatMessage struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    string    `json:"sender"` // user | bot | system
	Timestamp time.Time `json:"timestamp"`
}

const (
	SenderUser   = "user"
	SenderBot    = "bot"
	SenderSystem = "system"
)
