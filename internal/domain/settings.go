package domain

import "jeancro/internal/i18n"

// StoreSettings is the single shared configuration record for the store.
// It is persisted whole under one key and handed to components at
// construction time instead of being re-read ad hoc per call site.
type StoreSettings struct {
	StoreName       string      `json:"storeName"`
	DefaultLanguage i18n.Lang   `json:"defaultLanguage"`
	CurrencySymbol  string      `json:"currencySymbol"`
	WhatsAppNumber  string      `json:"whatsappNumber"`
	SocialLinks     SocialLinks `json:"socialMediaLinks"`
	Appearance      Appearance  `json:"appearance"`
	SEO             SEOMeta     `json:"seo"`
	ChatWidget      ChatWidget  `json:"chatbot"`
	Shipping        Shipping    `json:"shipping"`
}

type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
}

type Appearance struct {
	PrimaryColor string `json:"primaryColor"`
	LogoURL      string `json:"logoUrl,omitempty"`
}

type SEOMeta struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Keywords    string `json:"keywords,omitempty"`
}

type ChatWidget struct {
	Enabled        bool      `json:"enabled"`
	WelcomeMessage i18n.Text `json:"welcomeMessage,omitempty"`
	AutoShow       bool      `json:"autoShow"`
}

type Shipping struct {
	Cost          float64  `json:"cost"`
	FreeThreshold float64  `json:"freeThreshold"`
	Methods       []string `json:"methods,omitempty"`
}
