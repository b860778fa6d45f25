package handlers

import (
	"jeancro/internal/chat"
	"jeancro/internal/services"
	"jeancro/internal/store"
)

type Deps struct {
	ProductHandler  *ProductHandler
	CategoryHandler *CategoryHandler
	FAQHandler      *FAQHandler
	AdHandler       *AdHandler
	SettingsHandler *SettingsHandler
	ChatHandler     *ChatHandler
	CheckoutHandler *CheckoutHandler
	AuthHandler     *AuthHandler
	AdminHandler    *AdminHandler
}

func NewDeps(st *store.Store, admin *services.AdminService, completer chat.Completer) *Deps {
	catalogSvc := services.NewCatalogService(st)
	chatSvc := services.NewChatService(st, &chat.Responder{AI: completer})
	checkoutSvc := services.NewCheckoutService(st)

	return &Deps{
		ProductHandler:  &ProductHandler{Catalog: catalogSvc, Store: st},
		CategoryHandler: &CategoryHandler{Catalog: catalogSvc, Store: st},
		FAQHandler:      &FAQHandler{Catalog: catalogSvc, Store: st},
		AdHandler:       &AdHandler{Catalog: catalogSvc, Store: st},
		SettingsHandler: &SettingsHandler{Catalog: catalogSvc, Store: st},
		ChatHandler:     &ChatHandler{Chat: chatSvc},
		CheckoutHandler: &CheckoutHandler{Checkout: checkoutSvc},
		AuthHandler:     &AuthHandler{Admin: admin},
		AdminHandler:    &AdminHandler{Catalog: catalogSvc, Store: st},
	}
}
