// Package chat classifies storefront chat messages into intents and renders
// the canned bilingual responses for them. Everything here is synchronous,
// pure computation over a read-only data snapshot; the only external call is
// the generative fallback behind the Completer interface.
package chat

import (
	"regexp"
	"strings"

	"jeancro/internal/domain"
	"jeancro/internal/i18n"
)

type Intent int

const (
	IntentNone Intent = iota
	IntentReset
	IntentNewProducts
	IntentStoreInfo
	IntentStoreStats
	IntentCategory
	IntentProductNumber
	IntentProducts
	IntentOrdering
	IntentPayments
	IntentShipping
	IntentContact
)

// Snapshot is the read-only view of live store data a single dispatch works
// against. The router never mutates it.
type Snapshot struct {
	Products   []domain.Product
	Categories []domain.Category
	FAQs       []domain.FAQ
	Settings   domain.StoreSettings
}

// Classification carries the winning intent plus the extras two intents need:
// the matched category and the 1-based product index.
type Classification struct {
	Intent       Intent
	CategoryID   string
	ProductIndex int
}

// Bilingual trigger phrases, matched as case-insensitive substrings. There is
// deliberately no stemming or scoring; the first listed phrase present in the
// message wins. Ambiguities between lists are resolved purely by the
// evaluation order in Classify.
var (
	resetKeywords = []string{
		"new conversation", "start over", "reset", "clear chat",
		"محادثة جديدة", "ابدأ من جديد", "مسح المحادثة",
	}
	newProductsKeywords = []string{
		"new products", "latest products", "new arrivals", "what's new", "whats new",
		"منتجات جديدة", "أحدث المنتجات", "وصل حديثا", "وصل حديثاً", "جديد",
	}
	storeInfoKeywords = []string{
		"about the store", "store info", "about you", "who are you", "about jeancro",
		"عن المتجر", "معلومات المتجر", "من أنتم", "من انتم",
	}
	storeStatsKeywords = []string{
		"statistics", "stats", "how many products",
		"إحصائيات", "احصائيات", "كم عدد المنتجات",
	}
	productsKeywords = []string{
		"منتج", "منتجات", "المنتجات",
		"product", "products",
		"عرض المنتجات", "show products",
		"المتاحة", "available",
	}
	orderingKeywords = []string{
		"كيف أطلب", "تقديم طلب", "كيفية الطلب", "خطوات الطلب",
		"how to order", "placing order", "order process",
		"كيف أشتري", "الشراء", "شراء منتج", "يمكنني شراء", "كيف يمكنني شراء",
		"سلة التسوق", "checkout", "purchase", "how can i purchase",
		"how to purchase", "how to buy", "buying process", "purchasing",
	}
	paymentKeywords = []string{
		"دفع", "مدفوعات", "طريقة الدفع", "طرق الدفع",
		"payment", "pay", "billing",
		"كاش", "cash", "بطاقة", "card", "تحويل", "transfer", "عند الاستلام",
	}
	shippingKeywords = []string{
		"شحن", "توصيل", "وقت التوصيل", "تكلفة الشحن",
		"shipping", "delivery", "shipping cost", "delivery time",
		"كم يوم", "متى يصل",
	}
	contactKeywords = []string{
		"تواصل", "واتساب", "whatsapp", "contact",
		"رقم", "number", "هاتف", "phone", "اتصال", "call",
		"التواصل", "المباشر", "direct", "communicate", "reach", "get in touch",
	}
)

var productNumberRe = regexp.MustCompile(`(?i)(?:product|منتج|product number|رقم المنتج|منتج رقم)\s*(\d+)`)

func containsAny(lowered string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lowered, p) {
			return true
		}
	}
	return false
}

// parseProductNumber extracts the 1-based index of a "product N" request, or
// 0 when the message has no such pattern.
func parseProductNumber(message string) int {
	m := productNumberRe.FindStringSubmatch(message)
	if m == nil {
		return 0
	}
	n := 0
	for _, c := range m[1] {
		n = n*10 + int(c-'0')
		if n > 1<<20 {
			return 0
		}
	}
	return n
}

// matchCategory returns the first category whose localized name appears as a
// substring of the lowered message. Insertion order breaks ties.
func matchCategory(lowered string, lang i18n.Lang, categories []domain.Category) (string, bool) {
	for _, c := range categories {
		name := strings.ToLower(c.Name.Get(lang))
		if name != "" && strings.Contains(lowered, name) {
			return c.ID, true
		}
	}
	return "", false
}

// Classify resolves the message to an intent. Predicates run in a fixed
// priority order and the first hit wins; everything unmatched is IntentNone
// and falls to the FAQ/AI path in the dispatcher.
func Classify(message string, lang i18n.Lang, snap Snapshot) Classification {
	lowered := strings.ToLower(message)

	if containsAny(lowered, resetKeywords) {
		return Classification{Intent: IntentReset}
	}
	if containsAny(lowered, newProductsKeywords) {
		return Classification{Intent: IntentNewProducts}
	}
	if containsAny(lowered, storeInfoKeywords) {
		return Classification{Intent: IntentStoreInfo}
	}
	if containsAny(lowered, storeStatsKeywords) {
		return Classification{Intent: IntentStoreStats}
	}
	if id, ok := matchCategory(lowered, lang, snap.Categories); ok {
		return Classification{Intent: IntentCategory, CategoryID: id}
	}
	// An out-of-range index is not an error: the request falls through to the
	// remaining classifiers as if the pattern never matched.
	if n := parseProductNumber(message); n >= 1 && n <= len(snap.Products) {
		return Classification{Intent: IntentProductNumber, ProductIndex: n}
	}
	if containsAny(lowered, productsKeywords) {
		return Classification{Intent: IntentProducts}
	}
	if containsAny(lowered, orderingKeywords) {
		return Classification{Intent: IntentOrdering}
	}
	if containsAny(lowered, paymentKeywords) {
		return Classification{Intent: IntentPayments}
	}
	if containsAny(lowered, shippingKeywords) {
		return Classification{Intent: IntentShipping}
	}
	if containsAny(lowered, contactKeywords) {
		return Classification{Intent: IntentContact}
	}
	return Classification{Intent: IntentNone}
}
