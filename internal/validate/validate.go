package validate

import (
	"regexp"
	"strings"

	"jeancro/internal/i18n"
)

var (
	reID       = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reWhatsApp = regexp.MustCompile(`^\+?[0-9 ()-]{6,20}$`)
)

// ID validates a simple resource identifier (product/category/faq/ad ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Message trims and bounds a chat message. The cap is generous; the point
// is rejecting accidental megabyte pastes, not policing content.
func Message(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if len([]rune(s)) > 1000 {
		return "", false
	}
	return s, true
}

// Query bounds a catalog search term. Arabic terms must pass, so this
// trims and caps length instead of whitelisting characters.
func Query(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, len([]rune(s)) <= 100
}

// Localized checks that a bilingual text carries at least the English value,
// the fallback every read path depends on.
func Localized(t i18n.Text) bool {
	return strings.TrimSpace(t[i18n.EN]) != ""
}

func Price(v float64) bool {
	return v >= 0 && v < 1_000_000
}

// WhatsApp accepts an international-looking number; it is reduced to digits
// at link-building time, so formatting characters are allowed here.
func WhatsApp(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	return s, reWhatsApp.MatchString(s)
}

// Placement restricts ads to the two slots the storefront renders.
func Placement(s string) bool {
	return s == "homepage-banner" || s == "sidebar"
}

// Quantity clamps a cart line quantity into a sane range.
func Quantity(n int) int {
	if n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	}
	return n
}
