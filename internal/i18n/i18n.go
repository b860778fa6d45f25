// Package i18n holds the two storefront languages and localized text values.
package i18n

import "strings"

type Lang string

const (
	EN Lang = "EN"
	AR Lang = "AR"
)

var Supported = []Lang{EN, AR}

// Parse maps a request-supplied language tag to a supported language.
// Unknown or empty tags resolve to English.
func Parse(s string) Lang {
	if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(s)), "AR") {
		return AR
	}
	return EN
}

// Text is a per-language string value, e.g. {"EN": "Men", "AR": "رجال"}.
type Text map[Lang]string

// Get returns the value for lang, falling back to English when the
// language-specific entry is blank. A missing localization is never an error.
func (t Text) Get(lang Lang) string {
	if v := t[lang]; v != "" {
		return v
	}
	return t[EN]
}

// Pick chooses between an English and an Arabic literal.
func Pick(lang Lang, en, ar string) string {
	if lang == AR {
		return ar
	}
	return en
}
