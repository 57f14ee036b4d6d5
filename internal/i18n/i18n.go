package i18n

import "fmt"

// Language represents a supported locale.
type Language string

const (
	LangEN Language = "en"
	LangNL Language = "nl"
	LangFR Language = "fr"
)

var current Language = LangEN

var tables = map[Language]map[string]string{
	LangEN: en,
	LangNL: nl,
	LangFR: fr,
}

// Languages returns the supported locales in display order.
func Languages() []Language {
	return []Language{LangEN, LangNL, LangFR}
}

// SetLanguage changes the active locale.
// Unrecognized values fall back to English.
func SetLanguage(lang string) {
	switch Language(lang) {
	case LangEN, LangNL, LangFR:
		current = Language(lang)
	default:
		current = LangEN
	}
}

// Current returns the active language.
func Current() Language {
	return current
}

// T returns the translated string for the given key. Keys missing from
// the active locale fall back to English; if English lacks the key too,
// the key itself is returned.
func T(key string) string {
	if v, ok := tables[current][key]; ok {
		return v
	}
	if v, ok := en[key]; ok {
		return v
	}
	return key
}

// Tf returns a formatted translated string.
func Tf(key string, args ...any) string {
	return fmt.Sprintf(T(key), args...)
}

// CategoryName translates a portal category identifier. Unknown
// categories pass through untouched.
func CategoryName(name string) string {
	switch name {
	case "peak", "offpeak", "wifree":
		return T("category_" + name)
	default:
		return name
	}
}
