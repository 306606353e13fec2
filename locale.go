package datefmt

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// LocaleTag identifies one of the supported formatting locales. The zero
// value means "not configured".
type LocaleTag string

const (
	LocaleRU LocaleTag = "ru"
	LocaleEN LocaleTag = "en"
)

// DefaultLocale is used when neither the format nor the config names a locale.
const DefaultLocale = LocaleEN

var supportedLocales = []LocaleTag{LocaleEN, LocaleRU}

var localeIdentifiers = map[LocaleTag]string{
	LocaleRU: "ru_RU",
	LocaleEN: "en_US",
}

var localeTags = map[LocaleTag]language.Tag{
	LocaleRU: language.Russian,
	LocaleEN: language.AmericanEnglish,
}

// Locales returns the supported locale tags.
func Locales() []LocaleTag {
	out := make([]LocaleTag, len(supportedLocales))
	copy(out, supportedLocales)
	return out
}

// IsZero reports whether the tag is unset.
func (l LocaleTag) IsZero() bool {
	return l == ""
}

// Identifier returns the platform locale identifier, e.g. "ru_RU".
func (l LocaleTag) Identifier() string {
	return localeIdentifiers[l]
}

// Tag returns the x/text language tag for the locale.
func (l LocaleTag) Tag() language.Tag {
	if tag, ok := localeTags[l]; ok {
		return tag
	}
	return language.Und
}

func (l LocaleTag) String() string {
	return string(l)
}

// ParseLocaleTag maps locale identifiers such as "ru", "ru_RU" or "en-GB"
// onto a supported LocaleTag. Only the base language is compared, so
// related languages such as "be" or "uk" are rejected rather than folded
// into Russian.
func ParseLocaleTag(value string) (LocaleTag, error) {
	normalized := normalizeLocale(value)
	if normalized == "" {
		return "", fmt.Errorf("%w: empty locale", ErrUnsupportedLocale)
	}

	tag, err := language.Parse(normalized)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrUnsupportedLocale, value, err)
	}

	base, confidence := tag.Base()
	if confidence != language.Exact {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, value)
	}

	for _, locale := range supportedLocales {
		if supported, _ := locale.Tag().Base(); supported == base {
			return locale, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, value)
}

// normalizeLocale replaces underscores with hyphens and trims whitespace.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}
