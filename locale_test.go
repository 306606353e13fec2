package datefmt

import (
	"errors"
	"testing"

	"golang.org/x/text/language"
)

func TestParseLocaleTag(t *testing.T) {
	tests := []struct {
		input string
		want  LocaleTag
	}{
		{"ru", LocaleRU},
		{"ru_RU", LocaleRU},
		{"ru-RU", LocaleRU},
		{"en", LocaleEN},
		{"en_US", LocaleEN},
		{"en-GB", LocaleEN},
		{" EN ", LocaleEN},
	}

	for _, tc := range tests {
		got, err := ParseLocaleTag(tc.input)
		if err != nil {
			t.Fatalf("ParseLocaleTag(%q): %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("ParseLocaleTag(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}

	rejected := []string{"", "fr", "ja-JP", "not a locale", "und", "be", "be-BY", "kk", "uk", "uk_UA", "sr-Cyrl"}
	for _, input := range rejected {
		if _, err := ParseLocaleTag(input); !errors.Is(err, ErrUnsupportedLocale) {
			t.Fatalf("ParseLocaleTag(%q) error = %v, want ErrUnsupportedLocale", input, err)
		}
	}
}

func TestLocaleTagIdentifiers(t *testing.T) {
	if got := LocaleRU.Identifier(); got != "ru_RU" {
		t.Fatalf("LocaleRU.Identifier() = %q", got)
	}
	if got := LocaleEN.Identifier(); got != "en_US" {
		t.Fatalf("LocaleEN.Identifier() = %q", got)
	}
	if got := LocaleRU.Tag(); got != language.Russian {
		t.Fatalf("LocaleRU.Tag() = %v", got)
	}
	if got := LocaleTag("").Tag(); got != language.Und {
		t.Fatalf("empty tag = %v", got)
	}
	if got := len(Locales()); got != 2 {
		t.Fatalf("Locales() = %d entries", got)
	}
}
