package datefmt

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if cfg.DefaultLocale != LocaleEN {
		t.Fatalf("DefaultLocale = %q, want %q", cfg.DefaultLocale, LocaleEN)
	}

	if cfg.Location != time.Local {
		t.Fatalf("Location = %v, want Local", cfg.Location)
	}

	if cfg.Cache == nil {
		t.Fatal("expected default cache")
	}

	if cfg.PhraseLocale != language.Russian {
		t.Fatalf("PhraseLocale = %v, want %v", cfg.PhraseLocale, language.Russian)
	}

	if cfg.Phrasebook == nil || cfg.Phrasebook.JustNow != "Только что" {
		t.Fatalf("unexpected default phrasebook: %+v", cfg.Phrasebook)
	}
}

func TestNewConfigOptions(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*3600)
	cfg, err := NewConfig(
		WithDefaultLocale("ru-RU"),
		WithLocation(moscow),
		WithPhraseLocale("en_GB"),
		nil,
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if cfg.DefaultLocale != LocaleRU {
		t.Fatalf("DefaultLocale = %q, want %q", cfg.DefaultLocale, LocaleRU)
	}

	if cfg.Location != moscow {
		t.Fatalf("Location = %v, want MSK", cfg.Location)
	}

	if cfg.Phrasebook.JustNow != "Just now" {
		t.Fatalf("JustNow = %q, want English phrasebook", cfg.Phrasebook.JustNow)
	}
}

func TestNewConfigExplicitPhrasebookWinsOverFiles(t *testing.T) {
	book := DefaultPhrasebook(LocaleRU)
	book.JustNow = "Сейчас"

	cfg, err := NewConfig(
		WithPhrasebook(book),
		WithPhrasebookFiles("does-not-exist.yaml"),
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if cfg.Phrasebook.JustNow != "Сейчас" {
		t.Fatalf("JustNow = %q, want custom phrasebook", cfg.Phrasebook.JustNow)
	}
}

func TestNewConfigErrors(t *testing.T) {
	for _, locale := range []string{"de", "be", "uk", "", "not a locale"} {
		if _, err := NewConfig(WithPhraseLocale(locale)); !errors.Is(err, ErrUnsupportedLocale) {
			t.Fatalf("WithPhraseLocale(%q) error = %v, want ErrUnsupportedLocale", locale, err)
		}
	}

	if _, err := NewConfig(WithPhrasebookFiles("does-not-exist.yaml")); err == nil {
		t.Fatal("expected error for missing phrasebook file")
	}
}

func TestWithCacheSharesFormatters(t *testing.T) {
	cache := NewFormatterCache(zerolog.Nop())

	first, err := New(WithCache(cache), WithLocation(time.UTC))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	second, err := New(WithCache(cache), WithLocation(time.UTC))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	a := first.Formatter(FormatterConfig{Format: ShortDate})
	b := second.Formatter(FormatterConfig{Format: ShortDate})
	if a != b {
		t.Fatal("expected formatters to be shared through the cache")
	}

	if cache.Len() != 1 {
		t.Fatalf("cache.Len() = %d, want 1", cache.Len())
	}
}

func TestDefaultPhrasebookIsCopy(t *testing.T) {
	book := DefaultPhrasebook(LocaleRU)
	book.JustNow = "changed"

	if DefaultPhrasebook(LocaleRU).JustNow != "Только что" {
		t.Fatal("DefaultPhrasebook leaked a shared value")
	}

	if got := DefaultPhrasebook(LocaleTag("xx")).Locale; got != "ru" {
		t.Fatalf("unknown locale fallback = %q, want ru", got)
	}
}
