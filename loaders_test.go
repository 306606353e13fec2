package datefmt

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestPhrasebookLoaderJSONAndYAML(t *testing.T) {
	loader := NewPhrasebookLoader(
		filepath.Join("testdata", "phrasebook_ru.yaml"),
		filepath.Join("testdata", "phrasebooks.json"),
	)

	books, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(books) != 3 {
		t.Fatalf("expected 3 locales, got %d", len(books))
	}

	if got := books["ru-RU"].Days.One; got != "сутки" {
		t.Fatalf("ru-RU days one = %q, want %q", got, "сутки")
	}

	if got := books["en"].JustNow; got != "now" {
		t.Fatalf("en just_now = %q, want %q", got, "now")
	}

	if got := books["uk"].Locale; got != "uk" {
		t.Fatalf("uk locale = %q, want key to fill it", got)
	}
}

func TestPhrasebookLoaderUkrainianPlurals(t *testing.T) {
	books, err := NewPhrasebookLoader(filepath.Join("testdata", "phrasebooks.json")).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		since time.Duration
		want  string
	}{
		{21 * time.Minute, "21 хвилина"},
		{3 * time.Minute, "3 хвилини"},
		{5 * time.Hour, "5 годин"},
	}

	for _, tc := range cases {
		if got := Classify(now.Add(-tc.since), now, books["uk"]).Text; got != tc.want {
			t.Fatalf("Classify(%s) = %q, want %q", tc.since, got, tc.want)
		}
	}
}

func TestPhrasebookLoaderUnsupportedExtension(t *testing.T) {
	loader := NewPhrasebookLoader(filepath.Join("testdata", "phrasebooks.json"), "phrasebook.txt")

	if _, err := loader.Load(); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestPhrasebookLoaderNoPaths(t *testing.T) {
	if _, err := NewPhrasebookLoader().Load(); err == nil {
		t.Fatal("expected error without paths")
	}
}

func TestPhrasebookLoaderIncompleteBook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	content := "locale: ru\nyears: {one: год, few: года}\njust_now: Только что\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := NewPhrasebookLoader(path).Load()
	if !errors.Is(err, ErrInvalidPhrasebook) {
		t.Fatalf("Load error = %v, want ErrInvalidPhrasebook", err)
	}
}

func TestPhrasebookFilesIntegration(t *testing.T) {
	formatter, err := New(
		WithPhrasebookFiles(
			filepath.Join("testdata", "phrasebook_ru.yaml"),
			filepath.Join("testdata", "phrasebooks.json"),
		),
		WithPhraseLocale("en"),
		WithClock(FixedClock(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))),
		WithLocation(time.UTC),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := formatter.TimeAgoString("2024-06-15T09:00:00.000+0000", APIFullDateFormat); got != "3 hrs" {
		t.Fatalf("TimeAgoString = %q, want %q", got, "3 hrs")
	}

	if got := formatter.TimeAgoString("2024-06-15T12:00:00.000+0000", APIFullDateFormat); got != "now" {
		t.Fatalf("TimeAgoString = %q, want %q", got, "now")
	}
}

func TestPhrasebookFilesMissingLocale(t *testing.T) {
	_, err := New(
		WithPhrasebookFiles(filepath.Join("testdata", "phrasebook_ru.yaml")),
		WithPhraseLocale("en"),
	)
	if !errors.Is(err, ErrInvalidPhrasebook) {
		t.Fatalf("New error = %v, want ErrInvalidPhrasebook", err)
	}
}

func TestPhrasebookFilesSelectFileOnlyLocale(t *testing.T) {
	formatter, err := New(
		WithPhrasebookFiles(filepath.Join("testdata", "phrasebooks.json")),
		WithPhraseLocale("uk_UA"),
		WithClock(FixedClock(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))),
		WithLocation(time.UTC),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := formatter.TimeAgoString("2024-06-15T11:39:00.000+0000", APIFullDateFormat); got != "21 хвилина" {
		t.Fatalf("TimeAgoString = %q, want %q", got, "21 хвилина")
	}

	if _, err := New(WithPhraseLocale("uk")); !errors.Is(err, ErrUnsupportedLocale) {
		t.Fatalf("New without files error = %v, want ErrUnsupportedLocale", err)
	}
}

const relatedPhrasebooks = `
%s:
  years: {one: год, few: года, many: лет}
  months: {one: месяц, few: месяца, many: месяцев}
  days: {one: день, few: дня, many: дней}
  hours: {one: час, few: часа, many: часов}
  minutes: {one: минута, few: минуты, many: минут}
  just_now: Только что
be:
  years: {one: год, few: гады, many: гадоў}
  months: {one: месяц, few: месяцы, many: месяцаў}
  days: {one: дзень, few: дні, many: дзён}
  hours: {one: гадзіна, few: гадзіны, many: гадзін}
  minutes: {one: хвіліна, few: хвіліны, many: хвілін}
  just_now: Толькі што
`

func TestPhrasebookFilesSelectionIsDeterministic(t *testing.T) {
	for _, key := range []string{"ru", "ru_RU"} {
		path := filepath.Join(t.TempDir(), "books.yaml")
		if err := os.WriteFile(path, []byte(fmt.Sprintf(relatedPhrasebooks, key)), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}

		for i := 0; i < 50; i++ {
			formatter, err := New(WithPhrasebookFiles(path), WithPhraseLocale("ru"))
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if got := formatter.Phrasebook().JustNow; got != "Только что" {
				t.Fatalf("key %s run %d: JustNow = %q, want Russian phrasebook", key, i, got)
			}
		}

		formatter, err := New(WithPhrasebookFiles(path), WithPhraseLocale("be"))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if got := formatter.Phrasebook().JustNow; got != "Толькі што" {
			t.Fatalf("be JustNow = %q", got)
		}
	}
}

func TestSelectPhrasebookPrefersExactKey(t *testing.T) {
	books := map[string]*Phrasebook{
		"en-GB": {Locale: "en-GB"},
		"en":    {Locale: "en"},
		"en-AU": {Locale: "en-AU"},
	}

	key, _, ok := selectPhrasebook(books, language.MustParse("en"))
	if !ok || key != "en" {
		t.Fatalf("exact: key = %q, ok = %v", key, ok)
	}

	delete(books, "en")
	key, _, ok = selectPhrasebook(books, language.MustParse("en-US"))
	if !ok || key != "en-AU" {
		t.Fatalf("base fallback: key = %q, ok = %v, want first sorted key", key, ok)
	}

	if _, _, ok := selectPhrasebook(books, language.Russian); ok {
		t.Fatal("expected no match for ru")
	}
}
