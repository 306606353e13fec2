package datefmt

import (
	"errors"
	"testing"
)

func TestFormatCatalogPatterns(t *testing.T) {
	tests := []struct {
		format DateFormat
		name   string
		want   string
	}{
		{CutZeroShortDate, "cutZeroShortDate", "d.M.yyyy"},
		{ShortDate, "shortDate", "dd.MM.yyyy"},
		{FullDate, "fullDate", "dd MMMM yyyy"},
		{CutWordsFullDate, "cutWordsFullDate", "d MMM yyy"},
		{CutWordsDate, "cutWordsDate", "dd MMM"},
		{Time, "time", "HH:mm"},
		{APIFullDateFormat, "apiFullDateFormat", "yyyy-MM-dd'T'HH:mm:ss.SSSZ"},
		{APIDateFormat, "apiDateFormat", "yyyy-MM-dd"},
		{Date, "date", "dd MMMM"},
		{DayOfTheWeek, "dayOfTheWeek", "eeee"},
		{CutWordsDateWithTime(LocaleEN), "cutWordsDateWithTime:en", "d MMM 'at' HH:mm"},
		{CutWordsDateWithTime(LocaleRU), "cutWordsDateWithTime:ru", "d MMM в HH:mm"},
	}

	for _, tc := range tests {
		if got := tc.format.Pattern(); got != tc.want {
			t.Fatalf("%s.Pattern() = %q, want %q", tc.name, got, tc.want)
		}
		if got := tc.format.Name(); got != tc.name {
			t.Fatalf("Name() = %q, want %q", got, tc.name)
		}
	}

	if got := len(Formats()); got != len(tests) {
		t.Fatalf("Formats() returned %d entries, want %d", got, len(tests))
	}
}

func TestDateFormatZeroValue(t *testing.T) {
	var format DateFormat
	if !format.IsZero() {
		t.Fatal("zero DateFormat should report IsZero")
	}
	if format.Pattern() != "" || format.Name() != "" {
		t.Fatalf("zero DateFormat resolved to %q/%q", format.Pattern(), format.Name())
	}
}

func TestEmbeddedLocale(t *testing.T) {
	if _, ok := ShortDate.EmbeddedLocale(); ok {
		t.Fatal("ShortDate should not embed a locale")
	}

	locale, ok := CutWordsDateWithTime(LocaleRU).EmbeddedLocale()
	if !ok || locale != LocaleRU {
		t.Fatalf("EmbeddedLocale() = %q,%v", locale, ok)
	}

	if locale, _ := CutWordsDateWithTime("").EmbeddedLocale(); locale != LocaleEN {
		t.Fatalf("unset embedded locale = %q, want en", locale)
	}
}

func TestParseDateFormat(t *testing.T) {
	tests := []struct {
		name string
		want DateFormat
	}{
		{"shortDate", ShortDate},
		{"ShortDate", ShortDate},
		{" apiFullDateFormat ", APIFullDateFormat},
		{"dayOfTheWeek", DayOfTheWeek},
		{"cutWordsDateWithTime", CutWordsDateWithTime(LocaleEN)},
		{"cutWordsDateWithTime:ru", CutWordsDateWithTime(LocaleRU)},
		{"cutwordsdatewithtime:ru_RU", CutWordsDateWithTime(LocaleRU)},
	}

	for _, tc := range tests {
		got, err := ParseDateFormat(tc.name)
		if err != nil {
			t.Fatalf("ParseDateFormat(%q): %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("ParseDateFormat(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}

	for _, name := range []string{"", "iso8601", "shortDate:ru", "cutWordsDateWithTime:fr"} {
		if _, err := ParseDateFormat(name); !errors.Is(err, ErrUnknownFormat) {
			t.Fatalf("ParseDateFormat(%q) error = %v, want ErrUnknownFormat", name, err)
		}
	}
}
