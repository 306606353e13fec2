package datefmt

import (
	"testing"

	"golang.org/x/text/language"
)

func TestSlavicCategory(t *testing.T) {
	tests := []struct {
		count int
		want  PluralCategory
	}{
		{0, PluralMany},
		{1, PluralOne},
		{2, PluralFew},
		{4, PluralFew},
		{5, PluralMany},
		{10, PluralMany},
		{11, PluralMany},
		{12, PluralMany},
		{13, PluralMany},
		{14, PluralMany},
		{20, PluralMany},
		{21, PluralOne},
		{22, PluralFew},
		{25, PluralMany},
		{101, PluralOne},
		{111, PluralMany},
		{112, PluralMany},
		{1001, PluralOne},
		{1011, PluralMany},
		{-1, PluralOne},
		{-22, PluralFew},
	}

	for _, tc := range tests {
		if got := SlavicCategory(tc.count); got != tc.want {
			t.Fatalf("SlavicCategory(%d) = %q, want %q", tc.count, got, tc.want)
		}
	}
}

func TestAgree(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{1, "год"},
		{2, "года"},
		{3, "года"},
		{5, "лет"},
		{11, "лет"},
		{14, "лет"},
		{21, "год"},
		{24, "года"},
		{100, "лет"},
		{101, "год"},
	}

	for _, tc := range tests {
		if got := Agree(tc.count, "год", "года", "лет"); got != tc.want {
			t.Fatalf("Agree(%d) = %q, want %q", tc.count, got, tc.want)
		}
	}
}

func TestSlavicCategoryMatchesCLDR(t *testing.T) {
	for n := 0; n <= 1000; n++ {
		if got, want := SlavicCategory(n), cardinalCategory(language.Russian, n); got != want {
			t.Fatalf("SlavicCategory(%d) = %q, CLDR says %q", n, got, want)
		}
	}
}

func TestWordFormsSelect(t *testing.T) {
	years := WordForms{One: "year", Few: "years", Many: "years"}
	tests := []struct {
		count int
		want  string
	}{
		{0, "years"},
		{1, "year"},
		{2, "years"},
		{21, "years"},
	}

	for _, tc := range tests {
		if got := years.Select(language.English, tc.count); got != tc.want {
			t.Fatalf("Select(en, %d) = %q, want %q", tc.count, got, tc.want)
		}
	}

	minutes := WordForms{One: "минута", Few: "минуты", Many: "минут"}
	if got := minutes.Select(language.Russian, 21); got != "минута" {
		t.Fatalf("Select(ru, 21) = %q", got)
	}
	if got := minutes.Select(language.MustParse("ru-RU"), 3); got != "минуты" {
		t.Fatalf("Select(ru-RU, 3) = %q", got)
	}
}
