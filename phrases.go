package datefmt

import (
	"fmt"
	"sort"
	"strconv"

	"golang.org/x/text/language"
)

// Phrasebook holds the words used to render elapsed time in one locale.
type Phrasebook struct {
	Locale  string    `json:"locale" yaml:"locale"`
	Years   WordForms `json:"years" yaml:"years"`
	Months  WordForms `json:"months" yaml:"months"`
	Days    WordForms `json:"days" yaml:"days"`
	Hours   WordForms `json:"hours" yaml:"hours"`
	Minutes WordForms `json:"minutes" yaml:"minutes"`
	JustNow string    `json:"just_now" yaml:"just_now"`
}

var defaultPhrasebooks = map[LocaleTag]Phrasebook{
	LocaleRU: {
		Locale:  "ru",
		Years:   WordForms{One: "год", Few: "года", Many: "лет"},
		Months:  WordForms{One: "месяц", Few: "месяца", Many: "месяцев"},
		Days:    WordForms{One: "день", Few: "дня", Many: "дней"},
		Hours:   WordForms{One: "час", Few: "часа", Many: "часов"},
		Minutes: WordForms{One: "минута", Few: "минуты", Many: "минут"},
		JustNow: "Только что",
	},
	LocaleEN: {
		Locale:  "en",
		Years:   WordForms{One: "year", Few: "years", Many: "years"},
		Months:  WordForms{One: "month", Few: "months", Many: "months"},
		Days:    WordForms{One: "day", Few: "days", Many: "days"},
		Hours:   WordForms{One: "hour", Few: "hours", Many: "hours"},
		Minutes: WordForms{One: "minute", Few: "minutes", Many: "minutes"},
		JustNow: "Just now",
	},
}

// DefaultPhrasebook returns the built-in phrasebook for locale. Unknown
// locales get the Russian phrasebook.
func DefaultPhrasebook(locale LocaleTag) *Phrasebook {
	book, ok := defaultPhrasebooks[locale]
	if !ok {
		book = defaultPhrasebooks[LocaleRU]
	}
	return &book
}

// builtinPhrasebook returns a copy of the built-in phrasebook whose base
// language matches tag.
func builtinPhrasebook(tag language.Tag) (*Phrasebook, bool) {
	base, _ := tag.Base()
	for locale, book := range defaultPhrasebooks {
		if supported, _ := locale.Tag().Base(); supported == base {
			book := book
			return &book, true
		}
	}
	return nil, false
}

// selectPhrasebook picks the book for want from books keyed by locale. A key
// equal to want wins; otherwise the first key in sorted order with the same
// base language is used.
func selectPhrasebook(books map[string]*Phrasebook, want language.Tag) (string, *Phrasebook, bool) {
	keys := make([]string, 0, len(books))
	for key := range books {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	wantBase, _ := want.Base()
	match := ""
	for _, key := range keys {
		tag, err := language.Parse(normalizeLocale(key))
		if err != nil {
			continue
		}
		if tag == want {
			return key, books[key], true
		}
		if base, _ := tag.Base(); match == "" && base == wantBase {
			match = key
		}
	}

	if match == "" {
		return "", nil, false
	}
	return match, books[match], true
}

// Validate checks that every unit has all three forms and a just-now phrase.
func (b *Phrasebook) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil", ErrInvalidPhrasebook)
	}

	units := []struct {
		name  string
		forms WordForms
	}{
		{"years", b.Years},
		{"months", b.Months},
		{"days", b.Days},
		{"hours", b.Hours},
		{"minutes", b.Minutes},
	}
	for _, unit := range units {
		if !unit.forms.complete() {
			return fmt.Errorf("%w: %s: missing word forms for %s", ErrInvalidPhrasebook, b.Locale, unit.name)
		}
	}
	if b.JustNow == "" {
		return fmt.Errorf("%w: %s: missing just_now", ErrInvalidPhrasebook, b.Locale)
	}
	if _, err := language.Parse(normalizeLocale(b.Locale)); err != nil {
		return fmt.Errorf("%w: locale %q: %v", ErrInvalidPhrasebook, b.Locale, err)
	}
	return nil
}

// Tag returns the language tag used for plural selection. Unparseable
// locales select with Russian rules.
func (b *Phrasebook) Tag() language.Tag {
	tag, err := language.Parse(normalizeLocale(b.Locale))
	if err != nil {
		return language.Russian
	}
	return tag
}

func (b *Phrasebook) forms(unit ElapsedUnit) WordForms {
	switch unit {
	case ElapsedYears:
		return b.Years
	case ElapsedMonths:
		return b.Months
	case ElapsedDays:
		return b.Days
	case ElapsedHours:
		return b.Hours
	default:
		return b.Minutes
	}
}

// render produces "<count> <form>", e.g. "2 года".
func (b *Phrasebook) render(unit ElapsedUnit, count int) string {
	return strconv.Itoa(count) + " " + b.forms(unit).Select(b.Tag(), count)
}
