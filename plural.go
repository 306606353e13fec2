package datefmt

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// PluralCategory names a CLDR plural category.
type PluralCategory string

const (
	PluralZero  PluralCategory = "zero"
	PluralOne   PluralCategory = "one"
	PluralTwo   PluralCategory = "two"
	PluralFew   PluralCategory = "few"
	PluralMany  PluralCategory = "many"
	PluralOther PluralCategory = "other"
)

// Agree returns the noun form that agrees with count under Russian numeral
// rules: 1, 21, 101 take the singular; 2-4, 22-24 the plural; everything
// else, including 11-14, the genitive plural.
func Agree(count int, singular, plural, pluralGenitive string) string {
	switch SlavicCategory(count) {
	case PluralOne:
		return singular
	case PluralFew:
		return plural
	default:
		return pluralGenitive
	}
}

// SlavicCategory maps an integer to one of PluralOne, PluralFew or PluralMany.
func SlavicCategory(count int) PluralCategory {
	abs := count
	if abs < 0 {
		abs = -abs
	}
	mod10 := abs % 10
	mod100 := abs % 100

	if mod10 == 1 && mod100 != 11 {
		return PluralOne
	}
	if mod10 >= 2 && mod10 <= 4 && (mod100 < 10 || mod100 >= 20) {
		return PluralFew
	}
	return PluralMany
}

// WordForms holds the three noun forms needed to agree with a count.
// Locales with a two-way split (one/other) set Few and Many to the same word.
type WordForms struct {
	One  string `json:"one" yaml:"one"`
	Few  string `json:"few" yaml:"few"`
	Many string `json:"many" yaml:"many"`
}

func (w WordForms) complete() bool {
	return w.One != "" && w.Few != "" && w.Many != ""
}

// Select picks the form for count. Russian uses Agree directly; other
// locales defer to the CLDR cardinal rules shipped with x/text.
func (w WordForms) Select(tag language.Tag, count int) string {
	if base, _ := tag.Base(); base.String() == "ru" {
		return Agree(count, w.One, w.Few, w.Many)
	}

	switch cardinalCategory(tag, count) {
	case PluralOne:
		return w.One
	case PluralFew, PluralTwo:
		return w.Few
	default:
		return w.Many
	}
}

func cardinalCategory(tag language.Tag, count int) PluralCategory {
	abs := count
	if abs < 0 {
		abs = -abs
	}

	switch plural.Cardinal.MatchPlural(tag, abs, 0, 0, 0, 0) {
	case plural.Zero:
		return PluralZero
	case plural.One:
		return PluralOne
	case plural.Two:
		return PluralTwo
	case plural.Few:
		return PluralFew
	case plural.Many:
		return PluralMany
	default:
		return PluralOther
	}
}
