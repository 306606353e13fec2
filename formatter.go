package datefmt

import (
	"hash/fnv"
	"strconv"
	"time"
)

// FormatterConfig selects a formatter. Every field is optional: a zero
// Format means an empty pattern, a zero Locale and a nil TimeZone fall back
// to the owning DateFormatter's defaults.
//
// When Format carries an embedded locale (CutWordsDateWithTime) that locale
// wins over Locale.
type FormatterConfig struct {
	Format   DateFormat
	Locale   LocaleTag
	TimeZone *time.Location
}

// formatterKey is the resolved, comparable identity of a FormatterConfig.
// Equality and hashing are both derived from it.
type formatterKey struct {
	pattern string
	locale  LocaleTag
	zone    string
}

// EffectiveLocale applies the embedded-locale precedence rule.
func (c FormatterConfig) EffectiveLocale() LocaleTag {
	if embedded, ok := c.Format.EmbeddedLocale(); ok {
		return embedded
	}
	return c.Locale
}

// Equal compares the resolved pattern, locale and timezone.
func (c FormatterConfig) Equal(other FormatterConfig) bool {
	return c.key() == other.key()
}

// Hash returns a stable FNV-1a hash of the resolved fields. Configs that are
// Equal always hash identically.
func (c FormatterConfig) Hash() uint64 {
	key := c.key()
	h := fnv.New64a()
	h.Write([]byte(key.pattern))
	h.Write([]byte{0})
	h.Write([]byte(key.locale))
	h.Write([]byte{0})
	h.Write([]byte(key.zone))
	return h.Sum64()
}

func (c FormatterConfig) key() formatterKey {
	return formatterKey{
		pattern: c.Format.Pattern(),
		locale:  c.EffectiveLocale(),
		zone:    zoneID(c.TimeZone),
	}
}

// withDefaults fills the unset locale and timezone.
func (c FormatterConfig) withDefaults(locale LocaleTag, loc *time.Location) FormatterConfig {
	if c.Locale.IsZero() {
		c.Locale = locale
	}
	if c.TimeZone == nil {
		c.TimeZone = loc
	}
	return c
}

// zoneID identifies a location by name and by its offset at a reference
// instant, so unnamed fixed zones with different offsets stay distinct.
func zoneID(loc *time.Location) string {
	if loc == nil {
		return ""
	}
	_, offset := time.Date(2000, time.January, 1, 0, 0, 0, 0, loc).Zone()
	return loc.String() + "|" + strconv.Itoa(offset)
}

// Formatter converts between text and time.Time for one pattern, locale and
// timezone. It is immutable and safe for concurrent use.
type Formatter struct {
	pattern  string
	locale   LocaleTag
	location *time.Location
	tokens   []patternToken
	names    *calendarNames
}

func newFormatter(cfg FormatterConfig) *Formatter {
	locale := cfg.EffectiveLocale()
	if locale.IsZero() {
		locale = DefaultLocale
	}
	loc := cfg.TimeZone
	if loc == nil {
		loc = time.Local
	}

	pattern := cfg.Format.Pattern()
	return &Formatter{
		pattern:  pattern,
		locale:   locale,
		location: loc,
		tokens:   compilePattern(pattern),
		names:    namesFor(locale),
	}
}

// Format renders t in the formatter's timezone.
func (f *Formatter) Format(t time.Time) string {
	if f == nil {
		return ""
	}
	return formatTokens(f.tokens, t.In(f.location), f.names)
}

// Parse reads text that matches the pattern completely. It reports false
// instead of returning an error when the text does not match.
func (f *Formatter) Parse(text string) (time.Time, bool) {
	if f == nil {
		return time.Time{}, false
	}
	return parseTokens(f.tokens, text, f.names, f.location)
}

// Pattern returns the LDML pattern.
func (f *Formatter) Pattern() string {
	if f == nil {
		return ""
	}
	return f.pattern
}

// Locale returns the resolved locale.
func (f *Formatter) Locale() LocaleTag {
	if f == nil {
		return ""
	}
	return f.locale
}

// Location returns the resolved timezone.
func (f *Formatter) Location() *time.Location {
	if f == nil {
		return nil
	}
	return f.location
}
