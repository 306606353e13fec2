package datefmt

import (
	"fmt"
	"strings"
)

type formatKind int

const (
	formatNone formatKind = iota
	formatCutZeroShortDate
	formatShortDate
	formatFullDate
	formatCutWordsFullDate
	formatCutWordsDate
	formatTime
	formatAPIFullDate
	formatAPIDate
	formatDate
	formatDayOfTheWeek
	formatCutWordsDateWithTime
)

// DateFormat is one entry of the date format catalog. The zero value means
// "no format"; use the exported variables or CutWordsDateWithTime.
type DateFormat struct {
	kind   formatKind
	locale LocaleTag
}

var (
	// CutZeroShortDate renders "1.2.2024".
	CutZeroShortDate = DateFormat{kind: formatCutZeroShortDate}
	// ShortDate renders "01.02.2024".
	ShortDate = DateFormat{kind: formatShortDate}
	// FullDate renders "01 February 2024".
	FullDate = DateFormat{kind: formatFullDate}
	// CutWordsFullDate renders "1 Feb 2024".
	CutWordsFullDate = DateFormat{kind: formatCutWordsFullDate}
	// CutWordsDate renders "11 Nov".
	CutWordsDate = DateFormat{kind: formatCutWordsDate}
	// Time renders "21:24".
	Time = DateFormat{kind: formatTime}
	// APIFullDateFormat renders "2024-02-01T21:24:56.142+0500".
	APIFullDateFormat = DateFormat{kind: formatAPIFullDate}
	// APIDateFormat renders "2024-02-01".
	APIDateFormat = DateFormat{kind: formatAPIDate}
	// Date renders "11 November".
	Date = DateFormat{kind: formatDate}
	// DayOfTheWeek renders "Monday".
	DayOfTheWeek = DateFormat{kind: formatDayOfTheWeek}
)

// CutWordsDateWithTime renders "6 Feb at 10:07" or "6 февр. в 10:07". The
// embedded locale takes precedence over any locale set on a FormatterConfig.
func CutWordsDateWithTime(locale LocaleTag) DateFormat {
	if locale != LocaleRU {
		locale = LocaleEN
	}
	return DateFormat{kind: formatCutWordsDateWithTime, locale: locale}
}

type formatEntry struct {
	name    string
	pattern string
}

var formatCatalog = map[formatKind]formatEntry{
	formatCutZeroShortDate:     {name: "cutZeroShortDate", pattern: "d.M.yyyy"},
	formatShortDate:            {name: "shortDate", pattern: "dd.MM.yyyy"},
	formatFullDate:             {name: "fullDate", pattern: "dd MMMM yyyy"},
	formatCutWordsFullDate:     {name: "cutWordsFullDate", pattern: "d MMM yyy"},
	formatCutWordsDate:         {name: "cutWordsDate", pattern: "dd MMM"},
	formatTime:                 {name: "time", pattern: "HH:mm"},
	formatAPIFullDate:          {name: "apiFullDateFormat", pattern: "yyyy-MM-dd'T'HH:mm:ss.SSSZ"},
	formatAPIDate:              {name: "apiDateFormat", pattern: "yyyy-MM-dd"},
	formatDate:                 {name: "date", pattern: "dd MMMM"},
	formatDayOfTheWeek:         {name: "dayOfTheWeek", pattern: "eeee"},
	formatCutWordsDateWithTime: {name: "cutWordsDateWithTime"},
}

var cutWordsDateWithTimePatterns = map[LocaleTag]string{
	LocaleEN: "d MMM 'at' HH:mm",
	LocaleRU: "d MMM в HH:mm",
}

// Pattern resolves the format to its LDML pattern string.
func (f DateFormat) Pattern() string {
	if f.kind == formatCutWordsDateWithTime {
		return cutWordsDateWithTimePatterns[f.locale]
	}
	return formatCatalog[f.kind].pattern
}

// Name returns the catalog name, with ":<locale>" for locale bound formats.
func (f DateFormat) Name() string {
	entry, ok := formatCatalog[f.kind]
	if !ok {
		return ""
	}
	if f.kind == formatCutWordsDateWithTime {
		return entry.name + ":" + string(f.locale)
	}
	return entry.name
}

// EmbeddedLocale reports the locale carried by the format, if any.
func (f DateFormat) EmbeddedLocale() (LocaleTag, bool) {
	if f.kind == formatCutWordsDateWithTime {
		return f.locale, true
	}
	return "", false
}

// IsZero reports whether no format was selected.
func (f DateFormat) IsZero() bool {
	return f.kind == formatNone
}

func (f DateFormat) String() string {
	return f.Name()
}

// Formats lists the catalog, including both locale variants of
// CutWordsDateWithTime.
func Formats() []DateFormat {
	return []DateFormat{
		CutZeroShortDate,
		ShortDate,
		FullDate,
		CutWordsFullDate,
		CutWordsDate,
		Time,
		APIFullDateFormat,
		APIDateFormat,
		Date,
		DayOfTheWeek,
		CutWordsDateWithTime(LocaleEN),
		CutWordsDateWithTime(LocaleRU),
	}
}

// ParseDateFormat resolves a catalog name such as "shortDate" or
// "cutWordsDateWithTime:ru". Names are matched case-insensitively.
func ParseDateFormat(name string) (DateFormat, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return DateFormat{}, fmt.Errorf("%w: empty name", ErrUnknownFormat)
	}

	base, localePart, hasLocale := strings.Cut(trimmed, ":")
	if strings.EqualFold(base, formatCatalog[formatCutWordsDateWithTime].name) {
		locale := LocaleEN
		if hasLocale {
			parsed, err := ParseLocaleTag(localePart)
			if err != nil {
				return DateFormat{}, fmt.Errorf("%w: %q: %w", ErrUnknownFormat, name, err)
			}
			locale = parsed
		}
		return CutWordsDateWithTime(locale), nil
	}

	if hasLocale {
		return DateFormat{}, fmt.Errorf("%w: %q does not take a locale", ErrUnknownFormat, name)
	}

	for _, format := range Formats() {
		if strings.EqualFold(format.Name(), base) {
			return format, nil
		}
	}
	return DateFormat{}, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}
