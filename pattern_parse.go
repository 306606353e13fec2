package datefmt

import (
	"time"
	"unicode"
	"unicode/utf8"
)

// parsedFields collects the values read from the input. Unset fields hold -1.
type parsedFields struct {
	era       int
	year      int
	shortYear bool
	month     int
	day       int
	dayOfYear int
	weekday   int
	pm        int
	hour      int
	hourKind  byte
	minute    int
	second    int
	nanos     int
	offset    int
	hasOffset bool
}

func newParsedFields() parsedFields {
	return parsedFields{
		era:       -1,
		year:      -1,
		month:     -1,
		day:       -1,
		dayOfYear: -1,
		weekday:   -1,
		pm:        -1,
		hour:      -1,
		minute:    -1,
		second:    -1,
		nanos:     -1,
	}
}

type patternParser struct {
	input  string
	pos    int
	names  *calendarNames
	fields parsedFields
}

// parseTokens matches the whole input against tokens and resolves the
// result in loc. Missing date fields default to 1970-01-01.
func parseTokens(tokens []patternToken, input string, names *calendarNames, loc *time.Location) (time.Time, bool) {
	if len(tokens) == 0 {
		return time.Time{}, false
	}

	p := &patternParser{input: input, names: names, fields: newParsedFields()}
	for i, tok := range tokens {
		var ok bool
		if tok.isLiteral() {
			ok = p.literal(tok.literal)
		} else {
			abutting := i+1 < len(tokens) && tokens[i+1].numeric()
			ok = p.field(tok, abutting)
		}
		if !ok {
			return time.Time{}, false
		}
	}

	if p.pos != len(p.input) {
		return time.Time{}, false
	}
	return p.fields.resolve(loc)
}

func (p *patternParser) rest() string {
	return p.input[p.pos:]
}

// literal matches pattern text. Any whitespace in the pattern matches one or
// more whitespace characters in the input.
func (p *patternParser) literal(text string) bool {
	for i := 0; i < len(text); {
		want, size := utf8.DecodeRuneInString(text[i:])
		i += size

		if unicode.IsSpace(want) {
			for i < len(text) {
				next, n := utf8.DecodeRuneInString(text[i:])
				if !unicode.IsSpace(next) {
					break
				}
				i += n
			}
			if !p.skipSpace() {
				return false
			}
			continue
		}

		got, n := utf8.DecodeRuneInString(p.rest())
		if n == 0 || !equalFoldRune(got, want) {
			return false
		}
		p.pos += n
	}
	return true
}

func (p *patternParser) skipSpace() bool {
	start := p.pos
	for p.pos < len(p.input) {
		r, n := utf8.DecodeRuneInString(p.rest())
		if !unicode.IsSpace(r) {
			break
		}
		p.pos += n
	}
	return p.pos > start
}

func (p *patternParser) field(tok patternToken, abutting bool) bool {
	f := &p.fields
	names := p.names

	switch tok.field {
	case 'G':
		index, ok := p.name(names.Eras)
		f.era = index
		return ok
	case 'y', 'u':
		maxDigits := 9
		if tok.width == 2 && tok.field == 'y' {
			maxDigits = 2
		}
		value, digits, ok := p.number(tok.width, maxDigits, abutting)
		if !ok {
			return false
		}
		f.year = value
		f.shortYear = tok.field == 'y' && tok.width == 2 && digits <= 2
		return true
	case 'M', 'L':
		if tok.width <= 2 {
			value, _, ok := p.number(tok.width, 2, abutting)
			f.month = value
			return ok
		}
		index, ok := p.name(
			names.MonthsWide, names.StandaloneMonthsWide,
			names.MonthsAbbreviated, names.StandaloneMonthsAbbreviated,
		)
		if !ok {
			return false
		}
		f.month = index%12 + 1
		return true
	case 'd':
		value, _, ok := p.number(tok.width, 2, abutting)
		f.day = value
		return ok
	case 'D':
		value, _, ok := p.number(tok.width, 3, abutting)
		f.dayOfYear = value
		return ok
	case 'E', 'e', 'c':
		if tok.field != 'E' && tok.width <= 2 {
			value, _, ok := p.number(tok.width, 1, abutting)
			if !ok || value < 1 || value > 7 {
				return false
			}
			f.weekday = (value - 1 + names.FirstWeekday) % 7
			return true
		}
		index, ok := p.name(
			names.WeekdaysWide, names.WeekdaysAbbreviated, names.WeekdaysShort,
		)
		if !ok {
			return false
		}
		f.weekday = index % 7
		return true
	case 'a':
		index, ok := p.name([]string{names.AM, names.PM})
		f.pm = index
		return ok
	case 'h', 'H', 'k', 'K':
		value, _, ok := p.number(tok.width, 2, abutting)
		f.hour = value
		f.hourKind = tok.field
		return ok
	case 'm':
		value, _, ok := p.number(tok.width, 2, abutting)
		f.minute = value
		return ok
	case 's':
		value, _, ok := p.number(tok.width, 2, abutting)
		f.second = value
		return ok
	case 'S':
		maxDigits := 9
		if abutting {
			maxDigits = tok.width
		}
		start := p.pos
		for p.pos < len(p.input) && p.pos-start < maxDigits && isDigit(p.input[p.pos]) {
			p.pos++
		}
		digits := p.input[start:p.pos]
		if digits == "" {
			return false
		}
		nanos := 0
		for i := 0; i < 9; i++ {
			nanos *= 10
			if i < len(digits) {
				nanos += int(digits[i] - '0')
			}
		}
		f.nanos = nanos
		return true
	case 'Z', 'X', 'x':
		offset, ok := p.zoneOffset()
		f.offset = offset
		f.hasOffset = ok
		return ok
	}
	return false
}

// number reads an unsigned integer. Abutting numeric fields consume exactly
// width digits so that patterns like "yyyyMMdd" can be split.
func (p *patternParser) number(width, maxDigits int, abutting bool) (int, int, bool) {
	limit := maxDigits
	if abutting && width > 0 {
		limit = width
	}

	start := p.pos
	value := 0
	for p.pos < len(p.input) && p.pos-start < limit && isDigit(p.input[p.pos]) {
		value = value*10 + int(p.input[p.pos]-'0')
		p.pos++
	}

	digits := p.pos - start
	if digits == 0 || (abutting && digits != limit) {
		return 0, digits, false
	}
	return value, digits, true
}

// name matches the longest candidate at the current position, ignoring case.
// The returned index is the position within the concatenated lists.
func (p *patternParser) name(lists ...[]string) (int, bool) {
	rest := p.rest()
	best, bestLen := -1, 0
	offset := 0
	for _, list := range lists {
		for i, candidate := range list {
			if candidate == "" {
				continue
			}
			if n := prefixFold(rest, candidate); n > bestLen {
				best, bestLen = offset+i, n
			}
		}
		offset += len(list)
	}
	if best < 0 {
		return -1, false
	}
	p.pos += bestLen
	return best, true
}

// zoneOffset reads "Z", "+HH", "+HHMM", "+HH:MM", optionally prefixed with
// "GMT" or "UTC", and returns the offset in seconds.
func (p *patternParser) zoneOffset() (int, bool) {
	rest := p.rest()
	if rest == "" {
		return 0, false
	}
	if rest[0] == 'Z' || rest[0] == 'z' {
		p.pos++
		return 0, true
	}

	for _, prefix := range []string{"GMT", "UTC"} {
		if n := prefixFold(rest, prefix); n > 0 {
			p.pos += n
			rest = p.rest()
			if rest == "" || (rest[0] != '+' && rest[0] != '-') {
				return 0, true
			}
			break
		}
	}

	if rest == "" || (rest[0] != '+' && rest[0] != '-') {
		return 0, false
	}
	sign := 1
	if rest[0] == '-' {
		sign = -1
	}
	p.pos++

	hours, _, ok := p.number(2, 2, true)
	if !ok || hours > 23 {
		return 0, false
	}

	minutes := 0
	if p.pos < len(p.input) && p.input[p.pos] == ':' {
		p.pos++
		if minutes, _, ok = p.number(2, 2, true); !ok {
			return 0, false
		}
	} else if p.pos+1 < len(p.input) && isDigit(p.input[p.pos]) && isDigit(p.input[p.pos+1]) {
		minutes, _, _ = p.number(2, 2, true)
	}
	if minutes > 59 {
		return 0, false
	}

	return sign * (hours*3600 + minutes*60), true
}

func (f parsedFields) resolve(loc *time.Location) (time.Time, bool) {
	year := 1970
	if f.year >= 0 {
		year = f.year
		if f.shortYear {
			if year >= 69 {
				year += 1900
			} else {
				year += 2000
			}
		}
		if f.era == 0 {
			year = 1 - year
		}
	}

	month, day := 1, 1
	if f.month >= 0 {
		month = f.month
	}
	if f.day >= 0 {
		day = f.day
	}
	if month < 1 || month > 12 {
		return time.Time{}, false
	}
	if day < 1 || day > daysIn(time.Month(month), year) {
		return time.Time{}, false
	}

	hour, ok := f.resolveHour()
	if !ok {
		return time.Time{}, false
	}

	minute, second, nanos := 0, 0, 0
	if f.minute >= 0 {
		minute = f.minute
	}
	if f.second >= 0 {
		second = f.second
	}
	if f.nanos >= 0 {
		nanos = f.nanos
	}
	if minute > 59 || second > 59 {
		return time.Time{}, false
	}

	if loc == nil {
		loc = time.Local
	}
	if f.hasOffset {
		loc = time.FixedZone("", f.offset)
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, nanos, loc)

	if f.dayOfYear >= 0 && f.month < 0 && f.day < 0 {
		if f.dayOfYear < 1 || f.dayOfYear > daysInYear(year) {
			return time.Time{}, false
		}
		t = t.AddDate(0, 0, f.dayOfYear-1)
	}

	if f.weekday >= 0 && f.day < 0 && f.dayOfYear < 0 {
		delta := (f.weekday - int(t.Weekday()) + 7) % 7
		t = t.AddDate(0, 0, delta)
	}

	return t, true
}

func (f parsedFields) resolveHour() (int, bool) {
	if f.hour < 0 {
		if f.pm == 1 {
			return 12, true
		}
		return 0, true
	}

	hour := f.hour
	switch f.hourKind {
	case 'h':
		if hour < 1 || hour > 12 {
			return 0, false
		}
		hour %= 12
	case 'K':
		if hour > 11 {
			return 0, false
		}
	case 'k':
		if hour < 1 || hour > 24 {
			return 0, false
		}
		return hour % 24, true
	default:
		if hour > 23 {
			return 0, false
		}
		return hour, true
	}

	if f.pm == 1 {
		hour += 12
	}
	return hour, true
}

func daysIn(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func daysInYear(year int) int {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// prefixFold returns the byte length of the prefix of s that matches prefix
// case-insensitively, or 0.
func prefixFold(s, prefix string) int {
	i := 0
	for _, want := range prefix {
		got, n := utf8.DecodeRuneInString(s[i:])
		if n == 0 || !equalFoldRune(got, want) {
			return 0
		}
		i += n
	}
	return i
}

func equalFoldRune(a, b rune) bool {
	if a == b {
		return true
	}
	return unicode.ToLower(a) == unicode.ToLower(b)
}
