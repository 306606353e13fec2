package datefmt

import (
	"strconv"
	"strings"
	"time"
)

func formatTokens(tokens []patternToken, t time.Time, names *calendarNames) string {
	var b strings.Builder
	for _, tok := range tokens {
		if tok.isLiteral() {
			b.WriteString(tok.literal)
			continue
		}
		formatField(&b, tok, t, names)
	}
	return b.String()
}

func formatField(b *strings.Builder, tok patternToken, t time.Time, names *calendarNames) {
	switch tok.field {
	case 'G':
		era := 1
		if t.Year() <= 0 {
			era = 0
		}
		b.WriteString(names.Eras[era])
	case 'y':
		year := t.Year()
		if year <= 0 {
			year = 1 - year
		}
		if tok.width == 2 {
			writePadded(b, year%100, 2)
			return
		}
		writePadded(b, year, tok.width)
	case 'u':
		writePadded(b, t.Year(), tok.width)
	case 'M':
		writeMonth(b, tok.width, t.Month(), names.MonthsAbbreviated, names.MonthsWide, names.MonthsNarrow)
	case 'L':
		writeMonth(b, tok.width, t.Month(), names.StandaloneMonthsAbbreviated, names.StandaloneMonthsWide, names.MonthsNarrow)
	case 'd':
		writePadded(b, t.Day(), tok.width)
	case 'D':
		writePadded(b, t.YearDay(), tok.width)
	case 'E':
		if tok.width <= 3 {
			b.WriteString(names.WeekdaysAbbreviated[t.Weekday()])
			return
		}
		writeWeekdayName(b, tok.width, t.Weekday(), names)
	case 'e', 'c':
		if tok.width <= 2 {
			writePadded(b, localWeekday(t.Weekday(), names), tok.width)
			return
		}
		writeWeekdayName(b, tok.width, t.Weekday(), names)
	case 'a':
		if t.Hour() < 12 {
			b.WriteString(names.AM)
		} else {
			b.WriteString(names.PM)
		}
	case 'h':
		hour := t.Hour() % 12
		if hour == 0 {
			hour = 12
		}
		writePadded(b, hour, tok.width)
	case 'H':
		writePadded(b, t.Hour(), tok.width)
	case 'k':
		hour := t.Hour()
		if hour == 0 {
			hour = 24
		}
		writePadded(b, hour, tok.width)
	case 'K':
		writePadded(b, t.Hour()%12, tok.width)
	case 'm':
		writePadded(b, t.Minute(), tok.width)
	case 's':
		writePadded(b, t.Second(), tok.width)
	case 'S':
		writeFraction(b, t.Nanosecond(), tok.width)
	case 'Z':
		_, offset := t.Zone()
		switch {
		case tok.width <= 3:
			writeOffset(b, offset, false)
		case tok.width == 4:
			b.WriteString("GMT")
			if offset != 0 {
				writeOffset(b, offset, true)
			}
		default:
			if offset == 0 {
				b.WriteByte('Z')
				return
			}
			writeOffset(b, offset, true)
		}
	case 'X', 'x':
		_, offset := t.Zone()
		if tok.field == 'X' && offset == 0 {
			b.WriteByte('Z')
			return
		}
		switch tok.width {
		case 1:
			writeOffsetHour(b, offset)
		case 3, 5:
			writeOffset(b, offset, true)
		default:
			writeOffset(b, offset, false)
		}
	}
}

func writeMonth(b *strings.Builder, width int, month time.Month, abbreviated, wide, narrow []string) {
	index := int(month) - 1
	switch {
	case width <= 2:
		writePadded(b, int(month), width)
	case width == 3:
		b.WriteString(abbreviated[index])
	case width == 4:
		b.WriteString(wide[index])
	default:
		b.WriteString(narrow[index])
	}
}

func writeWeekdayName(b *strings.Builder, width int, weekday time.Weekday, names *calendarNames) {
	switch width {
	case 3:
		b.WriteString(names.WeekdaysAbbreviated[weekday])
	case 4:
		b.WriteString(names.WeekdaysWide[weekday])
	case 5:
		b.WriteString(names.WeekdaysNarrow[weekday])
	default:
		b.WriteString(names.WeekdaysShort[weekday])
	}
}

// localWeekday numbers weekdays from the locale's first day of the week (1).
func localWeekday(weekday time.Weekday, names *calendarNames) int {
	return (int(weekday)-names.FirstWeekday+7)%7 + 1
}

func writePadded(b *strings.Builder, value, width int) {
	if value < 0 {
		b.WriteByte('-')
		value = -value
	}
	digits := strconv.Itoa(value)
	for i := len(digits); i < width; i++ {
		b.WriteByte('0')
	}
	b.WriteString(digits)
}

// writeFraction renders the leading width digits of the second fraction.
func writeFraction(b *strings.Builder, nanos, width int) {
	digits := strconv.Itoa(nanos)
	digits = strings.Repeat("0", 9-len(digits)) + digits
	if width <= 9 {
		b.WriteString(digits[:width])
		return
	}
	b.WriteString(digits)
	b.WriteString(strings.Repeat("0", width-9))
}

func writeOffset(b *strings.Builder, offset int, colon bool) {
	if offset < 0 {
		b.WriteByte('-')
		offset = -offset
	} else {
		b.WriteByte('+')
	}
	writePadded(b, offset/3600, 2)
	if colon {
		b.WriteByte(':')
	}
	writePadded(b, offset%3600/60, 2)
}

func writeOffsetHour(b *strings.Builder, offset int) {
	if offset%3600 != 0 {
		writeOffset(b, offset, false)
		return
	}
	if offset < 0 {
		b.WriteByte('-')
		offset = -offset
	} else {
		b.WriteByte('+')
	}
	writePadded(b, offset/3600, 2)
}
