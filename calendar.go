package datefmt

import "time"

// calendarComponents is the calendar-aware difference between two instants.
type calendarComponents struct {
	Years   int
	Months  int
	Days    int
	Hours   int
	Minutes int
}

func (c calendarComponents) negate() calendarComponents {
	return calendarComponents{
		Years:   -c.Years,
		Months:  -c.Months,
		Days:    -c.Days,
		Hours:   -c.Hours,
		Minutes: -c.Minutes,
	}
}

// calendarDiff splits to-from into whole years, months, days, hours and
// minutes, largest unit first, measured in from's location. Month steps clamp
// to the end of the month, so Jan 31 + 1 month is the last day of February.
// When to precedes from every component is zero or negative.
func calendarDiff(from, to time.Time) calendarComponents {
	to = to.In(from.Location())
	if to.Before(from) {
		return calendarDiff(to, from.In(to.Location())).negate()
	}

	totalMonths := (to.Year()-from.Year())*12 + int(to.Month()-from.Month())
	for totalMonths > 0 && addMonthsClamped(from, totalMonths).After(to) {
		totalMonths--
	}
	anchor := addMonthsClamped(from, totalMonths)

	days := int(to.Sub(anchor) / (24 * time.Hour))
	for days > 0 && anchor.AddDate(0, 0, days).After(to) {
		days--
	}
	for !anchor.AddDate(0, 0, days+1).After(to) {
		days++
	}
	anchor = anchor.AddDate(0, 0, days)

	rest := to.Sub(anchor)
	return calendarComponents{
		Years:   totalMonths / 12,
		Months:  totalMonths % 12,
		Days:    days,
		Hours:   int(rest / time.Hour),
		Minutes: int(rest % time.Hour / time.Minute),
	}
}

// addMonthsClamped adds months to t, clamping the day to the target month.
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	target := time.Date(year, month+time.Month(months), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := daysIn(target.Month(), target.Year()); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
