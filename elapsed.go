package datefmt

import "time"

// ElapsedUnit tags the unit an ElapsedTime was rendered in.
type ElapsedUnit int

const (
	ElapsedJustNow ElapsedUnit = iota
	ElapsedMinutes
	ElapsedHours
	ElapsedDays
	ElapsedMonths
	ElapsedYears
)

var elapsedUnitNames = map[ElapsedUnit]string{
	ElapsedJustNow: "justNow",
	ElapsedMinutes: "minutes",
	ElapsedHours:   "hours",
	ElapsedDays:    "days",
	ElapsedMonths:  "months",
	ElapsedYears:   "years",
}

func (u ElapsedUnit) String() string {
	if name, ok := elapsedUnitNames[u]; ok {
		return name
	}
	return "unknown"
}

// ElapsedTime is the classified distance between a date and now: the unit
// that was selected, its count and the rendered phrase ("2 года").
// For ElapsedJustNow Count is zero and Text is the just-now phrase.
type ElapsedTime struct {
	Unit  ElapsedUnit
	Count int
	Text  string
}

// String returns the rendered phrase whatever the unit.
func (e ElapsedTime) String() string {
	return e.Text
}

// Classify renders the time elapsed from date to now using the coarsest
// positive unit: years, then months, days, hours and minutes. Less than a
// minute, or a date in the future, yields the just-now phrase.
func Classify(date, now time.Time, book *Phrasebook) ElapsedTime {
	if book == nil {
		book = DefaultPhrasebook(LocaleRU)
	}

	diff := calendarDiff(date, now)
	steps := []struct {
		unit  ElapsedUnit
		count int
	}{
		{ElapsedYears, diff.Years},
		{ElapsedMonths, diff.Months},
		{ElapsedDays, diff.Days},
		{ElapsedHours, diff.Hours},
		{ElapsedMinutes, diff.Minutes},
	}

	for _, step := range steps {
		if step.count > 0 {
			return ElapsedTime{
				Unit:  step.unit,
				Count: step.count,
				Text:  book.render(step.unit, step.count),
			}
		}
	}

	return JustNow(book)
}

// JustNow returns the just-now result for book.
func JustNow(book *Phrasebook) ElapsedTime {
	if book == nil {
		book = DefaultPhrasebook(LocaleRU)
	}
	return ElapsedTime{Unit: ElapsedJustNow, Text: book.JustNow}
}
