package datefmt

// calendarNames holds the locale data the pattern engine needs. Month and
// weekday slices are indexed from zero (January, Sunday).
type calendarNames struct {
	Locale LocaleTag

	// Format context, used inside a date ("1 февраля").
	MonthsWide        []string
	MonthsAbbreviated []string
	MonthsNarrow      []string

	// Stand-alone context, used on its own ("февраль").
	StandaloneMonthsWide        []string
	StandaloneMonthsAbbreviated []string

	WeekdaysWide        []string
	WeekdaysAbbreviated []string
	WeekdaysShort       []string
	WeekdaysNarrow      []string

	// FirstWeekday is the local day-of-week 1 for the numeric "e" field.
	FirstWeekday int

	// Eras are indexed BC, AD.
	Eras []string

	AM string
	PM string
}

var calendarNamesData = map[LocaleTag]calendarNames{
	LocaleEN: {
		Locale: LocaleEN,
		MonthsWide: []string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		MonthsAbbreviated: []string{
			"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
		},
		MonthsNarrow: []string{"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"},
		StandaloneMonthsWide: []string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		StandaloneMonthsAbbreviated: []string{
			"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
		},
		WeekdaysWide: []string{
			"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
		},
		WeekdaysAbbreviated: []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		WeekdaysShort:       []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
		WeekdaysNarrow:      []string{"S", "M", "T", "W", "T", "F", "S"},
		FirstWeekday:        0,
		Eras:                []string{"BC", "AD"},
		AM:                  "AM",
		PM:                  "PM",
	},
	LocaleRU: {
		Locale: LocaleRU,
		MonthsWide: []string{
			"января", "февраля", "марта", "апреля", "мая", "июня",
			"июля", "августа", "сентября", "октября", "ноября", "декабря",
		},
		MonthsAbbreviated: []string{
			"янв.", "февр.", "мар.", "апр.", "мая", "июн.",
			"июл.", "авг.", "сент.", "окт.", "нояб.", "дек.",
		},
		MonthsNarrow: []string{"Я", "Ф", "М", "А", "М", "И", "И", "А", "С", "О", "Н", "Д"},
		StandaloneMonthsWide: []string{
			"январь", "февраль", "март", "апрель", "май", "июнь",
			"июль", "август", "сентябрь", "октябрь", "ноябрь", "декабрь",
		},
		StandaloneMonthsAbbreviated: []string{
			"янв.", "февр.", "март", "апр.", "май", "июнь",
			"июль", "авг.", "сент.", "окт.", "нояб.", "дек.",
		},
		WeekdaysWide: []string{
			"воскресенье", "понедельник", "вторник", "среда", "четверг", "пятница", "суббота",
		},
		WeekdaysAbbreviated: []string{"вс", "пн", "вт", "ср", "чт", "пт", "сб"},
		WeekdaysShort:       []string{"вс", "пн", "вт", "ср", "чт", "пт", "сб"},
		WeekdaysNarrow:      []string{"В", "П", "В", "С", "Ч", "П", "С"},
		FirstWeekday:        1,
		Eras:                []string{"до н. э.", "н. э."},
		AM:                  "AM",
		PM:                  "PM",
	},
}

// namesFor returns the calendar names for locale, falling back to English.
func namesFor(locale LocaleTag) *calendarNames {
	if names, ok := calendarNamesData[locale]; ok {
		return &names
	}
	names := calendarNamesData[DefaultLocale]
	return &names
}
