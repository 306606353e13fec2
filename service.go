package datefmt

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DateFormatter converts between text and dates using the format catalog and
// renders elapsed-time phrases. It is safe for concurrent use. The zero
// value works with the defaults of New.
type DateFormatter struct {
	initOnce sync.Once
	cache    *FormatterCache
	clock    Clock
	logger   zerolog.Logger
	locale   LocaleTag
	location *time.Location
	phrases  *Phrasebook
}

// New builds a DateFormatter from options.
func New(opts ...Option) (*DateFormatter, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return cfg.Build(), nil
}

// Build returns a DateFormatter for the configuration.
func (cfg *Config) Build() *DateFormatter {
	return &DateFormatter{
		cache:    cfg.Cache,
		clock:    cfg.Clock,
		logger:   cfg.Logger,
		locale:   cfg.DefaultLocale,
		location: cfg.Location,
		phrases:  cfg.Phrasebook,
	}
}

// Formatter returns the cached formatter for cfg, building it on first use.
func (d *DateFormatter) Formatter(cfg FormatterConfig) *Formatter {
	d.init()
	return d.cache.Get(cfg.withDefaults(d.locale, d.location))
}

// Cache exposes the formatter cache.
func (d *DateFormatter) Cache() *FormatterCache {
	d.init()
	return d.cache
}

// init fills state left unset on a zero value DateFormatter.
func (d *DateFormatter) init() {
	d.initOnce.Do(func() {
		if d.cache == nil {
			d.cache = NewFormatterCache(d.logger)
		}
		if d.clock == nil {
			d.clock = SystemClock{}
		}
		if d.locale.IsZero() {
			d.locale = DefaultLocale
		}
		if d.location == nil {
			d.location = time.Local
		}
		if d.phrases == nil {
			d.phrases = DefaultPhrasebook(LocaleRU)
		}
	})
}

// DateFromString parses text with format. A zero format means
// APIFullDateFormat. It reports false when the text does not match.
func (d *DateFormatter) DateFromString(text string, format DateFormat) (time.Time, bool) {
	return d.DateFromStringWithConfig(text, FormatterConfig{Format: orDefaultFormat(format)})
}

// DateFromStringWithConfig parses text with a full configuration.
func (d *DateFormatter) DateFromStringWithConfig(text string, cfg FormatterConfig) (time.Time, bool) {
	return d.Formatter(cfg).Parse(text)
}

// StringFromDate renders t with format. A zero format means
// APIFullDateFormat.
func (d *DateFormatter) StringFromDate(t time.Time, format DateFormat) string {
	return d.StringFromDateWithConfig(t, FormatterConfig{Format: orDefaultFormat(format)})
}

// StringFromDateWithConfig renders t with a full configuration.
func (d *DateFormatter) StringFromDateWithConfig(t time.Time, cfg FormatterConfig) string {
	return d.Formatter(cfg).Format(t)
}

// TimeAgo parses text with format (APIFullDateFormat when zero) and
// classifies the time elapsed since then.
//
// Text that does not parse is not reported as an error: it classifies as
// ElapsedJustNow, exactly like a date less than a minute old.
func (d *DateFormatter) TimeAgo(text string, format DateFormat) ElapsedTime {
	formatter := d.Formatter(FormatterConfig{Format: orDefaultFormat(format)})

	date, ok := formatter.Parse(text)
	if !ok {
		d.logger.Debug().
			Str("pattern", formatter.Pattern()).
			Int("input_len", len(text)).
			Msg("time ago: unparseable date treated as just now")
		return JustNow(d.phrases)
	}
	return d.Since(date)
}

// TimeAgoString is TimeAgo reduced to its phrase, e.g. "5 минут" or
// "Только что".
func (d *DateFormatter) TimeAgoString(text string, format DateFormat) string {
	return d.TimeAgo(text, format).String()
}

// Since classifies the time elapsed from date to the clock's now, measured
// on the calendar of the configured location.
func (d *DateFormatter) Since(date time.Time) ElapsedTime {
	d.init()
	now := d.clock.Now().In(d.location)
	return Classify(date.In(d.location), now, d.phrases)
}

// Phrasebook returns the phrasebook used for elapsed-time phrases.
func (d *DateFormatter) Phrasebook() *Phrasebook {
	d.init()
	return d.phrases
}

func orDefaultFormat(format DateFormat) DateFormat {
	if format.IsZero() {
		return APIFullDateFormat
	}
	return format
}
