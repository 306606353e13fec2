package datefmt

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

// Config captures DateFormatter setup.
type Config struct {
	DefaultLocale   LocaleTag
	Location        *time.Location
	Clock           Clock
	Logger          zerolog.Logger
	Cache           *FormatterCache
	PhraseLocale    language.Tag
	Phrasebook      *Phrasebook
	phrasebookPaths []string
	loggerSet       bool
}

// Option mutates Config during construction.
type Option func(*Config) error

// NewConfig builds Config via supplied options.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.DefaultLocale.IsZero() {
		cfg.DefaultLocale = DefaultLocale
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}
	if !cfg.loggerSet {
		cfg.Logger = zerolog.Nop()
	}
	if cfg.Cache == nil {
		cfg.Cache = NewFormatterCache(cfg.Logger)
	}
	if cfg.PhraseLocale == language.Und {
		cfg.PhraseLocale = language.Russian
	}

	if err := cfg.applyPhrasebookFiles(); err != nil {
		return nil, err
	}
	if cfg.Phrasebook == nil {
		book, ok := builtinPhrasebook(cfg.PhraseLocale)
		if !ok {
			return nil, fmt.Errorf("%w: no built-in phrasebook for %q, load one with WithPhrasebookFiles", ErrUnsupportedLocale, cfg.PhraseLocale)
		}
		cfg.Phrasebook = book
	}

	return cfg, nil
}

// WithDefaultLocale sets the locale used when a FormatterConfig has none.
func WithDefaultLocale(locale string) Option {
	return func(c *Config) error {
		tag, err := ParseLocaleTag(locale)
		if err != nil {
			return err
		}
		c.DefaultLocale = tag
		return nil
	}
}

// WithLocation sets the timezone used when a FormatterConfig has none. It
// is also the calendar used to measure elapsed time.
func WithLocation(loc *time.Location) Option {
	return func(c *Config) error {
		c.Location = loc
		return nil
	}
}

// WithTimeZone loads the named IANA zone, e.g. "Europe/Moscow".
func WithTimeZone(name string) Option {
	return func(c *Config) error {
		loc, err := time.LoadLocation(name)
		if err != nil {
			return fmt.Errorf("datefmt: load timezone %q: %w", name, err)
		}
		c.Location = loc
		return nil
	}
}

func WithClock(clock Clock) Option {
	return func(c *Config) error {
		c.Clock = clock
		return nil
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		c.loggerSet = true
		return nil
	}
}

// WithCache shares a formatter cache between DateFormatter instances.
func WithCache(cache *FormatterCache) Option {
	return func(c *Config) error {
		c.Cache = cache
		return nil
	}
}

// WithPhraseLocale selects the language of elapsed-time phrases. Russian and
// English are built in; any other language needs a phrasebook loaded with
// WithPhrasebookFiles.
func WithPhraseLocale(locale string) Option {
	return func(c *Config) error {
		normalized := normalizeLocale(locale)
		if normalized == "" {
			return fmt.Errorf("%w: empty phrase locale", ErrUnsupportedLocale)
		}
		tag, err := language.Parse(normalized)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrUnsupportedLocale, locale, err)
		}
		c.PhraseLocale = tag
		return nil
	}
}

// WithPhrasebook installs a custom phrasebook.
func WithPhrasebook(book *Phrasebook) Option {
	return func(c *Config) error {
		if err := book.Validate(); err != nil {
			return err
		}
		c.Phrasebook = book
		return nil
	}
}

// WithPhrasebookFiles loads phrasebooks from JSON/YAML files and selects the
// one matching the phrase locale.
func WithPhrasebookFiles(paths ...string) Option {
	return func(c *Config) error {
		c.phrasebookPaths = append(c.phrasebookPaths, paths...)
		return nil
	}
}

func (cfg *Config) applyPhrasebookFiles() error {
	if len(cfg.phrasebookPaths) == 0 || cfg.Phrasebook != nil {
		return nil
	}

	books, err := NewPhrasebookLoader(cfg.phrasebookPaths...).Load()
	if err != nil {
		return err
	}

	locale, book, ok := selectPhrasebook(books, cfg.PhraseLocale)
	if !ok {
		return fmt.Errorf("%w: no phrasebook for locale %q in %v", ErrInvalidPhrasebook, cfg.PhraseLocale, cfg.phrasebookPaths)
	}

	cfg.Phrasebook = book
	cfg.Logger.Debug().Str("locale", locale).Msg("phrasebook loaded from file")
	return nil
}
