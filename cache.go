package datefmt

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// FormatterCache memoizes one Formatter per resolved configuration. Entries
// are built on first use and never evicted; the configuration space is the
// small catalog times the supported locales and timezones in use.
type FormatterCache struct {
	mu         sync.RWMutex
	formatters map[formatterKey]*Formatter
	logger     zerolog.Logger
}

// NewFormatterCache returns an empty cache that logs through logger.
func NewFormatterCache(logger zerolog.Logger) *FormatterCache {
	return &FormatterCache{
		formatters: make(map[formatterKey]*Formatter),
		logger:     logger,
	}
}

// Get returns the formatter for cfg, building it on a miss. Unset locale and
// timezone resolve to DefaultLocale and time.Local. Concurrent first use of
// the same configuration builds a single instance.
func (c *FormatterCache) Get(cfg FormatterConfig) *Formatter {
	cfg = cfg.withDefaults(DefaultLocale, time.Local)
	key := cfg.key()

	c.mu.RLock()
	if c.formatters != nil {
		if cached, ok := c.formatters[key]; ok {
			c.mu.RUnlock()
			return cached
		}
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.formatters == nil {
		c.formatters = make(map[formatterKey]*Formatter)
	} else if cached, ok := c.formatters[key]; ok {
		return cached
	}

	formatter := newFormatter(cfg)
	c.formatters[key] = formatter

	c.logger.Debug().
		Str("pattern", formatter.pattern).
		Str("locale", formatter.locale.Identifier()).
		Str("zone", formatter.location.String()).
		Int("cached", len(c.formatters)).
		Msg("formatter built")

	return formatter
}

// Len returns the number of cached formatters.
func (c *FormatterCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.formatters)
}

// Reset drops every cached formatter.
func (c *FormatterCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.formatters = make(map[formatterKey]*Formatter)
}
