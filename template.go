package datefmt

import (
	"fmt"
	"time"
)

// TemplateHelpers exposes DateFormatter operations for text/template and
// html/template. Format arguments are catalog names accepted by
// ParseDateFormat. parse_date fails with ErrUnparseableDate when the text
// does not match the format.
func TemplateHelpers(d *DateFormatter) map[string]any {
	return map[string]any{
		"format_date": func(t time.Time, name string, locale ...string) (string, error) {
			cfg, err := helperConfig(name, locale)
			if err != nil {
				return "", err
			}
			return d.StringFromDateWithConfig(t, cfg), nil
		},
		"parse_date": func(text, name string) (time.Time, error) {
			cfg, err := helperConfig(name, nil)
			if err != nil {
				return time.Time{}, err
			}
			parsed, ok := d.DateFromStringWithConfig(text, cfg)
			if !ok {
				return time.Time{}, fmt.Errorf("%w: %q as %s", ErrUnparseableDate, text, cfg.Format.Name())
			}
			return parsed, nil
		},
		"time_ago": func(text string, name ...string) (string, error) {
			format := APIFullDateFormat
			if len(name) > 0 && name[0] != "" {
				parsed, err := ParseDateFormat(name[0])
				if err != nil {
					return "", err
				}
				format = parsed
			}
			return d.TimeAgoString(text, format), nil
		},
		"plural": func(count int, singular, plural, pluralGenitive string) string {
			return Agree(count, singular, plural, pluralGenitive)
		},
	}
}

func helperConfig(name string, locale []string) (FormatterConfig, error) {
	format, err := ParseDateFormat(name)
	if err != nil {
		return FormatterConfig{}, err
	}

	cfg := FormatterConfig{Format: format}
	if len(locale) > 0 && locale[0] != "" {
		tag, err := ParseLocaleTag(locale[0])
		if err != nil {
			return FormatterConfig{}, err
		}
		cfg.Locale = tag
	}
	return cfg, nil
}
