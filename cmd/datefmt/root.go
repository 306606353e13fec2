package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	datefmt "github.com/goliatone/go-datefmt"
)

// app carries the state built by the root command before a subcommand runs.
type app struct {
	configFile string
	settings   settings
	logger     zerolog.Logger
	logCloser  io.Closer
	locale     datefmt.LocaleTag
	options    []datefmt.Option
}

func newRootCommand(version string) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "datefmt",
		Short: "Convert dates between catalog formats and render time-ago phrases",
		Long: `datefmt converts dates between the named formats of the date catalog
(shortDate, fullDate, apiFullDateFormat, ...) and renders Russian
"time ago" phrases with correct numeral agreement.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.logCloser != nil {
				return a.logCloser.Close()
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configFile, "config", "c", "", "YAML config file")
	flags.String("locale", string(datefmt.DefaultLocale), "locale for month and weekday names (ru, en)")
	flags.String("timezone", "", "IANA timezone, e.g. Europe/Moscow (default local)")
	flags.String("phrase-locale", string(datefmt.LocaleRU), "locale of time-ago phrases (ru, en)")
	flags.StringSlice("phrasebook", nil, "phrasebook file (JSON or YAML); repeatable")
	flags.String("log-level", "warn", "log level (trace, debug, info, warn, error, disabled)")
	flags.String("log-file", "", "also write logs to this file, rotated")

	root.AddCommand(
		newFormatsCommand(),
		newConvertCommand(a),
		newAgoCommand(a),
		newPluralCommand(),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	v, err := newSettingsViper(cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}

	s, err := loadSettings(v, a.configFile)
	if err != nil {
		return err
	}
	a.settings = s

	logger, closer, err := newLogger(cmd.ErrOrStderr(), s)
	if err != nil {
		return err
	}
	a.logger = logger
	a.logCloser = closer

	locale, err := datefmt.ParseLocaleTag(s.Locale)
	if err != nil {
		return err
	}
	a.locale = locale

	a.options = []datefmt.Option{
		datefmt.WithDefaultLocale(s.Locale),
		datefmt.WithPhraseLocale(s.PhraseLocale),
		datefmt.WithLogger(logger),
	}
	if s.Timezone != "" {
		a.options = append(a.options, datefmt.WithTimeZone(s.Timezone))
	}
	if len(s.Phrasebooks) > 0 {
		a.options = append(a.options, datefmt.WithPhrasebookFiles(s.Phrasebooks...))
	}

	logger.Debug().
		Str("locale", locale.Identifier()).
		Str("timezone", s.Timezone).
		Str("phrase_locale", s.PhraseLocale).
		Strs("phrasebooks", s.Phrasebooks).
		Msg("settings loaded")
	return nil
}

func (a *app) formatter(extra ...datefmt.Option) (*datefmt.DateFormatter, error) {
	formatter, err := datefmt.New(append(append([]datefmt.Option(nil), a.options...), extra...)...)
	if err != nil {
		return nil, fmt.Errorf("configure formatter: %w", err)
	}
	return formatter, nil
}
