package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// settings is the resolved CLI configuration. Values come from flags, then
// DATEFMT_* environment variables, then the optional YAML config file.
type settings struct {
	Locale       string   `mapstructure:"locale" validate:"required"`
	Timezone     string   `mapstructure:"timezone" validate:"omitempty,timezone"`
	PhraseLocale string   `mapstructure:"phrase_locale" validate:"required"`
	Phrasebooks  []string `mapstructure:"phrasebooks" validate:"dive,file"`
	LogLevel     string   `mapstructure:"log_level" validate:"oneof=trace debug info warn error disabled"`
	LogFile      string   `mapstructure:"log_file"`
}

var settingsFlags = map[string]string{
	"locale":        "locale",
	"timezone":      "timezone",
	"phrase_locale": "phrase-locale",
	"phrasebooks":   "phrasebook",
	"log_level":     "log-level",
	"log_file":      "log-file",
}

func newSettingsViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("DATEFMT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, flag := range settingsFlags {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("bind %s: %w", flag, err)
		}
	}
	return v, nil
}

func loadSettings(v *viper.Viper, configFile string) (settings, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return settings{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return settings{}, fmt.Errorf("decode settings: %w", err)
	}

	if err := validator.New().Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			return settings{}, fmt.Errorf("invalid %s: %q fails %q", strings.ToLower(first.Field()), first.Value(), first.Tag())
		}
		return settings{}, err
	}
	return s, nil
}
