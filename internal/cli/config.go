package cli

import (
	"fmt"
	"strings"

	"github.com/govalues/moneyinput"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// LoggingConfig selects the level and encoding of the CLI logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`   // debug, info, warn, error
	Format string `mapstructure:"format" yaml:"format"` // json, console
}

// Config is the CLI configuration file.
type Config struct {
	Field   moneyinput.Options `mapstructure:"field" yaml:"field"`
	Logging LoggingConfig      `mapstructure:"logging" yaml:"logging"`
}

// flagKeys maps CLI flags to the configuration keys they override.
var flagKeys = map[string]string{
	"symbol":       "field.currencySymbol",
	"hint":         "field.useCurrencySymbolAsHint",
	"locale":       "field.localeTag",
	"max-decimals": "field.maxNumberOfDecimalDigits",
	"log-level":    "logging.level",
	"log-format":   "logging.format",
}

// DefaultConfig returns the settings used when nothing else is configured.
func DefaultConfig() Config {
	return Config{
		Field:   moneyinput.DefaultOptions(),
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// LoadConfig reads the YAML file at path, if any, then MONEYINPUT_* environment
// variables, then the flags in fs that were set on the command line.
// Settings present nowhere keep the values of [DefaultConfig].
func LoadConfig(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	defaults := DefaultConfig()
	v.SetDefault("field.currencySymbol", defaults.Field.CurrencySymbol)
	v.SetDefault("field.useCurrencySymbolAsHint", defaults.Field.UseCurrencySymbolAsHint)
	v.SetDefault("field.localeTag", defaults.Field.LocaleTag)
	v.SetDefault("field.maxNumberOfDecimalDigits", defaults.Field.MaxDecimalDigits)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)

	v.SetEnvPrefix("moneyinput")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &conf, nil
}
