package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("symbol", "", "")
	fs.Bool("hint", false, "")
	fs.String("locale", "", "")
	fs.Int("max-decimals", 2, "")
	fs.String("log-level", "info", "")
	fs.String("log-format", "console", "")
	require.NoError(t, fs.Parse(args))
	return fs
}

const configYAML = `
field:
  currencySymbol: "€"
  useCurrencySymbolAsHint: true
  localeTag: fr-FR
  maxNumberOfDecimalDigits: 3
logging:
  level: debug
  format: json
`

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		conf, err := LoadConfig("", nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), *conf)
	})

	t.Run("file", func(t *testing.T) {
		conf, err := LoadConfig(writeFile(t, "moneyinput.yaml", configYAML), nil)
		require.NoError(t, err)
		assert.Equal(t, "€", conf.Field.CurrencySymbol)
		assert.True(t, conf.Field.UseCurrencySymbolAsHint)
		assert.Equal(t, "fr-FR", conf.Field.LocaleTag)
		assert.Equal(t, 3, conf.Field.MaxDecimalDigits)
		assert.Equal(t, LoggingConfig{Level: "debug", Format: "json"}, conf.Logging)
	})

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("MONEYINPUT_FIELD_CURRENCYSYMBOL", "₦")
		t.Setenv("MONEYINPUT_LOGGING_LEVEL", "warn")
		conf, err := LoadConfig(writeFile(t, "moneyinput.yaml", configYAML), nil)
		require.NoError(t, err)
		assert.Equal(t, "₦", conf.Field.CurrencySymbol)
		assert.Equal(t, "warn", conf.Logging.Level)
		assert.Equal(t, "fr-FR", conf.Field.LocaleTag)
	})

	t.Run("flags override env", func(t *testing.T) {
		t.Setenv("MONEYINPUT_FIELD_CURRENCYSYMBOL", "₦")
		fs := testFlags(t, "--symbol", "$", "--max-decimals", "4", "--locale", "en-US")
		conf, err := LoadConfig(writeFile(t, "moneyinput.yaml", configYAML), fs)
		require.NoError(t, err)
		assert.Equal(t, "$", conf.Field.CurrencySymbol)
		assert.Equal(t, 4, conf.Field.MaxDecimalDigits)
		assert.Equal(t, "en-US", conf.Field.LocaleTag)
		assert.True(t, conf.Field.UseCurrencySymbolAsHint, "unset flags must not override the file")
	})

	t.Run("error", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), nil)
		assert.Error(t, err)

		_, err = LoadConfig(writeFile(t, "bad.yaml", "field: [\n"), nil)
		assert.Error(t, err)
	})
}
