// Package cli provides the command-line interface for moneyinput.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app is the state shared by the subcommands once the root command has
// loaded the configuration.
type app struct {
	configPath string
	conf       *Config
	log        *zap.Logger
}

// NewRootCmd creates the root command for moneyinput
func NewRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "moneyinput",
		Short: "Format currency input the way a money text field does",
		Long: `moneyinput drives a simulated currency text field from the command line.
It formats pasted values, replays keystrokes and prints the number
separators of locales.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := LoadConfig(a.configPath, cmd.Flags())
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			log, err := NewLogger(conf.Logging)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.conf = conf
			a.log = log
			a.log.Debug("configuration loaded",
				zap.String("symbol", conf.Field.CurrencySymbol),
				zap.String("locale", conf.Field.LocaleTag),
				zap.Int("maxDecimals", conf.Field.MaxDecimalDigits),
			)
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.log.Sync()
		},
	}

	defaults := DefaultConfig()
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML configuration file")
	flags.String("symbol", defaults.Field.CurrencySymbol, "Currency symbol shown before the number")
	flags.Bool("hint", defaults.Field.UseCurrencySymbolAsHint, "Show the currency symbol as the hint of an empty field")
	flags.String("locale", defaults.Field.LocaleTag, "BCP 47 locale tag of the separators (default: system locale)")
	flags.Int("max-decimals", defaults.Field.MaxDecimalDigits, "Maximum number of fraction digits")
	flags.String("log-level", defaults.Logging.Level, "Log level (debug, info, warn, error)")
	flags.String("log-format", defaults.Logging.Format, "Log format (console, json)")

	rootCmd.AddCommand(newFormatCmd(a))
	rootCmd.AddCommand(newReplayCmd(a))
	rootCmd.AddCommand(newSymbolsCmd(a))

	return rootCmd
}
