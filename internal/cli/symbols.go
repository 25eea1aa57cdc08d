package cli

import (
	"fmt"

	"github.com/govalues/moneyinput"
	"github.com/spf13/cobra"
)

func newSymbolsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "symbols [tag...]",
		Short: "Print the number separators of locales",
		Long: `Symbols prints the decimal and grouping separators resolved for each BCP 47
tag, and a sample number. Without arguments it prints those of the
configured locale. Malformed tags resolve to the system locale.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{a.conf.Field.LocaleTag}
			}
			out := cmd.OutOrStdout()
			for _, tag := range args {
				syms := moneyinput.ResolveSymbols(moneyinput.CLDR, tag)
				cfg, err := moneyinput.NewConfig("", syms, a.conf.Field.MaxDecimalDigits)
				if err != nil {
					return fmt.Errorf("failed to configure %q: %w", tag, err)
				}
				sample, err := cfg.Format("1234567" + string(syms.Decimal) + "89")
				if err != nil {
					return fmt.Errorf("failed to format sample for %q: %w", tag, err)
				}
				name := tag
				if name == "" {
					name = moneyinput.SystemLocale().String()
				}
				fmt.Fprintf(out, "%-8s %v %s\n", name, syms, sample)
			}
			return nil
		},
	}
}
