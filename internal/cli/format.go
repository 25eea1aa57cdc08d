package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newFormatCmd(a *app) *cobra.Command {
	var currency string

	cmd := &cobra.Command{
		Use:   "format text...",
		Short: "Format values as if they were pasted into an empty field",
		Long: `Format sets each argument as the content of a fresh field and prints the
canonical text followed by its numeric value. Unparsable input leaves the
field showing only the prefix.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, text := range args {
				s, err := NewSession(a.conf.Field, a.log)
				if err != nil {
					return fmt.Errorf("failed to create field: %w", err)
				}
				s.Field().SetText(text)
				a.log.Debug("formatted",
					zap.String("op", "format"),
					zap.String("input", text),
					zap.String("text", s.Text()),
				)

				if currency != "" {
					v, err := s.Field().Amount(currency)
					if err != nil {
						return fmt.Errorf("failed to convert %q: %w", text, err)
					}
					fmt.Fprintf(out, "%s\t%s\n", s.Text(), v)
					continue
				}
				v, err := s.Field().Value()
				if err != nil {
					return fmt.Errorf("failed to convert %q: %w", text, err)
				}
				fmt.Fprintf(out, "%s\t%s\n", s.Text(), v)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "", "ISO 4217 code to print the value as a money amount")

	return cmd
}
