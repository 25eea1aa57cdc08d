package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newReplayCmd(a *app) *cobra.Command {
	var (
		keys   string
		script string
	)

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay keystrokes on a focused field",
		Long: `Replay focuses an empty field, applies a sequence of edits and prints the
field after every edit, with '|' marking the cursor.

Keys are typed one by one; '<' is a backspace and '>' deletes forward:

  moneyinput replay --keys "1000.5<<"

A script is a YAML file with a list of steps:

  steps:
    - type: "1000"
    - move: 3
    - backspace: 1
    - paste: "$ 12.345"
    - blur: true`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			steps, err := replaySteps(keys, script)
			if err != nil {
				return err
			}

			s, err := NewSession(a.conf.Field, a.log)
			if err != nil {
				return fmt.Errorf("failed to create field: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-16s %s\n", "focus", s.Render())
			for _, step := range steps {
				s.Apply(step)
				fmt.Fprintf(out, "%-16s %s\n", step, s.Render())
			}

			v, err := s.Field().Value()
			if err != nil {
				return fmt.Errorf("failed to read value: %w", err)
			}
			fmt.Fprintf(out, "value %s\n", v)
			a.log.Info("replay finished",
				zap.String("op", "replay"),
				zap.Int("steps", len(steps)),
				zap.String("text", s.Text()),
				zap.Stringer("value", v),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&keys, "keys", "", "Keys to type ('<' is backspace, '>' is delete)")
	cmd.Flags().StringVar(&script, "script", "", "YAML file with the steps to replay")
	cmd.MarkFlagsMutuallyExclusive("keys", "script")

	return cmd
}

func replaySteps(keys, script string) ([]Step, error) {
	switch {
	case script != "":
		sc, err := LoadScript(script)
		if err != nil {
			return nil, err
		}
		return sc.Steps, nil
	case keys != "":
		return ParseKeys(keys), nil
	}
	return nil, errors.New("one of --keys or --script is required")
}
