package cmd

import (
	"fmt"

	"github.com/dhabedank/prompt-enhancer/internal/tui"
	"github.com/spf13/cobra"
)

func newInteractiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"ui"},
		Short:   "Enhance prompts in a terminal UI",
		Long: `Open a terminal UI to write a prompt and see its enhancement.

  ctrl+s  enhance the prompt
  c       copy the result
  n       start a new prompt
  q, esc  quit

The last result is printed when the UI closes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model := tui.NewModel(app.Engine,
				tui.WithCopyFunc(app.Copy),
				tui.WithModelLogger(app.Logger),
			)

			final, err := app.RunProgram(model)
			if err != nil {
				return fmt.Errorf("interactive session failed: %w", err)
			}

			if m, ok := final.(tui.Model); ok && m.Result() != nil {
				fmt.Fprintln(cmd.OutOrStdout(), m.Result().Text)
			}
			return nil
		},
	}
}
