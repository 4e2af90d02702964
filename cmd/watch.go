package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dhabedank/prompt-enhancer/internal/core"
	"github.com/dhabedank/prompt-enhancer/internal/output"
	"github.com/dhabedank/prompt-enhancer/internal/tui"
	"github.com/dhabedank/prompt-enhancer/internal/watch"
	"github.com/spf13/cobra"
)

func newWatchCmd(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-enhance a prompt file whenever it changes",
		Long: `Watch a prompt file and print its enhancement on every save.
Stop with Ctrl+C.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("output") {
				format = app.Config.Output
			}

			out := cmd.OutOrStdout()
			adapter, err := app.newAdapter(format, out, false)
			if err != nil {
				return err
			}

			w, err := watch.New(args[0], watch.DefaultDebounce, app.Logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s (Ctrl+C to stop)\n", args[0])
			return w.Run(ctx, func(content string) error {
				return writeWatched(cmd, app, adapter, content)
			})
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", "auto", "Output format (auto/text/json/yaml/markdown/card)")

	return cmd
}

func writeWatched(cmd *cobra.Command, app *App, adapter output.Adapter, content string) error {
	prompt := strings.TrimSpace(content)
	if err := core.ValidatePrompt(prompt); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), tui.WarningStyle.Render("⚠")+" "+err.Error())
		return nil
	}

	res := app.Engine.Enhance(prompt)
	return adapter.Write(cmd.OutOrStdout(), []output.Document{output.NewDocument(prompt, res)})
}
