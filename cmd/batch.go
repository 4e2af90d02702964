package cmd

import (
	"fmt"

	"github.com/dhabedank/prompt-enhancer/internal/batch"
	"github.com/dhabedank/prompt-enhancer/internal/output"
	"github.com/dhabedank/prompt-enhancer/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBatchCmd(app *App) *cobra.Command {
	var (
		workers int
		format  string
	)

	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Enhance every prompt in a YAML file",
		Long: `Enhance a file of prompts concurrently.

The file holds a list of prompts, either plain strings or {id, prompt} maps,
or a map with a "prompts" key holding that list:

  prompts:
    - id: dogs
      prompt: Tell me about dogs
    - How does a hash table work?

Prompts without an id get a random UUID. Results keep the input order; blank
prompts are reported on their own record and do not stop the batch.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("workers") {
				workers = app.Config.Workers
			}
			if !cmd.Flags().Changed("output") {
				format = app.Config.Output
			}

			items, err := batch.Load(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			adapter, err := app.newAdapter(format, out, true)
			if err != nil {
				return err
			}

			runner := batch.NewRunner(app.Engine, workers, app.Logger)
			records, err := runner.Run(cmd.Context(), items)
			if err != nil {
				return err
			}

			docs := make([]output.Document, len(records))
			failed := 0
			for i, rec := range records {
				docs[i] = rec.Document()
				if rec.Err != nil {
					failed++
					app.Logger.Warn("prompt skipped", zap.String("id", rec.ID), zap.Error(rec.Err))
				}
			}

			if err := adapter.Write(out, docs); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}

			summary := fmt.Sprintf("Enhanced %d of %d prompts", len(records)-failed, len(records))
			if failed > 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), tui.WarningStyle.Render("⚠")+" "+summary)
			} else {
				fmt.Fprintln(cmd.ErrOrStderr(), tui.SuccessStyle.Render("✓")+" "+summary)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "Prompts enhanced in parallel")
	cmd.Flags().StringVarP(&format, "output", "o", "auto", "Output format (auto/text/json/yaml/markdown/card)")

	return cmd
}
