package cmd

import (
	"fmt"

	"github.com/dhabedank/prompt-enhancer/internal/output"
	"github.com/dhabedank/prompt-enhancer/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type enhanceOptions struct {
	file   string
	output string
	copy   bool
	stats  bool
}

func newEnhanceCmd(app *App) *cobra.Command {
	opts := &enhanceOptions{}

	cmd := &cobra.Command{
		Use:   "enhance [prompt...]",
		Short: "Enhance a prompt",
		Long: `Enhance a prompt and print the result.

The prompt is read from the arguments, from --file, or from stdin when it is
piped. The chosen strategy decides the rewrite:
- PRD: build requests for a product become a requirements document
- Question, Creative, Analytical, Technical, General: guidance is appended

Output formats: auto, text, json, yaml, markdown, card.
"auto" prints a card on a terminal and plain text when piped.`,
		Example: `  prompt-enhancer enhance "How does a hash table work?"
  echo "build a mobile app for fitness tracking" | prompt-enhancer enhance -o markdown
  prompt-enhancer enhance --file prompt.txt --copy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnhance(cmd, app, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read the prompt from a file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "auto", "Output format (auto/text/json/yaml/markdown/card)")
	cmd.Flags().BoolVarP(&opts.copy, "copy", "c", false, "Copy the enhanced prompt to the clipboard")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "Print word and token estimates to stderr")

	return cmd
}

func runEnhance(cmd *cobra.Command, app *App, opts *enhanceOptions, args []string) error {
	// Apply config values only if flags weren't explicitly set
	if !cmd.Flags().Changed("output") {
		opts.output = app.Config.Output
	}
	if !cmd.Flags().Changed("copy") && app.Config.Copy {
		opts.copy = true
	}

	prompt, err := app.readPrompt(args, opts.file)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	adapter, err := app.newAdapter(opts.output, out, false)
	if err != nil {
		return err
	}

	res := app.Engine.Enhance(prompt)
	if err := adapter.Write(out, []output.Document{output.NewDocument(prompt, res)}); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if opts.stats {
		fmt.Fprintln(cmd.ErrOrStderr(), tui.RenderStats(tui.NewStats(prompt, res)))
	}

	if opts.copy {
		if err := app.Copy(res.Text); err != nil {
			app.Logger.Warn("failed to copy to clipboard", zap.Error(err))
		} else {
			fmt.Fprintln(cmd.ErrOrStderr(), tui.SuccessStyle.Render("✓")+" Copied to clipboard")
		}
	}

	return nil
}
