package cmd

import (
	"github.com/dhabedank/prompt-enhancer/internal/core"
	"github.com/dhabedank/prompt-enhancer/internal/output"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(app *App) *cobra.Command {
	var (
		file   string
		format string
	)

	cmd := &cobra.Command{
		Use:   "analyze [prompt...]",
		Short: "Show how a prompt is classified",
		Long: `Print the classifier's findings for a prompt and the strategy it selects,
without rewriting it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt, err := app.readPrompt(args, file)
			if err != nil {
				return err
			}

			a := app.Engine.Analyze(prompt)
			s := core.SelectStrategy(a)
			return output.WriteAnalysis(cmd.OutOrStdout(), format, output.AnalysisReport{
				Prompt:   prompt,
				Strategy: s,
				Label:    s.Label(),
				Analysis: a,
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the prompt from a file")
	cmd.Flags().StringVarP(&format, "output", "o", "text", "Output format (text/json/yaml)")

	return cmd
}
