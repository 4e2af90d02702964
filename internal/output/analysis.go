package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dhabedank/prompt-enhancer/internal/core"
	"github.com/dhabedank/prompt-enhancer/internal/tui"
)

// AnalysisReport is the analyze command's payload.
type AnalysisReport struct {
	Prompt   string        `json:"prompt" yaml:"prompt"`
	Strategy core.Strategy `json:"strategy" yaml:"strategy"`
	Label    string        `json:"label" yaml:"label"`
	Analysis core.Analysis `json:"analysis" yaml:"analysis"`
}

// WriteAnalysis writes a report as text, json or yaml. The card format
// frames the text table in a box.
func WriteAnalysis(w io.Writer, format string, r AnalysisReport) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		return encodeYAML(w, r)
	case "card":
		_, err := io.WriteString(w, tui.RenderAnalysisBox(r.Analysis, r.Strategy))
		return err
	case "text", "auto", "markdown":
		_, err := io.WriteString(w, tui.RenderAnalysis(r.Analysis, r.Strategy))
		return err
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
