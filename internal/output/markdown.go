package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/dhabedank/prompt-enhancer/internal/tui"
)

// MarkdownAdapter renders documents through glamour.
type MarkdownAdapter struct {
	renderer *glamour.TermRenderer
}

// NewMarkdownAdapter creates a markdown adapter for the configured style.
func NewMarkdownAdapter(config Config) (*MarkdownAdapter, error) {
	r, err := tui.NewMarkdownRenderer(config.Style, config.Width)
	if err != nil {
		return nil, err
	}
	return &MarkdownAdapter{renderer: r}, nil
}

func (a *MarkdownAdapter) Name() string {
	return "markdown"
}

func (a *MarkdownAdapter) Write(w io.Writer, docs []Document) error {
	for _, doc := range docs {
		src := tui.MarkdownDocument(doc.Result())
		if doc.Failed() {
			src = fmt.Sprintf("> **%s** failed: %s\n", doc.ID, doc.Error)
		}

		out, err := a.renderer.Render(src)
		if err != nil {
			return fmt.Errorf("failed to render markdown: %w", err)
		}
		if _, err := io.WriteString(w, out); err != nil {
			return fmt.Errorf("failed to write markdown: %w", err)
		}
	}
	return nil
}
