package output

import (
	"fmt"
	"io"

	"github.com/dhabedank/prompt-enhancer/internal/tui"
)

// CardAdapter writes each document as a bordered card themed by strategy.
type CardAdapter struct {
	width int
}

// NewCardAdapter creates a card adapter.
func NewCardAdapter(config Config) *CardAdapter {
	return &CardAdapter{width: config.Width}
}

func (a *CardAdapter) Name() string {
	return "card"
}

func (a *CardAdapter) Write(w io.Writer, docs []Document) error {
	for _, doc := range docs {
		var out string
		if doc.Failed() {
			out = tui.ErrorStyle.Render(fmt.Sprintf("✗ %s: %s", doc.ID, doc.Error))
		} else {
			out = tui.RenderCard(doc.Result(), a.width)
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return fmt.Errorf("failed to write card: %w", err)
		}
	}
	return nil
}
