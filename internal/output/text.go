package output

import (
	"fmt"
	"io"
	"strings"
)

// batchSeparator divides documents in plain-text batch output.
const batchSeparator = "\n---\n\n"

// TextAdapter writes only the enhanced text, suitable for piping.
type TextAdapter struct {
	batch bool
}

// NewTextAdapter creates a text adapter.
func NewTextAdapter(config Config) *TextAdapter {
	return &TextAdapter{batch: config.Batch}
}

func (a *TextAdapter) Name() string {
	return "text"
}

func (a *TextAdapter) Write(w io.Writer, docs []Document) error {
	var b strings.Builder
	for i, doc := range docs {
		if i > 0 {
			b.WriteString(batchSeparator)
		}
		if a.batch {
			b.WriteString("# " + doc.ID)
			if doc.Label != "" {
				b.WriteString(" (" + doc.Label + ")")
			}
			b.WriteString("\n\n")
		}
		if doc.Failed() {
			fmt.Fprintf(&b, "error: %s\n", doc.Error)
			continue
		}
		b.WriteString(doc.Text)
		b.WriteString("\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write text: %w", err)
	}
	return nil
}
