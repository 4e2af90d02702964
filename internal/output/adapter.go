package output

import (
	"fmt"
	"io"
	"os"

	"github.com/dhabedank/prompt-enhancer/internal/core"
	"github.com/mattn/go-isatty"
)

// Document is one enhancement as written by an adapter.
type Document struct {
	ID       string           `json:"id,omitempty" yaml:"id,omitempty"`
	Prompt   string           `json:"prompt" yaml:"prompt"`
	Text     string           `json:"text,omitempty" yaml:"text,omitempty"`
	Strategy core.Strategy    `json:"strategy,omitempty" yaml:"strategy,omitempty"`
	Label    string           `json:"label,omitempty" yaml:"label,omitempty"`
	Blocks   []core.BlockKind `json:"blocks,omitempty" yaml:"blocks,omitempty"`
	Analysis *core.Analysis   `json:"analysis,omitempty" yaml:"analysis,omitempty"`
	Error    string           `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewDocument builds the document for an enhanced prompt.
func NewDocument(prompt string, res core.Result) Document {
	a := res.Analysis
	return Document{
		Prompt:   prompt,
		Text:     res.Text,
		Strategy: res.Strategy,
		Label:    res.Strategy.Label(),
		Blocks:   res.Blocks,
		Analysis: &a,
	}
}

// Failed reports whether the document carries an error instead of a result.
func (d Document) Failed() bool {
	return d.Error != ""
}

// Result rebuilds the engine result behind the document.
func (d Document) Result() core.Result {
	res := core.Result{
		Text:     d.Text,
		Strategy: d.Strategy,
		Blocks:   d.Blocks,
	}
	if d.Analysis != nil {
		res.Analysis = *d.Analysis
	}
	return res
}

// Adapter is the interface all output adapters must implement.
type Adapter interface {
	// Name returns the adapter identifier for logging.
	Name() string

	// Write renders documents to w.
	Write(w io.Writer, docs []Document) error
}

// Config configures output adapter behavior.
type Config struct {
	// Style is the glamour style for markdown output.
	Style string

	// Width wraps cards and markdown.
	Width int

	// Batch writes a list even when there is a single document.
	Batch bool
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Style: "auto",
		Width: 80,
	}
}

// New creates the adapter for a format name. "auto" resolves to card on a
// terminal and text otherwise.
func New(name string, config Config, terminal bool) (Adapter, error) {
	if name == "auto" {
		name = "text"
		if terminal {
			name = "card"
		}
	}

	switch name {
	case "text":
		return NewTextAdapter(config), nil
	case "json":
		return NewJSONAdapter(config), nil
	case "yaml":
		return NewYAMLAdapter(config), nil
	case "markdown":
		return NewMarkdownAdapter(config)
	case "card":
		return NewCardAdapter(config), nil
	default:
		return nil, fmt.Errorf("unknown output adapter: %s", name)
	}
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
