// Package batch enhances a file of prompts with a bounded worker pool.
package batch

import (
	"context"
	"fmt"
	"os"

	"github.com/dhabedank/prompt-enhancer/internal/core"
	"github.com/dhabedank/prompt-enhancer/internal/output"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Item is one prompt read from a batch file.
type Item struct {
	ID     string `yaml:"id"`
	Prompt string `yaml:"prompt"`
}

// UnmarshalYAML accepts either a bare string or an {id, prompt} map.
// A null entry decodes to an empty prompt.
func (it *Item) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		if n.ShortTag() == nullTag {
			*it = Item{}
			return nil
		}
		it.Prompt = n.Value
		return nil
	}
	type plain Item
	var p plain
	if err := n.Decode(&p); err != nil {
		return err
	}
	*it = Item(p)
	return nil
}

const nullTag = "!!null"

// Parse decodes a batch file: a list of prompts, or a map with a prompts
// key holding that list. Items without an id get a random UUID.
func Parse(data []byte) ([]Item, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse batch file: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.MappingNode {
		root = promptsNode(root)
		if root == nil {
			return nil, nil
		}
	}
	if root.Kind != yaml.SequenceNode {
		if root.ShortTag() == nullTag {
			return nil, nil
		}
		return nil, fmt.Errorf("batch file must hold a list of prompts or a prompts key")
	}

	// Entries are decoded one by one: decoding the whole sequence into a
	// slice drops null entries, and every entry must yield a record.
	items := make([]Item, len(root.Content))
	for i, n := range root.Content {
		if err := items[i].UnmarshalYAML(n); err != nil {
			return nil, fmt.Errorf("failed to decode prompt %d: %w", i+1, err)
		}
	}

	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.New().String()
		}
	}
	return items, nil
}

// promptsNode returns the value of the prompts key, or nil when absent.
func promptsNode(m *yaml.Node) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == "prompts" {
			return m.Content[i+1]
		}
	}
	return nil
}

// Load reads and parses a batch file.
func Load(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	return Parse(data)
}

// Record is the outcome for one item. Exactly one of Result and Err is set.
type Record struct {
	Item
	Result *core.Result
	Err    error
}

// Document converts the record for the output adapters.
func (r Record) Document() output.Document {
	if r.Err != nil {
		return output.Document{ID: r.ID, Prompt: r.Prompt, Error: r.Err.Error()}
	}
	doc := output.NewDocument(r.Prompt, *r.Result)
	doc.ID = r.ID
	return doc
}

// Runner enhances items concurrently.
type Runner struct {
	engine  *core.Engine
	workers int
	logger  *zap.Logger
}

// NewRunner creates a runner with at most workers items in flight.
func NewRunner(engine *core.Engine, workers int, logger *zap.Logger) *Runner {
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{engine: engine, workers: workers, logger: logger}
}

// Run enhances every item and returns records in input order. Invalid
// prompts are reported on their record; only cancellation fails the run.
func (r *Runner) Run(ctx context.Context, items []Item) ([]Record, error) {
	records := make([]Record, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, it := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := core.ValidatePrompt(it.Prompt); err != nil {
				r.logger.Debug("skipping invalid prompt", zap.String("id", it.ID), zap.Error(err))
				records[i] = Record{Item: it, Err: err}
				return nil
			}
			res := r.engine.Enhance(it.Prompt)
			records[i] = Record{Item: it, Result: &res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch cancelled: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch cancelled: %w", err)
	}

	r.logger.Debug("batch complete", zap.Int("items", len(items)), zap.Int("workers", r.workers))
	return records, nil
}
