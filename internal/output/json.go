package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONAdapter writes documents as indented JSON.
type JSONAdapter struct {
	batch bool
}

// NewJSONAdapter creates a JSON adapter.
func NewJSONAdapter(config Config) *JSONAdapter {
	return &JSONAdapter{batch: config.Batch}
}

func (a *JSONAdapter) Name() string {
	return "json"
}

// Write emits a single object, or an array in batch mode.
func (a *JSONAdapter) Write(w io.Writer, docs []Document) error {
	var v any = docs
	if !a.batch && len(docs) == 1 {
		v = docs[0]
	}

	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(output)); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
