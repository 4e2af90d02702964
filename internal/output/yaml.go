package output

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLAdapter writes documents as YAML.
type YAMLAdapter struct {
	batch bool
}

// NewYAMLAdapter creates a YAML adapter.
func NewYAMLAdapter(config Config) *YAMLAdapter {
	return &YAMLAdapter{batch: config.Batch}
}

func (a *YAMLAdapter) Name() string {
	return "yaml"
}

func (a *YAMLAdapter) Write(w io.Writer, docs []Document) error {
	var v any = docs
	if !a.batch && len(docs) == 1 {
		v = docs[0]
	}
	return encodeYAML(w, v)
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return enc.Close()
}
