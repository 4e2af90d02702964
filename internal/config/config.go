// Package config loads and saves the prompt-enhancer settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dhabedank/prompt-enhancer/internal/core"
	"gopkg.in/yaml.v3"
)

// FileName is the settings file looked up in the working and home directories.
const FileName = ".prompt-enhancer.yaml"

// Output formats accepted by the output setting.
var Outputs = []string{"auto", "text", "json", "yaml", "markdown", "card"}

// Config is the settings file. Zero values fall back to defaults.
type Config struct {
	Output       string           `yaml:"output,omitempty"`
	Style        string           `yaml:"style,omitempty"`
	Width        int              `yaml:"width,omitempty"`
	Workers      int              `yaml:"workers,omitempty"`
	Copy         bool             `yaml:"copy,omitempty"`
	KeywordsFile string           `yaml:"keywords_file,omitempty"`
	Thresholds   *core.Thresholds `yaml:"thresholds,omitempty"`

	// Path is the file the config was read from, empty for defaults.
	Path string `yaml:"-"`
}

// Default returns the built-in settings.
func Default() *Config {
	t := core.DefaultThresholds()
	return &Config{
		Output:     "auto",
		Style:      "auto",
		Width:      80,
		Workers:    4,
		Thresholds: &t,
	}
}

// HomePath returns ~/.prompt-enhancer.yaml.
func HomePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, FileName), nil
}

// Find returns the settings file to use: explicit when set, otherwise the
// working directory file, then the home file. It returns "" when none exist.
func Find(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}
	if homePath, err := HomePath(); err == nil {
		if _, err := os.Stat(homePath); err == nil {
			return homePath
		}
	}
	return ""
}

// Load reads the settings file found by Find and applies defaults.
// A missing explicit file is an error; missing implicit files are not.
func Load(explicit string) (*Config, error) {
	path := Find(explicit)
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads one settings file and applies defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.Path = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Output == "" {
		c.Output = def.Output
	}
	if c.Style == "" {
		c.Style = def.Style
	}
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Workers <= 0 {
		c.Workers = def.Workers
	}
	if c.Thresholds == nil {
		c.Thresholds = def.Thresholds
		return
	}
	// Partial threshold blocks keep the canonical value for unset fields.
	if c.Thresholds.ShortPromptWords == 0 {
		c.Thresholds.ShortPromptWords = def.Thresholds.ShortPromptWords
	}
	if c.Thresholds.SpecificWords == 0 {
		c.Thresholds.SpecificWords = def.Thresholds.SpecificWords
	}
	if c.Thresholds.ExamplesMinWords == 0 {
		c.Thresholds.ExamplesMinWords = def.Thresholds.ExamplesMinWords
	}
}

// Validate checks the output format and thresholds.
func (c *Config) Validate() error {
	if !ValidOutput(c.Output) {
		return &core.ValidationError{Field: "output", Message: fmt.Sprintf("unknown format %q", c.Output)}
	}
	if c.Thresholds != nil {
		if err := c.Thresholds.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ValidOutput reports whether name is a known output format.
func ValidOutput(name string) bool {
	for _, o := range Outputs {
		if o == name {
			return true
		}
	}
	return false
}

// EngineOptions turns the settings into engine options, loading the extra
// keyword catalog when one is configured. Relative keyword paths resolve
// against the settings file's directory.
func (c *Config) EngineOptions() ([]core.Option, error) {
	var opts []core.Option
	if c.Thresholds != nil {
		opts = append(opts, core.WithThresholds(*c.Thresholds))
	}
	if c.KeywordsFile != "" {
		path := c.KeywordsFile
		if !filepath.IsAbs(path) && c.Path != "" {
			path = filepath.Join(filepath.Dir(c.Path), path)
		}
		extra, err := core.LoadKeywords(path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, core.WithKeywords(extra))
	}
	return opts, nil
}

// Save writes the settings to path, creating parent directories.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Remove deletes the settings file at path. A missing file is not an error.
func Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove config: %w", err)
	}
	return nil
}
