package tui

import (
	"strings"
	"testing"

	"github.com/dhabedank/prompt-enhancer/internal/core"
)

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		name     string
		chars    int
		expected int
	}{
		{"empty", 0, 0},
		{"negative", -10, 0},
		{"small", 40, 10},
		{"medium", 1000, 250},
		{"large", 4000, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EstimateTokens(tt.chars)
			if result != tt.expected {
				t.Errorf("EstimateTokens(%d) = %d, want %d", tt.chars, result, tt.expected)
			}
		})
	}
}

func TestFormatTokens(t *testing.T) {
	tests := []struct {
		name     string
		tokens   int
		expected string
	}{
		{"small", 500, "500"},
		{"thousand", 1500, "1.5k"},
		{"large", 15000, "15k"},
		{"very large", 150000, "150k"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatTokens(tt.tokens)
			if result != tt.expected {
				t.Errorf("FormatTokens(%d) = %s, want %s", tt.tokens, result, tt.expected)
			}
		})
	}
}

func TestNewStats(t *testing.T) {
	prompt := "Tell me about dogs"
	res := core.Enhance(prompt)

	s := NewStats(prompt, res)
	if s.InputWords != 4 {
		t.Errorf("InputWords = %d, want 4", s.InputWords)
	}
	if s.OutputWords <= s.InputWords {
		t.Errorf("OutputWords = %d, want more than %d", s.OutputWords, s.InputWords)
	}
	if s.InputTokens != 4 {
		t.Errorf("InputTokens = %d, want 4", s.InputTokens)
	}

	line := RenderStats(s)
	if !strings.Contains(line, "4 →") {
		t.Errorf("RenderStats() = %q, missing word counts", line)
	}
}
