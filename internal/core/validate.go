package core

import (
	"strings"
	"unicode/utf8"
)

// ValidatePrompt enforces the caller-side precondition of Enhance: the
// prompt must be valid UTF-8 and contain something other than whitespace.
// Enhance itself accepts any string.
func ValidatePrompt(prompt string) error {
	if !utf8.ValidString(prompt) {
		return &ValidationError{Field: "prompt", Message: "must be valid UTF-8"}
	}
	if strings.TrimSpace(prompt) == "" {
		return &ValidationError{Field: "prompt", Message: "must not be blank"}
	}
	return nil
}
