package core

import (
	"errors"
	"strings"
	"testing"
)

func TestValidatePrompt(t *testing.T) {
	tests := []struct {
		name    string
		prompt  string
		wantErr bool
	}{
		{"plain", "Tell me about dogs", false},
		{"unicode", "Écris une histoire", false},
		{"empty", "", true},
		{"whitespace", " \t\n", true},
		{"invalid utf8", "abc\xff", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePrompt(tt.prompt)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePrompt(%q) error = %v, wantErr %v", tt.prompt, err, tt.wantErr)
			}
			if err != nil {
				var verr *ValidationError
				if !errors.As(err, &verr) || verr.Field != "prompt" {
					t.Errorf("expected prompt ValidationError, got %v", err)
				}
			}
		})
	}
}

func TestThresholdsValidate(t *testing.T) {
	if err := DefaultThresholds().Validate(); err != nil {
		t.Errorf("default thresholds invalid: %v", err)
	}
	bad := DefaultThresholds()
	bad.ExamplesMinWords = -1
	if err := bad.Validate(); err == nil {
		t.Error("expected error for negative threshold")
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := ValidatePrompt("")
	if err == nil {
		t.Fatal("Expected validation error")
	}

	// Check error message contains useful information
	errMsg := err.Error()
	if !strings.Contains(errMsg, "validation error") || !strings.Contains(errMsg, "prompt") {
		t.Errorf("Error message should name the field, got: %s", errMsg)
	}
}
