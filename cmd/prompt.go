package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dhabedank/prompt-enhancer/internal/core"
)

var errNoPrompt = errors.New("no prompt given: pass it as arguments, with --file, or on stdin")

// readPrompt takes the prompt from args, then file, then piped stdin, and
// validates it.
func (app *App) readPrompt(args []string, file string) (string, error) {
	var prompt string
	switch {
	case len(args) > 0:
		prompt = strings.Join(args, " ")
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read prompt file: %w", err)
		}
		prompt = strings.TrimSpace(string(data))
	case !app.StdinIsTerminal():
		data, err := io.ReadAll(app.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		prompt = strings.TrimSpace(string(data))
	default:
		return "", errNoPrompt
	}

	if err := core.ValidatePrompt(prompt); err != nil {
		return "", err
	}
	return prompt, nil
}
