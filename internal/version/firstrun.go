package version

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dhabedank/prompt-enhancer/internal/config"
	"github.com/dhabedank/prompt-enhancer/internal/tui"
)

const initializedMarker = ".initialized"

// IsFirstRun returns true if neither a home config file nor the first-run
// marker exists.
func IsFirstRun() bool {
	if homePath, err := config.HomePath(); err != nil {
		return false
	} else if _, err := os.Stat(homePath); err == nil {
		return false
	}

	stateDir := StateDir()
	if stateDir == "" {
		return false
	}
	if _, err := os.Stat(filepath.Join(stateDir, initializedMarker)); err == nil {
		return false
	}

	return true
}

// MarkInitialized creates the first-run marker.
func MarkInitialized() {
	stateDir := StateDir()
	if stateDir == "" {
		return
	}
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		return
	}
	_ = os.WriteFile(filepath.Join(stateDir, initializedMarker), []byte{}, 0644)
}

// PrintFirstRunNotice prints a welcome message for first-time users.
func PrintFirstRunNotice(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s Welcome to prompt-enhancer!\n", tui.TitleStyle.Render("*"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Quick start:")
	fmt.Fprintf(w, "    1. Run %s to pick your output format\n", tui.ValueStyle.Render("prompt-enhancer setup"))
	fmt.Fprintf(w, "    2. Enhance a prompt: %s\n", tui.ValueStyle.Render(`prompt-enhancer enhance "Tell me about dogs"`))
	fmt.Fprintf(w, "    3. Or try the terminal UI: %s\n", tui.ValueStyle.Render("prompt-enhancer interactive"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", tui.HelpStyle.Render("Run 'prompt-enhancer --help' for all options"))
	fmt.Fprintln(w)

	// Mark as initialized so we don't show this again
	MarkInitialized()
}
