package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dhabedank/prompt-enhancer/cmd"
	"github.com/dhabedank/prompt-enhancer/internal/tui"
	"github.com/dhabedank/prompt-enhancer/internal/version"
)

// buildVersion is overridden at release time with -ldflags "-X main.buildVersion=...".
var buildVersion = "0.1.0"

func main() {
	firstRun := version.IsFirstRun()

	app := cmd.NewApp(buildVersion)
	if err := cmd.NewRootCmd(app).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, tui.ErrorStyle.Render("Error:"), err)
		os.Exit(1)
	}

	if firstRun {
		version.PrintFirstRunNotice(os.Stderr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	version.PrintUpdateNotice(os.Stderr, version.NewChecker().CheckForUpdate(ctx, buildVersion))
}
