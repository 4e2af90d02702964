package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dhabedank/prompt-enhancer/internal/config"
	"github.com/dhabedank/prompt-enhancer/internal/core"
	"github.com/dhabedank/prompt-enhancer/internal/output"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// App holds the dependencies shared by every command. Fields left nil are
// filled in by NewApp or when the root command runs.
type App struct {
	Version string

	// Stdin supplies piped prompts.
	Stdin io.Reader
	// StdinIsTerminal reports whether Stdin is interactive.
	StdinIsTerminal func() bool
	// IsTerminal reports whether an output writer is interactive.
	IsTerminal func(w io.Writer) bool
	// Copy writes text to the system clipboard.
	Copy func(string) error
	// RunProgram runs a Bubble Tea model to completion.
	RunProgram func(m tea.Model) (tea.Model, error)

	Logger *zap.Logger
	Config *config.Config
	Engine *core.Engine

	configFile string
	verbose    bool
}

// NewApp returns an App wired to the real terminal and clipboard.
func NewApp(version string) *App {
	return &App{
		Version: version,
		Stdin:   os.Stdin,
		StdinIsTerminal: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
		IsTerminal: output.IsTerminal,
		Copy:       clipboard.WriteAll,
		RunProgram: func(m tea.Model) (tea.Model, error) {
			return tea.NewProgram(m, tea.WithAltScreen()).Run()
		},
	}
}

// NewRootCmd creates the top-level command and registers all subcommands
// against app.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "prompt-enhancer",
		Short: "Turn short prompts into detailed, structured instructions",
		Long: `Analyze a prompt for a generative AI assistant and rewrite it into a
longer, more structured instruction.

Build requests for a product become a full Project Requirement Document.
Questions, creative, analytical and technical prompts get depth, tone,
structure and examples guidance, skipping anything the prompt already asks for.

Everything runs locally; no model is called.`,
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.prepare(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				_ = app.Logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&app.configFile, "config", "", "Config file (default: .prompt-enhancer.yaml)")
	root.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newEnhanceCmd(app),
		newAnalyzeCmd(app),
		newBatchCmd(app),
		newWatchCmd(app),
		newInteractiveCmd(app),
		newSetupCmd(app),
	)

	return root
}

// prepare builds the logger, loads the config file and constructs the engine.
func (app *App) prepare(cmd *cobra.Command) error {
	if app.Logger == nil {
		logger, err := newLogger(app.verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		app.Logger = logger
	}

	// setup must stay usable to repair a broken config.
	repairing := cmd.Name() == "setup"

	cfg, err := config.Load(app.configFile)
	if err != nil {
		if !repairing {
			return fmt.Errorf("failed to load config: %w", err)
		}
		app.Logger.Warn("ignoring unreadable config", zap.Error(err))
		cfg = config.Default()
	}
	app.Config = cfg
	if cfg.Path != "" {
		app.Logger.Debug("loaded config", zap.String("path", cfg.Path))
	}

	engine, err := newEngine(cfg, app.Logger)
	if err != nil {
		if !repairing {
			return err
		}
		app.Logger.Warn("ignoring engine settings from config", zap.Error(err))
		if engine, err = newEngine(config.Default(), app.Logger); err != nil {
			return err
		}
	}
	app.Engine = engine
	return nil
}

// newEngine builds an engine from the config's keyword and threshold settings.
func newEngine(cfg *config.Config, logger *zap.Logger) (*core.Engine, error) {
	opts, err := cfg.EngineOptions()
	if err != nil {
		return nil, fmt.Errorf("failed to load keywords: %w", err)
	}
	opts = append(opts, core.WithLogger(logger))

	engine, err := core.NewEngine(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	return engine, nil
}

// newLogger builds a production logger on stderr. Only warnings show by
// default so command output stays clean.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return config.Build()
}

// outputConfig builds adapter settings from the config file.
func (app *App) outputConfig() output.Config {
	cfg := output.DefaultConfig()
	cfg.Style = app.Config.Style
	cfg.Width = app.Config.Width
	return cfg
}

// newAdapter resolves a format for w.
func (app *App) newAdapter(format string, w io.Writer, batch bool) (output.Adapter, error) {
	if !config.ValidOutput(format) {
		return nil, &core.ValidationError{Field: "output", Message: fmt.Sprintf("unknown format %q", format)}
	}
	cfg := app.outputConfig()
	cfg.Batch = batch
	adapter, err := output.New(format, cfg, app.IsTerminal(w))
	if err != nil {
		return nil, fmt.Errorf("failed to create output adapter: %w", err)
	}
	app.Logger.Debug("using output", zap.String("adapter", adapter.Name()))
	return adapter, nil
}
