package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dhabedank/prompt-enhancer/internal/config"
	"github.com/dhabedank/prompt-enhancer/internal/tui"
	"github.com/spf13/cobra"
)

// setupChoice is one option in a wizard step.
type setupChoice struct {
	ID          string
	Name        string
	Description string
}

// setupStep is one page of the wizard.
type setupStep struct {
	Label   string
	Title   string
	Choices []setupChoice
}

var setupSteps = []setupStep{
	{
		Label: "Output",
		Title: "Select Default Output Format",
		Choices: []setupChoice{
			{"auto", "Auto", "Card on a terminal, plain text when piped"},
			{"card", "Card", "Bordered card themed by strategy"},
			{"markdown", "Markdown", "Rendered markdown"},
			{"text", "Text", "Enhanced prompt only"},
			{"json", "JSON", "Prompt, strategy, analysis and text"},
			{"yaml", "YAML", "Prompt, strategy, analysis and text"},
		},
	},
	{
		Label: "Style",
		Title: "Select Markdown Style",
		Choices: []setupChoice{
			{"auto", "Auto", "Follow the terminal background"},
			{"dark", "Dark", "For dark terminals"},
			{"light", "Light", "For light terminals"},
			{"dracula", "Dracula", "Dracula color scheme"},
			{"tokyo-night", "Tokyo Night", "Tokyo Night color scheme"},
			{"pink", "Pink", "Pink accents"},
			{"notty", "Plain", "No colors or styling"},
		},
	},
}

func newSetupCmd(app *App) *cobra.Command {
	var resetConfig bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Interactive configuration wizard",
		Long: `Configure prompt-enhancer with an interactive wizard.

This wizard helps you select:
- Output format: used by enhance, batch and watch when --output is not set
- Markdown style: the glamour theme for markdown output

Configuration is saved to ~/.prompt-enhancer.yaml, or to the file named
by --config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetup(cmd, app, resetConfig)
		},
	}

	cmd.Flags().BoolVar(&resetConfig, "reset", false, "Reset configuration to defaults")
	return cmd
}

func runSetup(cmd *cobra.Command, app *App, reset bool) error {
	out := cmd.OutOrStdout()
	configPath := app.configFile
	if configPath == "" {
		home, err := config.HomePath()
		if err != nil {
			return fmt.Errorf("failed to locate home directory: %w", err)
		}
		configPath = home
	}

	// Handle reset
	if reset {
		if err := config.Remove(configPath); err != nil {
			return err
		}
		fmt.Fprintln(out, tui.SuccessStyle.Render("✓")+" Configuration reset to defaults")
		fmt.Fprintf(out, "  Removed: %s\n", configPath)
		printShadowNote(out, app, configPath)
		return nil
	}

	// Run the wizard
	m, err := app.RunProgram(newSetupModel(setupSteps))
	if err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}

	finalModel := m.(setupModel)
	if finalModel.cancelled {
		fmt.Fprintln(out, "Setup cancelled")
		return nil
	}

	// Keep settings the wizard does not cover.
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		cfg = config.Default()
	}
	cfg.Output = finalModel.selected[0]
	cfg.Style = finalModel.selected[1]

	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, tui.SuccessStyle.Render("✓")+" Configuration saved to "+configPath)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Selected:")
	fmt.Fprintf(out, "  Output: %s\n", tui.ValueStyle.Render(cfg.Output))
	fmt.Fprintf(out, "  Style:  %s\n", tui.ValueStyle.Render(cfg.Style))
	printShadowNote(out, app, configPath)

	return nil
}

// printShadowNote warns when another config file is in effect, since its
// values win over the file setup just wrote.
func printShadowNote(w io.Writer, app *App, configPath string) {
	active := ""
	if app.Config != nil {
		active = app.Config.Path
	}
	if active == "" || samePath(active, configPath) {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, tui.WarningStyle.Render("Note:")+" "+active+" takes precedence over "+configPath)
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return absA == absB
}

// Bubble Tea model for the setup wizard

type setupModel struct {
	step      int
	steps     []setupStep
	lists     []list.Model
	selected  []string
	cancelled bool
	width     int
	height    int
}

type choiceItem struct {
	choice setupChoice
}

func (c choiceItem) Title() string       { return c.choice.Name }
func (c choiceItem) Description() string { return c.choice.Description }
func (c choiceItem) FilterValue() string { return c.choice.Name }

func newSetupModel(steps []setupStep) setupModel {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(lipgloss.Color("#9b59b6"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(lipgloss.Color("#95a5a6"))

	lists := make([]list.Model, len(steps))
	for i, step := range steps {
		items := make([]list.Item, len(step.Choices))
		for j, c := range step.Choices {
			items[j] = choiceItem{choice: c}
		}

		l := list.New(items, delegate, 60, 14)
		l.Title = step.Title
		l.SetShowStatusBar(false)
		l.SetFilteringEnabled(false)
		l.Styles.Title = tui.TitleStyle
		lists[i] = l
	}

	return setupModel{
		steps:    steps,
		lists:    lists,
		selected: make([]string, len(steps)),
	}
}

func (m setupModel) Init() tea.Cmd {
	return nil
}

func (m setupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for i := range m.lists {
			m.lists[i].SetWidth(msg.Width)
			m.lists[i].SetHeight(msg.Height - 4)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			// Select current item
			if item, ok := m.lists[m.step].SelectedItem().(choiceItem); ok {
				m.selected[m.step] = item.choice.ID
			}

			// Move to next step or finish
			if m.step == len(m.steps)-1 {
				return m, tea.Quit
			}
			m.step++
			return m, nil

		case "left", "h":
			if m.step > 0 {
				m.step--
			}
			return m, nil
		}
	}

	// Update current list
	var cmd tea.Cmd
	m.lists[m.step], cmd = m.lists[m.step].Update(msg)
	return m, cmd
}

func (m setupModel) View() string {
	if m.cancelled {
		return ""
	}

	// Progress indicator
	progress := "\n  "
	for i, s := range m.steps {
		if i == m.step {
			progress += tui.SelectedStyle.Render(fmt.Sprintf("[%s]", s.Label))
		} else if i < m.step {
			progress += tui.SuccessStyle.Render(fmt.Sprintf("✓ %s", s.Label))
		} else {
			progress += tui.UnselectedStyle.Render(fmt.Sprintf("○ %s", s.Label))
		}
		if i < len(m.steps)-1 {
			progress += " → "
		}
	}
	progress += "\n\n"

	// Help text
	help := tui.HelpStyle.Render("\n  ↑/↓: navigate • enter: select • ←: back • q: quit")

	return progress + m.lists[m.step].View() + help
}
