package tui

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dhabedank/prompt-enhancer/internal/core"
	"go.uber.org/zap"
)

// copiedResetDelay is how long the "Copied!" label stays up.
const copiedResetDelay = 2 * time.Second

type state int

const (
	stateEditing state = iota
	stateEnhancing
	stateShowing
)

type enhancedMsg struct {
	result core.Result
}

type copiedResetMsg struct {
	seq int
}

// Model is the Bubble Tea model behind the interactive command.
type Model struct {
	engine  *core.Engine
	logger  *zap.Logger
	copyFn  func(string) error
	input   textarea.Model
	spinner spinner.Model

	state   state
	result  *core.Result
	err     error
	copied  bool
	copySeq int
	width   int
	quit    bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithCopyFunc replaces the system clipboard writer.
func WithCopyFunc(fn func(string) error) ModelOption {
	return func(m *Model) {
		m.copyFn = fn
	}
}

// WithModelLogger sets the logger for clipboard failures.
func WithModelLogger(logger *zap.Logger) ModelOption {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewModel creates the interactive model.
func NewModel(engine *core.Engine, opts ...ModelOption) Model {
	ta := textarea.New()
	ta.Placeholder = "Enter your prompt here... (e.g., 'Write a blog post about AI')"
	// No limits: pasted prompts must reach the engine whole.
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.ShowLineNumbers = false
	ta.SetWidth(DefaultWidth - 4)
	ta.SetHeight(5)
	ta.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	m := Model{
		engine:  engine,
		logger:  zap.NewNop(),
		copyFn:  clipboard.WriteAll,
		input:   ta,
		spinner: s,
		width:   DefaultWidth,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Result returns the latest enhancement, or nil before the first one.
func (m Model) Result() *core.Result {
	return m.result
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.SetWidth(max(msg.Width-4, minBodyWidth))
		return m, nil

	case enhancedMsg:
		res := msg.result
		m.result = &res
		m.state = stateShowing
		m.copied = false
		m.input.Blur()
		return m, nil

	case copiedResetMsg:
		if msg.seq == m.copySeq {
			m.copied = false
		}
		return m, nil

	case spinner.TickMsg:
		if m.state != stateEnhancing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quit = true
			return m, tea.Quit
		}
		switch m.state {
		case stateEditing:
			return m.updateEditing(msg)
		case stateShowing:
			return m.updateShowing(msg)
		}
		return m, nil
	}

	if m.state == stateEditing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.quit = true
		return m, tea.Quit

	case "ctrl+s":
		prompt := m.input.Value()
		if err := core.ValidatePrompt(prompt); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.state = stateEnhancing
		return m, tea.Batch(m.spinner.Tick, m.enhance(prompt))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateShowing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.quit = true
		return m, tea.Quit

	case "c":
		if err := m.copyFn(m.result.Text); err != nil {
			m.logger.Warn("failed to copy to clipboard", zap.Error(err))
			m.err = err
			return m, nil
		}
		m.err = nil
		m.copied = true
		m.copySeq++
		seq := m.copySeq
		return m, tea.Tick(copiedResetDelay, func(time.Time) tea.Msg {
			return copiedResetMsg{seq: seq}
		})

	case "n":
		m.input.Reset()
		m.result = nil
		m.copied = false
		m.err = nil
		m.state = stateEditing
		return m, m.input.Focus()
	}
	return m, nil
}

func (m Model) enhance(prompt string) tea.Cmd {
	engine := m.engine
	return func() tea.Msg {
		return enhancedMsg{result: engine.Enhance(prompt)}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quit {
		return ""
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("⚡ Prompt Enhancer"))
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("Transform basic prompts into detailed instructions."))
	b.WriteString("\n\n")

	switch m.state {
	case stateEditing:
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString(ErrorStyle.Render(m.err.Error()))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(RenderTips())
		b.WriteString(HelpStyle.Render("\n  ctrl+s: enhance • esc: quit"))

	case stateEnhancing:
		b.WriteString(m.spinner.View() + " Enhancing...")

	case stateShowing:
		b.WriteString(RenderCard(*m.result, m.width))
		b.WriteString("\n")
		b.WriteString(m.copyStatus())
		b.WriteString(HelpStyle.Render("\n  c: copy • n: new prompt • q: quit"))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m Model) copyStatus() string {
	switch {
	case m.err != nil:
		return ErrorStyle.Render("Copy failed: " + m.err.Error())
	case m.copied:
		return SuccessStyle.Render("✓ Copied!")
	default:
		return UnselectedStyle.Render("Copy")
	}
}
