package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dhabedank/prompt-enhancer/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, copyFn func(string) error) Model {
	t.Helper()
	e, err := core.NewEngine()
	require.NoError(t, err)
	return NewModel(e, WithCopyFunc(copyFn))
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// findEnhanced runs cmd and returns the enhancement it produced, if any.
func findEnhanced(t *testing.T, cmd tea.Cmd) (enhancedMsg, bool) {
	t.Helper()
	if cmd == nil {
		return enhancedMsg{}, false
	}
	switch msg := cmd().(type) {
	case enhancedMsg:
		return msg, true
	case tea.BatchMsg:
		for _, c := range msg {
			if em, ok := findEnhanced(t, c); ok {
				return em, true
			}
		}
	}
	return enhancedMsg{}, false
}

// submit types prompt and drives the model to the result screen.
func submit(t *testing.T, m Model, prompt string) Model {
	t.Helper()
	m.input.SetValue(prompt)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = next.(Model)
	require.Equal(t, stateEnhancing, m.state)
	assert.Contains(t, m.View(), "Enhancing")

	msg, ok := findEnhanced(t, cmd)
	require.True(t, ok, "ctrl+s did not schedule an enhancement")

	next, _ = m.Update(msg)
	return next.(Model)
}

func TestModelShowsTipsBeforeResult(t *testing.T) {
	m := newTestModel(t, nil)

	view := m.View()
	assert.Contains(t, view, "Tips for effective prompts")
	assert.Nil(t, m.Result())
}

func TestModelEnhance(t *testing.T) {
	m := newTestModel(t, nil)
	m = submit(t, m, "How does a hash table work?")

	require.NotNil(t, m.Result())
	assert.Equal(t, core.StrategyQuestion, m.Result().Strategy)
	assert.Equal(t, stateShowing, m.state)

	view := m.View()
	assert.Contains(t, view, "Enhanced Question")
	assert.NotContains(t, view, "Tips for effective prompts")
}

func TestModelKeepsLongPrompt(t *testing.T) {
	prompt := strings.TrimSuffix(strings.Repeat("Tell me about dogs and cats.\n", 200), "\n")
	require.Greater(t, len(prompt), 4096)

	m := newTestModel(t, nil)
	m = submit(t, m, prompt)

	require.NotNil(t, m.Result())
	assert.Equal(t, 1200, m.Result().Analysis.WordCount)
	assert.Equal(t, core.Enhance(prompt).Text, m.Result().Text)
}

func TestModelRejectsBlankPrompt(t *testing.T) {
	m := newTestModel(t, nil)
	m.input.SetValue("   ")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = next.(Model)

	assert.Nil(t, cmd)
	assert.Equal(t, stateEditing, m.state)
	assert.Contains(t, m.View(), "must not be blank")
}

func TestModelCopy(t *testing.T) {
	var copied string
	m := newTestModel(t, func(s string) error {
		copied = s
		return nil
	})
	m = submit(t, m, "Tell me about dogs")

	next, cmd := m.Update(key("c"))
	m = next.(Model)

	assert.Equal(t, m.Result().Text, copied)
	assert.True(t, m.copied)
	assert.NotNil(t, cmd, "expected a reset timer")
	assert.Contains(t, m.View(), "Copied!")

	// A stale reset from an earlier copy is ignored.
	next, _ = m.Update(copiedResetMsg{seq: m.copySeq - 1})
	m = next.(Model)
	assert.True(t, m.copied)

	next, _ = m.Update(copiedResetMsg{seq: m.copySeq})
	m = next.(Model)
	assert.False(t, m.copied)
	assert.NotContains(t, m.View(), "Copied!")
}

func TestModelCopyFailure(t *testing.T) {
	m := newTestModel(t, func(string) error { return errors.New("no clipboard") })
	m = submit(t, m, "Tell me about dogs")

	next, cmd := m.Update(key("c"))
	m = next.(Model)

	assert.Nil(t, cmd)
	assert.False(t, m.copied)
	assert.Contains(t, m.View(), "Copy failed")
}

func TestModelNewPrompt(t *testing.T) {
	m := newTestModel(t, nil)
	m = submit(t, m, "Tell me about dogs")

	next, _ := m.Update(key("n"))
	m = next.(Model)

	assert.Equal(t, stateEditing, m.state)
	assert.Nil(t, m.Result())
	assert.Empty(t, m.input.Value())
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = next.(Model)

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModelWindowResize(t *testing.T) {
	m := newTestModel(t, nil)
	m = submit(t, m, "Tell me about dogs")

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	assert.Equal(t, 120, m.width)
	assert.True(t, strings.Contains(m.View(), "Enhanced Prompt"))
}
