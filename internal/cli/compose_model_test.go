package cli

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopRun(ctx context.Context) (string, error) { return "", nil }

func TestComposeModel_SuccessQuits(t *testing.T) {
	m := newComposeModel("Generating", noopRun)
	assert.Equal(t, stateSending, m.state)

	updated, cmd := m.Update(composeDoneMsg{output: "the notes"})
	model := updated.(composeModel)

	assert.Equal(t, stateSucceeded, model.state)
	assert.Equal(t, "the notes", model.output)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestComposeModel_FailureAllowsRetry(t *testing.T) {
	m := newComposeModel("Generating", noopRun)

	updated, _ := m.Update(composeErrMsg{err: errors.New("service unreachable")})
	model := updated.(composeModel)
	assert.Equal(t, stateFailed, model.state)
	assert.Contains(t, model.View(), "service unreachable")

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	model = updated.(composeModel)
	assert.Equal(t, stateSending, model.state)
	assert.NoError(t, model.err)
	assert.NotNil(t, cmd)
}

func TestComposeModel_RetryIgnoredWhileSending(t *testing.T) {
	m := newComposeModel("Generating", noopRun)

	// An in-flight call cannot be duplicated from the keyboard.
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	model := updated.(composeModel)
	assert.Equal(t, stateSending, model.state)
	assert.Nil(t, cmd)

	updated, cmd = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(composeModel)
	assert.Equal(t, stateSending, model.state)
	assert.Nil(t, cmd)
}

func TestComposeModel_QuitKeys(t *testing.T) {
	m := newComposeModel("Generating", noopRun)

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
	} {
		_, cmd := m.Update(key)
		require.NotNil(t, cmd, "key %v should quit", key)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}
