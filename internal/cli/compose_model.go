package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/calebsorensen/notewright/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// composeState tracks a single generation call through the TUI. A call is
// single-shot: once sending, there is no cancellation, and the retry key is
// ignored until the call resolves.
type composeState int

const (
	stateSending composeState = iota
	stateSucceeded
	stateFailed
)

type composeDoneMsg struct{ output string }
type composeErrMsg struct{ err error }

// composeModel is the bubbletea model for the generation progress flow.
type composeModel struct {
	title  string
	run    func(ctx context.Context) (string, error)
	state  composeState
	spin   spinner.Model
	output string
	err    error
}

func newComposeModel(title string, run func(ctx context.Context) (string, error)) composeModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StyleBlue
	return composeModel{
		title: title,
		run:   run,
		state: stateSending,
		spin:  sp,
	}
}

func (m composeModel) startRun() tea.Cmd {
	run := m.run
	return func() tea.Msg {
		out, err := run(context.Background())
		if err != nil {
			return composeErrMsg{err: err}
		}
		return composeDoneMsg{output: out}
	}
}

func (m composeModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.startRun())
}

func (m composeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case composeDoneMsg:
		m.state = stateSucceeded
		m.output = msg.output
		return m, tea.Quit

	case composeErrMsg:
		m.state = stateFailed
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "r", "enter":
			// Resubmit only after a failure; an in-flight call cannot be
			// duplicated or aborted from here.
			if m.state == stateFailed {
				m.state = stateSending
				m.err = nil
				return m, tea.Batch(m.spin.Tick, m.startRun())
			}
		}
		return m, nil

	case spinner.TickMsg:
		if m.state != stateSending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m composeModel) View() string {
	switch m.state {
	case stateSending:
		return fmt.Sprintf("%s %s...\n", m.spin.View(), m.title)
	case stateFailed:
		return formatter.StyleRed.Render("Generation failed: "+m.err.Error()) + "\n" +
			formatter.StyleDim.Render("r retry · q quit") + "\n"
	default:
		return ""
	}
}

// runComposeTUI drives one generation call behind a spinner and writes the
// result to out once the program exits.
func runComposeTUI(out io.Writer, title string, run func(ctx context.Context) (string, error)) error {
	p := tea.NewProgram(newComposeModel(title, run), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return err
	}
	m, ok := final.(composeModel)
	if !ok {
		return fmt.Errorf("unexpected model type %T", final)
	}
	if m.state == stateFailed {
		return m.err
	}
	fmt.Fprint(out, m.output)
	return nil
}
