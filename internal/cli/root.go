package cli

import (
	"io"

	"github.com/calebsorensen/notewright/internal/generation"
	"github.com/calebsorensen/notewright/internal/roster"
	"github.com/spf13/cobra"
)

// App holds the state store and services used by CLI commands.
type App struct {
	Store *roster.Store
	Gen   generation.Service
	Out   io.Writer

	// IsInteractive reports whether stdin is a terminal; interactive forms
	// and the compose TUI are only offered when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "notewright" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "notewright",
		Short: "Clinical documentation authoring assistant",
	}

	root.AddCommand(
		newClientCmd(app),
		newPartnerCmd(app),
		newProgramCmd(app),
		newDocCmd(app),
		newNoteCmd(app),
		newAssessmentCmd(app),
	)

	return root
}
