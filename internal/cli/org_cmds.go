package cli

import (
	"fmt"
	"strings"

	"github.com/calebsorensen/notewright/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPartnerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "partner",
		Short: "Manage partner organizations",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List partners",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(app.Out, formatter.PartnerList(app.Store.Partners(), app.Store.Programs()))
			return nil
		},
	}

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a partner and its standard program set",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			partner, programs := app.Store.AddPartner(name)
			fmt.Fprintf(app.Out, "Added partner %s with %d programs:\n", partner.Name, len(programs))
			for _, p := range programs {
				fmt.Fprintf(app.Out, "  %s (%s)\n", p.Name, p.ID)
			}
			return nil
		},
	}

	cmd.AddCommand(list, add)
	return cmd
}

func newProgramCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "program",
		Short: "List service programs",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List programs with their partners",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(app.Out, formatter.ProgramList(app.Store.Programs(), app.Store.Partners()))
			return nil
		},
	})
	return cmd
}
