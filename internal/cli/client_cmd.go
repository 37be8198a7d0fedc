package cli

import (
	"fmt"

	"github.com/calebsorensen/notewright/internal/cli/formatter"
	"github.com/calebsorensen/notewright/internal/domain"
	"github.com/calebsorensen/notewright/internal/prompt"
	"github.com/spf13/cobra"
)

func newClientCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage the client roster",
	}
	cmd.AddCommand(
		newClientListCmd(app),
		newClientAddCmd(app),
		newClientShowCmd(app),
		newClientRemoveCmd(app),
	)
	return cmd
}

func newClientListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List clients on the roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(app.Out, formatter.ClientList(app.Store.Clients(), app.Store.Programs()))
			return nil
		},
	}
}

func newClientAddCmd(app *App) *cobra.Command {
	var (
		name       string
		programID  string
		presenting string
		stage      string
		readiness  int
		intakeDate string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a client (interactive intake form on a terminal)",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := domain.Client{Name: name, ProgramID: programID}

			if app.interactive() && name == "" {
				var err error
				c, err = runIntakeForm(app.Store.Programs())
				if err != nil {
					return err
				}
			} else {
				profile := &domain.Profile{
					IntakeDate:        intakeDate,
					PresentingProblem: presenting,
					StageOfChange:     domain.StageOfChange(stage),
				}
				if cmd.Flags().Changed("readiness") {
					profile.Readiness = &readiness
				}
				if stage != "" && !domain.ValidStagesOfChange[profile.StageOfChange] {
					return fmt.Errorf("unknown stage of change %q", stage)
				}
				if intakeDate != "" || presenting != "" || stage != "" || cmd.Flags().Changed("readiness") {
					c.Profile = profile
				}
			}

			added, err := app.Store.AddClient(c)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Added client %s (%s)\n", added.Name, added.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "client display name")
	cmd.Flags().StringVar(&programID, "program", "", "program ID the client is enrolled in")
	cmd.Flags().StringVar(&presenting, "presenting", "", "presenting problem")
	cmd.Flags().StringVar(&stage, "stage", "", "stage of change")
	cmd.Flags().IntVar(&readiness, "readiness", 0, "readiness score 0-10")
	cmd.Flags().StringVar(&intakeDate, "intake", "", "intake date (YYYY-MM-DD)")
	return cmd
}

func newClientShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <client-id>",
		Short: "Show a client's formatted profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Store.ClientByID(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(app.Out, prompt.FormatClientProfile(c, app.Store.Programs(), app.Store.Partners()))
			return nil
		},
	}
}

func newClientRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <client-id>",
		Short: "Remove a client from the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Store.RemoveClient(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, "Client removed.")
			return nil
		},
	}
}
