package cli

import (
	"context"
	"fmt"

	"github.com/calebsorensen/notewright/internal/cli/formatter"
	"github.com/calebsorensen/notewright/internal/domain"
	"github.com/calebsorensen/notewright/internal/generation"
	"github.com/spf13/cobra"
)

func newNoteCmd(app *App) *cobra.Command {
	var (
		noteType     string
		clientIDs    []string
		intervention string
		selects      []string
		narratives   []string
		plain        bool
	)
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Generate progress notes for selected clients",
		Long: `Generate one progress note per selected client from a single request.
Observation groups: Mood, Engagement, Progress, Risk Indicators, Coping Skills, Barriers Discussed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := domain.NoteType(noteType)
			if !domain.IsValidNoteType(t) {
				return fmt.Errorf("unknown note type %q (valid: %v)", noteType, domain.AllNoteTypes)
			}

			sel, err := parseSelectionFlags(selects, narratives)
			if err != nil {
				return err
			}

			clients, err := app.Store.ClientsByID(clientIDs)
			if err != nil {
				return err
			}

			req := generation.NoteRequest{
				NoteType:     t,
				Clients:      clients,
				Programs:     app.Store.Programs(),
				Partners:     app.Store.Partners(),
				Documents:    app.Store.Documents(),
				Intervention: intervention,
				Selections:   sel,
			}

			run := func(ctx context.Context) (string, error) {
				result, err := app.Gen.GenerateNotes(ctx, req)
				if err != nil {
					return "", err
				}
				return formatter.GeneratedNotes(result.Notes, result.Dropped), nil
			}

			if app.interactive() && !plain {
				return runComposeTUI(app.Out, fmt.Sprintf("Generating %s notes for %d clients", t, len(clients)), run)
			}

			out, err := run(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(app.Out, out)
			return nil
		},
	}
	cmd.Flags().StringVar(&noteType, "type", string(domain.NoteSOAP), "note type (soap, dap, birp, girp, narrative)")
	cmd.Flags().StringArrayVar(&clientIDs, "client", nil, "client ID to document (repeatable)")
	cmd.Flags().StringVar(&intervention, "intervention", "", "free-text description of the session intervention")
	cmd.Flags().StringArrayVar(&selects, "select", nil, `checked observations, e.g. --select "Mood=anxious,flat" (repeatable)`)
	cmd.Flags().StringArrayVar(&narratives, "narrative", nil, `per-group narrative, e.g. --narrative "Mood=tearful at intake" (repeatable)`)
	cmd.Flags().BoolVar(&plain, "plain", false, "print without the progress TUI")
	cmd.MarkFlagRequired("client")
	return cmd
}

func newAssessmentCmd(app *App) *cobra.Command {
	var (
		assessType string
		name       string
		dob        string
		program    string
		intake     string
		fields     []string
		plain      bool
	)
	cmd := &cobra.Command{
		Use:   "assessment",
		Short: "Generate a clinical assessment document",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := domain.AssessmentType(assessType)
			if !domain.IsValidAssessmentType(t) {
				return fmt.Errorf("unknown assessment type %q (valid: %v)", assessType, domain.AllAssessmentTypes)
			}

			data, err := parseFieldFlags(fields)
			if err != nil {
				return err
			}

			req := generation.AssessmentRequest{
				Info: domain.ClientInfo{
					Name:        name,
					DateOfBirth: dob,
					Program:     program,
					IntakeDate:  intake,
				},
				AssessmentType: t,
				Data:           data,
			}

			run := func(ctx context.Context) (string, error) {
				result, err := app.Gen.GenerateAssessment(ctx, req)
				if err != nil {
					return "", err
				}
				return formatter.Assessment(result), nil
			}

			if app.interactive() && !plain {
				return runComposeTUI(app.Out, fmt.Sprintf("Generating %s assessment", t), run)
			}

			out, err := run(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(app.Out, out)
			return nil
		},
	}
	cmd.Flags().StringVar(&assessType, "type", string(domain.AssessmentBiopsychosocial), "assessment type (biopsychosocial, substance_use, mental_status)")
	cmd.Flags().StringVar(&name, "name", "", "client name")
	cmd.Flags().StringVar(&dob, "dob", "", "client date of birth")
	cmd.Flags().StringVar(&program, "program", "", "program name")
	cmd.Flags().StringVar(&intake, "intake", "", "intake date")
	cmd.Flags().StringArrayVar(&fields, "field", nil, `clinician response, e.g. --field "presenting.referral_reason=court referral" (repeatable)`)
	cmd.Flags().BoolVar(&plain, "plain", false, "print without the progress TUI")
	return cmd
}
