package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/calebsorensen/notewright/internal/domain"
	"github.com/charmbracelet/huh"
)

// runIntakeForm collects a new client with a structured profile through an
// interactive form. Every profile field may be left blank.
func runIntakeForm(programs []domain.Program) (domain.Client, error) {
	var (
		name       string
		programID  string
		intakeDate string
		presenting string
		stage      string
		readiness  string
		strengths  string
		barriers   string
		flags      []string
		notes      string
	)

	programOpts := make([]huh.Option[string], 0, len(programs)+1)
	programOpts = append(programOpts, huh.NewOption("(none)", ""))
	for _, p := range programs {
		programOpts = append(programOpts, huh.NewOption(p.Name, p.ID))
	}

	stageOpts := []huh.Option[string]{
		huh.NewOption("(not assessed)", ""),
		huh.NewOption("Precontemplation", string(domain.StagePrecontemplation)),
		huh.NewOption("Contemplation", string(domain.StageContemplation)),
		huh.NewOption("Preparation", string(domain.StagePreparation)),
		huh.NewOption("Action", string(domain.StageAction)),
		huh.NewOption("Maintenance", string(domain.StageMaintenance)),
	}

	flagOpts := []huh.Option[string]{
		huh.NewOption("Trauma History", "trauma"),
		huh.NewOption("Substance Use", "substance"),
		huh.NewOption("Psychiatric History", "psychiatric"),
		huh.NewOption("Medical Conditions", "medical"),
		huh.NewOption("Legal Involvement", "legal"),
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Client Name").Value(&name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewSelect[string]().Title("Program").Options(programOpts...).Value(&programID),
			huh.NewInput().Title("Intake Date (YYYY-MM-DD, blank for none)").
				Placeholder("2026-01-15").Value(&intakeDate).Validate(validateOptionalDate),
		),
		huh.NewGroup(
			huh.NewText().Title("Presenting Problem").Value(&presenting),
			huh.NewSelect[string]().Title("Stage of Change").Options(stageOpts...).Value(&stage),
			huh.NewInput().Title("Readiness (0-10, blank for none)").Value(&readiness).
				Validate(validateOptionalReadiness),
		),
		huh.NewGroup(
			huh.NewInput().Title("Strengths (comma separated)").Value(&strengths),
			huh.NewInput().Title("Barriers (comma separated)").Value(&barriers),
			huh.NewMultiSelect[string]().Title("History Flags").Options(flagOpts...).Value(&flags),
			huh.NewText().Title("History Notes").Value(&notes),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return domain.Client{}, err
	}

	profile := &domain.Profile{
		IntakeDate:        strings.TrimSpace(intakeDate),
		PresentingProblem: strings.TrimSpace(presenting),
		StageOfChange:     domain.StageOfChange(stage),
		Strengths:         splitList(strengths),
		Barriers:          splitList(barriers),
		HistoryNotes:      strings.TrimSpace(notes),
	}
	if v := strings.TrimSpace(readiness); v != "" {
		n, _ := strconv.Atoi(v)
		profile.Readiness = &n
	}
	for _, f := range flags {
		switch f {
		case "trauma":
			profile.TraumaHistory = true
		case "substance":
			profile.SubstanceUse = true
		case "psychiatric":
			profile.PsychiatricHistory = true
		case "medical":
			profile.MedicalConditions = true
		case "legal":
			profile.LegalInvolvement = true
		}
	}

	return domain.Client{
		Name:      strings.TrimSpace(name),
		ProgramID: programID,
		Profile:   profile,
	}, nil
}

func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

func validateOptionalReadiness(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 || n > 10 {
		return fmt.Errorf("enter a whole number from 0 to 10")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
