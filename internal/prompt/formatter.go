package prompt

import (
	"fmt"
	"strings"

	"github.com/calebsorensen/notewright/internal/domain"
)

// The formatters in this file are pure projections: identical inputs always
// yield byte-identical text. They never touch the network or mutate their
// arguments.

// labeledField is one candidate bullet line within a profile section.
type labeledField struct {
	label string
	value string
}

// profileSection groups labeled fields under a heading. The heading is only
// emitted when at least one field has a value.
type profileSection struct {
	heading string
	fields  []labeledField
}

// FormatClientProfile renders one client's profile as a labeled text block.
// An unresolvable program or partner reference omits just that line; a client
// with no profile yields a single placeholder line. It never fails.
func FormatClientProfile(c domain.Client, programs []domain.Program, partners []domain.Partner) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### Client: %s\n", c.Name)

	p := c.Profile
	if p == nil {
		b.WriteString("No profile data on file for this client.\n")
		return b.String()
	}

	var programName, partnerName string
	if prog := domain.FindProgram(programs, c.ProgramID); prog != nil {
		programName = prog.Name
		if partner := domain.FindPartner(partners, prog.PartnerID); partner != nil {
			partnerName = partner.Name
		}
	}

	readiness := ""
	if p.Readiness != nil {
		readiness = fmt.Sprintf("%d/10", *p.Readiness)
	}

	sections := []profileSection{
		{heading: "Core Information", fields: []labeledField{
			{"Intake Date", p.IntakeDate},
			{"Presenting Problem", p.PresentingProblem},
			{"Program", programName},
			{"Partner", partnerName},
		}},
		{heading: "Clinical Framework", fields: []labeledField{
			{"Stage of Change", string(p.StageOfChange)},
			{"Readiness", readiness},
			{"Personality Type", p.PersonalityType},
			{"Motivators", joinList(p.Motivators)},
		}},
		{heading: "Strengths & Supports", fields: []labeledField{
			{"Strengths", joinList(p.Strengths)},
			{"Skills", joinList(p.Skills)},
			{"Supports", joinList(p.Supports)},
		}},
		{heading: "Barriers & Needs", fields: []labeledField{
			{"Barriers", joinList(p.Barriers)},
			{"Case Management Needs", joinList(p.CaseManagementNeeds)},
		}},
		{heading: "History", fields: []labeledField{
			{"Flags", joinList(p.HistoryFlags())},
			{"Notes", p.HistoryNotes},
		}},
	}

	for _, sec := range sections {
		writeSection(&b, sec)
	}

	return b.String()
}

// writeSection emits a heading plus one bullet per non-empty field. A section
// with no populated fields contributes nothing, so the prompt never carries a
// degenerate heading.
func writeSection(b *strings.Builder, sec profileSection) {
	var lines []string
	for _, f := range sec.fields {
		if f.value != "" {
			lines = append(lines, fmt.Sprintf("- %s: %s", f.label, f.value))
		}
	}
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(b, "\n**%s**\n", sec.heading)
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

// FormatSelections renders the session observation record, one line per
// group that has checked options or a narrative, in the static group order.
// Returns "" when nothing was recorded.
func FormatSelections(sel domain.Selections) string {
	var b strings.Builder
	for _, group := range ObservationGroups {
		checked := sel.Checked[group.Name]
		narrative := strings.TrimSpace(sel.Narratives[group.Name])
		if len(checked) == 0 && narrative == "" {
			continue
		}
		b.WriteString("- ")
		b.WriteString(group.Name)
		b.WriteString(": ")
		b.WriteString(strings.Join(checked, ", "))
		if narrative != "" {
			if len(checked) > 0 {
				b.WriteString("; ")
			}
			b.WriteString("Note: ")
			b.WriteString(narrative)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatDocuments wraps each reference document between delimiter markers,
// in input order. An empty list produces no output at all, so the builder
// can skip the whole section.
func FormatDocuments(docs []domain.Document) string {
	if len(docs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, d := range docs {
		fmt.Fprintf(&b, "--- BEGIN REFERENCE DOCUMENT: %s ---\n", d.Title)
		b.WriteString(d.Content)
		if !strings.HasSuffix(d.Content, "\n") {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "--- END REFERENCE DOCUMENT: %s ---\n", d.Title)
	}
	return b.String()
}

// FormatAssessmentData renders the clinician's structured responses in the
// declared section and field order. Sections with no populated fields
// contribute nothing.
func FormatAssessmentData(sections []AssessmentSection, data domain.AssessmentData) string {
	var b strings.Builder
	for _, sec := range sections {
		var fields []string
		for _, f := range sec.Fields {
			v := strings.TrimSpace(data.Get(sec.ID, f.ID))
			if v == "" {
				continue
			}
			fields = append(fields, fmt.Sprintf("%s: %s", f.Label, v))
		}
		if len(fields) == 0 {
			continue
		}
		fmt.Fprintf(&b, "## %s\n", sec.Title)
		for _, f := range fields {
			b.WriteString(f)
			b.WriteString("\n")
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// joinList joins a list field with commas, skipping blank entries.
func joinList(items []string) string {
	var clean []string
	for _, s := range items {
		if strings.TrimSpace(s) != "" {
			clean = append(clean, s)
		}
	}
	return strings.Join(clean, ", ")
}
