package prompt

import (
	"fmt"
	"strings"

	"github.com/calebsorensen/notewright/internal/domain"
)

// BuildNotePrompt assembles the single request string for note generation.
// It covers all selected clients; the external service is expected to return
// one note per client from this one call.
//
// Concatenation order is fixed: preamble, document context (when present),
// note type, session intervention, selections, one profile block per client
// in input order, then the static template for the note type.
func BuildNotePrompt(
	noteType domain.NoteType,
	clients []domain.Client,
	programs []domain.Program,
	partners []domain.Partner,
	docs []domain.Document,
	intervention string,
	sel domain.Selections,
) (string, error) {
	tmpl, err := NoteTemplate(noteType)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(notePreamble)
	b.WriteString("\n\n")

	if docBlock := FormatDocuments(docs); docBlock != "" {
		b.WriteString("# Reference Documents\n")
		b.WriteString("Use the following documents as background knowledge where relevant.\n")
		b.WriteString(docBlock)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "# Note Type\n%s\n\n", noteType)

	if strings.TrimSpace(intervention) != "" {
		fmt.Fprintf(&b, "# Session Intervention\n%s\n\n", strings.TrimSpace(intervention))
	}

	if selBlock := FormatSelections(sel); selBlock != "" {
		b.WriteString("# Session Observations\n")
		b.WriteString(selBlock)
		b.WriteString("\n")
	}

	b.WriteString("# Clients\n")
	for _, c := range clients {
		b.WriteString(FormatClientProfile(c, programs, partners))
		b.WriteString("\n")
	}

	b.WriteString("# Documentation Instructions\n")
	b.WriteString(tmpl)
	b.WriteString("\n")

	return b.String(), nil
}

// BuildAssessmentPrompt assembles the request string for assessment
// generation. Identity fields are always present in the header: empty ones
// render as "Not Provided" rather than being omitted, so the document header
// keeps a constant shape.
func BuildAssessmentPrompt(
	info domain.ClientInfo,
	assessmentType domain.AssessmentType,
	data domain.AssessmentData,
) (string, error) {
	tmpl, err := AssessmentTemplate(assessmentType)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(assessmentPreamble)
	b.WriteString("\n\n")

	b.WriteString("# Client Information\n")
	fmt.Fprintf(&b, "- Name: %s\n", orNotProvided(info.Name))
	fmt.Fprintf(&b, "- Date of Birth: %s\n", orNotProvided(info.DateOfBirth))
	fmt.Fprintf(&b, "- Program: %s\n", orNotProvided(info.Program))
	fmt.Fprintf(&b, "- Intake Date: %s\n", orNotProvided(info.IntakeDate))
	b.WriteString("\n")

	fmt.Fprintf(&b, "# Assessment Type\n%s\n\n", assessmentType)

	if dataBlock := FormatAssessmentData(SectionsFor(assessmentType), data); dataBlock != "" {
		b.WriteString("# Clinician Responses\n")
		b.WriteString(dataBlock)
	}

	b.WriteString("# Document Instructions\n")
	b.WriteString(tmpl)
	b.WriteString("\n")

	return b.String(), nil
}

func orNotProvided(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not Provided"
	}
	return s
}
