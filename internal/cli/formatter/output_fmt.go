package formatter

import (
	"fmt"
	"strings"

	"github.com/calebsorensen/notewright/internal/domain"
)

// GeneratedNotes renders the validated notes for terminal display, one block
// per client. A non-zero dropped count is surfaced as a dim footer so the
// clinician-facing output stays quiet about model noise.
func GeneratedNotes(notes []domain.GeneratedNote, dropped int) string {
	var b strings.Builder
	if len(notes) == 0 {
		b.WriteString(StyleDim.Render("No notes generated."))
		b.WriteByte('\n')
	}
	for i, n := range notes {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(StyleHeader.Render(n.ClientName))
		b.WriteByte('\n')
		b.WriteString(n.Note)
		b.WriteByte('\n')
	}
	if dropped > 0 {
		b.WriteString(StyleDim.Render(fmt.Sprintf("(%d unrequested response entries discarded)", dropped)))
		b.WriteByte('\n')
	}
	return b.String()
}

// Assessment renders a generated assessment document.
func Assessment(a *domain.GeneratedAssessment) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render("Assessment: " + a.ClientName))
	b.WriteByte('\n')
	b.WriteString(a.Text)
	b.WriteByte('\n')
	return b.String()
}

// ClientList renders the roster as one line per client.
func ClientList(clients []domain.Client, programs []domain.Program) string {
	if len(clients) == 0 {
		return StyleDim.Render("No clients on the roster.") + "\n"
	}
	var b strings.Builder
	for _, c := range clients {
		program := ""
		if p := domain.FindProgram(programs, c.ProgramID); p != nil {
			program = StyleDim.Render(" (" + p.Name + ")")
		}
		profile := StyleDim.Render("no profile")
		if c.Profile != nil {
			profile = StyleGreen.Render("profile on file")
		}
		fmt.Fprintf(&b, "%s  %s%s  %s\n",
			StyleBlue.Render(shortID(c.ID)), StyleBold.Render(c.Name), program, profile)
	}
	return b.String()
}

// PartnerList renders partners with their program counts.
func PartnerList(partners []domain.Partner, programs []domain.Program) string {
	if len(partners) == 0 {
		return StyleDim.Render("No partners configured.") + "\n"
	}
	var b strings.Builder
	for _, p := range partners {
		count := 0
		for _, prog := range programs {
			if prog.PartnerID == p.ID {
				count++
			}
		}
		fmt.Fprintf(&b, "%s  %s  %s\n",
			StyleBlue.Render(shortID(p.ID)), StyleBold.Render(p.Name),
			StyleDim.Render(fmt.Sprintf("%d programs", count)))
	}
	return b.String()
}

// ProgramList renders programs with their owning partner.
func ProgramList(programs []domain.Program, partners []domain.Partner) string {
	if len(programs) == 0 {
		return StyleDim.Render("No programs configured.") + "\n"
	}
	var b strings.Builder
	for _, prog := range programs {
		partner := ""
		if p := domain.FindPartner(partners, prog.PartnerID); p != nil {
			partner = StyleDim.Render(" / " + p.Name)
		}
		fmt.Fprintf(&b, "%s  %s%s\n",
			StyleBlue.Render(shortID(prog.ID)), StyleFg.Render(prog.Name), partner)
	}
	return b.String()
}

// DocumentList renders reference documents with content sizes.
func DocumentList(docs []domain.Document) string {
	if len(docs) == 0 {
		return StyleDim.Render("No reference documents loaded.") + "\n"
	}
	var b strings.Builder
	for _, d := range docs {
		fmt.Fprintf(&b, "%s  %s  %s\n",
			StyleBlue.Render(shortID(d.ID)), StyleBold.Render(d.Title),
			StyleDim.Render(fmt.Sprintf("%d chars", len(d.Content))))
	}
	return b.String()
}

// shortID truncates a UUID for display.
func shortID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
