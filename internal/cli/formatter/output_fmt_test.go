package formatter

import (
	"strings"
	"testing"

	"github.com/calebsorensen/notewright/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestGeneratedNotes(t *testing.T) {
	notes := []domain.GeneratedNote{
		{ClientID: "a", ClientName: "Alice", Note: "Subjective: ..."},
		{ClientID: "b", ClientName: "Bob", Note: "Subjective: ..."},
	}

	out := GeneratedNotes(notes, 0)
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "Bob")
	assert.NotContains(t, out, "discarded")
	assert.Less(t, strings.Index(out, "Alice"), strings.Index(out, "Bob"))
}

func TestGeneratedNotes_DroppedFooter(t *testing.T) {
	out := GeneratedNotes([]domain.GeneratedNote{{ClientID: "a", ClientName: "A", Note: "n"}}, 2)
	assert.Contains(t, out, "2 unrequested response entries discarded")
}

func TestGeneratedNotes_Empty(t *testing.T) {
	out := GeneratedNotes(nil, 0)
	assert.Contains(t, out, "No notes generated")
}

func TestAssessment(t *testing.T) {
	out := Assessment(&domain.GeneratedAssessment{ClientName: "Jordan", Text: "full document"})
	assert.Contains(t, out, "Assessment: Jordan")
	assert.Contains(t, out, "full document")
}

func TestClientList(t *testing.T) {
	clients := []domain.Client{
		{ID: "11111111-aaaa", Name: "Alice", ProgramID: "p1", Profile: &domain.Profile{}},
		{ID: "22222222-bbbb", Name: "Bob"},
	}
	programs := []domain.Program{{ID: "p1", Name: "Outpatient Counseling"}}

	out := ClientList(clients, programs)
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "Outpatient Counseling")
	assert.Contains(t, out, "profile on file")
	assert.Contains(t, out, "no profile")

	assert.Contains(t, ClientList(nil, nil), "No clients")
}

func TestPartnerAndProgramLists(t *testing.T) {
	partners := []domain.Partner{{ID: "par1", Name: "Harbor Health"}}
	programs := []domain.Program{
		{ID: "p1", Name: "Outpatient Counseling", PartnerID: "par1"},
		{ID: "p2", Name: "Peer Recovery Support", PartnerID: "par1"},
	}

	out := PartnerList(partners, programs)
	assert.Contains(t, out, "Harbor Health")
	assert.Contains(t, out, "2 programs")

	out = ProgramList(programs, partners)
	assert.Contains(t, out, "Outpatient Counseling")
	assert.Contains(t, out, "Harbor Health")
}

func TestDocumentList(t *testing.T) {
	out := DocumentList([]domain.Document{{ID: "d1-xxxxxxxx", Title: "Handbook", Content: "12345"}})
	assert.Contains(t, out, "Handbook")
	assert.Contains(t, out, "5 chars")

	assert.Contains(t, DocumentList(nil), "No reference documents")
}
