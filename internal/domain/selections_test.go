package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelections_IsEmpty(t *testing.T) {
	sel := NewSelections()
	assert.True(t, sel.IsEmpty())

	sel.Checked["Mood"] = []string{}
	sel.Narratives["Mood"] = ""
	assert.True(t, sel.IsEmpty(), "empty sets and blank narratives do not count")

	sel.Checked["Mood"] = []string{"stable"}
	assert.False(t, sel.IsEmpty())

	sel2 := NewSelections()
	sel2.Narratives["Progress"] = "some note"
	assert.False(t, sel2.IsEmpty())
}

func TestSelections_ValidateGroups(t *testing.T) {
	allowed := map[string]bool{"Mood": true, "Progress": true}

	sel := NewSelections()
	sel.Checked["Mood"] = []string{"stable"}
	assert.NoError(t, sel.ValidateGroups(allowed))

	sel.Checked["Vibes"] = []string{"good"}
	err := sel.ValidateGroups(allowed)
	assert.ErrorContains(t, err, "Vibes")
}

func TestSelections_ValidateGroups_NarrativeKeys(t *testing.T) {
	allowed := map[string]bool{"Mood": true}

	sel := NewSelections()
	sel.Narratives["Mood"] = "tearful at intake"
	assert.NoError(t, sel.ValidateGroups(allowed))

	// A narrative under an unknown group must fail validation, not silently
	// disappear from formatted output.
	sel.Narratives["Vibes"] = "client disclosed new safety concern"
	err := sel.ValidateGroups(allowed)
	assert.ErrorContains(t, err, "Vibes")
}

func TestProfile_HistoryFlags(t *testing.T) {
	p := &Profile{TraumaHistory: true, MedicalConditions: true}
	assert.Equal(t, []string{"Trauma History", "Medical Conditions"}, p.HistoryFlags())

	assert.Empty(t, (&Profile{}).HistoryFlags())
}

func TestProfile_ValidateReadiness(t *testing.T) {
	ok := 7
	assert.NoError(t, (&Profile{Readiness: &ok}).ValidateReadiness())
	assert.NoError(t, (&Profile{}).ValidateReadiness())

	bad := -1
	assert.Error(t, (&Profile{Readiness: &bad}).ValidateReadiness())
	bad = 11
	assert.Error(t, (&Profile{Readiness: &bad}).ValidateReadiness())
}
