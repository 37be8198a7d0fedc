package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelectionFlags(t *testing.T) {
	sel, err := parseSelectionFlags(
		[]string{"Mood=anxious, flat", "Progress=improvement noted"},
		[]string{"Mood=tearful during check-in"},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"anxious", "flat"}, sel.Checked["Mood"])
	assert.Equal(t, []string{"improvement noted"}, sel.Checked["Progress"])
	assert.Equal(t, "tearful during check-in", sel.Narratives["Mood"])
}

func TestParseSelectionFlags_UnknownGroup(t *testing.T) {
	_, err := parseSelectionFlags([]string{"Vibes=good"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Vibes")
}

func TestParseSelectionFlags_UnknownNarrativeGroup(t *testing.T) {
	// A misspelled group on a narrative-only flag must be rejected up front;
	// the formatter iterates the static group list, so an unknown key would
	// drop the clinician's text without a trace.
	_, err := parseSelectionFlags(nil, []string{"Vibes=client disclosed new safety concern"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Vibes")
}

func TestParseSelectionFlags_Malformed(t *testing.T) {
	_, err := parseSelectionFlags([]string{"no-equals-sign"}, nil)
	assert.Error(t, err)

	_, err = parseSelectionFlags(nil, []string{"=narrative with no group"})
	assert.Error(t, err)
}

func TestParseFieldFlags(t *testing.T) {
	data, err := parseFieldFlags([]string{
		"presenting.referral_reason=court referral",
		"summary.impressions=outpatient level of care",
	})
	require.NoError(t, err)

	assert.Equal(t, "court referral", data.Get("presenting", "referral_reason"))
	assert.Equal(t, "outpatient level of care", data.Get("summary", "impressions"))
}

func TestParseFieldFlags_MissingDot(t *testing.T) {
	_, err := parseFieldFlags([]string{"justakey=value"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "section.field")
}
