package prompt

import "github.com/calebsorensen/notewright/internal/domain"

// ObservationGroup is one named checkbox group on the session observation
// form, with its selectable option labels.
type ObservationGroup struct {
	Name    string
	Options []string
}

// ObservationGroups is the static, ordered list of observation groups.
// Selections iterate in this order so formatted output is deterministic.
var ObservationGroups = []ObservationGroup{
	{Name: "Mood", Options: []string{
		"stable", "anxious", "depressed", "irritable", "elevated", "flat",
	}},
	{Name: "Engagement", Options: []string{
		"active participation", "cooperative", "guarded", "resistant", "distracted",
	}},
	{Name: "Progress", Options: []string{
		"improvement noted", "no change", "regression", "goal met", "new goal set",
	}},
	{Name: "Risk Indicators", Options: []string{
		"denied SI/HI", "passive ideation", "increased use",
		"housing instability", "medication noncompliance",
	}},
	{Name: "Coping Skills", Options: []string{
		"grounding", "breathing exercises", "cognitive reframing",
		"distress tolerance", "support outreach",
	}},
	{Name: "Barriers Discussed", Options: []string{
		"transportation", "childcare", "employment", "housing", "health", "legal",
	}},
}

// AllowedObservationGroups is the set form of ObservationGroups, used to
// validate selection keys.
var AllowedObservationGroups = func() map[string]bool {
	m := make(map[string]bool, len(ObservationGroups))
	for _, g := range ObservationGroups {
		m[g.Name] = true
	}
	return m
}()

// AssessmentField is a single labeled free-text field within a section.
type AssessmentField struct {
	ID    string
	Label string
}

// AssessmentSection is one titled block of an assessment form.
type AssessmentSection struct {
	ID     string
	Title  string
	Fields []AssessmentField
}

var biopsychosocialSections = []AssessmentSection{
	{ID: "presenting", Title: "Presenting Problem", Fields: []AssessmentField{
		{ID: "referral_reason", Label: "Reason for Referral"},
		{ID: "problem_history", Label: "History of Presenting Problem"},
	}},
	{ID: "psychosocial", Title: "Psychosocial History", Fields: []AssessmentField{
		{ID: "family", Label: "Family History"},
		{ID: "living", Label: "Living Situation"},
		{ID: "employment", Label: "Employment and Education"},
		{ID: "support", Label: "Social Support"},
	}},
	{ID: "medical", Title: "Medical History", Fields: []AssessmentField{
		{ID: "conditions", Label: "Medical Conditions"},
		{ID: "medications", Label: "Current Medications"},
	}},
	{ID: "substance_use", Title: "Substance Use History", Fields: []AssessmentField{
		{ID: "history", Label: "Substance Use History"},
		{ID: "current", Label: "Current Use"},
		{ID: "treatment", Label: "Prior Treatment"},
	}},
	{ID: "mental_health", Title: "Mental Health", Fields: []AssessmentField{
		{ID: "psych_history", Label: "Psychiatric History"},
		{ID: "symptoms", Label: "Current Symptoms"},
		{ID: "risk", Label: "Risk Assessment"},
	}},
	{ID: "summary", Title: "Clinical Summary", Fields: []AssessmentField{
		{ID: "impressions", Label: "Clinical Impressions"},
		{ID: "recommendations", Label: "Recommendations"},
	}},
}

var substanceUseSections = []AssessmentSection{
	{ID: "use_history", Title: "Use History", Fields: []AssessmentField{
		{ID: "substances", Label: "Substances Used"},
		{ID: "first_use", Label: "Age of First Use"},
		{ID: "frequency", Label: "Frequency and Amount"},
		{ID: "abstinence", Label: "Longest Period of Abstinence"},
	}},
	{ID: "consequences", Title: "Consequences of Use", Fields: []AssessmentField{
		{ID: "medical", Label: "Medical Consequences"},
		{ID: "legal", Label: "Legal Consequences"},
		{ID: "social", Label: "Social and Occupational Consequences"},
	}},
	{ID: "treatment", Title: "Treatment History", Fields: []AssessmentField{
		{ID: "episodes", Label: "Prior Treatment Episodes"},
		{ID: "motivation", Label: "Current Motivation for Treatment"},
	}},
	{ID: "summary", Title: "Summary", Fields: []AssessmentField{
		{ID: "impression", Label: "Diagnostic Impression"},
		{ID: "level_of_care", Label: "Level of Care Recommendation"},
	}},
}

var mentalStatusSections = []AssessmentSection{
	{ID: "appearance", Title: "Appearance and Behavior", Fields: []AssessmentField{
		{ID: "appearance", Label: "Appearance"},
		{ID: "behavior", Label: "Behavior"},
		{ID: "eye_contact", Label: "Eye Contact"},
	}},
	{ID: "speech_thought", Title: "Speech and Thought", Fields: []AssessmentField{
		{ID: "speech", Label: "Speech"},
		{ID: "process", Label: "Thought Process"},
		{ID: "content", Label: "Thought Content"},
	}},
	{ID: "mood_affect", Title: "Mood and Affect", Fields: []AssessmentField{
		{ID: "mood", Label: "Stated Mood"},
		{ID: "affect", Label: "Observed Affect"},
	}},
	{ID: "cognition", Title: "Cognition", Fields: []AssessmentField{
		{ID: "orientation", Label: "Orientation"},
		{ID: "memory", Label: "Memory"},
		{ID: "concentration", Label: "Concentration"},
		{ID: "insight", Label: "Insight and Judgment"},
	}},
	{ID: "risk", Title: "Risk", Fields: []AssessmentField{
		{ID: "si", Label: "Suicidal Ideation"},
		{ID: "hi", Label: "Homicidal Ideation"},
	}},
}

// SectionsFor returns the static section schema for an assessment type.
// Unknown types return nil; template lookup catches those first.
func SectionsFor(t domain.AssessmentType) []AssessmentSection {
	switch t {
	case domain.AssessmentBiopsychosocial:
		return biopsychosocialSections
	case domain.AssessmentSubstanceUse:
		return substanceUseSections
	case domain.AssessmentMentalStatus:
		return mentalStatusSections
	default:
		return nil
	}
}
