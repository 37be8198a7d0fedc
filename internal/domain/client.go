package domain

import "fmt"

// Client is a person on the active roster. Profile is optional; a client can
// be added with a name only and fleshed out later.
type Client struct {
	ID        string
	Name      string
	ProgramID string
	Profile   *Profile
}

// Clone returns a deep copy of the client. Profile slices and the readiness
// pointer are copied too, so mutating the clone never writes through to the
// original.
func (c Client) Clone() Client {
	if c.Profile == nil {
		return c
	}
	p := *c.Profile
	p.Motivators = append([]string(nil), c.Profile.Motivators...)
	p.Strengths = append([]string(nil), c.Profile.Strengths...)
	p.Skills = append([]string(nil), c.Profile.Skills...)
	p.Supports = append([]string(nil), c.Profile.Supports...)
	p.Barriers = append([]string(nil), c.Profile.Barriers...)
	p.CaseManagementNeeds = append([]string(nil), c.Profile.CaseManagementNeeds...)
	if c.Profile.Readiness != nil {
		r := *c.Profile.Readiness
		p.Readiness = &r
	}
	c.Profile = &p
	return c
}

// Profile holds the structured intake picture for a client. Every field is
// optional; formatting omits whatever is absent.
type Profile struct {
	IntakeDate        string
	PresentingProblem string
	StageOfChange     StageOfChange
	Motivators        []string
	Readiness         *int // 0-10, nil when not assessed
	PersonalityType   string

	Strengths           []string
	Skills              []string
	Supports            []string
	Barriers            []string
	CaseManagementNeeds []string

	TraumaHistory      bool
	SubstanceUse       bool
	PsychiatricHistory bool
	MedicalConditions  bool
	LegalInvolvement   bool
	HistoryNotes       string
}

// ValidateReadiness checks the readiness score is within the 0-10 scale.
func (p *Profile) ValidateReadiness() error {
	if p.Readiness == nil {
		return nil
	}
	if *p.Readiness < 0 || *p.Readiness > 10 {
		return fmt.Errorf("readiness score %d must be between 0 and 10", *p.Readiness)
	}
	return nil
}

// HistoryFlags returns the labels of the true history flags, in a fixed order.
func (p *Profile) HistoryFlags() []string {
	var flags []string
	if p.TraumaHistory {
		flags = append(flags, "Trauma History")
	}
	if p.SubstanceUse {
		flags = append(flags, "Substance Use")
	}
	if p.PsychiatricHistory {
		flags = append(flags, "Psychiatric History")
	}
	if p.MedicalConditions {
		flags = append(flags, "Medical Conditions")
	}
	if p.LegalInvolvement {
		flags = append(flags, "Legal Involvement")
	}
	return flags
}

// ClientInfo carries the identity fields printed at the top of an assessment.
// Unlike the profile formatter, empty fields are rendered as "Not Provided"
// rather than omitted, so the assessment header always has the same shape.
type ClientInfo struct {
	Name        string
	DateOfBirth string
	Program     string
	IntakeDate  string
}
