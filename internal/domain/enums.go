package domain

type NoteType string

const (
	NoteSOAP      NoteType = "soap"
	NoteDAP       NoteType = "dap"
	NoteBIRP      NoteType = "birp"
	NoteGIRP      NoteType = "girp"
	NoteNarrative NoteType = "narrative"
)

// ValidNoteTypes is the canonical set of accepted note type strings.
var ValidNoteTypes = map[NoteType]bool{
	NoteSOAP: true, NoteDAP: true, NoteBIRP: true,
	NoteGIRP: true, NoteNarrative: true,
}

// AllNoteTypes lists every note type in display order.
var AllNoteTypes = []NoteType{NoteSOAP, NoteDAP, NoteBIRP, NoteGIRP, NoteNarrative}

// IsValidNoteType returns true if the given value is a known note type.
func IsValidNoteType(t NoteType) bool {
	return ValidNoteTypes[t]
}

type AssessmentType string

const (
	AssessmentBiopsychosocial AssessmentType = "biopsychosocial"
	AssessmentSubstanceUse    AssessmentType = "substance_use"
	AssessmentMentalStatus    AssessmentType = "mental_status"
)

// ValidAssessmentTypes is the canonical set of accepted assessment type strings.
var ValidAssessmentTypes = map[AssessmentType]bool{
	AssessmentBiopsychosocial: true,
	AssessmentSubstanceUse:    true,
	AssessmentMentalStatus:    true,
}

// AllAssessmentTypes lists every assessment type in display order.
var AllAssessmentTypes = []AssessmentType{
	AssessmentBiopsychosocial, AssessmentSubstanceUse, AssessmentMentalStatus,
}

// IsValidAssessmentType returns true if the given value is a known assessment type.
func IsValidAssessmentType(t AssessmentType) bool {
	return ValidAssessmentTypes[t]
}

type StageOfChange string

const (
	StagePrecontemplation StageOfChange = "precontemplation"
	StageContemplation    StageOfChange = "contemplation"
	StagePreparation      StageOfChange = "preparation"
	StageAction           StageOfChange = "action"
	StageMaintenance      StageOfChange = "maintenance"
)

// ValidStagesOfChange is the canonical set of accepted stage strings.
var ValidStagesOfChange = map[StageOfChange]bool{
	StagePrecontemplation: true, StageContemplation: true,
	StagePreparation: true, StageAction: true, StageMaintenance: true,
}
