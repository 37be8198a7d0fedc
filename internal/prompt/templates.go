package prompt

import (
	"fmt"

	"github.com/calebsorensen/notewright/internal/domain"
)

// notePreamble is the fixed role instruction prepended to every note request.
const notePreamble = `You are an experienced behavioral-health clinician writing session documentation.
Write in a professional, objective clinical voice. Use only the information provided below; never invent diagnoses, medications, quotes, or events that are not supported by the session data. Refer to each person as "the client". Do not include any commentary outside the requested documentation.`

// assessmentPreamble is the fixed role instruction for assessment requests.
const assessmentPreamble = `You are an experienced behavioral-health clinician completing a formal clinical assessment document.
Write in a professional, objective clinical voice. Integrate the structured responses below into flowing clinical prose under the headings required by the assessment format. Where information was not provided, state that it was not reported; never fabricate history, diagnoses, or test results. Output the assessment document only, with no commentary before or after.`

// noteTemplates maps each note type to the literal format instructions for
// that documentation style. The mapping must stay total; see init.
var noteTemplates = map[domain.NoteType]string{
	domain.NoteSOAP: `Write one SOAP progress note per client using these exact section headings:
Subjective: the client's reported experience, statements, and concerns from this session.
Objective: observable presentation, affect, engagement, and clinician observations.
Assessment: clinical interpretation of progress toward treatment goals and current functioning.
Plan: next steps, referrals, homework, and the focus of the next session.`,

	domain.NoteDAP: `Write one DAP progress note per client using these exact section headings:
Data: objective and subjective information gathered during the session, including observations and client statements.
Assessment: clinical interpretation of the data and progress toward treatment goals.
Plan: next steps, interventions to continue, and the focus of the next session.`,

	domain.NoteBIRP: `Write one BIRP progress note per client using these exact section headings:
Behavior: the client's presentation, statements, and observable behavior during the session.
Intervention: the specific interventions and techniques the clinician used.
Response: how the client responded to each intervention.
Plan: next steps and the focus of the next session.`,

	domain.NoteGIRP: `Write one GIRP progress note per client using these exact section headings:
Goal: the treatment goal addressed in this session.
Intervention: the specific interventions and techniques the clinician used.
Response: the client's response to the interventions.
Plan: next steps and the focus of the next session.`,

	domain.NoteNarrative: `Write one narrative progress note per client as a single flowing paragraph or two.
Cover the session focus, the client's presentation and engagement, interventions used, the client's response, and the plan going forward. No section headings.`,
}

// assessmentTemplates maps each assessment type to its document-format
// instructions. The mapping must stay total; see init.
var assessmentTemplates = map[domain.AssessmentType]string{
	domain.AssessmentBiopsychosocial: `Produce a complete biopsychosocial assessment with these headings in order: Identifying Information, Presenting Problem, Psychosocial History, Medical History, Substance Use History, Mental Health, Clinical Summary and Recommendations.`,

	domain.AssessmentSubstanceUse: `Produce a complete substance use assessment with these headings in order: Identifying Information, Use History, Consequences of Use, Treatment History, Diagnostic Impression and Level of Care Recommendation.`,

	domain.AssessmentMentalStatus: `Produce a complete mental status examination write-up with these headings in order: Identifying Information, Appearance and Behavior, Speech and Thought, Mood and Affect, Cognition, Risk, Summary.`,
}

func init() {
	// Content fidelity depends on the literal templates, so an enum variant
	// without one is a build-time defect, not a runtime condition to paper
	// over with a blank prompt.
	for _, t := range domain.AllNoteTypes {
		if _, ok := noteTemplates[t]; !ok {
			panic(fmt.Sprintf("prompt: note type %q has no template", t))
		}
	}
	for _, t := range domain.AllAssessmentTypes {
		if _, ok := assessmentTemplates[t]; !ok {
			panic(fmt.Sprintf("prompt: assessment type %q has no template", t))
		}
	}
}

// NoteTemplate returns the static template for a note type.
func NoteTemplate(t domain.NoteType) (string, error) {
	tmpl, ok := noteTemplates[t]
	if !ok {
		return "", fmt.Errorf("no template configured for note type %q", t)
	}
	return tmpl, nil
}

// AssessmentTemplate returns the static template for an assessment type.
func AssessmentTemplate(t domain.AssessmentType) (string, error) {
	tmpl, ok := assessmentTemplates[t]
	if !ok {
		return "", fmt.Errorf("no template configured for assessment type %q", t)
	}
	return tmpl, nil
}
