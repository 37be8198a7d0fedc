package domain

// GeneratedNote is one per-client progress note returned by the generation
// service. Entries are filtered against the requested client set before
// they reach callers.
type GeneratedNote struct {
	ClientID   string `json:"clientId"`
	ClientName string `json:"clientName"`
	Note       string `json:"note"`
}

// GeneratedAssessment is a single full assessment document. The text has no
// structural decomposition; it is displayed and copied as-is.
type GeneratedAssessment struct {
	ClientName string
	Text       string
}

// AssessmentData maps assessment section IDs to field ID → free-text value.
// The mapping is sparse: absent or empty values are simply omitted from
// formatted output, never treated as errors.
type AssessmentData map[string]map[string]string

// Get returns the value for a section/field pair, or "".
func (d AssessmentData) Get(sectionID, fieldID string) string {
	if fields, ok := d[sectionID]; ok {
		return fields[fieldID]
	}
	return ""
}

// Set stores a value, allocating the section map if needed.
func (d AssessmentData) Set(sectionID, fieldID, value string) {
	if d[sectionID] == nil {
		d[sectionID] = make(map[string]string)
	}
	d[sectionID][fieldID] = value
}
