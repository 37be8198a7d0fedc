package cli

import (
	"fmt"
	"strings"

	"github.com/calebsorensen/notewright/internal/domain"
	"github.com/calebsorensen/notewright/internal/prompt"
)

// parseSelectionFlags turns repeated --select "Group=opt1,opt2" and
// --narrative "Group=free text" flags into a Selections value, validating
// group names against the static observation-group list.
func parseSelectionFlags(selects, narratives []string) (domain.Selections, error) {
	sel := domain.NewSelections()

	for _, raw := range selects {
		group, value, err := splitFlag(raw, "--select")
		if err != nil {
			return domain.Selections{}, err
		}
		for _, opt := range strings.Split(value, ",") {
			opt = strings.TrimSpace(opt)
			if opt != "" {
				sel.Checked[group] = append(sel.Checked[group], opt)
			}
		}
	}

	for _, raw := range narratives {
		group, value, err := splitFlag(raw, "--narrative")
		if err != nil {
			return domain.Selections{}, err
		}
		sel.Narratives[group] = value
	}

	if err := sel.ValidateGroups(prompt.AllowedObservationGroups); err != nil {
		return domain.Selections{}, err
	}
	return sel, nil
}

// parseFieldFlags turns repeated --field "section.field=value" flags into
// sparse assessment data.
func parseFieldFlags(fields []string) (domain.AssessmentData, error) {
	data := make(domain.AssessmentData)
	for _, raw := range fields {
		key, value, err := splitFlag(raw, "--field")
		if err != nil {
			return nil, err
		}
		sectionID, fieldID, ok := strings.Cut(key, ".")
		if !ok {
			return nil, fmt.Errorf("--field key %q must be section.field", key)
		}
		data.Set(sectionID, fieldID, value)
	}
	return data, nil
}

func splitFlag(raw, flagName string) (key, value string, err error) {
	key, value, ok := strings.Cut(raw, "=")
	if !ok || strings.TrimSpace(key) == "" {
		return "", "", fmt.Errorf("%s %q must be key=value", flagName, raw)
	}
	return strings.TrimSpace(key), strings.TrimSpace(value), nil
}
