package domain

import "fmt"

// Selections is the clinician's observation record for one session: checked
// option labels per observation group, plus an optional free-text narrative
// per group. Group keys must come from the static observation-group list
// (see prompt.ObservationGroups).
type Selections struct {
	Checked    map[string][]string
	Narratives map[string]string
}

// NewSelections returns an empty Selections value with initialized maps.
func NewSelections() Selections {
	return Selections{
		Checked:    make(map[string][]string),
		Narratives: make(map[string]string),
	}
}

// IsEmpty reports whether no group has a checked option or a narrative.
func (s Selections) IsEmpty() bool {
	for _, opts := range s.Checked {
		if len(opts) > 0 {
			return false
		}
	}
	for _, n := range s.Narratives {
		if n != "" {
			return false
		}
	}
	return true
}

// ValidateGroups checks that every checkbox and narrative key is one of the
// allowed observation groups. Both maps share the same keyspace; a narrative
// under an unknown group would otherwise vanish from formatted output.
func (s Selections) ValidateGroups(allowed map[string]bool) error {
	for group := range s.Checked {
		if !allowed[group] {
			return fmt.Errorf("unknown observation group %q", group)
		}
	}
	for group := range s.Narratives {
		if !allowed[group] {
			return fmt.Errorf("unknown observation group %q", group)
		}
	}
	return nil
}
