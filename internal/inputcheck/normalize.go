// Package inputcheck analyzes raw travel-input records.
package inputcheck

import (
	"strings"

	"github.com/jonathan/travel-planner/internal/types"
)

// Normalize trims every string entry in destinations, experiences and
// preference interests, dropping entries that become empty. Idempotent:
// normalizing twice equals normalizing once. The input is never mutated.
func Normalize(input types.TravelInputData) types.TravelInputData {
	out := input
	out.Destinations = trimEntries(input.Destinations)
	out.Experiences = trimEntries(input.Experiences)

	if input.Preferences != nil {
		prefs := *input.Preferences
		prefs.Interests = trimEntries(prefs.Interests)
		out.Preferences = &prefs
	}
	return out
}

// trimEntries trims each entry and drops the ones left empty.
func trimEntries(entries []string) []string {
	if entries == nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		trimmed := strings.TrimSpace(entry)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
