package groupsync

import "github.com/agnivade/levenshtein"

// IsNearDuplicate reports whether candidate is within maxDistance edits of
// any name already in existing. This runs only inside this offline tool —
// the core parser's "no fuzzy correction" non-goal is unaffected, since
// nothing here influences token matching at parse time.
func IsNearDuplicate(candidate string, existing []string, maxDistance int) bool {
	for _, name := range existing {
		if levenshtein.ComputeDistance(candidate, name) <= maxDistance {
			return true
		}
	}
	return false
}

// FilterNearDuplicates returns the subset of candidates that is not within
// maxDistance edits of any name in existing or of an earlier-accepted
// candidate in the same batch.
func FilterNearDuplicates(candidates, existing []string, maxDistance int) []string {
	accepted := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		if IsNearDuplicate(candidate, existing, maxDistance) || IsNearDuplicate(candidate, accepted, maxDistance) {
			continue
		}
		accepted = append(accepted, candidate)
	}
	return accepted
}
