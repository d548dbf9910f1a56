package form

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// suggestMaxDistance bounds how far a value may be from an option before we
// stop treating it as a typo.
const suggestMaxDistance = 3

// Suggest returns the option closest to input, or "" when nothing is near
// enough. Matching is case-insensitive.
func Suggest(input string, options []string) string {
	in := strings.ToLower(strings.TrimSpace(input))
	if in == "" {
		return ""
	}
	best := ""
	bestDist := suggestMaxDistance + 1
	for _, opt := range options {
		d := levenshtein.ComputeDistance(in, strings.ToLower(opt))
		if d < bestDist {
			best = opt
			bestDist = d
		}
	}
	if bestDist > suggestMaxDistance {
		return ""
	}
	return best
}
