package analysis

import (
	"sort"
	"strings"

	"teamlens-backend/internal/talents"
)

// Person is the engine input: an optional personality type and an optional
// ranked talent list. At least one must be populated for analysis to proceed.
type Person struct {
	PersonalityType string           `json:"personalityType,omitempty"`
	RankedTalents   []talents.Ranked `json:"rankedTalents,omitempty"`
}

// hasType reports whether a personality type value was supplied.
func (p Person) hasType() bool {
	return strings.TrimSpace(p.PersonalityType) != ""
}

// hasTalents reports whether a non-empty ranked talent list was supplied.
func (p Person) hasTalents() bool {
	return len(p.RankedTalents) > 0
}

// topRanked returns up to the five strongest ranked entries, ordered by rank.
// The input slice is not modified.
func (p Person) topRanked() []talents.Ranked {
	ranked := make([]talents.Ranked, len(p.RankedTalents))
	copy(ranked, p.RankedTalents)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Rank < ranked[j].Rank })
	if len(ranked) > maxScoredTalents {
		ranked = ranked[:maxScoredTalents]
	}
	return ranked
}
