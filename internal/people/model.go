package people

import (
	"time"

	"teamlens-backend/internal/analysis"
	"teamlens-backend/internal/talents"
)

// Person is a stored team member. PersonalityType and RankedTalents are both
// optional; the analysis mode is derived from whichever are present.
type Person struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	PersonalityType string           `json:"personalityType,omitempty"`
	RankedTalents   []talents.Ranked `json:"rankedTalents,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// AnalysisInput projects the record into the engine's input shape.
func (p Person) AnalysisInput() analysis.Person {
	return analysis.Person{
		PersonalityType: p.PersonalityType,
		RankedTalents:   p.RankedTalents,
	}
}
