package analysis

import "time"

// SchemaVersion identifies the shape of Result for stored snapshots and
// API consumers. Bump only on breaking changes to the record.
const SchemaVersion = "analysis.v1"

// scoreSet bundles the three computed scores.
type scoreSet struct {
	Synergy    int
	TeamFit    int
	Leadership int
}

// Result is the immutable value returned by the engine. Optional fields are
// present only when the corresponding input was supplied or resolved.
type Result struct {
	Mode            Mode   `json:"mode"`
	PersonalityType string `json:"personalityType,omitempty"`
	PrimaryRole     string `json:"primaryRole"`

	// Degraded marks a result produced despite an unrecognized personality
	// type. The supplied code is echoed in PersonalityType for diagnosis.
	Degraded bool `json:"degraded,omitempty"`

	SynergyScore    int `json:"synergyScore"`
	TeamFitScore    int `json:"teamFitScore"`
	LeadershipScore int `json:"leadershipScore"`

	Summary []string `json:"summary"`

	TopStrengthNames []string `json:"topStrengthNames,omitempty"`

	IdealEnvironment        string   `json:"idealEnvironment,omitempty"`
	Motivators              []string `json:"motivators,omitempty"`
	Stressors               []string `json:"stressors,omitempty"`
	NaturalPartners         []string `json:"naturalPartners,omitempty"`
	ComplementaryPartners   []string `json:"complementaryPartners,omitempty"`
	CharacteristicStrengths []string `json:"characteristicStrengths,omitempty"`

	GeneratedAt   time.Time `json:"generatedAt"`
	SchemaVersion string    `json:"schemaVersion"`
}
