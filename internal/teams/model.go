package teams

import (
	"time"

	"teamlens-backend/internal/analysis"
	"teamlens-backend/internal/talents"
)

// Member is one team participant. Stored people arrive via their id; ad-hoc
// members carry their data inline.
type Member struct {
	PersonID        string           `json:"personId,omitempty"`
	Name            string           `json:"name"`
	PersonalityType string           `json:"personalityType,omitempty"`
	RankedTalents   []talents.Ranked `json:"rankedTalents,omitempty"`
}

// Input describes a team to analyze. MemberIDs reference stored people and
// Members supplies inline participants; either or both may be used.
type Input struct {
	Name      string   `json:"name"`
	MemberIDs []string `json:"memberIds,omitempty"`
	Members   []Member `json:"members,omitempty"`
}

// MemberResult is the per-member slice of a team analysis.
type MemberResult struct {
	PersonID        string        `json:"personId,omitempty"`
	Name            string        `json:"name"`
	Mode            analysis.Mode `json:"mode"`
	PersonalityType string        `json:"personalityType,omitempty"`
	PrimaryRole     string        `json:"primaryRole"`
	SynergyScore    int           `json:"synergyScore"`
	TeamFitScore    int           `json:"teamFitScore"`
	LeadershipScore int           `json:"leadershipScore"`
}

// PairKind classifies a pairwise compatibility highlight.
type PairKind string

const (
	PairNatural       PairKind = "natural"
	PairComplementary PairKind = "complementary"
	PairChallenging   PairKind = "challenging"
)

// Pair is one compatibility highlight between two members.
type Pair struct {
	Kind  PairKind `json:"kind"`
	A     string   `json:"a"`
	AType string   `json:"aType"`
	B     string   `json:"b"`
	BType string   `json:"bType"`
}

// Analysis is the aggregated team report.
type Analysis struct {
	Name              string                   `json:"name"`
	MemberCount       int                      `json:"memberCount"`
	AnalyzedCount     int                      `json:"analyzedCount"`
	Skipped           []string                 `json:"skipped,omitempty"`
	AverageTeamFit    int                      `json:"averageTeamFit"`
	AverageLeadership int                      `json:"averageLeadership"`
	CategoryCoverage  map[talents.Category]int `json:"categoryCoverage"`
	MissingCategories []talents.Category       `json:"missingCategories,omitempty"`
	Pairs             []Pair                   `json:"pairs,omitempty"`
	Members           []MemberResult           `json:"members"`
	GeneratedAt       time.Time                `json:"generatedAt"`
}
