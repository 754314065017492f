package mbti

// Profile is the immutable catalog entry for one personality type.
type Profile struct {
	Code        Code   `json:"code"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`

	Characteristics Characteristics `json:"characteristics"`
	Motivation      Motivation      `json:"motivation"`
	TeamDynamics    TeamDynamics    `json:"teamDynamics"`
	TalentSynergy   TalentSynergy   `json:"talentSynergy"`
	Compatibility   Compatibility   `json:"compatibility"`
	CareerPaths     CareerPaths     `json:"careerPaths"`
}

// Characteristics describes how the type thinks and works.
type Characteristics struct {
	Strengths          []string `json:"strengths"`
	Weaknesses         []string `json:"weaknesses"`
	WorkStyle          string   `json:"workStyle"`
	CommunicationStyle string   `json:"communicationStyle"`
	LearningStyle      string   `json:"learningStyle"`
	DecisionMaking     string   `json:"decisionMaking"`
}

// Motivation lists what energizes and drains the type.
type Motivation struct {
	Motivators   []string `json:"motivators"`
	Demotivators []string `json:"demotivators"`
	Stressors    []string `json:"stressors"`
	StressRelief []string `json:"stressRelief"`
}

// TeamDynamics describes the type's default position in a team.
type TeamDynamics struct {
	NaturalRole     string `json:"naturalRole"`
	BestEnvironment string `json:"bestEnvironment"`
	IdealTeamSize   string `json:"idealTeamSize"`
	ConflictStyle   string `json:"conflictStyle"`
}

// TalentSynergy classifies talent ids into disjoint synergy tiers for this
// type. Ids not listed in any tier score as neutral.
type TalentSynergy struct {
	High     []int `json:"high"`
	Moderate []int `json:"moderate"`
	Low      []int `json:"low"`
}

// Tier names the synergy classification of a talent for a given profile.
type Tier string

const (
	TierHigh     Tier = "high"
	TierModerate Tier = "moderate"
	TierLow      Tier = "low"
	TierNeutral  Tier = "neutral"
)

// TierOf returns the synergy tier for the given talent id.
func (s TalentSynergy) TierOf(talentID int) Tier {
	for _, id := range s.High {
		if id == talentID {
			return TierHigh
		}
	}
	for _, id := range s.Moderate {
		if id == talentID {
			return TierModerate
		}
	}
	for _, id := range s.Low {
		if id == talentID {
			return TierLow
		}
	}
	return TierNeutral
}

// Compatibility lists how other types pair with this one. The three lists
// are disjoint and never include the profile's own code.
type Compatibility struct {
	NaturalPartners []Code `json:"naturalPartners"`
	Complementary   []Code `json:"complementary"`
	Challenging     []Code `json:"challenging"`
}

// CareerPaths suggests fields and growth areas for the type.
type CareerPaths struct {
	IdealFields      []string `json:"idealFields"`
	RoleExamples     []string `json:"roleExamples"`
	DevelopmentAreas []string `json:"developmentAreas"`
}
