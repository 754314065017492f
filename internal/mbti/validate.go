package mbti

import (
	"fmt"

	"teamlens-backend/internal/talents"
)

// Validate checks every static-data invariant of the catalog against the
// talent catalog. A failure here is a programming error in static data, so
// the test suite runs this for the built-in profiles; request handling never
// sees an invalid catalog.
func (c *Catalog) Validate(talentCatalog *talents.Catalog) error {
	canonical := make(map[Code]bool, len(AllCodes))
	for _, code := range AllCodes {
		canonical[code] = true
	}

	for _, p := range c.All() {
		if !canonical[p.Code] {
			return fmt.Errorf("%s: not a canonical type code", p.Code)
		}
		if _, _, err := ParseCode(string(p.Code)); err != nil {
			return fmt.Errorf("%s: %w", p.Code, err)
		}
		if p.DisplayName == "" || p.Description == "" {
			return fmt.Errorf("%s: displayName and description are required", p.Code)
		}
		if err := validateCharacteristics(p); err != nil {
			return err
		}
		if err := validateTeamDynamics(p); err != nil {
			return err
		}
		if err := validateSynergy(p, talentCatalog); err != nil {
			return err
		}
		if err := validateCompatibility(p, canonical); err != nil {
			return err
		}
		if err := validateCareerPaths(p); err != nil {
			return err
		}
	}
	return nil
}

func validateCharacteristics(p Profile) error {
	ch := p.Characteristics
	if len(ch.Strengths) == 0 || len(ch.Weaknesses) == 0 {
		return fmt.Errorf("%s: strengths and weaknesses must be non-empty", p.Code)
	}
	for _, s := range []struct{ name, value string }{
		{"workStyle", ch.WorkStyle},
		{"communicationStyle", ch.CommunicationStyle},
		{"learningStyle", ch.LearningStyle},
		{"decisionMaking", ch.DecisionMaking},
	} {
		if s.value == "" {
			return fmt.Errorf("%s: characteristics.%s is required", p.Code, s.name)
		}
	}
	return nil
}

func validateTeamDynamics(p Profile) error {
	td := p.TeamDynamics
	for _, s := range []struct{ name, value string }{
		{"naturalRole", td.NaturalRole},
		{"bestEnvironment", td.BestEnvironment},
		{"idealTeamSize", td.IdealTeamSize},
		{"conflictStyle", td.ConflictStyle},
	} {
		if s.value == "" {
			return fmt.Errorf("%s: teamDynamics.%s is required", p.Code, s.name)
		}
	}
	return nil
}

func validateSynergy(p Profile, talentCatalog *talents.Catalog) error {
	seen := make(map[int]Tier)
	tiers := []struct {
		tier Tier
		ids  []int
	}{
		{TierHigh, p.TalentSynergy.High},
		{TierModerate, p.TalentSynergy.Moderate},
		{TierLow, p.TalentSynergy.Low},
	}
	for _, t := range tiers {
		for _, id := range t.ids {
			if id < talents.MinID || id > talents.MaxID {
				return fmt.Errorf("%s: synergy tier %s references id %d outside [%d, %d]", p.Code, t.tier, id, talents.MinID, talents.MaxID)
			}
			if talentCatalog != nil {
				if _, ok := talentCatalog.ByID(id); !ok {
					return fmt.Errorf("%s: synergy tier %s references unknown talent %d", p.Code, t.tier, id)
				}
			}
			if prev, dup := seen[id]; dup {
				return fmt.Errorf("%s: talent %d appears in tiers %s and %s", p.Code, id, prev, t.tier)
			}
			seen[id] = t.tier
		}
	}
	return nil
}

func validateCompatibility(p Profile, canonical map[Code]bool) error {
	seen := make(map[Code]string)
	lists := []struct {
		name  string
		codes []Code
	}{
		{"naturalPartners", p.Compatibility.NaturalPartners},
		{"complementary", p.Compatibility.Complementary},
		{"challenging", p.Compatibility.Challenging},
	}
	for _, l := range lists {
		for _, code := range l.codes {
			if !canonical[code] {
				return fmt.Errorf("%s: compatibility.%s references unknown code %s", p.Code, l.name, code)
			}
			if code == p.Code {
				return fmt.Errorf("%s: compatibility.%s must not list the profile itself", p.Code, l.name)
			}
			if prev, dup := seen[code]; dup {
				return fmt.Errorf("%s: code %s appears in both %s and %s", p.Code, code, prev, l.name)
			}
			seen[code] = l.name
		}
	}
	return nil
}

func validateCareerPaths(p Profile) error {
	cp := p.CareerPaths
	if len(cp.IdealFields) == 0 || len(cp.RoleExamples) == 0 || len(cp.DevelopmentAreas) == 0 {
		return fmt.Errorf("%s: careerPaths lists must be non-empty", p.Code)
	}
	return nil
}
