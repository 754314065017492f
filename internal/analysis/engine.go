package analysis

import (
	"strings"
	"time"

	"teamlens-backend/internal/mbti"
	"teamlens-backend/internal/shared/telemetry"
	"teamlens-backend/internal/talents"
)

// Engine is the analysis orchestrator. Catalogs are injected at construction
// and never mutated, so a single Engine is safe for concurrent use.
type Engine struct {
	talents  *talents.Catalog
	profiles *mbti.Catalog
	now      func() time.Time
}

// NewEngine constructs an Engine over the given catalogs.
func NewEngine(talentCatalog *talents.Catalog, profileCatalog *mbti.Catalog) *Engine {
	return &Engine{
		talents:  talentCatalog,
		profiles: profileCatalog,
		now:      time.Now,
	}
}

// Analyze runs the full pipeline: mode resolution, score calculation, and
// narrative generation. It returns false when the person carries no
// analyzable data. Expected degradations (unknown type code) produce a
// reduced result, never an error; Analyze does not panic on any input.
func (e *Engine) Analyze(person Person) (*Result, bool) {
	mode, ok := ResolveMode(person)
	if !ok {
		return nil, false
	}

	top := e.resolveTop(person)

	var profile *mbti.Profile
	if person.hasType() {
		profile = e.lookupProfile(person.PersonalityType)
		if profile == nil {
			telemetry.Warn("analysis.unknown_personality_type", map[string]any{
				"personality_type": strings.TrimSpace(person.PersonalityType),
				"talent_count":     len(person.RankedTalents),
			})
			return e.degraded(person, top), true
		}
	}

	axes := mbti.Axes{}
	if profile != nil {
		axes = mbti.MustAxes(profile.Code)
	}

	scores := scoreSet{
		TeamFit:    teamFitScore(mode, axes, top),
		Leadership: leadershipScore(mode, axes, top),
	}
	if mode == ModeFull {
		scores.Synergy = synergyScore(*profile, top)
	}

	role := e.primaryRole(mode, profile, axes, top)
	result := &Result{
		Mode:            mode,
		PrimaryRole:     role,
		SynergyScore:    scores.Synergy,
		TeamFitScore:    scores.TeamFit,
		LeadershipScore: scores.Leadership,
		Summary:         buildSummary(mode, scores, profile, top, role),
		GeneratedAt:     e.now().UTC(),
		SchemaVersion:   SchemaVersion,
	}
	if profile != nil {
		result.PersonalityType = string(profile.Code)
		attachProfileFields(result, *profile)
	}
	if person.hasTalents() {
		result.TopStrengthNames = strengthNames(top)
	}
	return result, true
}

// primaryRole dispatches the role derivation per mode.
func (e *Engine) primaryRole(mode Mode, profile *mbti.Profile, axes mbti.Axes, top []talents.Talent) string {
	switch mode {
	case ModeFull:
		if dominant, ok := dominantCategory(top); ok {
			return fullModeRole(dominant, axes)
		}
		// Top talents carried no category signal; the profile still knows
		// where this person lands in a team.
		return profile.TeamDynamics.NaturalRole
	case ModePersonalityOnly:
		return profile.TeamDynamics.NaturalRole
	default:
		return talentsOnlyRole(top)
	}
}

// degraded handles an unrecognized personality type: with talents present it
// behaves like a talents-only analysis, otherwise it yields the minimal
// neutral result. Either way the caller gets a well-formed record.
func (e *Engine) degraded(person Person, top []talents.Talent) *Result {
	echo := strings.ToUpper(strings.TrimSpace(person.PersonalityType))
	if person.hasTalents() {
		scores := scoreSet{
			TeamFit:    teamFitScore(ModeTalentsOnly, mbti.Axes{}, top),
			Leadership: leadershipScore(ModeTalentsOnly, mbti.Axes{}, top),
		}
		role := talentsOnlyRole(top)
		return &Result{
			Mode:             ModeTalentsOnly,
			PersonalityType:  echo,
			Degraded:         true,
			PrimaryRole:      role,
			TeamFitScore:     scores.TeamFit,
			LeadershipScore:  scores.Leadership,
			Summary:          buildSummary(ModeTalentsOnly, scores, nil, top, role),
			TopStrengthNames: strengthNames(top),
			GeneratedAt:      e.now().UTC(),
			SchemaVersion:    SchemaVersion,
		}
	}
	return &Result{
		Mode:            ModePersonalityOnly,
		PersonalityType: echo,
		Degraded:        true,
		PrimaryRole:     roleVersatile,
		Summary:         insufficientDataSummary(),
		GeneratedAt:     e.now().UTC(),
		SchemaVersion:   SchemaVersion,
	}
}

// resolveTop maps the person's strongest ranked entries to catalog talents.
// Ids missing from the catalog are skipped rather than failing the analysis.
func (e *Engine) resolveTop(person Person) []talents.Talent {
	ranked := person.topRanked()
	out := make([]talents.Talent, 0, len(ranked))
	for _, r := range ranked {
		talent, ok := e.talents.ByID(r.ID)
		if !ok {
			telemetry.Warn("analysis.unknown_talent_id", map[string]any{"talent_id": r.ID})
			continue
		}
		out = append(out, talent)
	}
	return out
}

func (e *Engine) lookupProfile(raw string) *mbti.Profile {
	code, _, err := mbti.ParseCode(raw)
	if err != nil {
		return nil
	}
	profile, ok := e.profiles.ByCode(code)
	if !ok {
		return nil
	}
	return &profile
}

func attachProfileFields(result *Result, profile mbti.Profile) {
	result.IdealEnvironment = profile.TeamDynamics.BestEnvironment
	result.Motivators = append([]string(nil), profile.Motivation.Motivators...)
	result.Stressors = append([]string(nil), profile.Motivation.Stressors...)
	result.NaturalPartners = codeStrings(profile.Compatibility.NaturalPartners)
	result.ComplementaryPartners = codeStrings(profile.Compatibility.Complementary)
	result.CharacteristicStrengths = append([]string(nil), profile.Characteristics.Strengths...)
}

func strengthNames(top []talents.Talent) []string {
	names := make([]string, 0, len(top))
	for _, t := range top {
		names = append(names, t.Name)
	}
	return names
}

func codeStrings(codes []mbti.Code) []string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		out = append(out, string(c))
	}
	return out
}
