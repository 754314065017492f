package teams

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"teamlens-backend/internal/analysis"
	"teamlens-backend/internal/mbti"
	"teamlens-backend/internal/people"
	"teamlens-backend/internal/talents"
)

// memberTalentDepth caps how many of a member's strongest talents count
// toward the team's category coverage.
const memberTalentDepth = 5

type Service struct {
	People   people.Repo
	Engine   *analysis.Engine
	Talents  *talents.Catalog
	Profiles *mbti.Catalog
	now      func() time.Time
}

func NewService(peopleRepo people.Repo, engine *analysis.Engine, talentCatalog *talents.Catalog, profileCatalog *mbti.Catalog) *Service {
	return &Service{
		People:   peopleRepo,
		Engine:   engine,
		Talents:  talentCatalog,
		Profiles: profileCatalog,
		now:      time.Now,
	}
}

// Analyze runs the engine for every member and aggregates the team view.
// Members without analyzable data are skipped and listed, never an error;
// a referenced person id that does not exist is an error.
func (s *Service) Analyze(ctx context.Context, input Input) (*Analysis, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.New("team name is required")
	}
	members, err := s.resolveMembers(ctx, input)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, errors.New("at least one member is required")
	}

	out := &Analysis{
		Name:             name,
		MemberCount:      len(members),
		CategoryCoverage: make(map[talents.Category]int, len(talents.Categories)),
		GeneratedAt:      s.now().UTC(),
	}
	for _, c := range talents.Categories {
		out.CategoryCoverage[c] = 0
	}

	var teamFitSum, leadershipSum int
	codes := make([]mbti.Code, len(members))
	analyzed := make([]bool, len(members))
	for i, member := range members {
		result, ok := s.Engine.Analyze(analysis.Person{
			PersonalityType: member.PersonalityType,
			RankedTalents:   member.RankedTalents,
		})
		if !ok {
			out.Skipped = append(out.Skipped, member.Name)
			continue
		}
		analyzed[i] = true
		out.AnalyzedCount++
		teamFitSum += result.TeamFitScore
		leadershipSum += result.LeadershipScore
		out.Members = append(out.Members, MemberResult{
			PersonID:        member.PersonID,
			Name:            member.Name,
			Mode:            result.Mode,
			PersonalityType: result.PersonalityType,
			PrimaryRole:     result.PrimaryRole,
			SynergyScore:    result.SynergyScore,
			TeamFitScore:    result.TeamFitScore,
			LeadershipScore: result.LeadershipScore,
		})
		s.countCoverage(out.CategoryCoverage, member.RankedTalents)
		if !result.Degraded {
			if code, _, err := mbti.ParseCode(member.PersonalityType); err == nil {
				codes[i] = code
			}
		}
	}
	if out.AnalyzedCount > 0 {
		out.AverageTeamFit = int(math.Round(float64(teamFitSum) / float64(out.AnalyzedCount)))
		out.AverageLeadership = int(math.Round(float64(leadershipSum) / float64(out.AnalyzedCount)))
	}
	for _, c := range talents.Categories {
		if out.CategoryCoverage[c] == 0 {
			out.MissingCategories = append(out.MissingCategories, c)
		}
	}
	out.Pairs = s.pairHighlights(members, codes, analyzed)
	return out, nil
}

func (s *Service) resolveMembers(ctx context.Context, input Input) ([]Member, error) {
	members := make([]Member, 0, len(input.MemberIDs)+len(input.Members))
	for _, id := range input.MemberIDs {
		person, err := s.People.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, people.ErrNotFound) {
				return nil, fmt.Errorf("member %s: %w", id, err)
			}
			return nil, fmt.Errorf("load member %s: %w", id, err)
		}
		members = append(members, Member{
			PersonID:        person.ID,
			Name:            person.Name,
			PersonalityType: person.PersonalityType,
			RankedTalents:   person.RankedTalents,
		})
	}
	for _, member := range input.Members {
		if strings.TrimSpace(member.Name) == "" {
			return nil, errors.New("inline members need a name")
		}
		members = append(members, member)
	}
	return members, nil
}

// countCoverage tallies category hits from a member's strongest talents.
// A dual-category talent counts toward both of its categories.
func (s *Service) countCoverage(coverage map[talents.Category]int, ranked []talents.Ranked) {
	top := append([]talents.Ranked(nil), ranked...)
	sort.SliceStable(top, func(i, j int) bool { return top[i].Rank < top[j].Rank })
	if len(top) > memberTalentDepth {
		top = top[:memberTalentDepth]
	}
	for _, r := range top {
		talent, ok := s.Talents.ByID(r.ID)
		if !ok {
			continue
		}
		for _, c := range talent.Categories {
			coverage[c]++
		}
	}
}

// pairHighlights derives at most one highlight per member pair, preferring
// the stronger signal when both directions of the compatibility lists match.
func (s *Service) pairHighlights(members []Member, codes []mbti.Code, analyzed []bool) []Pair {
	var out []Pair
	for i := range members {
		if !analyzed[i] || codes[i] == "" {
			continue
		}
		for j := i + 1; j < len(members); j++ {
			if !analyzed[j] || codes[j] == "" {
				continue
			}
			kind, ok := s.pairKind(codes[i], codes[j])
			if !ok {
				continue
			}
			out = append(out, Pair{
				Kind:  kind,
				A:     members[i].Name,
				AType: string(codes[i]),
				B:     members[j].Name,
				BType: string(codes[j]),
			})
		}
	}
	return out
}

func (s *Service) pairKind(a, b mbti.Code) (PairKind, bool) {
	profileA, okA := s.Profiles.ByCode(a)
	profileB, okB := s.Profiles.ByCode(b)
	if !okA || !okB {
		return "", false
	}
	switch {
	case containsCode(profileA.Compatibility.NaturalPartners, b) || containsCode(profileB.Compatibility.NaturalPartners, a):
		return PairNatural, true
	case containsCode(profileA.Compatibility.Challenging, b) || containsCode(profileB.Compatibility.Challenging, a):
		return PairChallenging, true
	case containsCode(profileA.Compatibility.Complementary, b) || containsCode(profileB.Compatibility.Complementary, a):
		return PairComplementary, true
	default:
		return "", false
	}
}

func containsCode(codes []mbti.Code, code mbti.Code) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
