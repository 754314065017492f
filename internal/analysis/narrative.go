package analysis

import (
	"fmt"

	"teamlens-backend/internal/mbti"
	"teamlens-backend/internal/talents"
)

// summaryLen is the fixed number of summary sentences in every result.
const summaryLen = 4

// Nudge fragments the single-input modes must include verbatim somewhere in
// their summary. The UI and tests match on these substrings.
const (
	StrengthsNudge   = "strengths assessment would enable a deeper analysis"
	PersonalityNudge = "personality type would enable a deeper analysis"
)

// buildSummary composes the fixed four-sentence narrative:
// talents/type + synergy band, working style, role expectation, and the
// primary-role tie-back.
func buildSummary(mode Mode, scores scoreSet, profile *mbti.Profile, top []talents.Talent, role string) []string {
	return []string{
		openingSentence(mode, scores.Synergy, profile, top),
		workingStyleSentence(scores.TeamFit),
		roleExpectationSentence(scores.Leadership),
		closingSentence(mode, role),
	}
}

func openingSentence(mode Mode, synergy int, profile *mbti.Profile, top []talents.Talent) string {
	switch mode {
	case ModeFull:
		names := topTwoNames(top)
		switch {
		case synergy >= 85:
			return fmt.Sprintf("Your leading talents, %s, are in high synergy with your %s personality and reinforce it naturally.", names, profile.DisplayName)
		case synergy >= 55:
			return fmt.Sprintf("Your leading talents, %s, complement your %s personality in a balanced way.", names, profile.DisplayName)
		default:
			return fmt.Sprintf("Your leading talents, %s, add a distinctive and unexpected dimension to your %s personality.", names, profile.DisplayName)
		}
	case ModePersonalityOnly:
		return fmt.Sprintf("As %s (%s), your natural preferences shape how you take on work and people.", profile.DisplayName, profile.Code)
	default:
		return fmt.Sprintf("Your top talents, %s, anchor the way you deliver value.", topTwoNames(top))
	}
}

func workingStyleSentence(teamFit int) string {
	switch {
	case teamFit >= 70:
		return "You thrive in close collaboration and visibly strengthen the people working around you."
	case teamFit >= 50:
		return "You balance collaborative work with focused individual contribution, moving between the two as needed."
	default:
		return "You do your best work independently, with room for deep and uninterrupted focus."
	}
}

func roleExpectationSentence(leadership int) string {
	switch {
	case leadership >= 70:
		return "Expect to gravitate toward leadership, setting direction and taking ownership of outcomes."
	case leadership >= 50:
		return "You step into leadership situationally, when the moment calls for someone to take charge."
	default:
		return "You shine as a specialist, leading through expertise rather than formal authority."
	}
}

func closingSentence(mode Mode, role string) string {
	switch mode {
	case ModePersonalityOnly:
		return fmt.Sprintf("A team gains a %s in you; taking the %s.", role, StrengthsNudge)
	case ModeTalentsOnly:
		return fmt.Sprintf("A team gains a %s in you; adding your %s.", role, PersonalityNudge)
	default:
		return fmt.Sprintf("A team gains a %s in you, and that is where your contribution lands hardest.", role)
	}
}

// insufficientDataSummary is the neutral narrative for a degraded result
// with no usable inputs beyond an unrecognized personality type.
func insufficientDataSummary() []string {
	return []string{
		"There is not enough recognized data to build a personalized analysis yet.",
		"The supplied personality type is not part of the catalog of sixteen types.",
		"Re-check the four-letter type code or supply a ranked talent list instead.",
		"Once either input is corrected, a complete analysis will be generated here.",
	}
}

func topTwoNames(top []talents.Talent) string {
	switch len(top) {
	case 0:
		return "your strengths"
	case 1:
		return top[0].Name
	default:
		return top[0].Name + " and " + top[1].Name
	}
}
