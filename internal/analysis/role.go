package analysis

import (
	"teamlens-backend/internal/mbti"
	"teamlens-backend/internal/talents"
)

// roleVersatile is the fallback label when no category signal exists.
const roleVersatile = "Versatile Professional"

// dominantCategory finds the most frequent talent category among the top
// three talents. Ties break by the fixed precedence order Leadership >
// Analytical > TeamOriented > Execution. Returns false when the top talents
// carry no category at all.
func dominantCategory(top []talents.Talent) (talents.Category, bool) {
	counts := make(map[talents.Category]int, 4)
	limit := len(top)
	if limit > 3 {
		limit = 3
	}
	for _, talent := range top[:limit] {
		for _, c := range talent.Categories {
			counts[c]++
		}
	}

	best := talents.Category("")
	bestCount := 0
	for _, c := range talents.Categories {
		if counts[c] > bestCount {
			best = c
			bestCount = counts[c]
		}
	}
	if bestCount == 0 {
		return "", false
	}
	return best, true
}

// fullModeRole derives the primary role from the dominant talent category
// combined with the personality axis markers. The same category with
// different axes yields a different label; that differentiation is the point
// of full mode and must not collapse into a category-only lookup.
func fullModeRole(dominant talents.Category, axes mbti.Axes) string {
	switch dominant {
	case talents.CategoryLeadership:
		switch {
		case axes.Extraverted && axes.Judging:
			return "Directive Leader"
		case axes.Extraverted:
			return "Charismatic Catalyst"
		case axes.Judging:
			return "Strategic Leader"
		default:
			return "Quiet Influencer"
		}
	case talents.CategoryAnalytical:
		switch {
		case axes.Thinking && axes.Judging:
			return "Strategic Thinking Expert"
		case axes.Thinking:
			return "Analytical Explorer"
		case axes.Judging:
			return "Analytical Facilitator"
		default:
			return "Insightful Interpreter"
		}
	case talents.CategoryTeamOriented:
		switch {
		case axes.Extraverted && !axes.Thinking:
			return "Team Energizer"
		case axes.Extraverted:
			return "Collaborative Organizer"
		case !axes.Thinking:
			return "Supportive Anchor"
		default:
			return "Thoughtful Collaborator"
		}
	case talents.CategoryExecution:
		switch {
		case axes.Judging && axes.Thinking:
			return "Plan-Execution Specialist"
		case axes.Judging:
			return "Reliable Coordinator"
		case axes.Extraverted:
			return "Adaptive Driver"
		default:
			return "Steady Finisher"
		}
	}
	return roleVersatile
}

// talentsOnlyRole infers a role purely from which categories appear among
// the top three talents, via a fixed precedence table.
func talentsOnlyRole(top []talents.Talent) string {
	limit := len(top)
	if limit > 3 {
		limit = 3
	}
	present := make(map[talents.Category]bool, 4)
	for _, talent := range top[:limit] {
		for _, c := range talent.Categories {
			present[c] = true
		}
	}

	switch {
	case present[talents.CategoryLeadership] && present[talents.CategoryExecution]:
		return "Leader/Driver"
	case present[talents.CategoryAnalytical] && present[talents.CategoryExecution]:
		return "Strategist/Executor"
	case present[talents.CategoryTeamOriented] && present[talents.CategoryExecution]:
		return "Team Player"
	case present[talents.CategoryLeadership] && present[talents.CategoryAnalytical]:
		return "Leader/Strategist"
	case present[talents.CategoryLeadership]:
		return "Leader/Motivator"
	case present[talents.CategoryAnalytical]:
		return "Analyst/Thinker"
	case present[talents.CategoryExecution]:
		return "Executor/Achiever"
	case present[talents.CategoryTeamOriented]:
		return "Relationship Builder"
	default:
		return roleVersatile
	}
}
