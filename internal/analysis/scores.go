package analysis

import (
	"math"

	"teamlens-backend/internal/mbti"
	"teamlens-backend/internal/talents"
)

// maxScoredTalents caps how many ranked talents participate in scoring.
const maxScoredTalents = 5

// rankWeights front-loads almost all synergy influence on the top two ranks,
// consistent with dominant talents governing most observed behavior. When a
// person supplies fewer than five talents the missing weights are NOT
// renormalized, which caps the achievable score below 100 for thin data.
// That ceiling is deliberate and tested; do not "fix" it.
var rankWeights = [maxScoredTalents]float64{0.50, 0.30, 0.15, 0.03, 0.02}

// Per-tier synergy values. Unlisted talents score as neutral.
const (
	synergyHighValue     = 95
	synergyModerateValue = 65
	synergyLowValue      = 35
	synergyNeutralValue  = 50
)

func tierValue(tier mbti.Tier) float64 {
	switch tier {
	case mbti.TierHigh:
		return synergyHighValue
	case mbti.TierModerate:
		return synergyModerateValue
	case mbti.TierLow:
		return synergyLowValue
	default:
		return synergyNeutralValue
	}
}

// synergyScore computes the full-mode synergy between a profile and the
// person's top talents. Outside full mode synergy is 0 by construction.
func synergyScore(profile mbti.Profile, top []talents.Talent) int {
	var sum float64
	for i, talent := range top {
		if i >= maxScoredTalents {
			break
		}
		sum += tierValue(profile.TalentSynergy.TierOf(talent.ID)) * rankWeights[i]
	}
	return clampScore(int(math.Round(sum)))
}

// teamFitScore estimates how much of the person's energy flows into
// collaborative work. The personality-only constants are a rough proxy;
// full mode uses a smaller judging bonus to leave room for talent-derived
// adjustment. The two constant sets are intentionally different.
func teamFitScore(mode Mode, axes mbti.Axes, top []talents.Talent) int {
	score := 50
	switch mode {
	case ModeFull, ModePersonalityOnly:
		if axes.Extraverted {
			score += 20
		}
		if !axes.Thinking {
			score += 18
		}
		if axes.Judging {
			if mode == ModeFull {
				score += 8
			} else {
				score += 12
			}
		}
		if mode == ModeFull {
			for i, talent := range top {
				if talent.In(talents.CategoryTeamOriented) {
					score += 10 - 2*i
				}
			}
		}
	case ModeTalentsOnly:
		for i, talent := range top {
			if talent.In(talents.CategoryTeamOriented) {
				score += 15 - 3*i
			}
		}
	}
	return clampScore(score)
}

// leadershipScore estimates leadership potential under the same split of
// constant sets as teamFitScore.
func leadershipScore(mode Mode, axes mbti.Axes, top []talents.Talent) int {
	var score int
	switch mode {
	case ModeFull:
		score = 40
		if axes.Extraverted {
			score += 15
		}
		if axes.Thinking {
			score += 12
		}
		if axes.Judging {
			score += 18
		}
		for i, talent := range top {
			if talent.In(talents.CategoryLeadership) {
				score += 12 - 2*i
			}
		}
	case ModePersonalityOnly:
		score = 45
		if axes.Extraverted {
			score += 20
		}
		if axes.Thinking {
			score += 18
		}
		if axes.Judging {
			score += 17
		}
	case ModeTalentsOnly:
		score = 40
		for i, talent := range top {
			if talent.In(talents.CategoryLeadership) {
				score += 18 - 3*i
			}
		}
	}
	return clampScore(score)
}

// clampScore bounds a raw score into [0, 100].
func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
