package mbti

import (
	"testing"

	"teamlens-backend/internal/talents"
)

func TestDefaultCatalogHas16ValidProfiles(t *testing.T) {
	catalog := Default()
	if catalog.Len() != 16 {
		t.Fatalf("expected 16 profiles, got %d", catalog.Len())
	}
	if err := catalog.Validate(talents.Default()); err != nil {
		t.Fatalf("catalog invalid: %v", err)
	}
	for _, code := range AllCodes {
		if _, ok := catalog.ByCode(code); !ok {
			t.Fatalf("missing profile for %s", code)
		}
	}
}

func TestTierOf(t *testing.T) {
	profile, ok := Default().ByCode("INTJ")
	if !ok {
		t.Fatalf("missing INTJ profile")
	}

	// Strategic (33) is high for INTJ, Woo (34) is low, Responsibility (29)
	// is moderate, and an unlisted id is neutral.
	if got := profile.TalentSynergy.TierOf(33); got != TierHigh {
		t.Fatalf("expected high for Strategic, got %s", got)
	}
	if got := profile.TalentSynergy.TierOf(34); got != TierLow {
		t.Fatalf("expected low for Woo, got %s", got)
	}
	if got := profile.TalentSynergy.TierOf(29); got != TierModerate {
		t.Fatalf("expected moderate for Responsibility, got %s", got)
	}
	if got := profile.TalentSynergy.TierOf(19); got != TierNeutral {
		t.Fatalf("expected neutral for unlisted id, got %s", got)
	}
}

func TestValidateCatchesBadStaticData(t *testing.T) {
	base, _ := Default().ByCode("INTJ")

	cases := []struct {
		name   string
		mutate func(p Profile) Profile
	}{
		{
			name: "synergy_id_out_of_range",
			mutate: func(p Profile) Profile {
				p.TalentSynergy.High = append([]int{99}, p.TalentSynergy.High...)
				return p
			},
		},
		{
			name: "duplicate_across_tiers",
			mutate: func(p Profile) Profile {
				p.TalentSynergy.Low = append([]int{p.TalentSynergy.High[0]}, p.TalentSynergy.Low...)
				return p
			},
		},
		{
			name: "self_in_compatibility",
			mutate: func(p Profile) Profile {
				p.Compatibility.NaturalPartners = append([]Code{p.Code}, p.Compatibility.NaturalPartners...)
				return p
			},
		},
		{
			name: "overlapping_compatibility_lists",
			mutate: func(p Profile) Profile {
				p.Compatibility.Challenging = append([]Code{p.Compatibility.NaturalPartners[0]}, p.Compatibility.Challenging...)
				return p
			},
		},
		{
			name: "unknown_compatibility_code",
			mutate: func(p Profile) Profile {
				p.Compatibility.Complementary = append([]Code{"ABCD"}, p.Compatibility.Complementary...)
				return p
			},
		},
		{
			name: "empty_natural_role",
			mutate: func(p Profile) Profile {
				p.TeamDynamics.NaturalRole = ""
				return p
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bad := NewCatalog([]Profile{tc.mutate(base)})
			if err := bad.Validate(talents.Default()); err == nil {
				t.Fatalf("expected validation error for %s", tc.name)
			}
		})
	}
}
