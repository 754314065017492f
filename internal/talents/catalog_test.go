package talents

import "testing"

func TestDefaultCatalogHasAll34Talents(t *testing.T) {
	catalog := Default()
	if catalog.Len() != 34 {
		t.Fatalf("expected 34 talents, got %d", catalog.Len())
	}
	for id := MinID; id <= MaxID; id++ {
		talent, ok := catalog.ByID(id)
		if !ok {
			t.Fatalf("missing talent id %d", id)
		}
		if talent.Name == "" {
			t.Fatalf("talent %d has empty name", id)
		}
		if talent.Description == "" {
			t.Fatalf("talent %d has empty description", id)
		}
	}
}

func TestCatalogCategoriesAreValid(t *testing.T) {
	valid := map[Category]bool{
		CategoryTeamOriented: true,
		CategoryLeadership:   true,
		CategoryAnalytical:   true,
		CategoryExecution:    true,
	}
	for _, talent := range Default().All() {
		seen := map[Category]bool{}
		for _, c := range talent.Categories {
			if !valid[c] {
				t.Fatalf("talent %d has unknown category %q", talent.ID, c)
			}
			if seen[c] {
				t.Fatalf("talent %d lists category %q twice", talent.ID, c)
			}
			seen[c] = true
		}
	}
}

func TestNewCatalogRejectsBadData(t *testing.T) {
	cases := []struct {
		name    string
		entries []Talent
	}{
		{name: "id_zero", entries: []Talent{{ID: 0, Name: "X"}}},
		{name: "id_too_big", entries: []Talent{{ID: 35, Name: "X"}}},
		{name: "empty_name", entries: []Talent{{ID: 1, Name: ""}}},
		{name: "duplicate_id", entries: []Talent{{ID: 1, Name: "A"}, {ID: 1, Name: "B"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewCatalog(tc.entries); err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
		})
	}
}

func TestByCategory(t *testing.T) {
	catalog := Default()
	for _, category := range Categories {
		if len(catalog.ByCategory(category)) == 0 {
			t.Fatalf("category %q has no talents", category)
		}
	}

	// Arranger belongs to both execution and team-oriented.
	arranger, _ := catalog.ByID(5)
	if !arranger.In(CategoryExecution) || !arranger.In(CategoryTeamOriented) {
		t.Fatalf("expected Arranger in execution and team-oriented, got %v", arranger.Categories)
	}
	if arranger.In(CategoryLeadership) {
		t.Fatalf("Arranger should not be in leadership")
	}
}
