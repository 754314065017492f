package talents

// Category groups talents by the kind of contribution they describe.
type Category string

const (
	CategoryTeamOriented Category = "team_oriented"
	CategoryLeadership   Category = "leadership"
	CategoryAnalytical   Category = "analytical"
	CategoryExecution    Category = "execution"
)

// Categories lists all categories in their fixed precedence order
// (used for tie-breaking when a dominant category is derived).
var Categories = []Category{
	CategoryLeadership,
	CategoryAnalytical,
	CategoryTeamOriented,
	CategoryExecution,
}

// Talent is an immutable catalog entry for one of the 34 strengths.
type Talent struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Categories  []Category `json:"categories"`
}

// In reports whether the talent belongs to the given category.
// A talent may belong to several categories or to none.
func (t Talent) In(category Category) bool {
	for _, c := range t.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Ranked pairs a talent id with its position in a person's assessment.
// Rank 1 is the strongest talent.
type Ranked struct {
	ID   int `json:"id"`
	Rank int `json:"rank"`
}
