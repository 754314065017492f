package analysis

// Mode identifies which subset of input data governs the analysis formulas.
type Mode string

const (
	ModeFull            Mode = "full"
	ModePersonalityOnly Mode = "personality_only"
	ModeTalentsOnly     Mode = "talents_only"
)

// ResolveMode classifies a person's available data. It returns false when
// neither a personality type nor a non-empty talent list is present, in
// which case no analysis is possible. Pure function of the two inputs.
func ResolveMode(p Person) (Mode, bool) {
	switch {
	case p.hasType() && p.hasTalents():
		return ModeFull, true
	case p.hasType():
		return ModePersonalityOnly, true
	case p.hasTalents():
		return ModeTalentsOnly, true
	default:
		return "", false
	}
}
