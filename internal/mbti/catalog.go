package mbti

import "sort"

// Catalog is an immutable lookup of personality profiles keyed by type code.
// It is built once at startup and safe for concurrent reads.
type Catalog struct {
	byCode map[Code]Profile
}

// NewCatalog builds a catalog from the given profiles. It does not validate
// static-data invariants; call Validate for that (the test suite does).
func NewCatalog(profiles []Profile) *Catalog {
	byCode := make(map[Code]Profile, len(profiles))
	for _, p := range profiles {
		byCode[p.Code] = p
	}
	return &Catalog{byCode: byCode}
}

// Default returns the catalog of all 16 built-in profiles.
func Default() *Catalog {
	return NewCatalog(allProfiles)
}

// ByCode returns the profile for the given code.
func (c *Catalog) ByCode(code Code) (Profile, bool) {
	p, ok := c.byCode[code]
	return p, ok
}

// Len returns the number of profiles.
func (c *Catalog) Len() int {
	return len(c.byCode)
}

// All returns every profile ordered by code.
func (c *Catalog) All() []Profile {
	out := make([]Profile, 0, len(c.byCode))
	for _, p := range c.byCode {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
