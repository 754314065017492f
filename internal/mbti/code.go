package mbti

import (
	"fmt"
	"strings"
)

// Code is a canonical 4-letter personality type code (e.g. "INTJ").
type Code string

// Axes is the structured form of a type code: one named field per axis.
// Scoring logic reads these fields instead of poking at string positions.
type Axes struct {
	Extraverted bool // E vs I
	Intuitive   bool // N vs S
	Thinking    bool // T vs F
	Judging     bool // J vs P
}

// AllCodes lists the 16 canonical type codes.
var AllCodes = []Code{
	"INTJ", "INTP", "ENTJ", "ENTP",
	"INFJ", "INFP", "ENFJ", "ENFP",
	"ISTJ", "ISFJ", "ESTJ", "ESFJ",
	"ISTP", "ISFP", "ESTP", "ESFP",
}

// ParseCode normalizes a raw type string and decomposes it into axes.
// It accepts any casing and surrounding whitespace.
func ParseCode(raw string) (Code, Axes, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if len(normalized) != 4 {
		return "", Axes{}, fmt.Errorf("type code %q must have 4 letters", raw)
	}

	var axes Axes
	switch normalized[0] {
	case 'E':
		axes.Extraverted = true
	case 'I':
	default:
		return "", Axes{}, fmt.Errorf("type code %q: first letter must be E or I", raw)
	}
	switch normalized[1] {
	case 'N':
		axes.Intuitive = true
	case 'S':
	default:
		return "", Axes{}, fmt.Errorf("type code %q: second letter must be N or S", raw)
	}
	switch normalized[2] {
	case 'T':
		axes.Thinking = true
	case 'F':
	default:
		return "", Axes{}, fmt.Errorf("type code %q: third letter must be T or F", raw)
	}
	switch normalized[3] {
	case 'J':
		axes.Judging = true
	case 'P':
	default:
		return "", Axes{}, fmt.Errorf("type code %q: fourth letter must be J or P", raw)
	}

	return Code(normalized), axes, nil
}

// MustAxes returns the axes for a known-good code. It panics on malformed
// codes and is intended for static catalog data only.
func MustAxes(code Code) Axes {
	_, axes, err := ParseCode(string(code))
	if err != nil {
		panic(err)
	}
	return axes
}

func (c Code) String() string {
	return string(c)
}
