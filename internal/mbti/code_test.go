package mbti

import "testing"

func TestParseCodeNormalizes(t *testing.T) {
	code, axes, err := ParseCode("  entj ")
	if err != nil {
		t.Fatalf("ParseCode: %v", err)
	}
	if code != "ENTJ" {
		t.Fatalf("expected ENTJ, got %s", code)
	}
	if !axes.Extraverted || !axes.Intuitive || !axes.Thinking || !axes.Judging {
		t.Fatalf("unexpected axes: %+v", axes)
	}
}

func TestParseCodeAxes(t *testing.T) {
	cases := []struct {
		raw  string
		want Axes
	}{
		{"ISFP", Axes{}},
		{"INTJ", Axes{Thinking: true, Intuitive: true, Judging: true}},
		{"ESFJ", Axes{Extraverted: true, Judging: true}},
		{"ENTP", Axes{Extraverted: true, Intuitive: true, Thinking: true}},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			_, axes, err := ParseCode(tc.raw)
			if err != nil {
				t.Fatalf("ParseCode(%q): %v", tc.raw, err)
			}
			if axes != tc.want {
				t.Fatalf("axes for %s: expected %+v, got %+v", tc.raw, tc.want, axes)
			}
		})
	}
}

func TestParseCodeRejectsMalformed(t *testing.T) {
	for _, raw := range []string{"", "INT", "INTJX", "XNTJ", "IXTJ", "INXJ", "INTX", "1234"} {
		if _, _, err := ParseCode(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestAllCodesParse(t *testing.T) {
	seen := map[Code]bool{}
	for _, code := range AllCodes {
		if seen[code] {
			t.Fatalf("duplicate code %s", code)
		}
		seen[code] = true
		if _, _, err := ParseCode(string(code)); err != nil {
			t.Fatalf("canonical code %s does not parse: %v", code, err)
		}
	}
	if len(seen) != 16 {
		t.Fatalf("expected 16 canonical codes, got %d", len(seen))
	}
}
