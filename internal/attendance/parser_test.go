package attendance

import (
	"strings"
	"testing"
	"time"

	"teamlens-backend/internal/shared/config"
)

func TestReadCSVParsesRows(t *testing.T) {
	input := strings.NewReader(
		"employee,date,clock_in,clock_out\n" +
			"dana,2026-03-02,09:05,18:15\n" +
			"ben,2026-03-02,,18:00\n")

	rows, rowErrs, err := ReadCSV(input)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(rowErrs) != 0 {
		t.Fatalf("expected no row errors, got %v", rowErrs)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Employee != "dana" || !rows[0].HasIn || rows[0].In != 9*time.Hour+5*time.Minute {
		t.Fatalf("unexpected first row %+v", rows[0])
	}
	if rows[1].HasIn || !rows[1].HasOut {
		t.Fatalf("expected missing clock_in on second row, got %+v", rows[1])
	}
}

func TestReadCSVCollectsRowErrors(t *testing.T) {
	input := strings.NewReader(
		"employee,date,clock_in,clock_out\n" +
			",2026-03-02,09:00,18:00\n" +
			"dana,03/02/2026,09:00,18:00\n" +
			"dana,2026-03-02,25:00,18:00\n" +
			"dana,2026-03-02,18:00,09:00\n" +
			"ok,2026-03-02,09:00,18:00\n")

	rows, rowErrs, err := ReadCSV(input)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(rows) != 1 || rows[0].Employee != "ok" {
		t.Fatalf("expected only the valid row, got %+v", rows)
	}
	if len(rowErrs) != 4 {
		t.Fatalf("expected 4 row errors, got %v", rowErrs)
	}
	for i, wantRow := range []int{2, 3, 4, 5} {
		if rowErrs[i].Row != wantRow {
			t.Fatalf("error %d: expected row %d, got %d", i, wantRow, rowErrs[i].Row)
		}
	}
}

func TestReadCSVRejectsBadHeader(t *testing.T) {
	if _, _, err := ReadCSV(strings.NewReader("who,when,in,out\n")); err == nil {
		t.Fatalf("expected a header error")
	}
}

func TestRulesFromConfig(t *testing.T) {
	cfg := &config.Config{
		AttendanceDayStart: "08:30",
		AttendanceDayEnd:   "17:30",
		AttendanceGrace:    15 * time.Minute,
		AttendanceMinHours: 7.5,
	}
	rules, err := RulesFromConfig(cfg)
	if err != nil {
		t.Fatalf("RulesFromConfig: %v", err)
	}
	if rules.DayStart != 8*time.Hour+30*time.Minute || rules.DayEnd != 17*time.Hour+30*time.Minute {
		t.Fatalf("unexpected day bounds %+v", rules)
	}
	if rules.Grace != 15*time.Minute || rules.MinHours != 7.5 {
		t.Fatalf("unexpected thresholds %+v", rules)
	}
}

func TestRulesFromConfigRejectsInvertedDay(t *testing.T) {
	cfg := &config.Config{AttendanceDayStart: "18:00", AttendanceDayEnd: "09:00"}
	if _, err := RulesFromConfig(cfg); err == nil {
		t.Fatalf("expected an error for end before start")
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"09:00", true},
		{"23:59", true},
		{"0:05", true},
		{"24:00", false},
		{"09:60", false},
		{"0900", false},
		{"", false},
	}
	for _, tc := range cases {
		_, err := parseClock(tc.value)
		if (err == nil) != tc.ok {
			t.Fatalf("parseClock(%q): unexpected err=%v", tc.value, err)
		}
	}
}
