package people

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"teamlens-backend/internal/talents"
)

func TestReadCSVParsesRowsAndTalents(t *testing.T) {
	input := strings.NewReader(
		"name,personality_type,talents\n" +
			"Dana Reyes,INTJ,33;4;24\n" +
			"Ben Ito,,\n")

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
	first := rows[0]
	if first.Row != 2 || first.Input.Name != "Dana Reyes" || first.Input.PersonalityType != "INTJ" {
		t.Fatalf("unexpected first row %+v", first)
	}
	want := []talents.Ranked{{ID: 33, Rank: 1}, {ID: 4, Rank: 2}, {ID: 24, Rank: 3}}
	if len(first.Input.RankedTalents) != len(want) {
		t.Fatalf("expected %d talents, got %d", len(want), len(first.Input.RankedTalents))
	}
	for i, r := range want {
		if first.Input.RankedTalents[i] != r {
			t.Fatalf("talent %d: expected %+v, got %+v", i, r, first.Input.RankedTalents[i])
		}
	}
	if rows[1].Input.PersonalityType != "" || rows[1].Input.RankedTalents != nil {
		t.Fatalf("expected empty optional cells, got %+v", rows[1].Input)
	}
}

func TestReadCSVCollectsRowErrorsAndContinues(t *testing.T) {
	input := strings.NewReader(
		"name,personality_type,talents\n" +
			",INTJ,1\n" +
			"Eve,ENFP,not-a-number\n" +
			"Ok Person,ISTP,5\n")

	rows, rowErrs, err := ReadCSV(input)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(rows) != 1 || rows[0].Input.Name != "Ok Person" {
		t.Fatalf("expected only the valid row, got %+v", rows)
	}
	if len(rowErrs) != 2 {
		t.Fatalf("expected 2 row errors, got %v", rowErrs)
	}
	if rowErrs[0].Row != 2 || rowErrs[1].Row != 3 {
		t.Fatalf("expected errors on rows 2 and 3, got %v", rowErrs)
	}
}

func TestReadCSVRejectsBadHeader(t *testing.T) {
	if _, _, err := ReadCSV(strings.NewReader("nombre,tipo,cosas\nA,B,C\n")); err == nil {
		t.Fatalf("expected a header error")
	}
}

func TestWriteCSVRoundTrips(t *testing.T) {
	now := time.Now().UTC()
	list := []Person{
		{
			ID:              "p1",
			Name:            "Dana Reyes",
			PersonalityType: "INTJ",
			// Out of rank order on purpose; export must sort.
			RankedTalents: []talents.Ranked{{ID: 4, Rank: 2}, {ID: 33, Rank: 1}},
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{ID: "p2", Name: "Ben Ito", CreatedAt: now, UpdatedAt: now},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, list); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	rows, rowErrs, err := ReadCSV(&buf)
	if err != nil || len(rowErrs) != 0 {
		t.Fatalf("re-read failed: %v %v", err, rowErrs)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	got := rows[0].Input.RankedTalents
	if len(got) != 2 || got[0].ID != 33 || got[1].ID != 4 {
		t.Fatalf("expected rank-ordered talents 33,4, got %+v", got)
	}
}
