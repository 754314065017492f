package people

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"teamlens-backend/internal/talents"
)

// CSV layout: name, personality_type, talents. The talents cell holds talent
// ids separated by semicolons in rank order (first id is rank one).
var csvHeader = []string{"name", "personality_type", "talents"}

// RowError ties an import failure to its 1-based row number so the caller
// can fix the file without guessing.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

func (e RowError) Error() string { return fmt.Sprintf("row %d: %s", e.Row, e.Message) }

// ImportRow pairs a parsed input with its source row number so later
// validation failures still point at the right line.
type ImportRow struct {
	Row   int
	Input PersonInput
}

// ReadCSV parses person rows, collecting per-row errors and continuing past
// them. A malformed header or unreadable stream fails the whole import.
func ReadCSV(r io.Reader) ([]ImportRow, []RowError, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(csvHeader)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	for i, want := range csvHeader {
		if strings.TrimSpace(strings.ToLower(header[i])) != want {
			return nil, nil, fmt.Errorf("unexpected header column %d: got %q, want %q", i+1, header[i], want)
		}
	}

	var rows []ImportRow
	var rowErrs []RowError
	row := 1
	for {
		row++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rowErrs = append(rowErrs, RowError{Row: row, Message: err.Error()})
			continue
		}
		input, err := parseCSVRecord(record)
		if err != nil {
			rowErrs = append(rowErrs, RowError{Row: row, Message: err.Error()})
			continue
		}
		rows = append(rows, ImportRow{Row: row, Input: input})
	}
	return rows, rowErrs, nil
}

func parseCSVRecord(record []string) (PersonInput, error) {
	input := PersonInput{
		Name:            strings.TrimSpace(record[0]),
		PersonalityType: strings.TrimSpace(record[1]),
	}
	if input.Name == "" {
		return PersonInput{}, fmt.Errorf("name is required")
	}
	cell := strings.TrimSpace(record[2])
	if cell == "" {
		return input, nil
	}
	for i, part := range strings.Split(cell, ";") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return PersonInput{}, fmt.Errorf("talent position %d: %q is not a number", i+1, strings.TrimSpace(part))
		}
		input.RankedTalents = append(input.RankedTalents, talents.Ranked{ID: id, Rank: i + 1})
	}
	return input, nil
}

// WriteCSV writes people in the same layout ReadCSV accepts, ranked talents
// re-sorted into rank order.
func WriteCSV(w io.Writer, list []Person) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, person := range list {
		record := []string{person.Name, person.PersonalityType, talentsCell(person.RankedTalents)}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func talentsCell(ranked []talents.Ranked) string {
	ordered := append([]talents.Ranked(nil), ranked...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Rank < ordered[j].Rank })
	parts := make([]string, 0, len(ordered))
	for _, r := range ordered {
		parts = append(parts, strconv.Itoa(r.ID))
	}
	return strings.Join(parts, ";")
}
