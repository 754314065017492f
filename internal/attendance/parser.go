package attendance

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"
)

// CSV layout: employee, date (YYYY-MM-DD), clock_in, clock_out. An empty
// clock cell means the punch is missing, which is itself a violation.
var csvHeader = []string{"employee", "date", "clock_in", "clock_out"}

// Row is one parsed timesheet entry.
type Row struct {
	Employee string
	Date     time.Time
	In       time.Duration
	Out      time.Duration
	HasIn    bool
	HasOut   bool
}

// RowError ties a parse failure to its 1-based row number.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

func (e RowError) Error() string { return fmt.Sprintf("row %d: %s", e.Row, e.Message) }

// ReadCSV parses timesheet rows, collecting per-row errors and continuing
// past them. A malformed header fails the whole import.
func ReadCSV(r io.Reader) ([]Row, []RowError, error) {
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

	var rows []Row
	var rowErrs []RowError
	line := 1
	for {
		line++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rowErrs = append(rowErrs, RowError{Row: line, Message: err.Error()})
			continue
		}
		row, err := parseRow(record)
		if err != nil {
			rowErrs = append(rowErrs, RowError{Row: line, Message: err.Error()})
			continue
		}
		rows = append(rows, row)
	}
	return rows, rowErrs, nil
}

func parseRow(record []string) (Row, error) {
	row := Row{Employee: strings.TrimSpace(record[0])}
	if row.Employee == "" {
		return Row{}, fmt.Errorf("employee is required")
	}

	date, err := time.Parse("2006-01-02", strings.TrimSpace(record[1]))
	if err != nil {
		return Row{}, fmt.Errorf("date %q is not YYYY-MM-DD", strings.TrimSpace(record[1]))
	}
	row.Date = date

	if cell := strings.TrimSpace(record[2]); cell != "" {
		in, err := parseClock(cell)
		if err != nil {
			return Row{}, fmt.Errorf("clock_in: %v", err)
		}
		row.In = in
		row.HasIn = true
	}
	if cell := strings.TrimSpace(record[3]); cell != "" {
		out, err := parseClock(cell)
		if err != nil {
			return Row{}, fmt.Errorf("clock_out: %v", err)
		}
		row.Out = out
		row.HasOut = true
	}
	if row.HasIn && row.HasOut && row.Out < row.In {
		return Row{}, fmt.Errorf("clock_out %s is before clock_in %s", formatClock(row.Out), formatClock(row.In))
	}
	return row, nil
}
