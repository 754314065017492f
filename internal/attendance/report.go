package attendance

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Kind names a violation category.
type Kind string

const (
	KindLateArrival  Kind = "late_arrival"
	KindEarlyLeave   Kind = "early_leave"
	KindMissingPunch Kind = "missing_punch"
	KindShortDay     Kind = "short_day"
)

// Violation is one rule breach on one timesheet row.
type Violation struct {
	Kind   Kind   `json:"kind"`
	Date   string `json:"date"`
	Detail string `json:"detail"`
}

// EmployeeReport aggregates one employee's rows.
type EmployeeReport struct {
	Employee   string       `json:"employee"`
	Days       int          `json:"days"`
	CleanDays  int          `json:"cleanDays"`
	Violations []Violation  `json:"violations,omitempty"`
	Totals     map[Kind]int `json:"totals"`
}

// Report is the full compliance report for one import.
type Report struct {
	Employees       []EmployeeReport `json:"employees"`
	TotalRows       int              `json:"totalRows"`
	TotalViolations int              `json:"totalViolations"`
	// CompliancePercent is the share of violation-free rows, one decimal.
	CompliancePercent float64    `json:"compliancePercent"`
	RowErrors         []RowError `json:"rowErrors,omitempty"`
	GeneratedAt       time.Time  `json:"generatedAt"`
}

// Evaluate applies the rule table to a single row. Missing punches suppress
// the short-day check since the worked time is unknown.
func Evaluate(rules Rules, row Row) []Violation {
	date := row.Date.Format("2006-01-02")
	var out []Violation

	if !row.HasIn || !row.HasOut {
		missing := "clock_in"
		if row.HasIn {
			missing = "clock_out"
		}
		out = append(out, Violation{
			Kind:   KindMissingPunch,
			Date:   date,
			Detail: fmt.Sprintf("missing %s punch", missing),
		})
	}
	if row.HasIn && row.In > rules.DayStart+rules.Grace {
		out = append(out, Violation{
			Kind:   KindLateArrival,
			Date:   date,
			Detail: fmt.Sprintf("clocked in at %s, grace ends %s", formatClock(row.In), formatClock(rules.DayStart+rules.Grace)),
		})
	}
	if row.HasOut && row.Out < rules.DayEnd {
		out = append(out, Violation{
			Kind:   KindEarlyLeave,
			Date:   date,
			Detail: fmt.Sprintf("clocked out at %s, day ends %s", formatClock(row.Out), formatClock(rules.DayEnd)),
		})
	}
	if row.HasIn && row.HasOut {
		worked := (row.Out - row.In).Hours()
		if worked < rules.MinHours {
			out = append(out, Violation{
				Kind:   KindShortDay,
				Date:   date,
				Detail: fmt.Sprintf("worked %.2f hours, minimum is %.2f", worked, rules.MinHours),
			})
		}
	}
	return out
}

// BuildReport evaluates every row and aggregates per employee.
func BuildReport(rules Rules, rows []Row, rowErrs []RowError) *Report {
	byEmployee := make(map[string]*EmployeeReport)
	report := &Report{
		TotalRows:   len(rows),
		RowErrors:   rowErrs,
		GeneratedAt: time.Now().UTC(),
	}

	cleanRows := 0
	for _, row := range rows {
		er, ok := byEmployee[row.Employee]
		if !ok {
			er = &EmployeeReport{Employee: row.Employee, Totals: make(map[Kind]int)}
			byEmployee[row.Employee] = er
		}
		er.Days++
		violations := Evaluate(rules, row)
		if len(violations) == 0 {
			er.CleanDays++
			cleanRows++
			continue
		}
		er.Violations = append(er.Violations, violations...)
		for _, v := range violations {
			er.Totals[v.Kind]++
		}
		report.TotalViolations += len(violations)
	}

	report.Employees = make([]EmployeeReport, 0, len(byEmployee))
	for _, er := range byEmployee {
		report.Employees = append(report.Employees, *er)
	}
	sort.Slice(report.Employees, func(i, j int) bool {
		return report.Employees[i].Employee < report.Employees[j].Employee
	})

	if len(rows) > 0 {
		report.CompliancePercent = math.Round(float64(cleanRows)/float64(len(rows))*1000) / 10
	}
	return report
}
