package profitability

import (
	"errors"
	"fmt"
	"math"
)

// Band labels a margin percentage.
type Band string

const (
	BandHealthy  Band = "healthy"
	BandThin     Band = "thin"
	BandNegative Band = "negative"
)

// healthyMarginPercent is the cutoff between thin and healthy margins.
const healthyMarginPercent = 30

// RoleInput describes one billable role in the staffing model. Hours are per
// person over the period; utilization is the billable share in [0, 1].
type RoleInput struct {
	Role        string  `json:"role"`
	Headcount   int     `json:"headcount"`
	BillRate    float64 `json:"billRate"`
	CostRate    float64 `json:"costRate"`
	Hours       float64 `json:"hours"`
	Utilization float64 `json:"utilization"`
}

// RoleResult is the computed economics of one role.
type RoleResult struct {
	Role          string  `json:"role"`
	Revenue       float64 `json:"revenue"`
	Cost          float64 `json:"cost"`
	Margin        float64 `json:"margin"`
	MarginPercent float64 `json:"marginPercent"`
	Band          Band    `json:"band"`
}

// Input is a full calculator request.
type Input struct {
	Roles []RoleInput `json:"roles"`
}

// Result is the per-role breakdown plus the blended total.
type Result struct {
	Roles              []RoleResult `json:"roles"`
	TotalRevenue       float64      `json:"totalRevenue"`
	TotalCost          float64      `json:"totalCost"`
	TotalMargin        float64      `json:"totalMargin"`
	TotalMarginPercent float64      `json:"totalMarginPercent"`
	Band               Band         `json:"band"`
}

// Calculate runs the deterministic staffing model. Revenue accrues only on
// utilized hours; cost accrues on all hours.
func Calculate(input Input) (*Result, error) {
	if len(input.Roles) == 0 {
		return nil, errors.New("at least one role is required")
	}
	result := &Result{Roles: make([]RoleResult, 0, len(input.Roles))}
	for i, role := range input.Roles {
		if err := validateRole(role); err != nil {
			return nil, fmt.Errorf("role %d: %w", i+1, err)
		}
		people := float64(role.Headcount)
		revenue := roundCents(people * role.Hours * role.Utilization * role.BillRate)
		cost := roundCents(people * role.Hours * role.CostRate)
		margin := roundCents(revenue - cost)
		percent := marginPercent(margin, revenue)
		result.Roles = append(result.Roles, RoleResult{
			Role:          role.Role,
			Revenue:       revenue,
			Cost:          cost,
			Margin:        margin,
			MarginPercent: percent,
			Band:          bandOf(percent),
		})
		result.TotalRevenue = roundCents(result.TotalRevenue + revenue)
		result.TotalCost = roundCents(result.TotalCost + cost)
	}
	result.TotalMargin = roundCents(result.TotalRevenue - result.TotalCost)
	result.TotalMarginPercent = marginPercent(result.TotalMargin, result.TotalRevenue)
	result.Band = bandOf(result.TotalMarginPercent)
	return result, nil
}

func validateRole(role RoleInput) error {
	switch {
	case role.Role == "":
		return errors.New("name is required")
	case role.Headcount < 1:
		return errors.New("headcount must be at least 1")
	case role.BillRate < 0 || role.CostRate < 0:
		return errors.New("rates must not be negative")
	case role.Hours <= 0:
		return errors.New("hours must be positive")
	case role.Utilization < 0 || role.Utilization > 1:
		return errors.New("utilization must be between 0 and 1")
	default:
		return nil
	}
}

func marginPercent(margin, revenue float64) float64 {
	if revenue == 0 {
		if margin < 0 {
			return -100
		}
		return 0
	}
	return math.Round(margin/revenue*1000) / 10
}

func bandOf(percent float64) Band {
	switch {
	case percent < 0:
		return BandNegative
	case percent >= healthyMarginPercent:
		return BandHealthy
	default:
		return BandThin
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
