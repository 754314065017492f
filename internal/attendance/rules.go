package attendance

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"teamlens-backend/internal/shared/config"
)

// Rules carries the compliance thresholds. Clock values are offsets from
// midnight in the timesheet's local day.
type Rules struct {
	DayStart time.Duration
	DayEnd   time.Duration
	Grace    time.Duration
	MinHours float64
}

// RulesFromConfig parses the configured HH:MM day bounds.
func RulesFromConfig(cfg *config.Config) (Rules, error) {
	start, err := parseClock(cfg.AttendanceDayStart)
	if err != nil {
		return Rules{}, fmt.Errorf("ATTENDANCE_DAY_START: %w", err)
	}
	end, err := parseClock(cfg.AttendanceDayEnd)
	if err != nil {
		return Rules{}, fmt.Errorf("ATTENDANCE_DAY_END: %w", err)
	}
	if end <= start {
		return Rules{}, fmt.Errorf("day end %s must be after day start %s", cfg.AttendanceDayEnd, cfg.AttendanceDayStart)
	}
	return Rules{
		DayStart: start,
		DayEnd:   end,
		Grace:    cfg.AttendanceGrace,
		MinHours: cfg.AttendanceMinHours,
	}, nil
}

// parseClock converts "HH:MM" into an offset from midnight.
func parseClock(value string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%q is not an HH:MM clock value", value)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("%q has an invalid hour", value)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%q has an invalid minute", value)
	}
	return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute, nil
}

func formatClock(offset time.Duration) string {
	total := int(offset.Minutes())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
