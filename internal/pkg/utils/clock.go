package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ClockPattern matches 24-hour "HH:MM" clock strings.
var ClockPattern = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

// TimeToMinutes converts an "HH:MM" clock string to minutes since midnight.
func TimeToMinutes(s string) (int, error) {
	if !ClockPattern.MatchString(s) {
		return 0, fmt.Errorf("invalid clock string %q, expected HH:MM", s)
	}

	parts := strings.SplitN(s, ":", 2)
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", s, err)
	}

	if hour > 23 || minute > 59 {
		return 0, fmt.Errorf("clock string %q out of range", s)
	}

	return hour*60 + minute, nil
}

// MinutesToTimeStr renders a minute count as "HH:MM". Values past midnight are
// rendered as-is ("25:30" for 01:30 next day); callers rely on the unreduced
// form to distinguish next-day arrivals.
func MinutesToTimeStr(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
