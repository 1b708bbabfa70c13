package models

import (
	"fmt"
	"time"
)

// Clock is a time of day as a zero-padded "HH:MM:SS" string. Zero-padding
// makes lexicographic order equal chronological order, so clocks compare
// correctly both in Go and inside SQL text columns.
type Clock string

// NewClock builds a normalized clock from hour/minute/second components.
func NewClock(h, m, s int) Clock {
	return Clock(fmt.Sprintf("%02d:%02d:%02d", h, m, s))
}

// ParseClock accepts "HH:MM" or "HH:MM:SS" and returns the normalized
// "HH:MM:SS" form, rejecting anything that is not a valid time of day.
func ParseClock(raw string) (Clock, error) {
	layout := "15:04:05"
	if len(raw) == len("15:04") {
		layout = "15:04"
	}
	t, err := time.Parse(layout, raw)
	if err != nil {
		return "", fmt.Errorf("invalid time %q", raw)
	}
	return Clock(t.Format("15:04:05")), nil
}

// IsValid reports whether c is a well-formed time of day.
func (c Clock) IsValid() bool {
	_, err := ParseClock(string(c))
	return err == nil
}

// AddMinutes returns the clock d minutes later, rolling over midnight:
// 23:50:00 plus 30 minutes is 00:20:00. Seconds are carried unchanged.
func (c Clock) AddMinutes(d int) Clock {
	var h, m, s int
	fmt.Sscanf(string(c), "%2d:%2d:%2d", &h, &m, &s)
	total := (h*60 + m + d) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return NewClock(total/60, total%60, s)
}
