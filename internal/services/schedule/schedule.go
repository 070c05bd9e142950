// Package schedule decides whether the arcade is inside its operating hours.
package schedule

import (
	"fmt"
	"strings"
	"time"
)

// Window is one day's opening hours as "HH:MM" strings. A close earlier than
// open runs past midnight into the next day.
type Window struct {
	Open  string `yaml:"open" json:"open"`
	Close string `yaml:"close" json:"close"`
}

// Config holds configuration for the weekly schedule
type Config struct {
	// Days maps lower case weekday names to their window. Missing days are
	// closed. An empty map means always open.
	Days map[string]Window

	// Location the windows are expressed in, defaults to UTC
	Location *time.Location
}

type window struct {
	open  time.Duration
	close time.Duration
}

// Weekly is a weekly operating-hours schedule
type Weekly struct {
	days     map[time.Weekday]window
	location *time.Location
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// New creates a weekly schedule
func New(cfg *Config) (*Weekly, error) {
	w := &Weekly{
		days:     make(map[time.Weekday]window),
		location: time.UTC,
	}
	if cfg == nil {
		return w, nil
	}

	if cfg.Location != nil {
		w.location = cfg.Location
	}

	for name, day := range cfg.Days {
		weekday, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", name)
		}

		open, err := parseClock(day.Open)
		if err != nil {
			return nil, fmt.Errorf("invalid open time for %s: %w", name, err)
		}

		closeAt, err := parseClock(day.Close)
		if err != nil {
			return nil, fmt.Errorf("invalid close time for %s: %w", name, err)
		}

		w.days[weekday] = window{open: open, close: closeAt}
	}

	return w, nil
}

// AlwaysOpen reports whether no days were configured
func (w *Weekly) AlwaysOpen() bool {
	return len(w.days) == 0
}

// IsOpen reports whether now falls in today's window or in yesterday's
// window running past midnight
func (w *Weekly) IsOpen(now time.Time) bool {
	if w.AlwaysOpen() {
		return true
	}

	local := now.In(w.location)
	sinceMidnight := time.Duration(local.Hour())*time.Hour +
		time.Duration(local.Minute())*time.Minute +
		time.Duration(local.Second())*time.Second

	if today, ok := w.days[local.Weekday()]; ok {
		if today.open <= today.close {
			if today.open <= sinceMidnight && sinceMidnight < today.close {
				return true
			}
		} else if sinceMidnight >= today.open {
			return true
		}
	}

	yesterday := (local.Weekday() + 6) % 7
	if prev, ok := w.days[yesterday]; ok && prev.open > prev.close {
		if sinceMidnight < prev.close {
			return true
		}
	}

	return false
}

func parseClock(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	for _, layout := range []string{"15:04", "15:04:05"} {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return time.Duration(parsed.Hour())*time.Hour +
				time.Duration(parsed.Minute())*time.Minute +
				time.Duration(parsed.Second())*time.Second, nil
		}
	}
	return 0, fmt.Errorf("expected HH:MM, got %q", value)
}
