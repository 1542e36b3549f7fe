package datemath

import (
	"fmt"
	"time"
)

// DateFormat is the calendar-date layout used across the service.
const DateFormat = "2006-01-02"

// Resolver computes calendar anchors for relative date expressions
// ("tomorrow", "next Friday") against a reference instant.
type Resolver struct {
	location *time.Location
}

// NewResolver creates a resolver for the given IANA timezone string,
// e.g. "Asia/Seoul".
func NewResolver(timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc}, nil
}

// Location returns the resolver's timezone.
func (r *Resolver) Location() *time.Location {
	return r.location
}

// Resolve snapshots all calendar anchors for the given reference instant.
// Anchors are calendar dates (midnight in the resolver's zone); the
// time-of-day component of the reference never shifts them.
func (r *Resolver) Resolve(ref time.Time) Anchors {
	today := r.startOfDay(ref)
	return Anchors{
		Today:            today,
		Weekday:          today.Weekday(),
		Tomorrow:         today.AddDate(0, 0, 1),
		DayAfterTomorrow: today.AddDate(0, 0, 2),
		location:         r.location,
	}
}

// NextWeekday returns the date of the next occurrence of target strictly
// after Today. When Today already falls on target, the result is a full
// week ahead: "next Monday" asked on a Monday means the following Monday.
func (a Anchors) NextWeekday(target time.Weekday) time.Time {
	daysAhead := (int(target) - int(a.Weekday) + 7) % 7
	if daysAhead == 0 {
		daysAhead = 7
	}
	return a.Today.AddDate(0, 0, daysAhead)
}

// startOfDay returns midnight at the start of the given day in the
// resolver's timezone.
func (r *Resolver) startOfDay(t time.Time) time.Time {
	t = t.In(r.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.location)
}
