package datemath

import "time"

// Anchors is a read-only snapshot of the calendar anchors for one
// reference instant. It is recomputed per request, never cached.
type Anchors struct {
	Today            time.Time
	Weekday          time.Weekday
	Tomorrow         time.Time
	DayAfterTomorrow time.Time

	location *time.Location
}

// DayPart is a coarse time-of-day expression mapped to a fixed clock time.
type DayPart string

const (
	DayPartMorning   DayPart = "morning"
	DayPartNoon      DayPart = "noon"
	DayPartAfternoon DayPart = "afternoon"
	DayPartEvening   DayPart = "evening"
	DayPartNight     DayPart = "night"
)

// dayPartClocks maps each day part to its 24-hour clock string.
var dayPartClocks = map[DayPart]string{
	DayPartMorning:   "09:00",
	DayPartNoon:      "12:00",
	DayPartAfternoon: "14:00",
	DayPartEvening:   "18:00",
	DayPartNight:     "21:00",
}

// Clock returns the "HH:MM" time for the day part, or empty string for an
// unknown part.
func (p DayPart) Clock() string {
	return dayPartClocks[p]
}
