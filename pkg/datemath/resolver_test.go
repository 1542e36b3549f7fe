package datemath_test

import (
	"testing"
	"time"

	"github.com/rainerkim/ai-todo-manager/pkg/datemath"
)

func TestNewResolver(t *testing.T) {
	_, err := datemath.NewResolver("Asia/Seoul")
	if err != nil {
		t.Fatalf("unexpected error creating valid resolver: %v", err)
	}

	_, err = datemath.NewResolver("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestResolveAnchors(t *testing.T) {
	resolver, _ := datemath.NewResolver("Asia/Seoul")
	seoul := resolver.Location()

	// Wednesday, January 15, 2025 at 15:30 KST
	ref := time.Date(2025, 1, 15, 15, 30, 0, 0, seoul)
	today := time.Date(2025, 1, 15, 0, 0, 0, 0, seoul)

	a := resolver.Resolve(ref)

	if !a.Today.Equal(today) {
		t.Errorf("Today = %v, want %v", a.Today, today)
	}
	if a.Weekday != time.Wednesday {
		t.Errorf("Weekday = %v, want Wednesday", a.Weekday)
	}
	if !a.Tomorrow.Equal(today.AddDate(0, 0, 1)) {
		t.Errorf("Tomorrow = %v, want %v", a.Tomorrow, today.AddDate(0, 0, 1))
	}
	if !a.DayAfterTomorrow.Equal(today.AddDate(0, 0, 2)) {
		t.Errorf("DayAfterTomorrow = %v, want %v", a.DayAfterTomorrow, today.AddDate(0, 0, 2))
	}
}

func TestResolveIgnoresTimeOfDay(t *testing.T) {
	resolver, _ := datemath.NewResolver("Asia/Seoul")
	seoul := resolver.Location()

	morning := resolver.Resolve(time.Date(2025, 1, 15, 0, 0, 1, 0, seoul))
	night := resolver.Resolve(time.Date(2025, 1, 15, 23, 59, 59, 0, seoul))

	if !morning.Tomorrow.Equal(night.Tomorrow) {
		t.Errorf("Tomorrow differs across time of day: %v vs %v", morning.Tomorrow, night.Tomorrow)
	}
	if !morning.DayAfterTomorrow.Equal(night.DayAfterTomorrow) {
		t.Errorf("DayAfterTomorrow differs across time of day: %v vs %v",
			morning.DayAfterTomorrow, night.DayAfterTomorrow)
	}
}

func TestNextWeekday(t *testing.T) {
	resolver, _ := datemath.NewResolver("Asia/Seoul")
	seoul := resolver.Location()

	// Wednesday, January 15, 2025
	ref := time.Date(2025, 1, 15, 10, 0, 0, 0, seoul)
	a := resolver.Resolve(ref)

	tests := []struct {
		name     string
		target   time.Weekday
		wantDate string
	}{
		{"Friday from Wednesday", time.Friday, "2025-01-17"},
		{"Monday from Wednesday", time.Monday, "2025-01-20"},
		{"Sunday from Wednesday", time.Sunday, "2025-01-19"},
		{"Same weekday skips a full week", time.Wednesday, "2025-01-22"},
		{"Thursday is next day", time.Thursday, "2025-01-16"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.NextWeekday(tt.target).Format(datemath.DateFormat)
			if got != tt.wantDate {
				t.Errorf("NextWeekday(%v) = %s, want %s", tt.target, got, tt.wantDate)
			}
		})
	}
}

func TestNextWeekdayStrictlyFuture(t *testing.T) {
	resolver, _ := datemath.NewResolver("Asia/Seoul")
	seoul := resolver.Location()

	// Sweep every weekday pair: the result must always land after Today.
	for day := 0; day < 7; day++ {
		ref := time.Date(2025, 3, 2+day, 12, 0, 0, 0, seoul)
		a := resolver.Resolve(ref)
		for target := time.Sunday; target <= time.Saturday; target++ {
			next := a.NextWeekday(target)
			if !next.After(a.Today) {
				t.Errorf("NextWeekday(%v) from %v = %v, not strictly after today",
					target, a.Today, next)
			}
			if next.Weekday() != target {
				t.Errorf("NextWeekday(%v) landed on %v", target, next.Weekday())
			}
			if a.Weekday == target {
				if want := a.Today.AddDate(0, 0, 7); !next.Equal(want) {
					t.Errorf("same-weekday case: got %v, want %v", next, want)
				}
			}
		}
	}
}

func TestDayPartClock(t *testing.T) {
	tests := []struct {
		part datemath.DayPart
		want string
	}{
		{datemath.DayPartMorning, "09:00"},
		{datemath.DayPartNoon, "12:00"},
		{datemath.DayPartAfternoon, "14:00"},
		{datemath.DayPartEvening, "18:00"},
		{datemath.DayPartNight, "21:00"},
		{datemath.DayPart("dawn"), ""},
	}

	for _, tt := range tests {
		if got := tt.part.Clock(); got != tt.want {
			t.Errorf("Clock(%q) = %q, want %q", tt.part, got, tt.want)
		}
	}
}
