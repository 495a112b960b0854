package domain

import (
	"testing"
	"time"
)

func TestDayOfWeekFromTime(t *testing.T) {
	cases := []struct {
		date time.Time
		want DayOfWeek
	}{
		{time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC), Monday},
		{time.Date(2025, 6, 6, 12, 0, 0, 0, time.UTC), Friday},
		{time.Date(2025, 6, 7, 12, 0, 0, 0, time.UTC), Saturday},
		{time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC), Sunday},
	}
	for _, c := range cases {
		if got := DayOfWeekFromTime(c.date); got != c.want {
			t.Errorf("DayOfWeekFromTime(%s) = %s, want %s", c.date.Format("2006-01-02"), got, c.want)
		}
	}
}

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in   string
		want TimeOfDay
		ok   bool
	}{
		{"09:00", 9 * 3600, true},
		{"09:30:15", 9*3600 + 30*60 + 15, true},
		{"23:59:59", 24*3600 - 1, true},
		{"00:00", 0, true},
		{"24:00", 0, false},
		{"bogus", 0, false},
	}
	for _, c := range cases {
		got, err := ParseTimeOfDay(c.in)
		if c.ok != (err == nil) {
			t.Errorf("ParseTimeOfDay(%q) error = %v, want ok=%v", c.in, err, c.ok)
			continue
		}
		if c.ok && got != c.want {
			t.Errorf("ParseTimeOfDay(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestTimeOfDayString(t *testing.T) {
	if got := TimeOfDay(9*3600 + 5*60).String(); got != "09:05:00" {
		t.Fatalf("String() = %q, want 09:05:00", got)
	}
}

// Both window ends are inclusive.
func TestScheduleContainsInclusiveBounds(t *testing.T) {
	s := Schedule{StartTime: 9 * 3600, EndTime: 18 * 3600}
	if !s.Contains(9 * 3600) {
		t.Error("start boundary should be in range")
	}
	if !s.Contains(18 * 3600) {
		t.Error("end boundary should be in range")
	}
	if s.Contains(9*3600 - 1) {
		t.Error("time before start should be out of range")
	}
	if s.Contains(18*3600 + 1) {
		t.Error("time after end should be out of range")
	}
}

func TestPausedFor(t *testing.T) {
	reason := ReasonOutsideSchedule
	paused := Campaign{Status: StatusPaused, PauseReason: &reason}
	if !paused.PausedFor(ScheduleReasons()...) {
		t.Error("OUTSIDE_SCHEDULE should match schedule reasons")
	}
	if paused.PausedFor(BudgetReasons()...) {
		t.Error("OUTSIDE_SCHEDULE should not match budget reasons")
	}
	active := Campaign{Status: StatusActive}
	if active.PausedFor(ReasonManual) {
		t.Error("active campaign is not paused for any reason")
	}
}
