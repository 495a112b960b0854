package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DayOfWeek numbers days 0=Monday through 6=Sunday.
type DayOfWeek int

const (
	Monday DayOfWeek = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (d DayOfWeek) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("DayOfWeek(%d)", int(d))
	}
	return dayNames[d]
}

// DayOfWeekFromTime converts a wall-clock time into the Monday-based day
// numbering. Go's time.Weekday is Sunday-based.
func DayOfWeekFromTime(t time.Time) DayOfWeek {
	return DayOfWeek((int(t.Weekday()) + 6) % 7)
}

// TimeOfDay is a wall-clock time within a day, in seconds since midnight.
type TimeOfDay int

// TimeOfDayFromTime extracts the time-of-day component of t.
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*3600 + t.Minute()*60 + t.Second())
}

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m, sec int
	if _, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); err != nil {
		sec = 0
		if _, err = fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
			return 0, fmt.Errorf("invalid time of day %q", s)
		}
	}
	if h < 0 || h > 23 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	return TimeOfDay(h*3600 + m*60 + sec), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", int(t)/3600, int(t)/60%60, int(t)%60)
}

// Schedule is a dayparting window for one campaign: the campaign may run on
// DayOfWeek between StartTime and EndTime, both ends inclusive.
type Schedule struct {
	ID         uuid.UUID
	CampaignID uuid.UUID
	DayOfWeek  DayOfWeek
	StartTime  TimeOfDay
	EndTime    TimeOfDay
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Contains reports whether t falls within the window, inclusive on both ends.
func (s *Schedule) Contains(t TimeOfDay) bool {
	return s.StartTime <= t && t <= s.EndTime
}
