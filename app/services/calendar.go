package services

import (
	"fmt"
	"time"

	"github.com/code-differently/cs-25-2-team6-sub003/app/models"
)

// dateLayout is the wire format for all dates in the system. Comparisons are
// calendar-day only; no timezone offset is carried.
const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string. A malformed input fails with
// ErrInvalidDate; it is never silently replaced with today.
func ParseDate(dateISO string) (time.Time, error) {
	t, err := time.Parse(dateLayout, dateISO)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, dateISO)
	}
	return t, nil
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// IsWeekend reports whether the date falls on Saturday or Sunday. The
// weekend rule is fixed, not configurable.
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DayOffOn returns the scheduled day off covering the student on the given
// date, or nil when the date is a regular day for that student.
func DayOffOn(date time.Time, dayOffs []models.ScheduledDayOff, studentID string) *models.ScheduledDayOff {
	key := date.Format(dateLayout)
	for i := range dayOffs {
		if dayOffs[i].DateKey() == key && dayOffs[i].AppliesTo(studentID) {
			return &dayOffs[i]
		}
	}
	return nil
}

// IsInstructionalDay reports whether the date is a school day for the given
// student: not a weekend and not covered by a scheduled day off.
func IsInstructionalDay(date time.Time, dayOffs []models.ScheduledDayOff, studentID string) bool {
	if IsWeekend(date) {
		return false
	}
	return DayOffOn(date, dayOffs, studentID) == nil
}
