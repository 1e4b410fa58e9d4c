package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/code-differently/cs-25-2-team6-sub003/app/models"
)

// RollupService turns a student's raw attendance records into calendar-aware
// time buckets and year-to-date summaries. All computation is in-memory over
// already-fetched records; "no data" is an empty result, never an error.
type RollupService struct {
	Attendance AttendanceStore
	DayOffs    DayOffStore

	// Now is the clock used for the default year-to-date year. Overridable
	// in tests.
	Now func() time.Time
}

// NewRollupService wires a RollupService.
func NewRollupService(attendance AttendanceStore, dayOffs DayOffStore) *RollupService {
	return &RollupService{Attendance: attendance, DayOffs: dayOffs, Now: time.Now}
}

// Rollup groups the student's instructional-day records into buckets of the
// given granularity, ordered by ascending period key. Weekend and day-off
// dates never produce a bucket; neither do instructional days with no record
// (a missing record is not an implicit absence — day totals are not complete
// rosters). startISO/endISO are optional; empty means unbounded on that side.
func (s *RollupService) Rollup(studentID string, granularity models.Granularity, startISO, endISO string) ([]models.TimeBucket, error) {
	var start, end time.Time
	var err error

	if startISO != "" {
		if start, err = ParseDate(startISO); err != nil {
			return nil, err
		}
	}
	if endISO != "" {
		if end, err = ParseDate(endISO); err != nil {
			return nil, err
		}
	}
	if startISO != "" && endISO != "" && start.After(end) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange, startISO, endISO)
	}

	records, err := s.Attendance.GetRecords(studentID)
	if err != nil {
		return nil, err
	}
	dayOffs, err := s.DayOffs.List()
	if err != nil {
		return nil, err
	}

	byPeriod := make(map[string]*models.TimeBucket)
	for i := range records {
		rec := &records[i]
		if startISO != "" && rec.Date.Before(start) {
			continue
		}
		if endISO != "" && rec.Date.After(end) {
			continue
		}
		if !IsInstructionalDay(rec.Date, dayOffs, studentID) {
			continue
		}

		key := periodKey(rec.Date, granularity)
		bucket, ok := byPeriod[key]
		if !ok {
			bucket = &models.TimeBucket{PeriodKey: key}
			byPeriod[key] = bucket
		}
		countStatus(bucket, rec.Status)
	}

	buckets := make([]models.TimeBucket, 0, len(byPeriod))
	for _, bucket := range byPeriod {
		bucket.Rate = attendanceRate(bucket)
		buckets = append(buckets, *bucket)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].PeriodKey < buckets[j].PeriodKey
	})
	return buckets, nil
}

// YearToDateSummary aggregates the student's instructional-day records for
// the given calendar year. Zero means the current year. A student with no
// records in range yields zeroed counts, not an error.
func (s *RollupService) YearToDateSummary(studentID string, year int) (*models.YearToDateSummary, error) {
	if year == 0 {
		year = s.Now().Year()
	}

	records, err := s.Attendance.GetRecords(studentID)
	if err != nil {
		return nil, err
	}
	dayOffs, err := s.DayOffs.List()
	if err != nil {
		return nil, err
	}

	summary := &models.YearToDateSummary{Year: year}
	for i := range records {
		rec := &records[i]
		if rec.Date.Year() != year {
			continue
		}
		if !IsInstructionalDay(rec.Date, dayOffs, studentID) {
			continue
		}
		switch rec.Status {
		case models.Present:
			summary.Present++
		case models.Absent:
			summary.Absent++
		case models.Late:
			summary.Late++
		case models.Excused:
			summary.Excused++
		}
	}
	return summary, nil
}

// periodKey renders the bucket key for a date: YYYY-MM-DD for daily,
// YYYY-Www for weekly (Monday-start ISO weeks), YYYY-MM for monthly. ISO
// week keys sort chronologically within the rollup's ascending order.
func periodKey(date time.Time, granularity models.Granularity) string {
	switch granularity {
	case models.Weekly:
		year, week := date.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case models.Monthly:
		return date.Format("2006-01")
	default:
		return date.Format(dateLayout)
	}
}

func countStatus(bucket *models.TimeBucket, status models.AttendanceStatus) {
	switch status {
	case models.Present:
		bucket.Present++
	case models.Absent:
		bucket.Absent++
	case models.Late:
		bucket.Late++
	case models.Excused:
		bucket.Excused++
	}
	bucket.Total++
}

// attendanceRate is (present + late) / total as a percentage, one decimal.
func attendanceRate(bucket *models.TimeBucket) float64 {
	if bucket.Total == 0 {
		return 0
	}
	rate := float64(bucket.Present+bucket.Late) / float64(bucket.Total) * 100
	return math.Round(rate*10) / 10
}
