package services

import (
	"fmt"
	"log"
	"time"

	"github.com/code-differently/cs-25-2-team6-sub003/app/models"
)

// ExcusalService applies scheduled days off to the attendance store and
// guards the attendance write path so marks on an off day always land as
// excused.
type ExcusalService struct {
	Attendance AttendanceStore
	DayOffs    DayOffStore
	Students   StudentDirectory
}

// NewExcusalService wires an ExcusalService.
func NewExcusalService(attendance AttendanceStore, dayOffs DayOffStore, students StudentDirectory) *ExcusalService {
	return &ExcusalService{Attendance: attendance, DayOffs: dayOffs, Students: students}
}

// ApplyDayOff upserts an excused record for every student in scope and marks
// the day off as applied. Re-applying is a no-op apart from re-asserting
// excused for students added to scope since the first application. Existing
// records for that date are overwritten regardless of their prior status;
// this is deliberate, not a conflict.
func (s *ExcusalService) ApplyDayOff(off *models.ScheduledDayOff) (int, error) {
	ids, err := s.studentsInScope(off)
	if err != nil {
		return 0, err
	}

	for _, id := range ids {
		rec := &models.AttendanceRecord{
			StudentID:      id,
			Date:           off.Date,
			Status:         models.Excused,
			EarlyDismissal: false,
		}
		if err := s.Attendance.Upsert(rec); err != nil {
			return 0, fmt.Errorf("apply day off %s: %w", off.DateKey(), err)
		}
	}

	if err := s.DayOffs.MarkApplied(off.Date); err != nil {
		return 0, err
	}
	off.Status = models.DayOffApplied

	log.Printf("Applied day off %s (%s): excused %d students", off.DateKey(), off.Reason, len(ids))
	return len(ids), nil
}

func (s *ExcusalService) studentsInScope(off *models.ScheduledDayOff) ([]string, error) {
	if off.Scope == models.StudentGroup {
		return off.StudentIDs, nil
	}
	return s.Students.AllStudentIDs()
}

// GuardStatus returns the status that may actually be persisted for the
// student on the given date. On a scheduled day off the requested status is
// coerced to excused; otherwise it passes through unchanged. Every
// attendance write must consult this guard before persisting.
func (s *ExcusalService) GuardStatus(studentID string, date time.Time, requested models.AttendanceStatus) (models.AttendanceStatus, error) {
	dayOffs, err := s.DayOffs.List()
	if err != nil {
		return "", err
	}
	if DayOffOn(date, dayOffs, studentID) != nil {
		return models.Excused, nil
	}
	return requested, nil
}

// Mark records attendance for a student on a date, routing the requested
// status through the day-off guard first. Marking on an off day silently
// becomes excused with no early dismissal.
func (s *ExcusalService) Mark(rec *models.AttendanceRecord) error {
	status, err := s.GuardStatus(rec.StudentID, rec.Date, rec.Status)
	if err != nil {
		return err
	}
	if status != rec.Status {
		rec.Status = status
		rec.EarlyDismissal = false
	}
	return s.Attendance.Upsert(rec)
}
