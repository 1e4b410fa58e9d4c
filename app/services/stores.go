package services

import (
	"time"

	"github.com/code-differently/cs-25-2-team6-sub003/app/models"
)

// Collaborator contracts consumed by the engine. The app/database package
// provides the Postgres implementations; tests use in-memory fakes. The
// engine assumes Upsert is atomic per (student_id, date) key — that
// guarantee belongs to the store, not to this package.

// AttendanceStore is the keyed collection of attendance records.
type AttendanceStore interface {
	// GetRecords returns every record for the student, any order.
	GetRecords(studentID string) ([]models.AttendanceRecord, error)

	// Upsert writes the record, replacing any prior record for the same
	// (student_id, date) key.
	Upsert(rec *models.AttendanceRecord) error
}

// DayOffStore is the collection of scheduled days off.
type DayOffStore interface {
	// List returns every scheduled day off, with group scopes populated.
	List() ([]models.ScheduledDayOff, error)

	// MarkApplied flags the day off on the given date as applied.
	MarkApplied(date time.Time) error
}

// StudentDirectory resolves the student population for day-off fan-out and
// evaluation sweeps.
type StudentDirectory interface {
	AllStudentIDs() ([]string, error)
}

// AlertStore is the collection of fired alerts.
type AlertStore interface {
	GetByID(id string) (*models.Alert, error)

	// FindActive returns the active alert for (studentID, thresholdID),
	// or nil when none exists.
	FindActive(studentID, thresholdID string) (*models.Alert, error)

	Insert(alert *models.Alert) error
	Update(alert *models.Alert) error
}
