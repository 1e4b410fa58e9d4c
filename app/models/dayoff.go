package models

import "time"

// ScheduledDayOff represents a planned non-instructional day (holiday,
// professional development, report card day, ...). Once applied it is
// immutable as far as the attendance engine is concerned.
type ScheduledDayOff struct {
	ID        string       `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Date      time.Time    `json:"date" gorm:"not null;uniqueIndex;type:date" validate:"required"`
	Reason    DayOffReason `json:"reason" gorm:"not null;type:varchar(20)" validate:"required,oneof=holiday prof_dev report_card other"`
	Scope     DayOffScope  `json:"scope" gorm:"not null;type:varchar(20)" validate:"required,oneof=all_students student_group"`
	Status    DayOffStatus `json:"status" gorm:"not null;type:varchar(10);default:planned"`
	CreatedBy *string      `json:"created_by,omitempty" gorm:"type:uuid"`
	CreatedAt time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time    `json:"updated_at" gorm:"autoUpdateTime"`

	// StudentIDs lists the covered students when Scope is student_group.
	// Empty for all_students.
	StudentIDs []string `json:"student_ids,omitempty" gorm:"-"`
}

// DateKey returns the day off's date as a YYYY-MM-DD string.
func (d *ScheduledDayOff) DateKey() string {
	return d.Date.Format("2006-01-02")
}

// AppliesTo reports whether the day off covers the given student.
func (d *ScheduledDayOff) AppliesTo(studentID string) bool {
	if d.Scope == AllStudents {
		return true
	}
	for _, id := range d.StudentIDs {
		if id == studentID {
			return true
		}
	}
	return false
}

// IsApplied reports whether the day off has already been fanned out.
func (d *ScheduledDayOff) IsApplied() bool {
	return d.Status == DayOffApplied
}
