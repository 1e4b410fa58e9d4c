package models

import "time"

// AttendanceRecord represents a student's attendance for one calendar day.
// There is at most one record per (student_id, date); writing again for the
// same key replaces the previous record.
type AttendanceRecord struct {
	ID             string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID      string           `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Date           time.Time        `json:"date" gorm:"not null;index;type:date" validate:"required"`
	Status         AttendanceStatus `json:"status" gorm:"not null;type:varchar(10)" validate:"required,oneof=present absent late excused"`
	EarlyDismissal bool             `json:"early_dismissal" gorm:"default:false"`
	MarkedBy       *string          `json:"marked_by,omitempty" gorm:"type:uuid"`
	CreatedAt      time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
}

// DateKey returns the record's date as a YYYY-MM-DD string.
func (r *AttendanceRecord) DateKey() string {
	return r.Date.Format("2006-01-02")
}
