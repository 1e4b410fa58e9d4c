package models

import "time"

// Threshold ids used to deduplicate alerts per (student, threshold).
const (
	ThresholdAbsences30    = "absences_30"
	ThresholdLates30       = "lates_30"
	ThresholdAbsencesTotal = "absences_total"
	ThresholdLatesTotal    = "lates_total"
)

// AlertRuleSet holds the configured thresholds for alert evaluation.
// Nil fields are not evaluated; there is no implicit default.
type AlertRuleSet struct {
	Absences30    *int `json:"absences_30,omitempty" validate:"omitempty,min=0"`
	Lates30       *int `json:"lates_30,omitempty" validate:"omitempty,min=0"`
	AbsencesTotal *int `json:"absences_total,omitempty" validate:"omitempty,min=0"`
	LatesTotal    *int `json:"lates_total,omitempty" validate:"omitempty,min=0"`

	// NotifyParents is copied onto alerts created from this rule set.
	NotifyParents bool `json:"notify_parents"`
}

// IsEmpty reports whether no threshold is configured.
func (r AlertRuleSet) IsEmpty() bool {
	return r.Absences30 == nil && r.Lates30 == nil &&
		r.AbsencesTotal == nil && r.LatesTotal == nil
}

// Alert represents a fired attendance alert. Alerts are never deleted, only
// status-transitioned; at most one active alert exists per
// (student_id, threshold_id).
type Alert struct {
	ID            string      `json:"id" gorm:"primaryKey;type:uuid" validate:"required,uuid"`
	StudentID     string      `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ThresholdID   string      `json:"threshold_id" gorm:"not null;index;type:varchar(20)" validate:"required"`
	Type          AlertType   `json:"type" gorm:"not null;type:varchar(10)"`
	Count         int         `json:"count" gorm:"not null"`
	Status        AlertStatus `json:"status" gorm:"not null;type:varchar(15);default:active"`
	Period        string      `json:"period" gorm:"type:varchar(20)"`
	NotifyParents bool        `json:"notify_parents" gorm:"default:false"`
	Reason        *string     `json:"reason,omitempty"`
	CreatedAt     time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
}

// Acknowledge moves an active alert to acknowledged. Returns false (no-op)
// when the alert is not active.
func (a *Alert) Acknowledge(now time.Time) bool {
	if a.Status != AlertActive {
		return false
	}
	a.Status = AlertAcknowledged
	a.UpdatedAt = now
	return true
}

// Dismiss moves an active alert to dismissed, recording the optional reason.
// Returns false (no-op) when the alert is not active.
func (a *Alert) Dismiss(reason string, now time.Time) bool {
	if a.Status != AlertActive {
		return false
	}
	a.Status = AlertDismissed
	if reason != "" {
		a.Reason = &reason
	}
	a.UpdatedAt = now
	return true
}

// Refresh updates the triggering metric on an already-active alert so a
// re-evaluation never creates a duplicate.
func (a *Alert) Refresh(count int, now time.Time) {
	a.Count = count
	a.UpdatedAt = now
}
