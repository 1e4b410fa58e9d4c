package models

// AttendanceStatus defines the possible status values for attendance.
type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"
	Late    AttendanceStatus = "late"
	Excused AttendanceStatus = "excused"
)

// IsValid reports whether the status is one of the four known values.
func (s AttendanceStatus) IsValid() bool {
	switch s {
	case Present, Absent, Late, Excused:
		return true
	default:
		return false
	}
}

// DayOffReason defines why a scheduled day off was planned.
type DayOffReason string

const (
	Holiday     DayOffReason = "holiday"
	ProfDev     DayOffReason = "prof_dev"
	ReportCard  DayOffReason = "report_card"
	OtherDayOff DayOffReason = "other"
)

// IsValid reports whether the reason is a known value.
func (r DayOffReason) IsValid() bool {
	switch r {
	case Holiday, ProfDev, ReportCard, OtherDayOff:
		return true
	default:
		return false
	}
}

// DayOffScope defines which students a scheduled day off covers.
type DayOffScope string

const (
	AllStudents  DayOffScope = "all_students"
	StudentGroup DayOffScope = "student_group"
)

// IsValid reports whether the scope is a known value.
func (s DayOffScope) IsValid() bool {
	return s == AllStudents || s == StudentGroup
}

// DayOffStatus tracks the lifecycle of a scheduled day off.
type DayOffStatus string

const (
	DayOffPlanned DayOffStatus = "planned"
	DayOffApplied DayOffStatus = "applied"
)

// AlertType defines what kind of attendance pattern an alert is about.
type AlertType string

const (
	AbsenceAlert  AlertType = "absence"
	LatenessAlert AlertType = "lateness"
)

// AlertStatus tracks the lifecycle of an alert.
type AlertStatus string

const (
	AlertActive       AlertStatus = "active"
	AlertAcknowledged AlertStatus = "acknowledged"
	AlertDismissed    AlertStatus = "dismissed"
)

// IsValid reports whether the alert status is a known value.
func (s AlertStatus) IsValid() bool {
	switch s {
	case AlertActive, AlertAcknowledged, AlertDismissed:
		return true
	default:
		return false
	}
}

// Granularity defines the bucket size for attendance rollups.
type Granularity string

const (
	Daily   Granularity = "daily"
	Weekly  Granularity = "weekly"
	Monthly Granularity = "monthly"
)

// IsValid reports whether the granularity is a known value.
func (g Granularity) IsValid() bool {
	switch g {
	case Daily, Weekly, Monthly:
		return true
	default:
		return false
	}
}
