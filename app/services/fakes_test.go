package services

import (
	"time"

	"github.com/code-differently/cs-25-2-team6-sub003/app/models"
)

// In-memory collaborator fakes used across the service tests.

type memAttendanceStore struct {
	records map[string]map[string]models.AttendanceRecord // studentID -> dateKey -> record
}

func newMemAttendanceStore() *memAttendanceStore {
	return &memAttendanceStore{records: make(map[string]map[string]models.AttendanceRecord)}
}

func (m *memAttendanceStore) GetRecords(studentID string) ([]models.AttendanceRecord, error) {
	var out []models.AttendanceRecord
	for _, rec := range m.records[studentID] {
		out = append(out, rec)
	}
	return out, nil
}

func (m *memAttendanceStore) Upsert(rec *models.AttendanceRecord) error {
	if m.records[rec.StudentID] == nil {
		m.records[rec.StudentID] = make(map[string]models.AttendanceRecord)
	}
	m.records[rec.StudentID][rec.DateKey()] = *rec
	return nil
}

func (m *memAttendanceStore) get(studentID, dateKey string) (models.AttendanceRecord, bool) {
	rec, ok := m.records[studentID][dateKey]
	return rec, ok
}

type memDayOffStore struct {
	dayOffs []models.ScheduledDayOff
}

func (m *memDayOffStore) List() ([]models.ScheduledDayOff, error) {
	return m.dayOffs, nil
}

func (m *memDayOffStore) MarkApplied(date time.Time) error {
	key := date.Format("2006-01-02")
	for i := range m.dayOffs {
		if m.dayOffs[i].DateKey() == key {
			m.dayOffs[i].Status = models.DayOffApplied
		}
	}
	return nil
}

type memDirectory struct {
	ids []string
}

func (m *memDirectory) AllStudentIDs() ([]string, error) {
	return m.ids, nil
}

type memAlertStore struct {
	alerts map[string]*models.Alert
}

func newMemAlertStore() *memAlertStore {
	return &memAlertStore{alerts: make(map[string]*models.Alert)}
}

func (m *memAlertStore) GetByID(id string) (*models.Alert, error) {
	alert, ok := m.alerts[id]
	if !ok {
		return nil, nil
	}
	copied := *alert
	return &copied, nil
}

func (m *memAlertStore) FindActive(studentID, thresholdID string) (*models.Alert, error) {
	for _, alert := range m.alerts {
		if alert.StudentID == studentID && alert.ThresholdID == thresholdID && alert.Status == models.AlertActive {
			copied := *alert
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memAlertStore) Insert(alert *models.Alert) error {
	copied := *alert
	m.alerts[alert.ID] = &copied
	return nil
}

func (m *memAlertStore) Update(alert *models.Alert) error {
	copied := *alert
	m.alerts[alert.ID] = &copied
	return nil
}

func (m *memAlertStore) activeCount(studentID string) int {
	n := 0
	for _, alert := range m.alerts {
		if alert.StudentID == studentID && alert.Status == models.AlertActive {
			n++
		}
	}
	return n
}

// mustDate parses a YYYY-MM-DD string or panics; tests only.
func mustDate(iso string) time.Time {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		panic(err)
	}
	return t
}

func intPtr(v int) *int { return &v }
