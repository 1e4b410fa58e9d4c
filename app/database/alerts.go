package database

import (
	"database/sql"

	"github.com/code-differently/cs-25-2-team6-sub003/app/models"
)

// AlertStore is the Postgres-backed alert collection.
type AlertStore struct {
	DB *sql.DB
}

const alertColumns = `id, student_id, threshold_id, type, count, status, period, notify_parents, reason, created_at, updated_at`

func scanAlert(row interface{ Scan(...interface{}) error }) (*models.Alert, error) {
	var a models.Alert
	err := row.Scan(
		&a.ID, &a.StudentID, &a.ThresholdID, &a.Type, &a.Count,
		&a.Status, &a.Period, &a.NotifyParents, &a.Reason, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetByID returns one alert, or nil when the id is unknown.
func (s *AlertStore) GetByID(id string) (*models.Alert, error) {
	alert, err := scanAlert(s.DB.QueryRow(
		`SELECT `+alertColumns+` FROM alerts WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return alert, err
}

// FindActive returns the active alert for (studentID, thresholdID), or nil
// when none exists. At most one can exist; the lifecycle service keeps it so.
func (s *AlertStore) FindActive(studentID, thresholdID string) (*models.Alert, error) {
	alert, err := scanAlert(s.DB.QueryRow(
		`SELECT `+alertColumns+` FROM alerts
		 WHERE student_id = $1 AND threshold_id = $2 AND status = 'active'`,
		studentID, thresholdID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return alert, err
}

// List returns alerts, optionally filtered by student and/or status, newest
// first.
func (s *AlertStore) List(studentID string, status models.AlertStatus) ([]models.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE 1=1`
	args := []interface{}{}
	if studentID != "" {
		args = append(args, studentID)
		query += ` AND student_id = $1`
	}
	if status != "" {
		args = append(args, status)
		if len(args) == 2 {
			query += ` AND status = $2`
		} else {
			query += ` AND status = $1`
		}
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alerts []models.Alert
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, *alert)
	}
	return alerts, rows.Err()
}

// Insert adds a new alert.
func (s *AlertStore) Insert(a *models.Alert) error {
	query := `
		INSERT INTO alerts (id, student_id, threshold_id, type, count, status, period, notify_parents, reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := s.DB.Exec(query,
		a.ID, a.StudentID, a.ThresholdID, a.Type, a.Count,
		a.Status, a.Period, a.NotifyParents, a.Reason, a.CreatedAt, a.UpdatedAt,
	)
	return err
}

// Update rewrites the mutable fields of an alert.
func (s *AlertStore) Update(a *models.Alert) error {
	query := `
		UPDATE alerts
		SET count = $1, status = $2, reason = $3, updated_at = $4
		WHERE id = $5
	`
	_, err := s.DB.Exec(query, a.Count, a.Status, a.Reason, a.UpdatedAt, a.ID)
	return err
}
