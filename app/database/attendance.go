package database

import (
	"database/sql"

	"github.com/code-differently/cs-25-2-team6-sub003/app/models"
)

// AttendanceStore is the Postgres-backed attendance record collection. The
// upsert is atomic per (student_id, date): concurrent writers cannot produce
// two rows for the same key.
type AttendanceStore struct {
	DB *sql.DB
}

// GetRecords returns every attendance record for the student.
func (s *AttendanceStore) GetRecords(studentID string) ([]models.AttendanceRecord, error) {
	query := `
		SELECT id, student_id, date, status, early_dismissal, marked_by, created_at, updated_at
		FROM attendance
		WHERE student_id = $1
		ORDER BY date ASC
	`
	rows, err := s.DB.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.AttendanceRecord
	for rows.Next() {
		var rec models.AttendanceRecord
		if err := rows.Scan(
			&rec.ID, &rec.StudentID, &rec.Date, &rec.Status,
			&rec.EarlyDismissal, &rec.MarkedBy, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Upsert writes the record, replacing any prior record for the same
// (student_id, date) key.
func (s *AttendanceStore) Upsert(rec *models.AttendanceRecord) error {
	query := `
		INSERT INTO attendance (student_id, date, status, early_dismissal, marked_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (student_id, date)
		DO UPDATE SET status = EXCLUDED.status,
			early_dismissal = EXCLUDED.early_dismissal,
			marked_by = EXCLUDED.marked_by,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`
	return s.DB.QueryRow(
		query,
		rec.StudentID,
		rec.Date,
		rec.Status,
		rec.EarlyDismissal,
		rec.MarkedBy,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
}

// GetByStudentAndDate returns the record for one day, or nil when the
// student has no record on that date.
func (s *AttendanceStore) GetByStudentAndDate(studentID, dateISO string) (*models.AttendanceRecord, error) {
	query := `
		SELECT id, student_id, date, status, early_dismissal, marked_by, created_at, updated_at
		FROM attendance
		WHERE student_id = $1 AND date = $2
	`
	var rec models.AttendanceRecord
	err := s.DB.QueryRow(query, studentID, dateISO).Scan(
		&rec.ID, &rec.StudentID, &rec.Date, &rec.Status,
		&rec.EarlyDismissal, &rec.MarkedBy, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
