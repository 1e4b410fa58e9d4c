package database

import (
	"database/sql"
	"time"

	"github.com/code-differently/cs-25-2-team6-sub003/app/models"
)

// DayOffStore is the Postgres-backed scheduled day off collection.
type DayOffStore struct {
	DB *sql.DB
}

// Create adds a new planned day off. Group-scoped day offs also write their
// student list.
func (s *DayOffStore) Create(off *models.ScheduledDayOff) error {
	query := `
		INSERT INTO day_offs (date, reason, scope, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, 'planned', $4, NOW(), NOW())
		RETURNING id, status, created_at, updated_at
	`
	err := s.DB.QueryRow(query, off.Date, off.Reason, off.Scope, off.CreatedBy).
		Scan(&off.ID, &off.Status, &off.CreatedAt, &off.UpdatedAt)
	if err != nil {
		return err
	}

	for _, studentID := range off.StudentIDs {
		if _, err := s.DB.Exec(
			`INSERT INTO day_off_students (day_off_id, student_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			off.ID, studentID,
		); err != nil {
			return err
		}
	}
	return nil
}

// List returns every scheduled day off ordered by date, with group student
// lists populated.
func (s *DayOffStore) List() ([]models.ScheduledDayOff, error) {
	query := `
		SELECT id, date, reason, scope, status, created_by, created_at, updated_at
		FROM day_offs
		ORDER BY date ASC
	`
	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offs []models.ScheduledDayOff
	for rows.Next() {
		var off models.ScheduledDayOff
		if err := rows.Scan(
			&off.ID, &off.Date, &off.Reason, &off.Scope,
			&off.Status, &off.CreatedBy, &off.CreatedAt, &off.UpdatedAt,
		); err != nil {
			return nil, err
		}
		offs = append(offs, off)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range offs {
		if offs[i].Scope != models.StudentGroup {
			continue
		}
		ids, err := s.studentIDs(offs[i].ID)
		if err != nil {
			return nil, err
		}
		offs[i].StudentIDs = ids
	}
	return offs, nil
}

// GetByID returns one day off, or nil when the id is unknown.
func (s *DayOffStore) GetByID(id string) (*models.ScheduledDayOff, error) {
	query := `
		SELECT id, date, reason, scope, status, created_by, created_at, updated_at
		FROM day_offs
		WHERE id = $1
	`
	var off models.ScheduledDayOff
	err := s.DB.QueryRow(query, id).Scan(
		&off.ID, &off.Date, &off.Reason, &off.Scope,
		&off.Status, &off.CreatedBy, &off.CreatedAt, &off.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if off.Scope == models.StudentGroup {
		ids, err := s.studentIDs(off.ID)
		if err != nil {
			return nil, err
		}
		off.StudentIDs = ids
	}
	return &off, nil
}

// MarkApplied flags the day off on the given date as applied.
func (s *DayOffStore) MarkApplied(date time.Time) error {
	query := `UPDATE day_offs SET status = 'applied', updated_at = NOW() WHERE date = $1`
	_, err := s.DB.Exec(query, date)
	return err
}

func (s *DayOffStore) studentIDs(dayOffID string) ([]string, error) {
	rows, err := s.DB.Query(
		`SELECT student_id FROM day_off_students WHERE day_off_id = $1`, dayOffID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
