package database

import (
	"database/sql"

	"github.com/lib/pq"

	"github.com/code-differently/cs-25-2-team6-sub003/app/models"
	"github.com/code-differently/cs-25-2-team6-sub003/app/services"
)

// StudentStore is the Postgres-backed student directory.
type StudentStore struct {
	DB *sql.DB
}

// AllStudentIDs returns the ids of every active student, for day-off
// fan-out and alert sweeps.
func (s *StudentStore) AllStudentIDs() ([]string, error) {
	rows, err := s.DB.Query(
		`SELECT id FROM students WHERE is_active = true AND deleted_at IS NULL`)
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

// GetStudents returns every non-deleted student ordered by student number.
func (s *StudentStore) GetStudents() ([]models.Student, error) {
	query := `
		SELECT id, student_no, first_name, last_name, is_active, created_at, updated_at
		FROM students
		WHERE deleted_at IS NULL
		ORDER BY student_no ASC
	`
	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		var st models.Student
		if err := rows.Scan(
			&st.ID, &st.StudentNo, &st.FirstName, &st.LastName,
			&st.IsActive, &st.CreatedAt, &st.UpdatedAt,
		); err != nil {
			return nil, err
		}
		students = append(students, st)
	}
	return students, rows.Err()
}

// GetStudentByID returns one student, or nil when the id is unknown.
func (s *StudentStore) GetStudentByID(id string) (*models.Student, error) {
	query := `
		SELECT id, student_no, first_name, last_name, is_active, created_at, updated_at
		FROM students
		WHERE id = $1 AND deleted_at IS NULL
	`
	var st models.Student
	err := s.DB.QueryRow(query, id).Scan(
		&st.ID, &st.StudentNo, &st.FirstName, &st.LastName,
		&st.IsActive, &st.CreatedAt, &st.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// CreateStudent adds a new student. A taken student number surfaces as
// services.ErrDuplicateID.
func (s *StudentStore) CreateStudent(st *models.Student) error {
	query := `
		INSERT INTO students (student_no, first_name, last_name, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, true, NOW(), NOW())
		RETURNING id, is_active, created_at, updated_at
	`
	err := s.DB.QueryRow(query, st.StudentNo, st.FirstName, st.LastName).
		Scan(&st.ID, &st.IsActive, &st.CreatedAt, &st.UpdatedAt)
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		return services.ErrDuplicateID
	}
	return err
}
