package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema on first boot and applies incremental
// updates after. Statements are idempotent so re-running on startup is safe.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS roles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT UNIQUE NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS user_roles (
			user_id UUID NOT NULL REFERENCES users(id),
			role_id UUID NOT NULL REFERENCES roles(id),
			PRIMARY KEY (user_id, role_id)
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_no TEXT UNIQUE NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		// One row per (student, date); the upsert path depends on this key.
		`CREATE TABLE IF NOT EXISTS attendance (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			date DATE NOT NULL,
			status VARCHAR(10) NOT NULL,
			early_dismissal BOOLEAN NOT NULL DEFAULT false,
			marked_by UUID REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (student_id, date)
		)`,
		`CREATE TABLE IF NOT EXISTS day_offs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			date DATE UNIQUE NOT NULL,
			reason VARCHAR(20) NOT NULL,
			scope VARCHAR(20) NOT NULL DEFAULT 'all_students',
			status VARCHAR(10) NOT NULL DEFAULT 'planned',
			created_by UUID REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS day_off_students (
			day_off_id UUID NOT NULL REFERENCES day_offs(id) ON DELETE CASCADE,
			student_id UUID NOT NULL REFERENCES students(id),
			PRIMARY KEY (day_off_id, student_id)
		)`,
		`CREATE TABLE IF NOT EXISTS alerts (
			id UUID PRIMARY KEY,
			student_id UUID NOT NULL REFERENCES students(id),
			threshold_id VARCHAR(20) NOT NULL,
			type VARCHAR(10) NOT NULL,
			count INTEGER NOT NULL,
			status VARCHAR(15) NOT NULL DEFAULT 'active',
			period VARCHAR(20),
			notify_parents BOOLEAN NOT NULL DEFAULT false,
			reason TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_student_date ON attendance (student_id, date)`,
		`CREATE INDEX IF NOT EXISTS idx_alerts_student_status ON alerts (student_id, status)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
