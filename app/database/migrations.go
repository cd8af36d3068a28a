package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates missing tables and applies schema updates. All steps
// are idempotent so the service can run them on every start.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	steps := []struct {
		name string
		fn   func(*sql.DB) error
	}{
		{"core tables", createCoreTables},
		{"record tables", createRecordTables},
		{"default roles", seedRoles},
		{"settings row", seedSettings},
	}

	for _, step := range steps {
		if err := step.fn(db); err != nil {
			log.Printf("Migration step %q failed: %v", step.name, err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createCoreTables(db *sql.DB) error {
	query := `
		CREATE EXTENSION IF NOT EXISTS pgcrypto;

		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			document VARCHAR(30),
			phone VARCHAR(20),
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		);

		CREATE TABLE IF NOT EXISTS roles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(50) UNIQUE NOT NULL
		);

		CREATE TABLE IF NOT EXISTS user_roles (
			user_id UUID NOT NULL REFERENCES users(id),
			role_id UUID NOT NULL REFERENCES roles(id),
			PRIMARY KEY (user_id, role_id)
		);

		CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			expires_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_expires ON sessions(expires_at);

		CREATE TABLE IF NOT EXISTS sedes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(100) UNIQUE NOT NULL,
			address VARCHAR(255),
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS courses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			sede_id UUID NOT NULL REFERENCES sedes(id),
			name VARCHAR(50) NOT NULL,
			grade_level INT NOT NULL DEFAULT 0,
			director_id UUID REFERENCES users(id),
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (sede_id, name)
		);

		CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			document VARCHAR(30) UNIQUE NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			gender VARCHAR(10),
			date_of_birth DATE,
			sede_id UUID REFERENCES sedes(id),
			course_id UUID REFERENCES courses(id),
			status VARCHAR(20) NOT NULL DEFAULT 'active',
			has_piar BOOLEAN NOT NULL DEFAULT false,
			guardian_name VARCHAR(200),
			guardian_phone VARCHAR(20),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_students_course ON students(course_id);
	`
	_, err := db.Exec(query)
	return err
}

func createRecordTables(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS annotations (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			teacher_id UUID NOT NULL REFERENCES users(id),
			period INT NOT NULL CHECK (period BETWEEN 1 AND 4),
			category VARCHAR(20) NOT NULL,
			level VARCHAR(15) NOT NULL,
			description TEXT NOT NULL,
			action TEXT NOT NULL DEFAULT '',
			escalated_to VARCHAR(200),
			escalation_note TEXT,
			student_signed BOOLEAN NOT NULL DEFAULT false,
			parent_signed BOOLEAN NOT NULL DEFAULT false,
			priority BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_annotations_student ON annotations(student_id, period);

		CREATE TABLE IF NOT EXISTS annotation_followups (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			annotation_id UUID NOT NULL REFERENCES annotations(id),
			author_id UUID NOT NULL REFERENCES users(id),
			observation TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS attendance_logs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			course_id UUID REFERENCES courses(id),
			period INT NOT NULL CHECK (period BETWEEN 1 AND 4),
			type VARCHAR(10) NOT NULL,
			date DATE NOT NULL,
			marked_by UUID NOT NULL REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_attendance_student ON attendance_logs(student_id, period);
		CREATE INDEX IF NOT EXISTS idx_attendance_course_date ON attendance_logs(course_id, date);

		CREATE TABLE IF NOT EXISTS piar_records (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			teacher_id UUID NOT NULL REFERENCES users(id),
			period INT NOT NULL CHECK (period BETWEEN 1 AND 4),
			objectives TEXT NOT NULL,
			barriers TEXT[] NOT NULL DEFAULT '{}',
			adjustments TEXT[] NOT NULL DEFAULT '{}',
			evaluation_method TEXT NOT NULL DEFAULT '',
			improvement_strategy TEXT NOT NULL DEFAULT '',
			gestor_observation TEXT,
			gestor_id UUID REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_piar_student ON piar_records(student_id, period);

		CREATE TABLE IF NOT EXISTS competency_reports (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			teacher_id UUID NOT NULL REFERENCES users(id),
			grade_level INT NOT NULL DEFAULT 0,
			year INT NOT NULL,
			report TEXT NOT NULL,
			verified BOOLEAN NOT NULL DEFAULT false,
			gestor_observation TEXT,
			verified_by UUID REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (student_id, year)
		);

		CREATE TABLE IF NOT EXISTS settings (
			id INT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
			academic_year INT NOT NULL,
			active_period INT NOT NULL DEFAULT 1 CHECK (active_period BETWEEN 1 AND 4),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`
	_, err := db.Exec(query)
	return err
}

func seedRoles(db *sql.DB) error {
	query := `
		INSERT INTO roles (name) VALUES ('admin'), ('teacher'), ('gestor')
		ON CONFLICT (name) DO NOTHING
	`
	_, err := db.Exec(query)
	return err
}

func seedSettings(db *sql.DB) error {
	query := `
		INSERT INTO settings (id, academic_year, active_period)
		VALUES (1, EXTRACT(YEAR FROM NOW())::INT, 1)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := db.Exec(query)
	return err
}
