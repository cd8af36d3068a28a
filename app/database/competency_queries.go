package database

import (
	"database/sql"

	"siconitcc/app/models"
)

const competencyColumns = `r.id, r.student_id, r.teacher_id, r.grade_level, r.year, r.report,
	r.verified, r.gestor_observation, r.verified_by, r.created_at, r.updated_at`

func scanCompetencyReport(scanner interface{ Scan(...interface{}) error }) (*models.CompetencyReport, error) {
	r := &models.CompetencyReport{}
	err := scanner.Scan(
		&r.ID, &r.StudentID, &r.TeacherID, &r.GradeLevel, &r.Year, &r.Report,
		&r.Verified, &r.GestorObservation, &r.VerifiedBy, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// CreateCompetencyReport inserts a teacher's yearly report. The unique
// (student, year) constraint rejects duplicate submissions.
func CreateCompetencyReport(db *sql.DB, r *models.CompetencyReport) error {
	query := `INSERT INTO competency_reports (student_id, teacher_id, grade_level, year, report, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, r.StudentID, r.TeacherID, r.GradeLevel, r.Year, r.Report).
		Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
}

func GetCompetencyReportByID(db *sql.DB, id string) (*models.CompetencyReport, error) {
	query := `SELECT ` + competencyColumns + ` FROM competency_reports r WHERE r.id = $1`
	return scanCompetencyReport(db.QueryRow(query, id))
}

func GetCompetencyReportsByStudent(db *sql.DB, studentID string) ([]*models.CompetencyReport, error) {
	query := `SELECT ` + competencyColumns + ` FROM competency_reports r
			  WHERE r.student_id = $1 ORDER BY r.year`
	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	return collectCompetencyReports(rows)
}

// GetCompetencyReportsByCourse returns the reports of a course's students for
// a year. Year 0 returns every year.
func GetCompetencyReportsByCourse(db *sql.DB, courseID string, year int) ([]*models.CompetencyReport, error) {
	query := `SELECT ` + competencyColumns + ` FROM competency_reports r
			  JOIN students s ON r.student_id = s.id
			  WHERE s.course_id = $1 AND ($2 = 0 OR r.year = $2)
			  ORDER BY r.year, r.created_at`
	rows, err := db.Query(query, courseID, year)
	if err != nil {
		return nil, err
	}
	return collectCompetencyReports(rows)
}

func GetAllCompetencyReports(db *sql.DB) ([]*models.CompetencyReport, error) {
	query := `SELECT ` + competencyColumns + ` FROM competency_reports r ORDER BY r.year, r.created_at`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	return collectCompetencyReports(rows)
}

func collectCompetencyReports(rows *sql.Rows) ([]*models.CompetencyReport, error) {
	defer rows.Close()
	var reports []*models.CompetencyReport
	for rows.Next() {
		r, err := scanCompetencyReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

// VerifyCompetencyReport sets the verified flag and optional gestor
// observation. Only the administrator/gestor role reaches this.
func VerifyCompetencyReport(db *sql.DB, id, verifierID string, observation *string) error {
	query := `UPDATE competency_reports SET verified = true, gestor_observation = $1, verified_by = $2, updated_at = NOW()
			  WHERE id = $3`
	_, err := db.Exec(query, observation, verifierID, id)
	return err
}
