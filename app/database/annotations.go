package database

import (
	"database/sql"

	"siconitcc/app/models"
)

const annotationColumns = `a.id, a.student_id, a.teacher_id, a.period, a.category, a.level,
	a.description, a.action, a.escalated_to, a.escalation_note,
	a.student_signed, a.parent_signed, a.priority, a.created_at, a.updated_at`

func scanAnnotation(scanner interface{ Scan(...interface{}) error }) (*models.Annotation, error) {
	a := &models.Annotation{}
	err := scanner.Scan(
		&a.ID, &a.StudentID, &a.TeacherID, &a.Period, &a.Category, &a.Level,
		&a.Description, &a.Action, &a.EscalatedTo, &a.EscalationNote,
		&a.StudentSigned, &a.ParentSigned, &a.Priority, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func CreateAnnotation(db *sql.DB, a *models.Annotation) error {
	query := `INSERT INTO annotations (student_id, teacher_id, period, category, level, description, action, priority, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query,
		a.StudentID, a.TeacherID, a.Period, a.Category, a.Level, a.Description, a.Action, a.Priority,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func GetAnnotationByID(db *sql.DB, id string) (*models.Annotation, error) {
	query := `SELECT ` + annotationColumns + ` FROM annotations a WHERE a.id = $1`
	return scanAnnotation(db.QueryRow(query, id))
}

func collectAnnotations(rows *sql.Rows) ([]*models.Annotation, error) {
	defer rows.Close()
	var annotations []*models.Annotation
	for rows.Next() {
		a, err := scanAnnotation(rows)
		if err != nil {
			return nil, err
		}
		annotations = append(annotations, a)
	}
	return annotations, rows.Err()
}

// GetAnnotationsByStudent returns a student's annotations, all periods when
// period is PeriodAll.
func GetAnnotationsByStudent(db *sql.DB, studentID string, period models.Period) ([]*models.Annotation, error) {
	query := `SELECT ` + annotationColumns + ` FROM annotations a
			  WHERE a.student_id = $1 AND ($2 = 0 OR a.period = $2)
			  ORDER BY a.created_at`
	rows, err := db.Query(query, studentID, int(period))
	if err != nil {
		return nil, err
	}
	return collectAnnotations(rows)
}

// GetAnnotationsByCourse returns all annotations of a course's students,
// feeding the course-director report and the scoring engine.
func GetAnnotationsByCourse(db *sql.DB, courseID string, period models.Period) ([]*models.Annotation, error) {
	query := `SELECT ` + annotationColumns + ` FROM annotations a
			  JOIN students s ON a.student_id = s.id
			  WHERE s.course_id = $1 AND ($2 = 0 OR a.period = $2)
			  ORDER BY a.created_at`
	rows, err := db.Query(query, courseID, int(period))
	if err != nil {
		return nil, err
	}
	return collectAnnotations(rows)
}

func GetAllAnnotations(db *sql.DB) ([]*models.Annotation, error) {
	query := `SELECT ` + annotationColumns + ` FROM annotations a ORDER BY a.created_at`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	return collectAnnotations(rows)
}

// UpdateAnnotationEscalation fills in the directive escalation fields after
// creation. The original entry text stays untouched.
func UpdateAnnotationEscalation(db *sql.DB, id string, escalatedTo, escalationNote *string) error {
	query := `UPDATE annotations SET escalated_to = $1, escalation_note = $2, updated_at = NOW() WHERE id = $3`
	_, err := db.Exec(query, escalatedTo, escalationNote, id)
	return err
}

// UpdateAnnotationSignatures sets the student/parent signature flags.
func UpdateAnnotationSignatures(db *sql.DB, id string, studentSigned, parentSigned bool) error {
	query := `UPDATE annotations SET student_signed = $1, parent_signed = $2, updated_at = NOW() WHERE id = $3`
	_, err := db.Exec(query, studentSigned, parentSigned, id)
	return err
}

func AddAnnotationFollowUp(db *sql.DB, f *models.FollowUp) error {
	query := `INSERT INTO annotation_followups (annotation_id, author_id, observation, created_at)
			  VALUES ($1, $2, $3, NOW())
			  RETURNING id, created_at`
	return db.QueryRow(query, f.AnnotationID, f.AuthorID, f.Observation).Scan(&f.ID, &f.CreatedAt)
}

func GetAnnotationFollowUps(db *sql.DB, annotationID string) ([]*models.FollowUp, error) {
	query := `SELECT id, annotation_id, author_id, observation, created_at
			  FROM annotation_followups WHERE annotation_id = $1 ORDER BY created_at`
	rows, err := db.Query(query, annotationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var followUps []*models.FollowUp
	for rows.Next() {
		f := &models.FollowUp{}
		if err := rows.Scan(&f.ID, &f.AnnotationID, &f.AuthorID, &f.Observation, &f.CreatedAt); err != nil {
			return nil, err
		}
		followUps = append(followUps, f)
	}
	return followUps, rows.Err()
}
