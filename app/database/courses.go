package database

import (
	"database/sql"

	"siconitcc/app/models"
)

func GetSedes(db *sql.DB) ([]*models.Sede, error) {
	query := `SELECT id, name, address, is_active, created_at FROM sedes WHERE is_active = true ORDER BY name`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sedes []*models.Sede
	for rows.Next() {
		s := &models.Sede{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.IsActive, &s.CreatedAt); err != nil {
			return nil, err
		}
		sedes = append(sedes, s)
	}
	return sedes, rows.Err()
}

func CreateSede(db *sql.DB, s *models.Sede) error {
	query := `INSERT INTO sedes (name, address, is_active, created_at) VALUES ($1, $2, true, NOW())
			  RETURNING id, created_at`
	return db.QueryRow(query, s.Name, s.Address).Scan(&s.ID, &s.CreatedAt)
}

// GetCourses returns active courses, optionally filtered by sede. An empty
// sedeID returns every course.
func GetCourses(db *sql.DB, sedeID string) ([]*models.Course, error) {
	query := `
		SELECT c.id, c.sede_id, c.name, c.grade_level, c.director_id, c.is_active, c.created_at,
			se.name, u.first_name, u.last_name
		FROM courses c
		JOIN sedes se ON c.sede_id = se.id
		LEFT JOIN users u ON c.director_id = u.id
		WHERE c.is_active = true AND ($1 = '' OR c.sede_id = $1::uuid)
		ORDER BY c.grade_level, c.name
	`
	rows, err := db.Query(query, sedeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		c := &models.Course{}
		var sedeName string
		var dirFirst, dirLast sql.NullString
		if err := rows.Scan(&c.ID, &c.SedeID, &c.Name, &c.GradeLevel, &c.DirectorID, &c.IsActive, &c.CreatedAt,
			&sedeName, &dirFirst, &dirLast); err != nil {
			return nil, err
		}
		c.Sede = &models.Sede{ID: c.SedeID, Name: sedeName}
		if c.DirectorID != nil && dirFirst.Valid {
			c.Director = &models.User{ID: *c.DirectorID, FirstName: dirFirst.String, LastName: dirLast.String}
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func GetCourseByID(db *sql.DB, id string) (*models.Course, error) {
	c := &models.Course{}
	query := `SELECT id, sede_id, name, grade_level, director_id, is_active, created_at FROM courses WHERE id = $1`
	err := db.QueryRow(query, id).Scan(&c.ID, &c.SedeID, &c.Name, &c.GradeLevel, &c.DirectorID, &c.IsActive, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func CreateCourse(db *sql.DB, c *models.Course) error {
	query := `INSERT INTO courses (sede_id, name, grade_level, director_id, is_active, created_at)
			  VALUES ($1, $2, $3, $4, true, NOW())
			  RETURNING id, created_at`
	return db.QueryRow(query, c.SedeID, c.Name, c.GradeLevel, c.DirectorID).Scan(&c.ID, &c.CreatedAt)
}

// AssignCourseDirector sets the teacher responsible for a course's observer
// reports.
func AssignCourseDirector(db *sql.DB, courseID, teacherID string) error {
	query := `UPDATE courses SET director_id = $1 WHERE id = $2`
	_, err := db.Exec(query, teacherID, courseID)
	return err
}
