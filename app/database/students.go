package database

import (
	"database/sql"

	"siconitcc/app/models"
)

const studentColumns = `s.id, s.document, s.first_name, s.last_name, s.gender, s.date_of_birth,
	s.sede_id, s.course_id, s.status, s.has_piar, s.guardian_name, s.guardian_phone, s.created_at, s.updated_at`

func scanStudent(scanner interface{ Scan(...interface{}) error }) (*models.Student, error) {
	st := &models.Student{}
	var gender sql.NullString
	err := scanner.Scan(
		&st.ID, &st.Document, &st.FirstName, &st.LastName, &gender, &st.DateOfBirth,
		&st.SedeID, &st.CourseID, &st.Status, &st.HasPiar, &st.GuardianName, &st.GuardianPhone,
		&st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if gender.Valid {
		g := models.Gender(gender.String)
		st.Gender = &g
	}
	return st, nil
}

func CreateStudent(db *sql.DB, st *models.Student) error {
	query := `INSERT INTO students (document, first_name, last_name, gender, date_of_birth, sede_id, course_id, status, has_piar, guardian_name, guardian_phone, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	var gender *string
	if st.Gender != nil {
		g := string(*st.Gender)
		gender = &g
	}
	if st.Status == "" {
		st.Status = models.StudentActive
	}
	return db.QueryRow(query,
		st.Document, st.FirstName, st.LastName, gender, st.DateOfBirth,
		st.SedeID, st.CourseID, st.Status, st.HasPiar, st.GuardianName, st.GuardianPhone,
	).Scan(&st.ID, &st.CreatedAt, &st.UpdatedAt)
}

// BulkCreateStudents inserts a pre-parsed batch of students in one
// transaction. The spreadsheet itself is parsed client-side; the service only
// receives plain records.
func BulkCreateStudents(db *sql.DB, students []*models.Student) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO students (document, first_name, last_name, sede_id, course_id, status, has_piar, created_at, updated_at)
							 VALUES ($1, $2, $3, $4, $5, 'active', false, NOW(), NOW())`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, st := range students {
		if _, err := stmt.Exec(st.Document, st.FirstName, st.LastName, st.SedeID, st.CourseID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students s WHERE s.id = $1`
	return scanStudent(db.QueryRow(query, id))
}

// GetStudentsWithDetails returns every student with sede and course attached.
// Table-level filtering happens in memory at the handler.
func GetStudentsWithDetails(db *sql.DB) ([]*models.Student, error) {
	query := `
		SELECT ` + studentColumns + `,
			se.id, se.name, co.id, co.name, co.grade_level
		FROM students s
		LEFT JOIN sedes se ON s.sede_id = se.id
		LEFT JOIN courses co ON s.course_id = co.id
		ORDER BY s.last_name, s.first_name
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		st := &models.Student{}
		var gender, sedeID, sedeName, courseID, courseName sql.NullString
		var gradeLevel sql.NullInt64
		err := rows.Scan(
			&st.ID, &st.Document, &st.FirstName, &st.LastName, &gender, &st.DateOfBirth,
			&st.SedeID, &st.CourseID, &st.Status, &st.HasPiar, &st.GuardianName, &st.GuardianPhone,
			&st.CreatedAt, &st.UpdatedAt,
			&sedeID, &sedeName, &courseID, &courseName, &gradeLevel,
		)
		if err != nil {
			return nil, err
		}
		if gender.Valid {
			g := models.Gender(gender.String)
			st.Gender = &g
		}
		if sedeID.Valid {
			st.Sede = &models.Sede{ID: sedeID.String, Name: sedeName.String}
		}
		if courseID.Valid {
			st.Course = &models.Course{ID: courseID.String, Name: courseName.String, GradeLevel: int(gradeLevel.Int64)}
			if sedeID.Valid {
				st.Course.SedeID = sedeID.String
			}
		}
		students = append(students, st)
	}
	return students, rows.Err()
}

func GetStudentsByCourse(db *sql.DB, courseID string) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students s
			  WHERE s.course_id = $1 AND s.status = 'active'
			  ORDER BY s.last_name, s.first_name`
	rows, err := db.Query(query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		st, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, st)
	}
	return students, rows.Err()
}

func UpdateStudent(db *sql.DB, st *models.Student) error {
	var gender *string
	if st.Gender != nil {
		g := string(*st.Gender)
		gender = &g
	}
	query := `UPDATE students SET document = $1, first_name = $2, last_name = $3, gender = $4, date_of_birth = $5,
			  sede_id = $6, course_id = $7, guardian_name = $8, guardian_phone = $9, updated_at = NOW()
			  WHERE id = $10`
	_, err := db.Exec(query,
		st.Document, st.FirstName, st.LastName, gender, st.DateOfBirth,
		st.SedeID, st.CourseID, st.GuardianName, st.GuardianPhone, st.ID,
	)
	return err
}

// WithdrawStudent flips the enrollment status; the record and its history stay.
func WithdrawStudent(db *sql.DB, id string) error {
	query := `UPDATE students SET status = 'withdrawn', updated_at = NOW() WHERE id = $1`
	_, err := db.Exec(query, id)
	return err
}

// SetPiarFlag marks a student as enrolled (or not) in a reasonable-adjustment
// plan.
func SetPiarFlag(db *sql.DB, id string, enrolled bool) error {
	query := `UPDATE students SET has_piar = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, enrolled, id)
	return err
}
