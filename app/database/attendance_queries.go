package database

import (
	"database/sql"
	"time"

	"siconitcc/app/models"
)

const attendanceColumns = `l.id, l.student_id, l.course_id, l.period, l.type, l.date, l.marked_by, l.created_at`

func scanAttendanceLog(scanner interface{ Scan(...interface{}) error }) (*models.AttendanceLog, error) {
	l := &models.AttendanceLog{}
	err := scanner.Scan(&l.ID, &l.StudentID, &l.CourseID, &l.Period, &l.Type, &l.Date, &l.MarkedBy, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// CreateAttendanceBatch inserts one roll-call session's logs in a single
// transaction: one row per flagged student. Logs are immutable once created.
func CreateAttendanceBatch(db *sql.DB, logs []*models.AttendanceLog) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO attendance_logs (student_id, course_id, period, type, date, marked_by, created_at)
							 VALUES ($1, $2, $3, $4, $5, $6, NOW())`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, l := range logs {
		if _, err := stmt.Exec(l.StudentID, l.CourseID, int(l.Period), l.Type, l.Date, l.MarkedBy); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func collectAttendanceLogs(rows *sql.Rows) ([]*models.AttendanceLog, error) {
	defer rows.Close()
	var logs []*models.AttendanceLog
	for rows.Next() {
		l, err := scanAttendanceLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// GetAttendanceByStudent returns a student's logs, all periods when period is
// PeriodAll.
func GetAttendanceByStudent(db *sql.DB, studentID string, period models.Period) ([]*models.AttendanceLog, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance_logs l
			  WHERE l.student_id = $1 AND ($2 = 0 OR l.period = $2)
			  ORDER BY l.date`
	rows, err := db.Query(query, studentID, int(period))
	if err != nil {
		return nil, err
	}
	return collectAttendanceLogs(rows)
}

func GetAttendanceByCourseAndDate(db *sql.DB, courseID string, date time.Time) ([]*models.AttendanceLog, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance_logs l
			  WHERE l.course_id = $1 AND l.date = $2
			  ORDER BY l.created_at`
	rows, err := db.Query(query, courseID, date)
	if err != nil {
		return nil, err
	}
	return collectAttendanceLogs(rows)
}

// GetAttendanceByCourse returns every log of a course's students for the
// period filter, feeding the course-director report.
func GetAttendanceByCourse(db *sql.DB, courseID string, period models.Period) ([]*models.AttendanceLog, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance_logs l
			  JOIN students s ON l.student_id = s.id
			  WHERE s.course_id = $1 AND ($2 = 0 OR l.period = $2)
			  ORDER BY l.date`
	rows, err := db.Query(query, courseID, int(period))
	if err != nil {
		return nil, err
	}
	return collectAttendanceLogs(rows)
}

func GetAllAttendance(db *sql.DB) ([]*models.AttendanceLog, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance_logs l ORDER BY l.date`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	return collectAttendanceLogs(rows)
}
