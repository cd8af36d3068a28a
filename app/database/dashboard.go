package database

import (
	"database/sql"
	"time"

	"siconitcc/app/models"
)

// DashboardCounts holds the raw aggregates behind the statistics dashboard.
// Discipline-grade averages are computed from the record collections by the
// scoring engine at the handler, not here.
type DashboardCounts struct {
	TotalStudents int
	TotalTeachers int
	TotalCourses  int
	PiarStudents  int
	ByCategory    map[string]int
	ByLevel       map[string]int
	ByType        map[string]int
}

func GetDashboardCounts(db *sql.DB) (*DashboardCounts, error) {
	counts := &DashboardCounts{
		ByCategory: map[string]int{},
		ByLevel:    map[string]int{},
		ByType:     map[string]int{},
	}

	err := db.QueryRow(`SELECT COUNT(*) FROM students WHERE status = 'active'`).Scan(&counts.TotalStudents)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`
		SELECT COUNT(DISTINCT u.id)
		FROM users u
		JOIN user_roles ur ON u.id = ur.user_id
		JOIN roles r ON ur.role_id = r.id
		WHERE r.name = 'teacher' AND u.is_active = true
	`).Scan(&counts.TotalTeachers)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM courses WHERE is_active = true`).Scan(&counts.TotalCourses)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM students WHERE has_piar = true AND status = 'active'`).Scan(&counts.PiarStudents)
	if err != nil {
		return nil, err
	}

	if err := groupCount(db, `SELECT category, COUNT(*) FROM annotations GROUP BY category`, counts.ByCategory); err != nil {
		return nil, err
	}
	if err := groupCount(db, `SELECT level, COUNT(*) FROM annotations GROUP BY level`, counts.ByLevel); err != nil {
		return nil, err
	}
	if err := groupCount(db, `SELECT type, COUNT(*) FROM attendance_logs GROUP BY type`, counts.ByType); err != nil {
		return nil, err
	}

	return counts, nil
}

func groupCount(db *sql.DB, query string, dest map[string]int) error {
	rows, err := db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return err
		}
		dest[key] = n
	}
	return rows.Err()
}

// GetRecentActivities returns the latest record creations across collections
// for the dashboard feed.
func GetRecentActivities(db *sql.DB, limit int) ([]models.Activity, error) {
	query := `
		SELECT kind, title, description, created_at FROM (
			SELECT 'annotation' AS kind,
				'Annotation recorded' AS title,
				category || ' / ' || level AS description,
				created_at
			FROM annotations
			UNION ALL
			SELECT 'attendance', 'Attendance logged', type, created_at FROM attendance_logs
			UNION ALL
			SELECT 'piar', 'PIAR record submitted', 'period ' || period, created_at FROM piar_records
			UNION ALL
			SELECT 'competency', 'Competency report filed', 'year ' || year, created_at FROM competency_reports
		) activity
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		var a models.Activity
		var at time.Time
		if err := rows.Scan(&a.Type, &a.Title, &a.Description, &at); err != nil {
			return nil, err
		}
		a.RawTime = at
		activities = append(activities, a)
	}
	return activities, rows.Err()
}
