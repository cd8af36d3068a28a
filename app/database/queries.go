package database

import (
	"database/sql"
	"time"

	"golang.org/x/crypto/bcrypt"

	"siconitcc/app/models"
)

// hashPassword hashes a password using bcrypt
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, document, phone, is_active, created_at, updated_at
			  FROM users WHERE email = $1 AND is_active = true`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName, &user.LastName,
		&user.Document, &user.Phone, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, document, phone, is_active, created_at, updated_at
			  FROM users WHERE id = $1 AND is_active = true`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName, &user.LastName,
		&user.Document, &user.Phone, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserRoles(db *sql.DB, userID string) ([]*models.Role, error) {
	query := `
		SELECT r.id, r.name
		FROM roles r
		JOIN user_roles ur ON r.id = ur.role_id
		WHERE ur.user_id = $1
	`
	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []*models.Role
	for rows.Next() {
		var role models.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, err
		}
		roles = append(roles, &role)
	}
	return roles, rows.Err()
}

func CreateSession(db *sql.DB, sessionID string, userID string, expiresAt time.Time) error {
	query := `INSERT INTO sessions (id, user_id, expires_at, created_at) VALUES ($1, $2, $3, $4)`
	_, err := db.Exec(query, sessionID, userID, expiresAt, time.Now())
	return err
}

func DeleteSession(db *sql.DB, sessionID string) error {
	query := `DELETE FROM sessions WHERE id = $1`
	_, err := db.Exec(query, sessionID)
	return err
}

// DeleteExpiredSessions purges sessions past their expiry. Called nightly by
// the scheduler.
func DeleteExpiredSessions(db *sql.DB) (int64, error) {
	res, err := db.Exec(`DELETE FROM sessions WHERE expires_at <= NOW()`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func UpdateUserPassword(db *sql.DB, userID string, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, hashedPassword, userID)
	return err
}

// CreateUser creates a user account and assigns the given roles by name.
func CreateUser(db *sql.DB, user *models.User, roleNames ...string) error {
	hashedPassword, err := hashPassword(user.Password)
	if err != nil {
		return err
	}

	query := `INSERT INTO users (email, password, first_name, last_name, document, phone, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err = db.QueryRow(query, user.Email, hashedPassword, user.FirstName, user.LastName, user.Document, user.Phone).Scan(
		&user.ID, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return err
	}

	for _, name := range roleNames {
		roleQuery := `INSERT INTO user_roles (user_id, role_id)
					  SELECT $1, id FROM roles WHERE name = $2
					  ON CONFLICT DO NOTHING`
		if _, err := db.Exec(roleQuery, user.ID, name); err != nil {
			return err
		}
	}
	return nil
}

func UpdateUser(db *sql.DB, user *models.User) error {
	query := `UPDATE users SET email = $1, first_name = $2, last_name = $3, document = $4, phone = $5, updated_at = NOW()
			  WHERE id = $6`
	_, err := db.Exec(query, user.Email, user.FirstName, user.LastName, user.Document, user.Phone, user.ID)
	return err
}

// DeactivateUser soft-disables an account; records keep referencing it.
func DeactivateUser(db *sql.DB, userID string) error {
	query := `UPDATE users SET is_active = false, deleted_at = NOW(), updated_at = NOW() WHERE id = $1`
	_, err := db.Exec(query, userID)
	return err
}

// GetTeachers returns active accounts carrying the teacher role, with roles
// attached.
func GetTeachers(db *sql.DB) ([]*models.User, error) {
	query := `
		SELECT DISTINCT u.id, u.email, u.first_name, u.last_name, u.document, u.phone, u.is_active, u.created_at, u.updated_at
		FROM users u
		JOIN user_roles ur ON u.id = ur.user_id
		JOIN roles r ON ur.role_id = r.id
		WHERE r.name = 'teacher' AND u.is_active = true
		ORDER BY u.last_name, u.first_name
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []*models.User
	for rows.Next() {
		u := &models.User{}
		if err := rows.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Document, &u.Phone, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		teachers = append(teachers, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, t := range teachers {
		roles, err := GetUserRoles(db, t.ID)
		if err != nil {
			return nil, err
		}
		t.Roles = roles
	}
	return teachers, nil
}

func GetSettings(db *sql.DB) (*models.Settings, error) {
	s := &models.Settings{}
	query := `SELECT academic_year, active_period, updated_at FROM settings WHERE id = 1`
	err := db.QueryRow(query).Scan(&s.AcademicYear, &s.ActivePeriod, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func UpdateSettings(db *sql.DB, s *models.Settings) error {
	query := `UPDATE settings SET academic_year = $1, active_period = $2, updated_at = NOW() WHERE id = 1`
	_, err := db.Exec(query, s.AcademicYear, s.ActivePeriod)
	return err
}
