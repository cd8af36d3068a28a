package database

import (
	"database/sql"

	"github.com/lib/pq"

	"siconitcc/app/models"
)

const piarColumns = `p.id, p.student_id, p.teacher_id, p.period, p.objectives, p.barriers, p.adjustments,
	p.evaluation_method, p.improvement_strategy, p.gestor_observation, p.gestor_id, p.created_at, p.updated_at`

func scanPiarRecord(scanner interface{ Scan(...interface{}) error }) (*models.PiarRecord, error) {
	p := &models.PiarRecord{}
	err := scanner.Scan(
		&p.ID, &p.StudentID, &p.TeacherID, &p.Period, &p.Objectives,
		pq.Array(&p.Barriers), pq.Array(&p.Adjustments),
		&p.EvaluationMethod, &p.ImprovementStrategy, &p.GestorObservation, &p.GestorID,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func CreatePiarRecord(db *sql.DB, p *models.PiarRecord) error {
	query := `INSERT INTO piar_records (student_id, teacher_id, period, objectives, barriers, adjustments, evaluation_method, improvement_strategy, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query,
		p.StudentID, p.TeacherID, int(p.Period), p.Objectives,
		pq.Array(p.Barriers), pq.Array(p.Adjustments),
		p.EvaluationMethod, p.ImprovementStrategy,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func GetPiarRecordByID(db *sql.DB, id string) (*models.PiarRecord, error) {
	query := `SELECT ` + piarColumns + ` FROM piar_records p WHERE p.id = $1`
	return scanPiarRecord(db.QueryRow(query, id))
}

// GetPiarRecordsByStudent returns a student's PIAR submissions, all periods
// when period is PeriodAll.
func GetPiarRecordsByStudent(db *sql.DB, studentID string, period models.Period) ([]*models.PiarRecord, error) {
	query := `SELECT ` + piarColumns + ` FROM piar_records p
			  WHERE p.student_id = $1 AND ($2 = 0 OR p.period = $2)
			  ORDER BY p.period, p.created_at`
	rows, err := db.Query(query, studentID, int(period))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.PiarRecord
	for rows.Next() {
		p, err := scanPiarRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	return records, rows.Err()
}

// GetPendingPiarRecords returns submissions without a gestor observation yet,
// for the gestor's review queue.
func GetPendingPiarRecords(db *sql.DB) ([]*models.PiarRecord, error) {
	query := `SELECT ` + piarColumns + ` FROM piar_records p
			  WHERE p.gestor_observation IS NULL
			  ORDER BY p.created_at`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.PiarRecord
	for rows.Next() {
		p, err := scanPiarRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	return records, rows.Err()
}

func GetAllPiarRecords(db *sql.DB) ([]*models.PiarRecord, error) {
	query := `SELECT ` + piarColumns + ` FROM piar_records p ORDER BY p.created_at`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.PiarRecord
	for rows.Next() {
		p, err := scanPiarRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	return records, rows.Err()
}

// SetPiarGestorObservation appends the manager review. This is the only field
// of a PIAR record mutated after creation, and only by the gestor role.
func SetPiarGestorObservation(db *sql.DB, id, gestorID, observation string) error {
	query := `UPDATE piar_records SET gestor_observation = $1, gestor_id = $2, updated_at = NOW() WHERE id = $3`
	_, err := db.Exec(query, observation, gestorID, id)
	return err
}
