package models

import "time"

// CompetencyReport is a teacher's yearly free-text report on a student's
// competencies. Verification and the gestor observation are set exclusively by
// the administrator/gestor role after creation.
type CompetencyReport struct {
	ID                string    `json:"id" validate:"required,uuid"`
	StudentID         string    `json:"student_id" validate:"required,uuid"`
	TeacherID         string    `json:"teacher_id" validate:"required,uuid"`
	GradeLevel        int       `json:"grade_level" validate:"gte=0,lte=11"`
	Year              int       `json:"year" validate:"required,gte=2000"`
	Report            string    `json:"report" validate:"required"`
	Verified          bool      `json:"verified"`
	GestorObservation *string   `json:"gestor_observation,omitempty"`
	VerifiedBy        *string   `json:"verified_by,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	Student           *Student  `json:"student,omitempty"`
	Teacher           *User     `json:"teacher,omitempty"`
}
