package models

import "time"

// PiarRecord is one teacher submission of a student's reasonable-adjustment
// plan for an academic period. The gestor observation is the only field
// mutated after creation, and only by the gestor/admin role.
type PiarRecord struct {
	ID                  string    `json:"id" validate:"required,uuid"`
	StudentID           string    `json:"student_id" validate:"required,uuid"`
	TeacherID           string    `json:"teacher_id" validate:"required,uuid"`
	Period              Period    `json:"period" validate:"required,gte=1,lte=4"`
	Objectives          string    `json:"objectives" validate:"required"`
	Barriers            []string  `json:"barriers"`    // barrier tags
	Adjustments         []string  `json:"adjustments"` // adjustment tags
	EvaluationMethod    string    `json:"evaluation_method"`
	ImprovementStrategy string    `json:"improvement_strategy"`
	GestorObservation   *string   `json:"gestor_observation,omitempty"`
	GestorID            *string   `json:"gestor_id,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
	Student             *Student  `json:"student,omitempty"`
	Teacher             *User     `json:"teacher,omitempty"`
}
