package models

import "time"

// Sede is one of the institution's physical campuses (e.g. "Primaria",
// "Bachillerato").
type Sede struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Address   *string   `json:"address,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Course is a grade/section group within a sede (e.g. "6-1"). Each course may
// have a director teacher responsible for its observer reports.
type Course struct {
	ID         string    `json:"id"`
	SedeID     string    `json:"sede_id" validate:"required,uuid"`
	Name       string    `json:"name" validate:"required"`
	GradeLevel int       `json:"grade_level" validate:"gte=0,lte=11"`
	DirectorID *string   `json:"director_id,omitempty"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	Sede       *Sede     `json:"sede,omitempty"`
	Director   *User     `json:"director,omitempty"`
}
