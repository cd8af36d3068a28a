package models

import "time"

// Student represents an enrolled student. Students are never hard-deleted:
// withdrawal flips Status to "withdrawn" and keeps the record for reports.
type Student struct {
	ID          string        `json:"id" validate:"required,uuid"`
	Document    string        `json:"document" validate:"required"`
	FirstName   string        `json:"first_name" validate:"required"`
	LastName    string        `json:"last_name" validate:"required"`
	Gender      *Gender       `json:"gender,omitempty"`
	DateOfBirth *time.Time    `json:"date_of_birth,omitempty"`
	SedeID      *string       `json:"sede_id,omitempty"`
	CourseID    *string       `json:"course_id,omitempty"`
	Status      StudentStatus `json:"status"`
	HasPiar     bool          `json:"has_piar"` // under a reasonable-adjustment plan
	GuardianName  *string     `json:"guardian_name,omitempty"`
	GuardianPhone *string     `json:"guardian_phone,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	Sede        *Sede         `json:"sede,omitempty"`
	Course      *Course       `json:"course,omitempty"`
}

// FullName returns the display name used in tables and printed sheets.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
