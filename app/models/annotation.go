package models

import "time"

// Annotation is a disciplinary entry in a student's observer record. Entries
// are append-only: follow-up observations and escalation fields may be added
// after creation, but an annotation is never deleted in the normal flow.
type Annotation struct {
	ID          string             `json:"id" validate:"required,uuid"`
	StudentID   string             `json:"student_id" validate:"required,uuid"`
	TeacherID   string             `json:"teacher_id" validate:"required,uuid"`
	Period      Period             `json:"period" validate:"required,gte=1,lte=4"`
	Category    AnnotationCategory `json:"category" validate:"required,oneof=Falta Incumplimiento"`
	Level       AnnotationLevel    `json:"level" validate:"required,oneof=leve grave gravisimo tipo1 tipo2 tipo3"`
	Description string             `json:"description" validate:"required"`
	Action      string             `json:"action"` // disciplinary action taken

	// Directive escalation, filled in after creation when the case is remitted.
	EscalatedTo     *string `json:"escalated_to,omitempty"`     // actor/dependency informed
	EscalationNote  *string `json:"escalation_note,omitempty"`  // action applied
	StudentSigned   bool    `json:"student_signed"`
	ParentSigned    bool    `json:"parent_signed"`
	Priority        bool    `json:"priority"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Student   *Student   `json:"student,omitempty"`
	Teacher   *User      `json:"teacher,omitempty"`
	FollowUps []*FollowUp `json:"follow_ups,omitempty"`
}

// FollowUp is an observation appended to an annotation after the fact.
type FollowUp struct {
	ID           string    `json:"id"`
	AnnotationID string    `json:"annotation_id" validate:"required,uuid"`
	AuthorID     string    `json:"author_id" validate:"required,uuid"`
	Observation  string    `json:"observation" validate:"required"`
	CreatedAt    time.Time `json:"created_at"`
}
