package models

import "time"

// AttendanceLog records one attendance event for a student. Logs are created
// in batches (one per flagged student per roll-call session) and are immutable
// once created.
type AttendanceLog struct {
	ID        string         `json:"id" validate:"required,uuid"`
	StudentID string         `json:"student_id" validate:"required,uuid"`
	CourseID  *string        `json:"course_id,omitempty"`
	Period    Period         `json:"period" validate:"required,gte=1,lte=4"`
	Type      AttendanceType `json:"type" validate:"required,oneof=absence lateness evasion excuse"`
	Date      time.Time      `json:"date" validate:"required"`
	MarkedBy  string         `json:"marked_by" validate:"required,uuid"`
	CreatedAt time.Time      `json:"created_at"`
	Student   *Student       `json:"student,omitempty"`
	Marker    *User          `json:"marker,omitempty"`
}
