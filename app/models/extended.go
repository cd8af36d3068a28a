package models

import "time"

type DashboardStats struct {
	TotalStudents        int                `json:"total_students"`
	TotalTeachers        int                `json:"total_teachers"`
	TotalCourses         int                `json:"total_courses"`
	PiarStudents         int                `json:"piar_students"`
	AnnotationsByCategory map[string]int    `json:"annotations_by_category"`
	AnnotationsByLevel    map[string]int    `json:"annotations_by_level"`
	AttendanceByType      map[string]int    `json:"attendance_by_type"`
	CourseAverages        []CourseAverage   `json:"course_averages"`
	RecentActivities      []Activity        `json:"recent_activities"`
}

// CourseAverage is the mean discipline grade of a course's active students.
type CourseAverage struct {
	CourseID   string  `json:"course_id"`
	CourseName string  `json:"course_name"`
	SedeName   string  `json:"sede_name"`
	Students   int     `json:"students"`
	Average    float64 `json:"average"`
}

type Activity struct {
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	RawTime     time.Time `json:"time"`
}

// ObserverSheet is the printable per-student disciplinary summary consumed by
// the SPA's print/PDF collaborator.
type ObserverSheet struct {
	Student         *Student         `json:"student"`
	Period          Period           `json:"period"` // 0 means all periods
	DisciplineGrade float64          `json:"discipline_grade"`
	Counts          map[string]int   `json:"counts"`     // per-bucket raw counts
	Recidivism      map[string]int   `json:"recidivism"` // recidivism points per level
	Annotations     []*Annotation    `json:"annotations"`
	Attendance      []*AttendanceLog `json:"attendance"`
}

// Settings holds the institution-wide academic calendar state.
type Settings struct {
	AcademicYear int       `json:"academic_year" validate:"required,gte=2000"`
	ActivePeriod Period    `json:"active_period" validate:"required,gte=1,lte=4"`
	UpdatedAt    time.Time `json:"updated_at"`
}
