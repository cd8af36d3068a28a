package models

// Period identifies an academic quarter (1-4). PeriodAll selects every period.
type Period int

const (
	Period1 Period = 1
	Period2 Period = 2
	Period3 Period = 3
	Period4 Period = 4
)

// PeriodAll is the sentinel used by report filters to include all periods.
const PeriodAll Period = 0

// Valid returns true when the period is one of the four academic quarters.
func (p Period) Valid() bool {
	return p >= Period1 && p <= Period4
}

// AnnotationCategory defines the two kinds of disciplinary entries.
type AnnotationCategory string

const (
	CategoryFalta          AnnotationCategory = "Falta"
	CategoryIncumplimiento AnnotationCategory = "Incumplimiento"
)

// Valid returns true when the category is a supported value.
func (c AnnotationCategory) Valid() bool {
	return c == CategoryFalta || c == CategoryIncumplimiento
}

// AnnotationLevel is the severity tag of a disciplinary entry. Non-compliance
// entries use leve/grave/gravisimo; misconduct entries use tipo1/tipo2/tipo3.
type AnnotationLevel string

const (
	LevelLeve      AnnotationLevel = "leve"
	LevelGrave     AnnotationLevel = "grave"
	LevelGravisimo AnnotationLevel = "gravisimo"
	LevelTipo1     AnnotationLevel = "tipo1"
	LevelTipo2     AnnotationLevel = "tipo2"
	LevelTipo3     AnnotationLevel = "tipo3"
)

// ValidFor returns true when the level belongs to the category's closed set.
// No record may carry a level outside its category's permitted tags.
func (l AnnotationLevel) ValidFor(c AnnotationCategory) bool {
	switch c {
	case CategoryIncumplimiento:
		return l == LevelLeve || l == LevelGrave || l == LevelGravisimo
	case CategoryFalta:
		return l == LevelTipo1 || l == LevelTipo2 || l == LevelTipo3
	default:
		return false
	}
}

// AttendanceType defines the possible kinds of attendance log entries.
type AttendanceType string

const (
	AttendanceAbsence  AttendanceType = "absence"
	AttendanceLateness AttendanceType = "lateness"
	AttendanceEvasion  AttendanceType = "evasion"
	AttendanceExcuse   AttendanceType = "excuse"
)

// Valid returns true when the type is a supported value.
func (t AttendanceType) Valid() bool {
	switch t {
	case AttendanceAbsence, AttendanceLateness, AttendanceEvasion, AttendanceExcuse:
		return true
	default:
		return false
	}
}

// StudentStatus defines the enrollment status of a student.
type StudentStatus string

const (
	StudentActive    StudentStatus = "active"
	StudentWithdrawn StudentStatus = "withdrawn"
)

// Gender defines the possible gender values for a student.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)

// Role names used for access control.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleGestor  = "gestor"
)
