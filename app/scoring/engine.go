// Package scoring computes discipline grades and recidivism counters from a
// student's annotation and attendance records. All functions are pure: they
// take already-fetched record slices, never touch storage, and never fail.
package scoring

import (
	"math"

	"siconitcc/app/models"
)

// Penalty weights on the institution's 1.0-5.0 scale, applied per occurrence.
// Misconduct tiers (tipo1/2/3) are tracked for display and recidivism but do
// not reduce the grade; only non-compliance levels and attendance events do.
const (
	WeightAbsence   = 0.003
	WeightLateness  = 0.3
	WeightEvasion   = 0.3
	WeightLeve      = 0.1
	WeightGrave     = 0.3
	WeightGravisimo = 0.5
)

const (
	BaseGrade = 5.0
	MinGrade  = 1.0
)

// Every 3 occurrences of the same severity tag count as one recidivism point.
const recidivismThreshold = 3

// Counts holds the raw per-bucket record counts behind a discipline grade.
// Records carrying a level or type outside the closed enumerations fall into
// no bucket.
type Counts struct {
	Absences  int `json:"absences"`
	Lateness  int `json:"lateness"`
	Evasions  int `json:"evasions"`
	Excuses   int `json:"excuses"`
	Leve      int `json:"leve"`
	Grave     int `json:"grave"`
	Gravisimo int `json:"gravisimo"`
	Tipo1     int `json:"tipo1"`
	Tipo2     int `json:"tipo2"`
	Tipo3     int `json:"tipo3"`
}

// Map returns the counts keyed by tag name, for observer-sheet table cells.
func (c Counts) Map() map[string]int {
	return map[string]int{
		"absence":   c.Absences,
		"lateness":  c.Lateness,
		"evasion":   c.Evasions,
		"excuse":    c.Excuses,
		"leve":      c.Leve,
		"grave":     c.Grave,
		"gravisimo": c.Gravisimo,
		"tipo1":     c.Tipo1,
		"tipo2":     c.Tipo2,
		"tipo3":     c.Tipo3,
	}
}

func matchesPeriod(p, filter models.Period) bool {
	return filter == models.PeriodAll || p == filter
}

// Tally counts a student's records per bucket, filtered by period.
// PeriodAll includes every period.
func Tally(studentID string, period models.Period, annotations []*models.Annotation, logs []*models.AttendanceLog) Counts {
	var c Counts
	for _, a := range annotations {
		if a.StudentID != studentID || !matchesPeriod(a.Period, period) {
			continue
		}
		switch a.Level {
		case models.LevelLeve:
			c.Leve++
		case models.LevelGrave:
			c.Grave++
		case models.LevelGravisimo:
			c.Gravisimo++
		case models.LevelTipo1:
			c.Tipo1++
		case models.LevelTipo2:
			c.Tipo2++
		case models.LevelTipo3:
			c.Tipo3++
		}
	}
	for _, l := range logs {
		if l.StudentID != studentID || !matchesPeriod(l.Period, period) {
			continue
		}
		switch l.Type {
		case models.AttendanceAbsence:
			c.Absences++
		case models.AttendanceLateness:
			c.Lateness++
		case models.AttendanceEvasion:
			c.Evasions++
		case models.AttendanceExcuse:
			c.Excuses++
		}
	}
	return c
}

// DisciplineGrade computes a student's discipline grade for a period from a
// base of 5.0, subtracting a fixed weight per matching record and clamping to
// the scale minimum of 1.0. The result is rounded to 2 decimal places. With no
// matching records the grade is 5.00.
func DisciplineGrade(studentID string, period models.Period, annotations []*models.Annotation, logs []*models.AttendanceLog) float64 {
	c := Tally(studentID, period, annotations, logs)

	grade := BaseGrade
	grade -= float64(c.Absences) * WeightAbsence
	grade -= float64(c.Lateness) * WeightLateness
	grade -= float64(c.Evasions) * WeightEvasion
	grade -= float64(c.Leve) * WeightLeve
	grade -= float64(c.Grave) * WeightGrave
	grade -= float64(c.Gravisimo) * WeightGravisimo

	if grade < MinGrade {
		grade = MinGrade
	}
	return math.Round(grade*100) / 100
}

// RecidivismPoints returns one point per 3 annotations of the same severity
// tag for the student in the period. It is a display signal flagging repeat
// offenders for directive attention; it does not feed back into the grade.
func RecidivismPoints(studentID string, level models.AnnotationLevel, period models.Period, annotations []*models.Annotation) int {
	n := 0
	for _, a := range annotations {
		if a.StudentID == studentID && a.Level == level && matchesPeriod(a.Period, period) {
			n++
		}
	}
	return n / recidivismThreshold
}

// RecidivismByLevel computes recidivism points for every known severity tag.
func RecidivismByLevel(studentID string, period models.Period, annotations []*models.Annotation) map[string]int {
	levels := []models.AnnotationLevel{
		models.LevelLeve, models.LevelGrave, models.LevelGravisimo,
		models.LevelTipo1, models.LevelTipo2, models.LevelTipo3,
	}
	out := make(map[string]int, len(levels))
	for _, l := range levels {
		out[string(l)] = RecidivismPoints(studentID, l, period, annotations)
	}
	return out
}
