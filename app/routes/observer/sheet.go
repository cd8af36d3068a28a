package observer

import (
	"siconitcc/app/models"
	"siconitcc/app/scoring"
)

// BuildSheet assembles the printable observer sheet for one student from
// already-fetched record collections. Pure; the handler supplies the data.
func BuildSheet(student *models.Student, period models.Period, annotations []*models.Annotation, logs []*models.AttendanceLog) *models.ObserverSheet {
	var (
		studentAnnotations []*models.Annotation
		studentLogs        []*models.AttendanceLog
	)
	for _, a := range annotations {
		if a.StudentID == student.ID && (period == models.PeriodAll || a.Period == period) {
			studentAnnotations = append(studentAnnotations, a)
		}
	}
	for _, l := range logs {
		if l.StudentID == student.ID && (period == models.PeriodAll || l.Period == period) {
			studentLogs = append(studentLogs, l)
		}
	}

	return &models.ObserverSheet{
		Student:         student,
		Period:          period,
		DisciplineGrade: scoring.DisciplineGrade(student.ID, period, annotations, logs),
		Counts:          scoring.Tally(student.ID, period, annotations, logs).Map(),
		Recidivism:      scoring.RecidivismByLevel(student.ID, period, annotations),
		Annotations:     studentAnnotations,
		Attendance:      studentLogs,
	}
}
