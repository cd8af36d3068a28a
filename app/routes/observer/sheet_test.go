package observer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siconitcc/app/models"
)

func TestBuildSheet(t *testing.T) {
	student := &models.Student{ID: "s1", FirstName: "Maria", LastName: "Gomez"}

	annotations := []*models.Annotation{
		{StudentID: "s1", Period: models.Period2, Category: models.CategoryIncumplimiento, Level: models.LevelGrave},
		{StudentID: "s1", Period: models.Period1, Category: models.CategoryFalta, Level: models.LevelTipo1},
		{StudentID: "s2", Period: models.Period2, Category: models.CategoryIncumplimiento, Level: models.LevelGravisimo},
	}
	logs := []*models.AttendanceLog{
		{StudentID: "s1", Period: models.Period2, Type: models.AttendanceLateness},
		{StudentID: "s1", Period: models.Period1, Type: models.AttendanceAbsence},
		{StudentID: "s2", Period: models.Period2, Type: models.AttendanceEvasion},
	}

	sheet := BuildSheet(student, models.Period2, annotations, logs)
	require.NotNil(t, sheet)

	// 5.0 - grave 0.3 - lateness 0.3
	assert.InDelta(t, 4.40, sheet.DisciplineGrade, 1e-9)
	assert.Equal(t, 1, sheet.Counts["grave"])
	assert.Equal(t, 1, sheet.Counts["lateness"])
	assert.Equal(t, 0, sheet.Counts["tipo1"])

	// Only the student's period-2 records appear on the sheet.
	require.Len(t, sheet.Annotations, 1)
	assert.Equal(t, models.LevelGrave, sheet.Annotations[0].Level)
	require.Len(t, sheet.Attendance, 1)
	assert.Equal(t, models.AttendanceLateness, sheet.Attendance[0].Type)
}

func TestBuildSheetAllPeriodsAndEmpty(t *testing.T) {
	student := &models.Student{ID: "s1"}

	sheet := BuildSheet(student, models.PeriodAll, nil, nil)
	assert.Equal(t, 5.0, sheet.DisciplineGrade)
	assert.Empty(t, sheet.Annotations)
	assert.Empty(t, sheet.Attendance)
	for _, n := range sheet.Recidivism {
		assert.Zero(t, n)
	}
}
