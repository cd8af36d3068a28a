package scoring

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"siconitcc/app/models"
)

func annotation(studentID string, period models.Period, level models.AnnotationLevel) *models.Annotation {
	cat := models.CategoryIncumplimiento
	if level == models.LevelTipo1 || level == models.LevelTipo2 || level == models.LevelTipo3 {
		cat = models.CategoryFalta
	}
	return &models.Annotation{
		StudentID: studentID,
		Period:    period,
		Category:  cat,
		Level:     level,
	}
}

func attendance(studentID string, period models.Period, typ models.AttendanceType) *models.AttendanceLog {
	return &models.AttendanceLog{StudentID: studentID, Period: period, Type: typ}
}

func repeatAttendance(studentID string, period models.Period, typ models.AttendanceType, n int) []*models.AttendanceLog {
	logs := make([]*models.AttendanceLog, n)
	for i := range logs {
		logs[i] = attendance(studentID, period, typ)
	}
	return logs
}

func TestDisciplineGradeNoRecords(t *testing.T) {
	assert.Equal(t, 5.0, DisciplineGrade("s1", models.PeriodAll, nil, nil))
	assert.Equal(t, 5.0, DisciplineGrade("s1", models.Period1, []*models.Annotation{}, []*models.AttendanceLog{}))

	// Records belonging to other students do not count.
	anns := []*models.Annotation{annotation("s2", models.Period1, models.LevelGrave)}
	logs := []*models.AttendanceLog{attendance("s2", models.Period1, models.AttendanceAbsence)}
	assert.Equal(t, 5.0, DisciplineGrade("s1", models.PeriodAll, anns, logs))
}

func TestDisciplineGradeWeights(t *testing.T) {
	tests := []struct {
		name string
		anns []*models.Annotation
		logs []*models.AttendanceLog
		want float64
	}{
		{"one absence", nil, repeatAttendance("s1", models.Period1, models.AttendanceAbsence, 1), 5.0},     // 4.997 rounds to 5.00
		{"ten absences", nil, repeatAttendance("s1", models.Period1, models.AttendanceAbsence, 10), 4.97},
		{"one lateness", nil, repeatAttendance("s1", models.Period1, models.AttendanceLateness, 1), 4.7},
		{"one evasion", nil, repeatAttendance("s1", models.Period1, models.AttendanceEvasion, 1), 4.7},
		{"excuses are free", nil, repeatAttendance("s1", models.Period1, models.AttendanceExcuse, 50), 5.0},
		{"one leve", []*models.Annotation{annotation("s1", models.Period1, models.LevelLeve)}, nil, 4.9},
		{"one grave", []*models.Annotation{annotation("s1", models.Period1, models.LevelGrave)}, nil, 4.7},
		{"one gravisimo", []*models.Annotation{annotation("s1", models.Period1, models.LevelGravisimo)}, nil, 4.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, DisciplineGrade("s1", models.PeriodAll, tt.anns, tt.logs), 1e-9)
		})
	}
}

// Misconduct tiers are displayed and counted for recidivism but never lower
// the grade.
func TestDisciplineGradeMisconductDoesNotSubtract(t *testing.T) {
	anns := []*models.Annotation{
		annotation("s1", models.Period1, models.LevelTipo1),
		annotation("s1", models.Period1, models.LevelTipo2),
		annotation("s1", models.Period1, models.LevelTipo3),
		annotation("s1", models.Period1, models.LevelTipo3),
	}
	assert.Equal(t, 5.0, DisciplineGrade("s1", models.PeriodAll, anns, nil))

	c := Tally("s1", models.PeriodAll, anns, nil)
	assert.Equal(t, 1, c.Tipo1)
	assert.Equal(t, 1, c.Tipo2)
	assert.Equal(t, 2, c.Tipo3)
}

func TestDisciplineGradePeriodFilter(t *testing.T) {
	// 100 absences, 1 lateness and 1 grave in period 2; noise in period 1.
	logs := repeatAttendance("s1", models.Period2, models.AttendanceAbsence, 100)
	logs = append(logs, attendance("s1", models.Period2, models.AttendanceLateness))
	logs = append(logs, repeatAttendance("s1", models.Period1, models.AttendanceEvasion, 5)...)
	anns := []*models.Annotation{
		annotation("s1", models.Period2, models.LevelGrave),
		annotation("s1", models.Period1, models.LevelGravisimo),
	}

	// 5.0 - 0.3 - 0.3 - 0.3
	assert.InDelta(t, 4.10, DisciplineGrade("s1", models.Period2, anns, logs), 1e-9)

	// All periods includes the period-1 noise as well.
	all := DisciplineGrade("s1", models.PeriodAll, anns, logs)
	assert.Less(t, all, 4.10)
}

func TestDisciplineGradeNineLeve(t *testing.T) {
	var anns []*models.Annotation
	for i := 0; i < 9; i++ {
		anns = append(anns, annotation("s1", models.Period(1+i%4), models.LevelLeve))
	}
	assert.InDelta(t, 4.10, DisciplineGrade("s1", models.PeriodAll, anns, nil), 1e-9)
	assert.Equal(t, 3, RecidivismPoints("s1", models.LevelLeve, models.PeriodAll, anns))
}

func TestDisciplineGradeFloorClamp(t *testing.T) {
	// 2000 absences: 5.0 - 6.0 would be -1.0, clamped to the scale minimum.
	logs := repeatAttendance("s1", models.Period1, models.AttendanceAbsence, 2000)
	assert.Equal(t, 1.0, DisciplineGrade("s1", models.PeriodAll, nil, logs))

	// Arbitrarily large record counts never break the floor.
	logs = append(logs, repeatAttendance("s1", models.Period3, models.AttendanceEvasion, 500)...)
	assert.Equal(t, 1.0, DisciplineGrade("s1", models.PeriodAll, nil, logs))
}

func TestDisciplineGradeOrderInvariant(t *testing.T) {
	anns := []*models.Annotation{
		annotation("s1", models.Period1, models.LevelLeve),
		annotation("s1", models.Period2, models.LevelGrave),
		annotation("s1", models.Period3, models.LevelGravisimo),
		annotation("s1", models.Period4, models.LevelTipo2),
	}
	logs := []*models.AttendanceLog{
		attendance("s1", models.Period1, models.AttendanceAbsence),
		attendance("s1", models.Period2, models.AttendanceLateness),
		attendance("s1", models.Period3, models.AttendanceEvasion),
	}
	want := DisciplineGrade("s1", models.PeriodAll, anns, logs)

	r := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		r.Shuffle(len(anns), func(a, b int) { anns[a], anns[b] = anns[b], anns[a] })
		r.Shuffle(len(logs), func(a, b int) { logs[a], logs[b] = logs[b], logs[a] })
		assert.Equal(t, want, DisciplineGrade("s1", models.PeriodAll, anns, logs))
	}
}

// Records with level or type values outside the closed enumerations fall into
// no bucket and never affect the grade.
func TestUnknownTagsAreExcluded(t *testing.T) {
	anns := []*models.Annotation{
		{StudentID: "s1", Period: models.Period1, Level: models.AnnotationLevel("critico")},
		annotation("s1", models.Period1, models.LevelLeve),
	}
	logs := []*models.AttendanceLog{
		{StudentID: "s1", Period: models.Period1, Type: models.AttendanceType("tardy")},
	}
	assert.InDelta(t, 4.9, DisciplineGrade("s1", models.PeriodAll, anns, logs), 1e-9)

	c := Tally("s1", models.PeriodAll, anns, logs)
	assert.Equal(t, Counts{Leve: 1}, c)
	assert.Equal(t, 0, RecidivismPoints("s1", models.AnnotationLevel("critico"), models.PeriodAll, anns))
}

func TestRecidivismPoints(t *testing.T) {
	build := func(n int) []*models.Annotation {
		var anns []*models.Annotation
		for i := 0; i < n; i++ {
			anns = append(anns, annotation("s1", models.Period1, models.LevelTipo2))
		}
		return anns
	}

	for n, want := range map[int]int{0: 0, 1: 0, 2: 0, 3: 1, 4: 1, 5: 1, 6: 2, 9: 3, 10: 3} {
		assert.Equal(t, want, RecidivismPoints("s1", models.LevelTipo2, models.PeriodAll, build(n)), "n=%d", n)
	}

	// Same level only: grave entries do not count toward tipo2 recidivism.
	anns := append(build(3), annotation("s1", models.Period1, models.LevelGrave))
	assert.Equal(t, 1, RecidivismPoints("s1", models.LevelTipo2, models.PeriodAll, anns))
	assert.Equal(t, 0, RecidivismPoints("s1", models.LevelGrave, models.PeriodAll, anns))
}

func TestRecidivismPeriodFilter(t *testing.T) {
	anns := []*models.Annotation{
		annotation("s1", models.Period1, models.LevelLeve),
		annotation("s1", models.Period1, models.LevelLeve),
		annotation("s1", models.Period1, models.LevelLeve),
		annotation("s1", models.Period2, models.LevelLeve),
	}
	assert.Equal(t, 1, RecidivismPoints("s1", models.LevelLeve, models.Period1, anns))
	assert.Equal(t, 0, RecidivismPoints("s1", models.LevelLeve, models.Period2, anns))
	assert.Equal(t, 1, RecidivismPoints("s1", models.LevelLeve, models.PeriodAll, anns))
}

func TestRecidivismByLevel(t *testing.T) {
	anns := []*models.Annotation{
		annotation("s1", models.Period1, models.LevelLeve),
		annotation("s1", models.Period1, models.LevelLeve),
		annotation("s1", models.Period1, models.LevelLeve),
		annotation("s1", models.Period1, models.LevelTipo1),
	}
	got := RecidivismByLevel("s1", models.PeriodAll, anns)
	assert.Equal(t, 1, got["leve"])
	assert.Equal(t, 0, got["tipo1"])
	assert.Len(t, got, 6)
}
