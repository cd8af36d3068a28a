package observer

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"siconitcc/app/config"
	"siconitcc/app/database"
	"siconitcc/app/models"
	"siconitcc/app/scoring"
)

func parsePeriod(c *fiber.Ctx) (models.Period, bool) {
	p := c.QueryInt("period", 0)
	period := models.Period(p)
	if period != models.PeriodAll && !period.Valid() {
		return 0, false
	}
	return period, true
}

// GetObserverSheetAPI returns the per-student disciplinary summary the SPA
// lays out as the printable observer sheet: bucket counts, discipline grade,
// recidivism points and the raw records behind them.
func GetObserverSheetAPI(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	period, ok := parsePeriod(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid period. Use 1-4 or omit for all"})
	}

	db := config.GetDB()

	student, err := database.GetStudentByID(db, studentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	annotations, err := database.GetAnnotationsByStudent(db, studentID, models.PeriodAll)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch annotations"})
	}

	logs, err := database.GetAttendanceByStudent(db, studentID, models.PeriodAll)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance records"})
	}

	sheet := BuildSheet(student, period, annotations, logs)

	return c.JSON(fiber.Map{
		"success": true,
		"sheet":   sheet,
	})
}

// GetCourseReportAPI returns the course director's view: one summary row per
// active student of the course for the period.
func GetCourseReportAPI(c *fiber.Ctx) error {
	courseID := c.Params("courseId")
	period, ok := parsePeriod(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid period. Use 1-4 or omit for all"})
	}

	db := config.GetDB()

	course, err := database.GetCourseByID(db, courseID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Course not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch course"})
	}

	students, err := database.GetStudentsByCourse(db, courseID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	annotations, err := database.GetAnnotationsByCourse(db, courseID, models.PeriodAll)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch annotations"})
	}

	logs, err := database.GetAttendanceByCourse(db, courseID, models.PeriodAll)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance records"})
	}

	type reportRow struct {
		Student         *models.Student `json:"student"`
		DisciplineGrade float64         `json:"discipline_grade"`
		Counts          map[string]int  `json:"counts"`
		Recidivism      map[string]int  `json:"recidivism"`
	}

	rows := make([]reportRow, 0, len(students))
	for _, st := range students {
		rows = append(rows, reportRow{
			Student:         st,
			DisciplineGrade: scoring.DisciplineGrade(st.ID, period, annotations, logs),
			Counts:          scoring.Tally(st.ID, period, annotations, logs).Map(),
			Recidivism:      scoring.RecidivismByLevel(st.ID, period, annotations),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"course":  course,
		"period":  period,
		"report":  rows,
		"count":   len(rows),
	})
}
