package attendance

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"siconitcc/app/config"
	"siconitcc/app/database"
	"siconitcc/app/models"
	"siconitcc/app/services"
	"siconitcc/app/validation"
)

// CreateAttendanceBatchAPI records one roll-call session: one log per flagged
// student. Students present with no incident get no row.
func CreateAttendanceBatchAPI(c *fiber.Ctx) error {
	type entryRequest struct {
		StudentID string `json:"student_id" validate:"required,uuid"`
		Type      string `json:"type" validate:"required,oneof=absence lateness evasion excuse"`
	}
	type batchRequest struct {
		CourseID *string        `json:"course_id,omitempty" validate:"omitempty,uuid"`
		Period   int            `json:"period" validate:"required,gte=1,lte=4"`
		Date     string         `json:"date" validate:"required"`
		Entries  []entryRequest `json:"entries" validate:"required,min=1,dive"`
	}

	var req batchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	user := c.Locals("user").(*models.User)

	logs := make([]*models.AttendanceLog, 0, len(req.Entries))
	for _, e := range req.Entries {
		logs = append(logs, &models.AttendanceLog{
			StudentID: e.StudentID,
			CourseID:  req.CourseID,
			Period:    models.Period(req.Period),
			Type:      models.AttendanceType(e.Type),
			Date:      date,
			MarkedBy:  user.ID,
		})
	}

	if err := database.CreateAttendanceBatch(config.GetDB(), logs); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save attendance records"})
	}

	services.NotifyChange("attendance")
	return c.Status(201).JSON(fiber.Map{
		"message": "Attendance recorded successfully",
		"count":   len(logs),
		"date":    req.Date,
	})
}

// GetStudentAttendanceAPI lists a student's logs, optionally filtered by
// period (period=0 or absent means all periods).
func GetStudentAttendanceAPI(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	p := c.QueryInt("period", 0)
	period := models.Period(p)
	if period != models.PeriodAll && !period.Valid() {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid period. Use 1-4 or omit for all"})
	}

	logs, err := database.GetAttendanceByStudent(config.GetDB(), studentID, period)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance records"})
	}

	return c.JSON(fiber.Map{
		"attendance": logs,
		"count":      len(logs),
		"student_id": studentID,
	})
}

func GetAttendanceByCourseAndDateAPI(c *fiber.Ctx) error {
	courseID := c.Params("courseId")
	dateStr := c.Params("date")

	if courseID == "" || dateStr == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Course ID and date are required"})
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	logs, err := database.GetAttendanceByCourseAndDate(config.GetDB(), courseID, date)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance records"})
	}

	return c.JSON(fiber.Map{
		"attendance": logs,
		"count":      len(logs),
		"date":       dateStr,
		"course_id":  courseID,
	})
}
