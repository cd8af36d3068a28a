package competency

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"

	"siconitcc/app/config"
	"siconitcc/app/database"
	"siconitcc/app/models"
	"siconitcc/app/services"
	"siconitcc/app/validation"
)

func CreateCompetencyReportAPI(c *fiber.Ctx) error {
	type reportRequest struct {
		StudentID  string `json:"student_id" validate:"required,uuid"`
		GradeLevel int    `json:"grade_level" validate:"gte=0,lte=11"`
		Year       int    `json:"year" validate:"required,gte=2000"`
		Report     string `json:"report" validate:"required"`
	}

	var req reportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	user := c.Locals("user").(*models.User)

	report := &models.CompetencyReport{
		StudentID:  req.StudentID,
		TeacherID:  user.ID,
		GradeLevel: req.GradeLevel,
		Year:       req.Year,
		Report:     req.Report,
	}

	if err := database.CreateCompetencyReport(config.GetDB(), report); err != nil {
		// One report per student per year.
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return c.Status(409).JSON(fiber.Map{"error": "A report for this student and year already exists"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save report"})
	}

	services.NotifyChange("competency_reports")
	return c.Status(201).JSON(fiber.Map{
		"message": "Competency report created successfully",
		"report":  report,
	})
}

func GetStudentReportsAPI(c *fiber.Ctx) error {
	studentID := c.Params("studentId")

	reports, err := database.GetCompetencyReportsByStudent(config.GetDB(), studentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch reports"})
	}

	return c.JSON(fiber.Map{
		"reports":    reports,
		"count":      len(reports),
		"student_id": studentID,
	})
}

func GetCourseReportsAPI(c *fiber.Ctx) error {
	courseID := c.Params("courseId")
	year := c.QueryInt("year", 0)

	reports, err := database.GetCompetencyReportsByCourse(config.GetDB(), courseID, year)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch reports"})
	}

	return c.JSON(fiber.Map{
		"reports":   reports,
		"count":     len(reports),
		"course_id": courseID,
	})
}

func GetReportAPI(c *fiber.Ctx) error {
	id := c.Params("id")

	report, err := database.GetCompetencyReportByID(config.GetDB(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Report not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch report"})
	}

	return c.JSON(fiber.Map{"report": report})
}

// VerifyReportAPI marks a report verified, with an optional gestor
// observation. Route setup restricts it to the admin/gestor role.
func VerifyReportAPI(c *fiber.Ctx) error {
	type verifyRequest struct {
		Observation *string `json:"observation,omitempty"`
	}

	id := c.Params("id")
	var req verifyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	user := c.Locals("user").(*models.User)

	if err := database.VerifyCompetencyReport(config.GetDB(), id, user.ID, req.Observation); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to verify report"})
	}

	services.NotifyChange("competency_reports")
	return c.JSON(fiber.Map{"message": "Report verified"})
}
