package piar

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"siconitcc/app/config"
	"siconitcc/app/database"
	"siconitcc/app/models"
	"siconitcc/app/services"
	"siconitcc/app/validation"
)

// CreatePiarRecordAPI stores one teacher submission of a student's
// reasonable-adjustment plan for a period, and flags the student as enrolled.
func CreatePiarRecordAPI(c *fiber.Ctx) error {
	type piarRequest struct {
		StudentID           string   `json:"student_id" validate:"required,uuid"`
		Period              int      `json:"period" validate:"required,gte=1,lte=4"`
		Objectives          string   `json:"objectives" validate:"required"`
		Barriers            []string `json:"barriers"`
		Adjustments         []string `json:"adjustments"`
		EvaluationMethod    string   `json:"evaluation_method"`
		ImprovementStrategy string   `json:"improvement_strategy"`
	}

	var req piarRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	user := c.Locals("user").(*models.User)

	record := &models.PiarRecord{
		StudentID:           req.StudentID,
		TeacherID:           user.ID,
		Period:              models.Period(req.Period),
		Objectives:          req.Objectives,
		Barriers:            req.Barriers,
		Adjustments:         req.Adjustments,
		EvaluationMethod:    req.EvaluationMethod,
		ImprovementStrategy: req.ImprovementStrategy,
	}

	if err := database.CreatePiarRecord(config.GetDB(), record); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save PIAR record"})
	}

	if err := database.SetPiarFlag(config.GetDB(), req.StudentID, true); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Record saved but failed to flag student"})
	}

	services.NotifyChange("piar_records")
	return c.Status(201).JSON(fiber.Map{
		"message": "PIAR record created successfully",
		"record":  record,
	})
}

// GetStudentPiarRecordsAPI lists a student's submissions, optionally filtered
// by period.
func GetStudentPiarRecordsAPI(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	p := c.QueryInt("period", 0)
	period := models.Period(p)
	if period != models.PeriodAll && !period.Valid() {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid period. Use 1-4 or omit for all"})
	}

	records, err := database.GetPiarRecordsByStudent(config.GetDB(), studentID, period)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch PIAR records"})
	}

	return c.JSON(fiber.Map{
		"records":    records,
		"count":      len(records),
		"student_id": studentID,
	})
}

// GetPendingPiarRecordsAPI returns the gestor's review queue: submissions
// without an observation yet.
func GetPendingPiarRecordsAPI(c *fiber.Ctx) error {
	records, err := database.GetPendingPiarRecords(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch pending records"})
	}

	return c.JSON(fiber.Map{
		"records": records,
		"count":   len(records),
	})
}

func GetPiarRecordAPI(c *fiber.Ctx) error {
	id := c.Params("id")

	record, err := database.GetPiarRecordByID(config.GetDB(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "PIAR record not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch PIAR record"})
	}

	return c.JSON(fiber.Map{"record": record})
}

// SetGestorObservationAPI appends the manager review to a submission. This is
// the only mutation a PIAR record accepts after creation, restricted to the
// gestor/admin role by the route setup.
func SetGestorObservationAPI(c *fiber.Ctx) error {
	type observationRequest struct {
		Observation string `json:"observation" validate:"required"`
	}

	id := c.Params("id")
	var req observationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	user := c.Locals("user").(*models.User)

	if err := database.SetPiarGestorObservation(config.GetDB(), id, user.ID, req.Observation); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save observation"})
	}

	services.NotifyChange("piar_records")
	return c.JSON(fiber.Map{"message": "Observation recorded"})
}
