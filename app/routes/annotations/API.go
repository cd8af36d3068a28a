package annotations

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"siconitcc/app/config"
	"siconitcc/app/database"
	"siconitcc/app/models"
	"siconitcc/app/services"
	"siconitcc/app/validation"
)

func parsePeriod(c *fiber.Ctx) (models.Period, bool) {
	p := c.QueryInt("period", 0)
	period := models.Period(p)
	if period != models.PeriodAll && !period.Valid() {
		return 0, false
	}
	return period, true
}

func CreateAnnotationAPI(c *fiber.Ctx) error {
	type annotationRequest struct {
		StudentID   string `json:"student_id" validate:"required,uuid"`
		Period      int    `json:"period" validate:"required,gte=1,lte=4"`
		Category    string `json:"category" validate:"required,oneof=Falta Incumplimiento"`
		Level       string `json:"level" validate:"required,oneof=leve grave gravisimo tipo1 tipo2 tipo3"`
		Description string `json:"description" validate:"required"`
		Action      string `json:"action"`
		Priority    bool   `json:"priority"`
	}

	var req annotationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	category := models.AnnotationCategory(req.Category)
	level := models.AnnotationLevel(req.Level)
	// Each category has a closed level set: leve/grave/gravisimo for
	// non-compliance, tipo1/2/3 for misconduct.
	if !level.ValidFor(category) {
		return c.Status(400).JSON(fiber.Map{"error": "Level " + req.Level + " is not valid for category " + req.Category})
	}

	user := c.Locals("user").(*models.User)

	annotation := &models.Annotation{
		StudentID:   req.StudentID,
		TeacherID:   user.ID,
		Period:      models.Period(req.Period),
		Category:    category,
		Level:       level,
		Description: req.Description,
		Action:      req.Action,
		Priority:    req.Priority,
	}

	if err := database.CreateAnnotation(config.GetDB(), annotation); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save annotation"})
	}

	services.NotifyChange("annotations")
	return c.Status(201).JSON(fiber.Map{
		"message":    "Annotation recorded successfully",
		"annotation": annotation,
	})
}

// GetStudentAnnotationsAPI lists a student's annotations, optionally filtered
// by period (period=0 or absent means all periods).
func GetStudentAnnotationsAPI(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	period, ok := parsePeriod(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid period. Use 1-4 or omit for all"})
	}

	annotations, err := database.GetAnnotationsByStudent(config.GetDB(), studentID, period)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch annotations"})
	}

	return c.JSON(fiber.Map{
		"annotations": annotations,
		"count":       len(annotations),
		"student_id":  studentID,
	})
}

func GetCourseAnnotationsAPI(c *fiber.Ctx) error {
	courseID := c.Params("courseId")
	period, ok := parsePeriod(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid period. Use 1-4 or omit for all"})
	}

	annotations, err := database.GetAnnotationsByCourse(config.GetDB(), courseID, period)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch annotations"})
	}

	return c.JSON(fiber.Map{
		"annotations": annotations,
		"count":       len(annotations),
		"course_id":   courseID,
	})
}

func GetAnnotationAPI(c *fiber.Ctx) error {
	id := c.Params("id")

	annotation, err := database.GetAnnotationByID(config.GetDB(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Annotation not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch annotation"})
	}

	followUps, err := database.GetAnnotationFollowUps(config.GetDB(), id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch follow-ups"})
	}
	annotation.FollowUps = followUps

	return c.JSON(fiber.Map{"annotation": annotation})
}

// AddFollowUpAPI appends an observation to an existing annotation. The
// original entry text is never rewritten.
func AddFollowUpAPI(c *fiber.Ctx) error {
	type followUpRequest struct {
		Observation string `json:"observation" validate:"required"`
	}

	annotationID := c.Params("id")
	var req followUpRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	user := c.Locals("user").(*models.User)
	followUp := &models.FollowUp{
		AnnotationID: annotationID,
		AuthorID:     user.ID,
		Observation:  req.Observation,
	}

	if err := database.AddAnnotationFollowUp(config.GetDB(), followUp); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save follow-up"})
	}

	services.NotifyChange("annotations")
	return c.Status(201).JSON(fiber.Map{
		"message":   "Follow-up recorded successfully",
		"follow_up": followUp,
	})
}

// EscalateAnnotationAPI fills in the directive escalation fields (actor
// informed, action applied) after creation.
func EscalateAnnotationAPI(c *fiber.Ctx) error {
	type escalationRequest struct {
		EscalatedTo    *string `json:"escalated_to" validate:"required"`
		EscalationNote *string `json:"escalation_note,omitempty"`
	}

	id := c.Params("id")
	var req escalationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.UpdateAnnotationEscalation(config.GetDB(), id, req.EscalatedTo, req.EscalationNote); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update escalation"})
	}

	services.NotifyChange("annotations")
	return c.JSON(fiber.Map{"message": "Escalation recorded"})
}

func SignAnnotationAPI(c *fiber.Ctx) error {
	type signRequest struct {
		StudentSigned bool `json:"student_signed"`
		ParentSigned  bool `json:"parent_signed"`
	}

	id := c.Params("id")
	var req signRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := database.UpdateAnnotationSignatures(config.GetDB(), id, req.StudentSigned, req.ParentSigned); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update signatures"})
	}

	services.NotifyChange("annotations")
	return c.JSON(fiber.Map{"message": "Signatures updated"})
}
