package courses

import (
	"github.com/gofiber/fiber/v2"

	"siconitcc/app/config"
	"siconitcc/app/database"
	"siconitcc/app/models"
	"siconitcc/app/services"
	"siconitcc/app/validation"
)

// GetSedesAPI returns the campuses, the top level of the sede -> course ->
// student selection cascade.
func GetSedesAPI(c *fiber.Ctx) error {
	sedes, err := database.GetSedes(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch sedes"})
	}

	return c.JSON(fiber.Map{
		"sedes": sedes,
		"count": len(sedes),
	})
}

func CreateSedeAPI(c *fiber.Ctx) error {
	type sedeRequest struct {
		Name    string  `json:"name" validate:"required"`
		Address *string `json:"address,omitempty"`
	}

	var req sedeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	sede := &models.Sede{Name: req.Name, Address: req.Address}
	if err := database.CreateSede(config.GetDB(), sede); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create sede"})
	}

	services.NotifyChange("sedes")
	return c.Status(201).JSON(fiber.Map{
		"message": "Sede created successfully",
		"sede":    sede,
	})
}

// GetCoursesAPI returns courses, narrowed to one sede when sede_id is given.
func GetCoursesAPI(c *fiber.Ctx) error {
	sedeID := c.Query("sede_id")

	courses, err := database.GetCourses(config.GetDB(), sedeID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch courses"})
	}

	return c.JSON(fiber.Map{
		"courses": courses,
		"count":   len(courses),
	})
}

// GetCourseStudentsAPI returns the active students of a course, the bottom
// level of the selection cascade. The optional piar query narrows the list to
// enrollment (piar=false) or follow-up (piar=true) contexts.
func GetCourseStudentsAPI(c *fiber.Ctx) error {
	courseID := c.Params("id")

	students, err := database.GetStudentsByCourse(config.GetDB(), courseID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	if piar := c.Query("piar"); piar != "" {
		enrolled := piar == "true" || piar == "1"
		filtered := students[:0]
		for _, st := range students {
			if st.HasPiar == enrolled {
				filtered = append(filtered, st)
			}
		}
		students = filtered
	}

	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

func CreateCourseAPI(c *fiber.Ctx) error {
	type courseRequest struct {
		SedeID     string  `json:"sede_id" validate:"required,uuid"`
		Name       string  `json:"name" validate:"required"`
		GradeLevel int     `json:"grade_level" validate:"gte=0,lte=11"`
		DirectorID *string `json:"director_id,omitempty" validate:"omitempty,uuid"`
	}

	var req courseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	course := &models.Course{
		SedeID:     req.SedeID,
		Name:       req.Name,
		GradeLevel: req.GradeLevel,
		DirectorID: req.DirectorID,
	}
	if err := database.CreateCourse(config.GetDB(), course); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create course"})
	}

	services.NotifyChange("courses")
	return c.Status(201).JSON(fiber.Map{
		"message": "Course created successfully",
		"course":  course,
	})
}

func AssignDirectorAPI(c *fiber.Ctx) error {
	type directorRequest struct {
		TeacherID string `json:"teacher_id" validate:"required,uuid"`
	}

	courseID := c.Params("id")
	var req directorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.AssignCourseDirector(config.GetDB(), courseID, req.TeacherID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to assign director"})
	}

	services.NotifyChange("courses")
	return c.JSON(fiber.Map{"message": "Course director assigned"})
}
