package students

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"siconitcc/app/config"
	"siconitcc/app/database"
	"siconitcc/app/models"
	"siconitcc/app/services"
	"siconitcc/app/validation"
)

// GetStudentsAPI returns students with the dependent-selector filters applied
// (sede, course, PIAR flag) plus search, status and pagination.
func GetStudentsAPI(c *fiber.Ctx) error {
	filters := Filters{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		SedeID:   c.Query("sede_id"),
		CourseID: c.Query("course_id"),
	}
	if piar := c.Query("piar"); piar != "" {
		enrolled := piar == "true" || piar == "1"
		filters.Piar = &enrolled
	}
	limit := c.QueryInt("limit", 0)
	offset := c.QueryInt("offset", 0)

	allStudents, err := database.GetStudentsWithDetails(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	filtered := Apply(allStudents, filters)
	page := Paginate(filtered, limit, offset)

	return c.JSON(fiber.Map{
		"students":    page,
		"count":       len(page),
		"total_count": len(filtered),
	})
}

func GetStudentAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	student, err := database.GetStudentByID(config.GetDB(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}
	return c.JSON(fiber.Map{"student": student})
}

type studentRequest struct {
	Document      string  `json:"document" validate:"required"`
	FirstName     string  `json:"first_name" validate:"required"`
	LastName      string  `json:"last_name" validate:"required"`
	Gender        *string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	DateOfBirth   *string `json:"date_of_birth,omitempty"`
	SedeID        *string `json:"sede_id,omitempty" validate:"omitempty,uuid"`
	CourseID      *string `json:"course_id,omitempty" validate:"omitempty,uuid"`
	GuardianName  *string `json:"guardian_name,omitempty"`
	GuardianPhone *string `json:"guardian_phone,omitempty"`
}

func (r *studentRequest) toModel() (*models.Student, error) {
	st := &models.Student{
		Document:      r.Document,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		SedeID:        r.SedeID,
		CourseID:      r.CourseID,
		GuardianName:  r.GuardianName,
		GuardianPhone: r.GuardianPhone,
		Status:        models.StudentActive,
	}
	if r.Gender != nil {
		g := models.Gender(*r.Gender)
		st.Gender = &g
	}
	if r.DateOfBirth != nil && *r.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", *r.DateOfBirth)
		if err != nil {
			return nil, err
		}
		st.DateOfBirth = &dob
	}
	return st, nil
}

func CreateStudentAPI(c *fiber.Ctx) error {
	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	student, err := req.toModel()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	if err := database.CreateStudent(config.GetDB(), student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}

	services.NotifyChange("students")
	return c.Status(201).JSON(fiber.Map{
		"message": "Student created successfully",
		"student": student,
	})
}

// BulkCreateStudentsAPI accepts a pre-parsed batch of students (the SPA parses
// the spreadsheet) and inserts them in one transaction.
func BulkCreateStudentsAPI(c *fiber.Ctx) error {
	type bulkRequest struct {
		Students []studentRequest `json:"students" validate:"required,min=1,dive"`
	}

	var req bulkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	students := make([]*models.Student, 0, len(req.Students))
	for i := range req.Students {
		st, err := req.Students[i].toModel()
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
		}
		students = append(students, st)
	}

	if err := database.BulkCreateStudents(config.GetDB(), students); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to import students"})
	}

	services.NotifyChange("students")
	return c.Status(201).JSON(fiber.Map{
		"message": "Students imported successfully",
		"count":   len(students),
	})
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	id := c.Params("id")

	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	student, err := req.toModel()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}
	student.ID = id

	if err := database.UpdateStudent(config.GetDB(), student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
	}

	services.NotifyChange("students")
	return c.JSON(fiber.Map{"message": "Student updated successfully"})
}

// WithdrawStudentAPI flips the enrollment status; the record and its history
// stay for reporting.
func WithdrawStudentAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := database.WithdrawStudent(config.GetDB(), id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to withdraw student"})
	}

	services.NotifyChange("students")
	return c.JSON(fiber.Map{"message": "Student withdrawn"})
}

// SetPiarFlagAPI enrolls a student in (or removes one from) a
// reasonable-adjustment plan.
func SetPiarFlagAPI(c *fiber.Ctx) error {
	type piarRequest struct {
		Enrolled bool `json:"enrolled"`
	}

	id := c.Params("id")
	var req piarRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := database.SetPiarFlag(config.GetDB(), id, req.Enrolled); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update PIAR flag"})
	}

	services.NotifyChange("students")
	return c.JSON(fiber.Map{"message": "PIAR enrollment updated"})
}
