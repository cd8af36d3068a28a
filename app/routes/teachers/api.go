package teachers

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"siconitcc/app/config"
	"siconitcc/app/database"
	"siconitcc/app/models"
	"siconitcc/app/services"
	"siconitcc/app/validation"
)

func GetTeachersAPI(c *fiber.Ctx) error {
	teachers, err := database.GetTeachers(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch teachers"})
	}

	return c.JSON(fiber.Map{
		"teachers": teachers,
		"count":    len(teachers),
	})
}

func GetTeacherAPI(c *fiber.Ctx) error {
	id := c.Params("id")

	teacher, err := database.GetUserByID(config.GetDB(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Teacher not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch teacher"})
	}

	roles, err := database.GetUserRoles(config.GetDB(), teacher.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch roles"})
	}
	teacher.Roles = roles

	return c.JSON(fiber.Map{"teacher": teacher})
}

type teacherRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"omitempty,min=8"`
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	Document  *string `json:"document,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Gestor    bool    `json:"gestor"` // also grant the PIAR-review role
}

func CreateTeacherAPI(c *fiber.Ctx) error {
	var req teacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "password is required"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	teacher := &models.User{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Document:  req.Document,
		Phone:     req.Phone,
	}

	roles := []string{models.RoleTeacher}
	if req.Gestor {
		roles = append(roles, models.RoleGestor)
	}

	if err := database.CreateUser(config.GetDB(), teacher, roles...); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create teacher"})
	}

	services.NotifyChange("teachers")
	return c.Status(201).JSON(fiber.Map{
		"message": "Teacher created successfully",
		"teacher": teacher,
	})
}

func UpdateTeacherAPI(c *fiber.Ctx) error {
	id := c.Params("id")

	var req teacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	teacher := &models.User{
		ID:        id,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Document:  req.Document,
		Phone:     req.Phone,
	}

	if err := database.UpdateUser(config.GetDB(), teacher); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update teacher"})
	}

	services.NotifyChange("teachers")
	return c.JSON(fiber.Map{"message": "Teacher updated successfully"})
}

// DeactivateTeacherAPI soft-disables the account; its annotations and reports
// keep referencing it.
func DeactivateTeacherAPI(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := database.DeactivateUser(config.GetDB(), id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to deactivate teacher"})
	}

	services.NotifyChange("teachers")
	return c.JSON(fiber.Map{"message": "Teacher deactivated"})
}
