package students

import (
	"github.com/gofiber/fiber/v2"

	"siconitcc/app/models"
	"siconitcc/app/routes/auth"
)

func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students", auth.AuthMiddleware)

	api.Get("/", GetStudentsAPI)
	api.Get("/:id", GetStudentAPI)

	// Mutations are admin-only except the PIAR flag, which teachers toggle
	// when enrolling a student in a plan.
	api.Post("/", auth.RoleMiddleware(models.RoleAdmin), CreateStudentAPI)
	api.Post("/bulk", auth.RoleMiddleware(models.RoleAdmin), BulkCreateStudentsAPI)
	api.Put("/:id", auth.RoleMiddleware(models.RoleAdmin), UpdateStudentAPI)
	api.Post("/:id/withdraw", auth.RoleMiddleware(models.RoleAdmin), WithdrawStudentAPI)
	api.Post("/:id/piar", auth.RoleMiddleware(models.RoleAdmin, models.RoleTeacher, models.RoleGestor), SetPiarFlagAPI)
}
