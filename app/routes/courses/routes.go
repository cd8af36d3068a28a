package courses

import (
	"github.com/gofiber/fiber/v2"

	"siconitcc/app/models"
	"siconitcc/app/routes/auth"
)

func SetupCoursesRoutes(app *fiber.App) {
	api := app.Group("/api", auth.AuthMiddleware)

	api.Get("/sedes", GetSedesAPI)
	api.Post("/sedes", auth.RoleMiddleware(models.RoleAdmin), CreateSedeAPI)

	api.Get("/courses", GetCoursesAPI)
	api.Get("/courses/:id/students", GetCourseStudentsAPI)
	api.Post("/courses", auth.RoleMiddleware(models.RoleAdmin), CreateCourseAPI)
	api.Post("/courses/:id/director", auth.RoleMiddleware(models.RoleAdmin), AssignDirectorAPI)
}
