package competency

import (
	"github.com/gofiber/fiber/v2"

	"siconitcc/app/models"
	"siconitcc/app/routes/auth"
)

func SetupCompetencyRoutes(app *fiber.App) {
	api := app.Group("/api/competency", auth.AuthMiddleware)

	api.Post("/", auth.RoleMiddleware(models.RoleAdmin, models.RoleTeacher), CreateCompetencyReportAPI)
	api.Get("/student/:studentId", GetStudentReportsAPI)
	api.Get("/course/:courseId", GetCourseReportsAPI)
	api.Get("/:id", GetReportAPI)
	api.Post("/:id/verify", auth.RoleMiddleware(models.RoleAdmin, models.RoleGestor), VerifyReportAPI)
}
