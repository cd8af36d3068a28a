package annotations

import (
	"github.com/gofiber/fiber/v2"

	"siconitcc/app/models"
	"siconitcc/app/routes/auth"
)

func SetupAnnotationsRoutes(app *fiber.App) {
	api := app.Group("/api/annotations", auth.AuthMiddleware,
		auth.RoleMiddleware(models.RoleAdmin, models.RoleTeacher, models.RoleGestor))

	api.Post("/", CreateAnnotationAPI)
	api.Get("/student/:studentId", GetStudentAnnotationsAPI)
	api.Get("/course/:courseId", GetCourseAnnotationsAPI)
	api.Get("/:id", GetAnnotationAPI)
	api.Post("/:id/followups", AddFollowUpAPI)
	api.Post("/:id/escalate", EscalateAnnotationAPI)
	api.Post("/:id/sign", SignAnnotationAPI)
}
