package observer

import (
	"github.com/gofiber/fiber/v2"

	"siconitcc/app/models"
	"siconitcc/app/routes/auth"
)

func SetupObserverRoutes(app *fiber.App) {
	api := app.Group("/api/observer", auth.AuthMiddleware,
		auth.RoleMiddleware(models.RoleAdmin, models.RoleTeacher, models.RoleGestor))

	api.Get("/student/:studentId", GetObserverSheetAPI)
	api.Get("/course/:courseId", GetCourseReportAPI)
}
