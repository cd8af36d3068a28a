package attendance

import (
	"github.com/gofiber/fiber/v2"

	"siconitcc/app/models"
	"siconitcc/app/routes/auth"
)

func SetupAttendanceRoutes(app *fiber.App) {
	api := app.Group("/api/attendance", auth.AuthMiddleware,
		auth.RoleMiddleware(models.RoleAdmin, models.RoleTeacher, models.RoleGestor))

	api.Post("/", CreateAttendanceBatchAPI)
	api.Get("/student/:studentId", GetStudentAttendanceAPI)
	api.Get("/course/:courseId/date/:date", GetAttendanceByCourseAndDateAPI)
}
