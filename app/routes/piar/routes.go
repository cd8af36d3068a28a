package piar

import (
	"github.com/gofiber/fiber/v2"

	"siconitcc/app/models"
	"siconitcc/app/routes/auth"
)

func SetupPiarRoutes(app *fiber.App) {
	api := app.Group("/api/piar", auth.AuthMiddleware)

	// Teachers submit and read; only the gestor role reviews.
	api.Post("/", auth.RoleMiddleware(models.RoleAdmin, models.RoleTeacher), CreatePiarRecordAPI)
	api.Get("/student/:studentId", GetStudentPiarRecordsAPI)
	api.Get("/pending", auth.RoleMiddleware(models.RoleAdmin, models.RoleGestor), GetPendingPiarRecordsAPI)
	api.Get("/:id", GetPiarRecordAPI)
	api.Post("/:id/observation", auth.RoleMiddleware(models.RoleAdmin, models.RoleGestor), SetGestorObservationAPI)
}
