package teachers

import (
	"github.com/gofiber/fiber/v2"

	"siconitcc/app/models"
	"siconitcc/app/routes/auth"
)

func SetupTeachersRoutes(app *fiber.App) {
	api := app.Group("/api/teachers", auth.AuthMiddleware)

	api.Get("/", GetTeachersAPI)
	api.Get("/:id", GetTeacherAPI)

	admin := api.Group("/", auth.RoleMiddleware(models.RoleAdmin))
	admin.Post("/", CreateTeacherAPI)
	admin.Put("/:id", UpdateTeacherAPI)
	admin.Post("/:id/deactivate", DeactivateTeacherAPI)
}
