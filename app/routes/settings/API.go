package settings

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"siconitcc/app/config"
	"siconitcc/app/database"
	"siconitcc/app/models"
	"siconitcc/app/routes/auth"
	"siconitcc/app/services"
	"siconitcc/app/validation"
)

func SetupSettingsRoutes(app *fiber.App) {
	api := app.Group("/api/settings", auth.AuthMiddleware)
	api.Get("/", GetSettingsAPI)
	api.Put("/", auth.RoleMiddleware(models.RoleAdmin), UpdateSettingsAPI)
}

// GetSettingsAPI returns the academic year and active period. Every
// authenticated user reads these; the SPA uses the active period as the
// default filter for annotations and attendance.
func GetSettingsAPI(c *fiber.Ctx) error {
	s, err := database.GetSettings(config.GetDB())
	if err != nil {
		log.Printf("Get settings error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load settings"})
	}
	return c.JSON(fiber.Map{"success": true, "data": s})
}

func UpdateSettingsAPI(c *fiber.Ctx) error {
	var req models.Settings
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if !req.ActivePeriod.Valid() {
		return c.Status(400).JSON(fiber.Map{"error": "Active period must be between 1 and 4"})
	}

	if err := database.UpdateSettings(config.GetDB(), &req); err != nil {
		log.Printf("Update settings error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update settings"})
	}

	services.NotifyChange("settings")
	return c.JSON(fiber.Map{"success": true, "message": "Settings updated"})
}
