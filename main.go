package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"siconitcc/app/config"
	"siconitcc/app/database"
	"siconitcc/app/routes/annotations"
	"siconitcc/app/routes/attendance"
	"siconitcc/app/routes/auth"
	"siconitcc/app/routes/competency"
	"siconitcc/app/routes/courses"
	"siconitcc/app/routes/dashboard"
	"siconitcc/app/routes/observer"
	"siconitcc/app/routes/piar"
	"siconitcc/app/routes/settings"
	"siconitcc/app/routes/students"
	"siconitcc/app/routes/teachers"
	"siconitcc/app/services"
)

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// The institution runs on Colombia time; reports and the session purge
	// schedule follow it regardless of the host zone.
	loc, err := time.LoadLocation("America/Bogota")
	if err != nil {
		log.Printf("Warning: failed to load America/Bogota location, falling back to UTC-5: %v", err)
		time.Local = time.FixedZone("COT", -5*60*60)
	} else {
		time.Local = loc
	}

	config.Load()
	defer config.GetDB().Close()
	config.ConnectRedis()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	services.StartScheduler(config.GetDB())
	services.StartChangeListener()

	app := fiber.New(fiber.Config{
		AppName:      "siconitcc",
		ErrorHandler: errorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.CORSOrigin,
		AllowCredentials: config.AppConfig.CORSOrigin != "*",
	}))

	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	students.SetupStudentsRoutes(app)
	teachers.SetupTeachersRoutes(app)
	courses.SetupCoursesRoutes(app)
	annotations.SetupAnnotationsRoutes(app)
	attendance.SetupAttendanceRoutes(app)
	piar.SetupPiarRoutes(app)
	competency.SetupCompetencyRoutes(app)
	observer.SetupObserverRoutes(app)
	settings.SetupSettingsRoutes(app)

	// The built SPA. API routes above take precedence; anything else falls
	// through to index.html for client-side routing.
	app.Static("/", "./static")
	app.Use(func(c *fiber.Ctx) error {
		if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
			return fiber.NewError(fiber.StatusNotFound, "Not found")
		}
		return c.SendFile("./static/index.html")
	})

	log.Println("Server starting on", config.AppConfig.ListenAddr)
	log.Fatal(app.Listen(config.AppConfig.ListenAddr))
}
