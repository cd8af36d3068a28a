package dashboard

import (
	"log"
	"sync"

	"github.com/gofiber/fiber/v2"

	"siconitcc/app/config"
	"siconitcc/app/database"
	"siconitcc/app/models"
	"siconitcc/app/routes/auth"
	"siconitcc/app/scoring"
	"siconitcc/app/services"
)

var (
	cacheMu     sync.Mutex
	cachedStats *models.DashboardStats
)

func init() {
	// Any collection write invalidates the cached stats; the next request
	// recomputes them from the record store.
	services.OnChange(func(string) {
		cacheMu.Lock()
		cachedStats = nil
		cacheMu.Unlock()
	})
}

func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard", auth.AuthMiddleware)
	api.Get("/stats", GetDashboardStatsAPI)
}

// GetDashboardStatsAPI returns the statistics dashboard's aggregates. The
// expensive parts are cached until a change notification arrives.
func GetDashboardStatsAPI(c *fiber.Ctx) error {
	cacheMu.Lock()
	stats := cachedStats
	cacheMu.Unlock()
	if stats != nil {
		return c.JSON(fiber.Map{"success": true, "data": stats})
	}

	stats, err := computeStats()
	if err != nil {
		log.Printf("Dashboard stats error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute dashboard statistics"})
	}

	cacheMu.Lock()
	cachedStats = stats
	cacheMu.Unlock()

	return c.JSON(fiber.Map{"success": true, "data": stats})
}

func computeStats() (*models.DashboardStats, error) {
	db := config.GetDB()

	counts, err := database.GetDashboardCounts(db)
	if err != nil {
		return nil, err
	}

	activities, err := database.GetRecentActivities(db, 10)
	if err != nil {
		return nil, err
	}

	averages, err := courseAverages()
	if err != nil {
		return nil, err
	}

	return &models.DashboardStats{
		TotalStudents:         counts.TotalStudents,
		TotalTeachers:         counts.TotalTeachers,
		TotalCourses:          counts.TotalCourses,
		PiarStudents:          counts.PiarStudents,
		AnnotationsByCategory: counts.ByCategory,
		AnnotationsByLevel:    counts.ByLevel,
		AttendanceByType:      counts.ByType,
		CourseAverages:        averages,
		RecentActivities:      activities,
	}, nil
}

// courseAverages runs the scoring engine over the full record collections,
// averaging the discipline grade per course across all periods.
func courseAverages() ([]models.CourseAverage, error) {
	db := config.GetDB()

	courses, err := database.GetCourses(db, "")
	if err != nil {
		return nil, err
	}

	annotations, err := database.GetAllAnnotations(db)
	if err != nil {
		return nil, err
	}

	logs, err := database.GetAllAttendance(db)
	if err != nil {
		return nil, err
	}

	var averages []models.CourseAverage
	for _, course := range courses {
		students, err := database.GetStudentsByCourse(db, course.ID)
		if err != nil {
			return nil, err
		}
		if len(students) == 0 {
			continue
		}

		sum := 0.0
		for _, st := range students {
			sum += scoring.DisciplineGrade(st.ID, models.PeriodAll, annotations, logs)
		}

		avg := models.CourseAverage{
			CourseID:   course.ID,
			CourseName: course.Name,
			Students:   len(students),
			Average:    sum / float64(len(students)),
		}
		if course.Sede != nil {
			avg.SedeName = course.Sede.Name
		}
		averages = append(averages, avg)
	}
	return averages, nil
}
