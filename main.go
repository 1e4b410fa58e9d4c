package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/code-differently/cs-25-2-team6-sub003/app/config"
	"github.com/code-differently/cs-25-2-team6-sub003/app/database"
	"github.com/code-differently/cs-25-2-team6-sub003/app/routes/alerts"
	"github.com/code-differently/cs-25-2-team6-sub003/app/routes/attendance"
	"github.com/code-differently/cs-25-2-team6-sub003/app/routes/auth"
	"github.com/code-differently/cs-25-2-team6-sub003/app/routes/dayoffs"
	"github.com/code-differently/cs-25-2-team6-sub003/app/routes/reports"
	"github.com/code-differently/cs-25-2-team6-sub003/app/routes/students"
	"github.com/code-differently/cs-25-2-team6-sub003/app/services"
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
	config.Load()

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start the nightly alert sweep
	db := config.GetDB()
	rollup := services.NewRollupService(
		&database.AttendanceStore{DB: db},
		&database.DayOffStore{DB: db},
	)
	alertSvc := services.NewAlertService(
		&database.AlertStore{DB: db},
		services.NewEvaluatorService(rollup),
	)
	services.StartScheduler(alertSvc, &database.StudentStore{DB: db}, config.AlertRules)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Routes
	auth.SetupAuthRoutes(app)
	students.SetupStudentRoutes(app)
	attendance.SetupAttendanceRoutes(app)
	dayoffs.SetupDayOffRoutes(app)
	reports.SetupReportRoutes(app)
	alerts.SetupAlertRoutes(app)

	port := ":8080"
	log.Printf("Server starting on %s", port)
	log.Fatal(app.Listen(port))
}
