package alerts

import (
	"github.com/gofiber/fiber/v2"

	"github.com/code-differently/cs-25-2-team6-sub003/app/config"
	"github.com/code-differently/cs-25-2-team6-sub003/app/database"
	"github.com/code-differently/cs-25-2-team6-sub003/app/routes/auth"
	"github.com/code-differently/cs-25-2-team6-sub003/app/services"
)

func SetupAlertRoutes(app *fiber.App) {
	grp := app.Group("/api/alerts", auth.AuthMiddleware)

	grp.Get("/", ListAlertsAPI)
	grp.Post("/evaluate", EvaluateAPI)
	grp.Post("/sweep", auth.RoleMiddleware("admin"), SweepAPI)
	grp.Post("/:id/acknowledge", AcknowledgeAlertAPI)
	grp.Post("/:id/dismiss", DismissAlertAPI)
}

func alertService() *services.AlertService {
	db := config.GetDB()
	rollup := services.NewRollupService(
		&database.AttendanceStore{DB: db},
		&database.DayOffStore{DB: db},
	)
	evaluator := services.NewEvaluatorService(rollup)
	return services.NewAlertService(&database.AlertStore{DB: db}, evaluator)
}
