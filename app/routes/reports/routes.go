package reports

import (
	"github.com/gofiber/fiber/v2"

	"github.com/code-differently/cs-25-2-team6-sub003/app/config"
	"github.com/code-differently/cs-25-2-team6-sub003/app/database"
	"github.com/code-differently/cs-25-2-team6-sub003/app/routes/auth"
	"github.com/code-differently/cs-25-2-team6-sub003/app/services"
)

func SetupReportRoutes(app *fiber.App) {
	grp := app.Group("/api/reports", auth.AuthMiddleware)

	grp.Get("/rollup/:studentId", RollupAPI)
	grp.Get("/ytd/:studentId", YearToDateAPI)
}

func rollupService() *services.RollupService {
	db := config.GetDB()
	return services.NewRollupService(
		&database.AttendanceStore{DB: db},
		&database.DayOffStore{DB: db},
	)
}
