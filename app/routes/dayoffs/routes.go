package dayoffs

import (
	"github.com/gofiber/fiber/v2"

	"github.com/code-differently/cs-25-2-team6-sub003/app/config"
	"github.com/code-differently/cs-25-2-team6-sub003/app/database"
	"github.com/code-differently/cs-25-2-team6-sub003/app/routes/auth"
	"github.com/code-differently/cs-25-2-team6-sub003/app/services"
)

func SetupDayOffRoutes(app *fiber.App) {
	grp := app.Group("/api/dayoffs", auth.AuthMiddleware)

	grp.Get("/", ListDayOffsAPI)
	grp.Post("/", auth.RoleMiddleware("admin"), PlanDayOffAPI)
	grp.Post("/:id/apply", auth.RoleMiddleware("admin"), ApplyDayOffAPI)
}

func excusalService() *services.ExcusalService {
	db := config.GetDB()
	return services.NewExcusalService(
		&database.AttendanceStore{DB: db},
		&database.DayOffStore{DB: db},
		&database.StudentStore{DB: db},
	)
}
