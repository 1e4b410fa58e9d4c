package attendance

import (
	"github.com/gofiber/fiber/v2"

	"github.com/code-differently/cs-25-2-team6-sub003/app/config"
	"github.com/code-differently/cs-25-2-team6-sub003/app/database"
	"github.com/code-differently/cs-25-2-team6-sub003/app/routes/auth"
	"github.com/code-differently/cs-25-2-team6-sub003/app/services"
)

func SetupAttendanceRoutes(app *fiber.App) {
	grp := app.Group("/api/attendance", auth.AuthMiddleware)

	grp.Post("/", MarkAttendanceAPI)
	grp.Get("/:studentId", GetStudentAttendanceAPI)
	grp.Get("/:studentId/:date", GetAttendanceByDateAPI)
}

func excusalService() *services.ExcusalService {
	db := config.GetDB()
	return services.NewExcusalService(
		&database.AttendanceStore{DB: db},
		&database.DayOffStore{DB: db},
		&database.StudentStore{DB: db},
	)
}
