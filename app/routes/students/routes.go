package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/code-differently/cs-25-2-team6-sub003/app/routes/auth"
)

func SetupStudentRoutes(app *fiber.App) {
	grp := app.Group("/api/students", auth.AuthMiddleware)

	grp.Get("/", GetStudentsAPI)
	grp.Post("/", auth.RoleMiddleware("admin"), CreateStudentAPI)
	grp.Get("/:id", GetStudentAPI)
}
