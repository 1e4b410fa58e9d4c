package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-differently/cs-25-2-team6-sub003/app/models"
)

func getStatus(t *testing.T, app *fiber.App, path string) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestRoleMiddleware(t *testing.T) {
	ok := func(c *fiber.Ctx) error { return c.SendString("ok") }

	app := fiber.New()
	withRoles := func(names ...string) fiber.Handler {
		return func(c *fiber.Ctx) error {
			roles := make([]*models.Role, len(names))
			for i, name := range names {
				roles[i] = &models.Role{Name: name}
			}
			c.Locals("user_roles", roles)
			return c.Next()
		}
	}
	app.Get("/admin", withRoles("admin"), RoleMiddleware("admin"), ok)
	app.Get("/wrong-role", withRoles("teacher"), RoleMiddleware("admin"), ok)
	// RoleMiddleware mounted without AuthMiddleware ahead of it: no user
	// context at all must deny, not panic.
	app.Get("/no-auth", RoleMiddleware("admin"), ok)

	assert.Equal(t, 200, getStatus(t, app, "/admin"))
	assert.Equal(t, 403, getStatus(t, app, "/wrong-role"))
	assert.Equal(t, 403, getStatus(t, app, "/no-auth"))
}
