package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/code-differently/cs-25-2-team6-sub003/app/models"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/login", LoginAPI)
	authGroup.Post("/logout", LogoutAPI)

	authGroup.Use(AuthMiddleware)
	authGroup.Post("/change-password", ChangePasswordAPI)
}

// AuthMiddleware validates the JWT from the cookie or Authorization header
// and sets the user context.
func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := c.Cookies("jwt_token")

	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"error": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
	}

	user := &models.User{
		ID:        claims.UserID,
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		IsActive:  true,
	}

	roles := make([]*models.Role, len(claims.Roles))
	for i, roleName := range claims.Roles {
		roles[i] = &models.Role{Name: roleName}
	}
	user.Roles = roles

	c.Locals("user_id", user.ID)
	c.Locals("user_email", user.Email)
	c.Locals("user_roles", roles)
	c.Locals("user", user)

	return c.Next()
}

// RoleMiddleware checks if the user has one of the required roles.
func RoleMiddleware(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userRoles, ok := c.Locals("user_roles").([]*models.Role)
		if !ok {
			return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
		}

		for _, userRole := range userRoles {
			for _, allowedRole := range allowedRoles {
				if userRole.Name == allowedRole {
					return c.Next()
				}
			}
		}

		return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
	}
}
