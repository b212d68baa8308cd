package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/M-Sanjay12o52o/formulate/configs/configssession"
)

// SetupRoutes installs the global middleware and all route groups.
func SetupRoutes(app *fiber.App) {
	app.Use(recoverMiddleware.New()) // panics become 500s
	app.Use(logger.New())            // request logging

	sessionStore := configssession.SetupSession()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("session_store", sessionStore)
		return c.Next()
	})

	registerAPIRoutes(app)
	registerBuilderRoutes(app, sessionStore)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/builder", fiber.StatusTemporaryRedirect)
	})

	// Last: catches everything unmatched.
	app.Use(notFoundHandler)
}

func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("application/json", "text/html")
	switch accepts {
	case "application/json":
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not Found"})
	default:
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{"Title": "Page Not Found"}, "layouts/main")
	}
}
