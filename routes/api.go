package routes

import (
	"github.com/gofiber/fiber/v2"

	api_handlers "github.com/M-Sanjay12o52o/formulate/handlers/api"
)

// registerAPIRoutes mounts the public JSON API under /api.
func registerAPIRoutes(app *fiber.App) {
	formHandler := api_handlers.NewFormHandler()
	helloHandler := api_handlers.NewHelloHandler()

	api := app.Group("/api")
	api.Get("/hello", helloHandler.Hello)            // GET  /api/hello
	api.Post("/forms", formHandler.CreateForm)       // POST /api/forms
	api.Get("/forms/:formId", formHandler.GetForm)   // GET  /api/forms/{formId}
}
