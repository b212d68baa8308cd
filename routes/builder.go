package routes

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/M-Sanjay12o52o/formulate/clients/formapi"
	builder_handlers "github.com/M-Sanjay12o52o/formulate/handlers/builder"
	"github.com/M-Sanjay12o52o/formulate/pkg/builder"
	"github.com/M-Sanjay12o52o/formulate/services"
)

// registerBuilderRoutes mounts the form-builder pages under /builder.
func registerBuilderRoutes(app *fiber.App, store *session.Store) {
	builderHandler := builder_handlers.NewBuilderHandler(store, formCreator())

	group := app.Group("/builder")
	group.Get("/", builderHandler.ShowBuilder)                   // GET  /builder
	group.Post("/details", builderHandler.UpdateDetails)         // POST /builder/details
	group.Post("/fields", builderHandler.AddField)               // POST /builder/fields
	group.Post("/fields/update/:id", builderHandler.UpdateField) // POST /builder/fields/update/{id}
	group.Post("/fields/delete/:id", builderHandler.RemoveField) // POST /builder/fields/delete/{id}
	group.Post("/submit", builderHandler.SubmitForm)             // POST /builder/submit
}

// formCreator picks the builder's outbound edge. With API_BASE_URL set
// the builder goes over the wire like any external client; otherwise it
// calls the service in-process.
func formCreator() builder.FormCreator {
	if apiURL := os.Getenv("API_BASE_URL"); apiURL != "" {
		return formapi.NewClient(apiURL)
	}
	return services.NewFormService()
}
