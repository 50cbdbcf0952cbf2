package contactRoutes

import (
	contactController "edusite/controllers/contact"
	contactValidator "edusite/validators/contact"

	"github.com/gofiber/fiber/v2"
)

func SetupContactRoutes(app *fiber.App) {
	app.Get("/contact", contactController.Form)
	app.Post("/contact", contactValidator.Submit(), contactController.Submit)
}
