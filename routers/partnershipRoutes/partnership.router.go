package partnershipRoutes

import (
	partnershipController "edusite/controllers/partnership"
	partnershipValidator "edusite/validators/partnership"

	"github.com/gofiber/fiber/v2"
)

func SetupPartnershipRoutes(app *fiber.App) {
	app.Get("/partnership", partnershipController.Form)
	app.Post("/partnership", partnershipValidator.Apply(), partnershipController.Apply)
}
