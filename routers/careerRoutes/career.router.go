package careerRoutes

import (
	careerController "edusite/controllers/career"
	careerValidator "edusite/validators/career"

	"github.com/gofiber/fiber/v2"
)

func SetupCareerRoutes(app *fiber.App) {
	app.Post("/careers", careerValidator.Apply(), careerController.Apply)
}
