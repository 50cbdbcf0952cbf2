package programRoutes

import (
	programController "edusite/controllers/program"
	registrationValidator "edusite/validators/registration"

	"github.com/gofiber/fiber/v2"
)

func SetupProgramRoutes(app *fiber.App) {
	app.Get("/programs", programController.ListPrograms)
	app.Get("/programs/:id/register", programController.RegistrationForm)
	app.Post("/programs/:id/register", registrationValidator.Register(), programController.Register)
	app.Post("/verify-payment", programController.VerifyPayment)
}
