package pageRoutes

import (
	pagesController "edusite/controllers/pages"

	"github.com/gofiber/fiber/v2"
)

func SetupPageRoutes(app *fiber.App) {
	app.Get("/", pagesController.Home)
	app.Get("/about", pagesController.About)
}
