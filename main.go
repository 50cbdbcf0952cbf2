package main

import (
	"edusite/config"
	"edusite/database"
	"edusite/middleware"
	adminRoutes "edusite/routers/adminRoutes"
	careerRoutes "edusite/routers/careerRoutes"
	contactRoutes "edusite/routers/contactRoutes"
	pageRoutes "edusite/routers/pageRoutes"
	partnershipRoutes "edusite/routers/partnershipRoutes"
	programRoutes "edusite/routers/programRoutes"

	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			log.Printf("Unhandled error on %s: %v", c.Path(), err)
			return middleware.JsonResponse(c, code, false, "Internal server error!", nil)
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded media (logos, program images, syllabi, CVs)
	app.Static("/uploads", config.AppConfig.UploadDir)

	pageRoutes.SetupPageRoutes(app)
	partnershipRoutes.SetupPartnershipRoutes(app)
	programRoutes.SetupProgramRoutes(app)
	contactRoutes.SetupContactRoutes(app)
	careerRoutes.SetupCareerRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	// Generic not-found fallback
	app.Use(func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Not found!", nil)
	})

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
