package adminRoutes

import (
	adminController "edusite/controllers/admin"
	"edusite/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin")

	adminGroup.Post("/login", adminController.Login)

	adminGroup.Post("/partners", middleware.JWTMiddleware, adminController.CreatePartner)
	adminGroup.Put("/partners/:id", middleware.JWTMiddleware, adminController.UpdatePartner)
	adminGroup.Delete("/partners/:id", middleware.JWTMiddleware, adminController.DeletePartner)

	adminGroup.Post("/testimonials", middleware.JWTMiddleware, adminController.CreateTestimonial)
	adminGroup.Put("/testimonials/:id", middleware.JWTMiddleware, adminController.UpdateTestimonial)
	adminGroup.Delete("/testimonials/:id", middleware.JWTMiddleware, adminController.DeleteTestimonial)

	adminGroup.Post("/branches", middleware.JWTMiddleware, adminController.CreateBranch)
	adminGroup.Put("/branches/:id", middleware.JWTMiddleware, adminController.UpdateBranch)
	adminGroup.Delete("/branches/:id", middleware.JWTMiddleware, adminController.DeleteBranch)

	adminGroup.Post("/programs", middleware.JWTMiddleware, adminController.CreateProgram)
	adminGroup.Put("/programs/:id", middleware.JWTMiddleware, adminController.UpdateProgram)
	adminGroup.Delete("/programs/:id", middleware.JWTMiddleware, adminController.DeleteProgram)

	adminGroup.Get("/partnership-applications", middleware.JWTMiddleware, adminController.ListPartnershipApplications)
	adminGroup.Get("/contact-messages", middleware.JWTMiddleware, adminController.ListContactMessages)
	adminGroup.Get("/career-applications", middleware.JWTMiddleware, adminController.ListCareerApplications)
	adminGroup.Get("/registrations", middleware.JWTMiddleware, adminController.ListRegistrations)
}
