package contactController

import (
	"edusite/database"
	"edusite/middleware"
	"edusite/models"
	"edusite/utils"
	contactValidator "edusite/validators/contact"
	"log"

	"github.com/gofiber/fiber/v2"
)

// Form returns the data needed to render the contact form. The admin
// notification address stays internal; it is never part of the page.
func Form(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Contact form fetched successfully!", fiber.Map{
		"page": "contact",
	})
}

// Submit persists a contact message and notifies the admin.
func Submit(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedMessage").(*contactValidator.MessageRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	message := models.ContactMessage{
		Name:    reqData.Name,
		Email:   reqData.Email,
		Phone:   reqData.Phone,
		Subject: reqData.Subject,
		Message: reqData.Message,
	}

	if err := database.Database.Db.Create(&message).Error; err != nil {
		log.Printf("Error saving contact message: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit message!", nil)
	}

	// Best-effort notification, never fails the request
	utils.NotifyContactMessage(&message)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Thank you for contacting us! We will get back to you soon.", message)
}
