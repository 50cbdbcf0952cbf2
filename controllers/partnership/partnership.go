package partnershipController

import (
	"edusite/database"
	"edusite/middleware"
	"edusite/models"
	"edusite/utils"
	partnershipValidator "edusite/validators/partnership"
	"log"

	"github.com/gofiber/fiber/v2"
)

// Form returns the data needed to render the partnership form.
func Form(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Partnership form fetched successfully!", fiber.Map{
		"class_types": []string{models.ClassTypePrimary, models.ClassTypeSecondary, models.ClassTypeBoth},
	})
}

// Apply persists a partnership application and notifies the admin.
func Apply(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedApplication").(*partnershipValidator.ApplicationRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	application := models.PartnershipApplication{
		SchoolName:    reqData.SchoolName,
		SchoolAddress: reqData.SchoolAddress,
		SchoolPhone:   reqData.SchoolPhone,
		SchoolEmail:   reqData.SchoolEmail,
		ClassType:     reqData.ClassType,
	}

	if err := database.Database.Db.Create(&application).Error; err != nil {
		log.Printf("Error saving partnership application: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit application!", nil)
	}

	// Best-effort notification, never fails the request
	utils.NotifyPartnershipApplication(&application)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Thank you for your partnership request! We will contact you soon.", application)
}
