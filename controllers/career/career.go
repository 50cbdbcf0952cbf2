package careerController

import (
	"edusite/database"
	"edusite/middleware"
	"edusite/models"
	"edusite/utils"
	careerValidator "edusite/validators/career"
	"log"

	"github.com/gofiber/fiber/v2"
)

// Apply persists a career application with its uploaded CV and passport.
func Apply(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedApplication").(*careerValidator.ApplicationRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	cvFile, err := c.FormFile("cv")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "CV file is required!", nil)
	}
	passportFile, err := c.FormFile("passport")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Passport photo is required!", nil)
	}

	cvPath, err := utils.SaveUploadedFile(cvFile, "careers/cv")
	if err != nil {
		log.Printf("Error saving CV upload: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store uploaded files!", nil)
	}
	passportPath, err := utils.SaveUploadedFile(passportFile, "careers/passport")
	if err != nil {
		log.Printf("Error saving passport upload: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store uploaded files!", nil)
	}

	application := models.CareerApplication{
		FullName:          reqData.FullName,
		Email:             reqData.Email,
		Phone:             reqData.Phone,
		Position:          reqData.Position,
		CV:                cvPath,
		Passport:          passportPath,
		ApplicationLetter: reqData.ApplicationLetter,
	}

	if err := database.Database.Db.Create(&application).Error; err != nil {
		log.Printf("Error saving career application: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit application!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Your application has been submitted successfully!", application)
}
