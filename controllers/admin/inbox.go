package adminController

import (
	"edusite/database"
	"edusite/middleware"
	"edusite/models"

	"github.com/gofiber/fiber/v2"
)

// Read-only listings of what the public forms submitted. These records
// are immutable after creation, so the admin API only exposes reads.

func ListPartnershipApplications(c *fiber.Ctx) error {
	var applications []models.PartnershipApplication
	if err := database.Database.Db.Order("created_at desc").Find(&applications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch applications!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Applications fetched successfully!", applications)
}

func ListContactMessages(c *fiber.Ctx) error {
	var messages []models.ContactMessage
	if err := database.Database.Db.Order("created_at desc").Find(&messages).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch messages!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Messages fetched successfully!", messages)
}

func ListCareerApplications(c *fiber.Ctx) error {
	var applications []models.CareerApplication
	if err := database.Database.Db.Order("created_at desc").Find(&applications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch applications!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Applications fetched successfully!", applications)
}

func ListRegistrations(c *fiber.Ctx) error {
	var registrations []models.ProgramRegistration
	if err := database.Database.Db.Preload("Program").Preload("Branch").Order("created_at desc").Find(&registrations).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch registrations!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registrations fetched successfully!", registrations)
}
