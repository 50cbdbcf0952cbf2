package pagesController

import (
	"edusite/database"
	"edusite/middleware"
	"edusite/models"

	"github.com/gofiber/fiber/v2"
)

// Home returns the landing page data: active partners, active
// testimonials and the three most recent active programs.
func Home(c *fiber.Ctx) error {
	db := database.Database.Db

	var partners []models.Partner
	if err := db.Where("is_active = ?", true).Order("name asc").Find(&partners).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch partners!", nil)
	}

	var testimonials []models.Testimonial
	if err := db.Where("is_active = ?", true).Order("created_at desc").Find(&testimonials).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch testimonials!", nil)
	}

	var programs []models.Program
	if err := db.Where("is_active = ?", true).Order("created_at desc").Limit(3).Find(&programs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch programs!", nil)
	}

	data := fiber.Map{
		"partners":     partners,
		"testimonials": testimonials,
		"programs":     programs,
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Home fetched successfully!", data)
}

// About returns the static about-us content.
func About(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "About fetched successfully!", fiber.Map{
		"page": "about",
	})
}
