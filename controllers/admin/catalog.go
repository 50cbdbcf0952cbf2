package adminController

import (
	"edusite/database"
	"edusite/middleware"
	"edusite/models"
	"edusite/utils"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Catalog management for the entities the public site lists. Deletes are
// hard deletes so the database constraints apply: removing a program
// takes its registrations with it, removing a branch nulls the branch
// reference on registrations that pointed to it.

func findByID[T any](c *fiber.Ctx, record *T) (bool, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return false, middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}
	if err := database.Database.Db.First(record, id).Error; err != nil {
		return false, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Record not found!", nil)
	}
	return true, nil
}

// parseActiveField reads an is_active form value, keeping the current
// value when the field is absent.
func parseActiveField(c *fiber.Ctx, current bool) bool {
	value := c.FormValue("is_active")
	if value == "" {
		return current
	}
	active, err := strconv.ParseBool(value)
	if err != nil {
		return current
	}
	return active
}

// saveOptionalUpload stores a form file when one was sent and returns
// its stored path, or the empty string when the field is absent.
func saveOptionalUpload(c *fiber.Ctx, field, subDir string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}
	return utils.SaveUploadedFile(file, subDir)
}

// --- Partners ---

func CreatePartner(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		return middleware.ValidationErrorResponse(c, map[string]string{"name": "Name is required!"})
	}

	logoPath, err := saveOptionalUpload(c, "logo", "partners")
	if err != nil {
		log.Printf("Error saving partner logo: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store logo!", nil)
	}

	partner := models.Partner{
		Name:       name,
		Logo:       logoPath,
		WebsiteURL: c.FormValue("website_url"),
		IsActive:   parseActiveField(c, true),
	}

	if err := database.Database.Db.Create(&partner).Error; err != nil {
		log.Printf("Error saving partner: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create partner!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Partner created successfully!", partner)
}

func UpdatePartner(c *fiber.Ctx) error {
	var partner models.Partner
	if ok, resp := findByID(c, &partner); !ok {
		return resp
	}

	if name := strings.TrimSpace(c.FormValue("name")); name != "" {
		partner.Name = name
	}
	if url := c.FormValue("website_url"); url != "" {
		partner.WebsiteURL = url
	}
	partner.IsActive = parseActiveField(c, partner.IsActive)

	logoPath, err := saveOptionalUpload(c, "logo", "partners")
	if err != nil {
		log.Printf("Error saving partner logo: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store logo!", nil)
	}
	if logoPath != "" {
		partner.Logo = logoPath
	}

	if err := database.Database.Db.Save(&partner).Error; err != nil {
		log.Printf("Error updating partner: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update partner!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Partner updated successfully!", partner)
}

func DeletePartner(c *fiber.Ctx) error {
	var partner models.Partner
	if ok, resp := findByID(c, &partner); !ok {
		return resp
	}

	if err := database.Database.Db.Unscoped().Delete(&partner).Error; err != nil {
		log.Printf("Error deleting partner: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete partner!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Partner deleted successfully!", nil)
}

// --- Testimonials ---

func CreateTestimonial(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		return middleware.ValidationErrorResponse(c, map[string]string{"name": "Name is required!"})
	}

	imagePath, err := saveOptionalUpload(c, "image", "testimonials")
	if err != nil {
		log.Printf("Error saving testimonial image: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store image!", nil)
	}

	testimonial := models.Testimonial{
		Name:     name,
		Role:     c.FormValue("role"),
		Message:  c.FormValue("message"),
		IsActive: parseActiveField(c, true),
	}
	if imagePath != "" {
		testimonial.Image = &imagePath
	}

	if err := database.Database.Db.Create(&testimonial).Error; err != nil {
		log.Printf("Error saving testimonial: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create testimonial!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Testimonial created successfully!", testimonial)
}

func UpdateTestimonial(c *fiber.Ctx) error {
	var testimonial models.Testimonial
	if ok, resp := findByID(c, &testimonial); !ok {
		return resp
	}

	if name := strings.TrimSpace(c.FormValue("name")); name != "" {
		testimonial.Name = name
	}
	if role := c.FormValue("role"); role != "" {
		testimonial.Role = role
	}
	if message := c.FormValue("message"); message != "" {
		testimonial.Message = message
	}
	testimonial.IsActive = parseActiveField(c, testimonial.IsActive)

	imagePath, err := saveOptionalUpload(c, "image", "testimonials")
	if err != nil {
		log.Printf("Error saving testimonial image: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store image!", nil)
	}
	if imagePath != "" {
		testimonial.Image = &imagePath
	}

	if err := database.Database.Db.Save(&testimonial).Error; err != nil {
		log.Printf("Error updating testimonial: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update testimonial!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Testimonial updated successfully!", testimonial)
}

func DeleteTestimonial(c *fiber.Ctx) error {
	var testimonial models.Testimonial
	if ok, resp := findByID(c, &testimonial); !ok {
		return resp
	}

	if err := database.Database.Db.Unscoped().Delete(&testimonial).Error; err != nil {
		log.Printf("Error deleting testimonial: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete testimonial!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Testimonial deleted successfully!", nil)
}

// --- Branches ---

func CreateBranch(c *fiber.Ctx) error {
	reqData := new(struct {
		Name     string `json:"name"`
		Address  string `json:"address"`
		IsActive *bool  `json:"is_active"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if strings.TrimSpace(reqData.Name) == "" {
		return middleware.ValidationErrorResponse(c, map[string]string{"name": "Name is required!"})
	}

	branch := models.Branch{
		Name:     reqData.Name,
		Address:  reqData.Address,
		IsActive: true,
	}
	if reqData.IsActive != nil {
		branch.IsActive = *reqData.IsActive
	}

	if err := database.Database.Db.Create(&branch).Error; err != nil {
		log.Printf("Error saving branch: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create branch!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Branch created successfully!", branch)
}

func UpdateBranch(c *fiber.Ctx) error {
	var branch models.Branch
	if ok, resp := findByID(c, &branch); !ok {
		return resp
	}

	reqData := new(struct {
		Name     string `json:"name"`
		Address  string `json:"address"`
		IsActive *bool  `json:"is_active"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if strings.TrimSpace(reqData.Name) != "" {
		branch.Name = reqData.Name
	}
	if reqData.Address != "" {
		branch.Address = reqData.Address
	}
	if reqData.IsActive != nil {
		branch.IsActive = *reqData.IsActive
	}

	if err := database.Database.Db.Save(&branch).Error; err != nil {
		log.Printf("Error updating branch: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update branch!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Branch updated successfully!", branch)
}

func DeleteBranch(c *fiber.Ctx) error {
	var branch models.Branch
	if ok, resp := findByID(c, &branch); !ok {
		return resp
	}

	if err := database.Database.Db.Unscoped().Delete(&branch).Error; err != nil {
		log.Printf("Error deleting branch: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete branch!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Branch deleted successfully!", nil)
}

// --- Programs ---

// parsePriceFields reads the four price form values, collecting a field
// error for anything missing, unparsable or negative.
func parsePriceFields(c *fiber.Ctx, errors map[string]string) map[string]float64 {
	prices := make(map[string]float64)
	for _, field := range []string{
		"price_online_6weeks",
		"price_online_12weeks",
		"price_offline_6weeks",
		"price_offline_12weeks",
	} {
		value, err := strconv.ParseFloat(c.FormValue(field), 64)
		if err != nil {
			errors[field] = "A valid price is required!"
			continue
		}
		if value < 0 {
			errors[field] = "Price must not be negative!"
			continue
		}
		prices[field] = value
	}
	return prices
}

func CreateProgram(c *fiber.Ctx) error {
	errors := make(map[string]string)

	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		errors["title"] = "Title is required!"
	}
	prices := parsePriceFields(c, errors)

	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	imagePath, err := saveOptionalUpload(c, "image", "programs")
	if err != nil {
		log.Printf("Error saving program image: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store image!", nil)
	}
	syllabusPath, err := saveOptionalUpload(c, "syllabus", "syllabi")
	if err != nil {
		log.Printf("Error saving program syllabus: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store syllabus!", nil)
	}

	program := models.Program{
		Title:               title,
		Description:         c.FormValue("description"),
		Image:               imagePath,
		PriceOnline6Weeks:   prices["price_online_6weeks"],
		PriceOnline12Weeks:  prices["price_online_12weeks"],
		PriceOffline6Weeks:  prices["price_offline_6weeks"],
		PriceOffline12Weeks: prices["price_offline_12weeks"],
		IsActive:            parseActiveField(c, true),
	}
	if syllabusPath != "" {
		program.Syllabus = &syllabusPath
	}

	if err := database.Database.Db.Create(&program).Error; err != nil {
		log.Printf("Error saving program: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create program!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Program created successfully!", program)
}

func UpdateProgram(c *fiber.Ctx) error {
	var program models.Program
	if ok, resp := findByID(c, &program); !ok {
		return resp
	}

	if title := strings.TrimSpace(c.FormValue("title")); title != "" {
		program.Title = title
	}
	if description := c.FormValue("description"); description != "" {
		program.Description = description
	}
	program.IsActive = parseActiveField(c, program.IsActive)

	// Only the price fields that were sent change
	errors := make(map[string]string)
	for field, target := range map[string]*float64{
		"price_online_6weeks":   &program.PriceOnline6Weeks,
		"price_online_12weeks":  &program.PriceOnline12Weeks,
		"price_offline_6weeks":  &program.PriceOffline6Weeks,
		"price_offline_12weeks": &program.PriceOffline12Weeks,
	} {
		raw := c.FormValue(field)
		if raw == "" {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || value < 0 {
			errors[field] = "A valid price is required!"
			continue
		}
		*target = value
	}
	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	imagePath, err := saveOptionalUpload(c, "image", "programs")
	if err != nil {
		log.Printf("Error saving program image: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store image!", nil)
	}
	if imagePath != "" {
		program.Image = imagePath
	}
	syllabusPath, err := saveOptionalUpload(c, "syllabus", "syllabi")
	if err != nil {
		log.Printf("Error saving program syllabus: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store syllabus!", nil)
	}
	if syllabusPath != "" {
		program.Syllabus = &syllabusPath
	}

	if err := database.Database.Db.Save(&program).Error; err != nil {
		log.Printf("Error updating program: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update program!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Program updated successfully!", program)
}

func DeleteProgram(c *fiber.Ctx) error {
	var program models.Program
	if ok, resp := findByID(c, &program); !ok {
		return resp
	}

	if err := database.Database.Db.Unscoped().Delete(&program).Error; err != nil {
		log.Printf("Error deleting program: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete program!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Program deleted successfully!", nil)
}
