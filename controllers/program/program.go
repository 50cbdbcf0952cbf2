package programController

import (
	"edusite/config"
	"edusite/database"
	"edusite/middleware"
	"edusite/models"
	"edusite/utils"
	registrationValidator "edusite/validators/registration"
	"log"
	"math"

	"github.com/gofiber/fiber/v2"
)

// ListPrograms returns the full catalog of active programs.
func ListPrograms(c *fiber.Ctx) error {
	var programs []models.Program
	if err := database.Database.Db.Where("is_active = ?", true).Order("created_at desc").Find(&programs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch programs!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Programs fetched successfully!", programs)
}

// RegistrationForm returns the data needed to render the registration
// form for one program: the program, the active branches and the public
// key the payment widget is initialised with.
func RegistrationForm(c *fiber.Ctx) error {
	programID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid program id!", nil)
	}

	db := database.Database.Db

	var program models.Program
	if err := db.Where("id = ? AND is_active = ?", programID, true).First(&program).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Program not found!", nil)
	}

	var branches []models.Branch
	if err := db.Where("is_active = ?", true).Order("name asc").Find(&branches).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch branches!", nil)
	}

	data := fiber.Map{
		"program":             program,
		"branches":            branches,
		"paystack_public_key": config.AppConfig.PaystackPublicKey,
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registration form fetched successfully!", data)
}

// Register is the initiate step of the two-phase registration flow. It
// prices the request, persists a pending registration, remembers its id
// in the session and answers with what the payment widget needs. The
// amount is in minor currency units (price x 100).
func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegistration").(*registrationValidator.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	programID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid program id!", nil)
	}

	db := database.Database.Db

	var program models.Program
	if err := db.Where("id = ? AND is_active = ?", programID, true).First(&program).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Program not found!", nil)
	}

	// The branch only applies to offline registrations and is optional
	// even then; an online registration never keeps one.
	var branchID *uint
	if reqData.Mode == models.ModeOffline && reqData.Branch != nil {
		var branch models.Branch
		if err := db.Where("id = ? AND is_active = ?", *reqData.Branch, true).First(&branch).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Branch not found!", nil)
		}
		branchID = &branch.ID
	}

	unitPrice := program.UnitPrice(reqData.Mode, reqData.Duration)
	totalPrice := unitPrice * float64(*reqData.Participants)

	registration := models.ProgramRegistration{
		ProgramID:     program.ID,
		BranchID:      branchID,
		FirstName:     reqData.FirstName,
		LastName:      reqData.LastName,
		Email:         reqData.Email,
		Phone:         reqData.Phone,
		Mode:          reqData.Mode,
		Duration:      reqData.Duration,
		Participants:  uint(*reqData.Participants),
		TotalPrice:    totalPrice,
		PaymentStatus: models.PaymentStatusPending,
	}

	tx := db.Begin()
	if err := tx.Create(&registration).Error; err != nil {
		tx.Rollback()
		log.Printf("Error saving registration: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register!", nil)
	}
	tx.Commit()

	// Remember the registration for the payment verification step
	sess, err := middleware.SessionStore.Get(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start session!", nil)
	}
	sess.Set("registration_id", registration.ID)
	if err := sess.Save(); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save session!", nil)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"registration_id": registration.ID,
		"email":           registration.Email,
		// Rounded, not truncated: 1.13 x 100 is 112.99999... as a float
		"amount":          int64(math.Round(totalPrice * 100)),
	})
}

// VerifyPayment confirms a payment reference against the gateway. Only
// the confirmed-success gateway shape writes anything: the registration
// remembered in the session moves pending->success and stores the
// reference. Every other outcome leaves stored state untouched so a
// legitimately pending registration is never erased by a bad response.
func VerifyPayment(c *fiber.Ctx) error {
	reqData := new(struct {
		Reference string `json:"reference"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.Reference == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid request",
		})
	}

	failed := func() error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "failed",
			"message": "Payment verification failed",
		})
	}

	result, err := utils.VerifyPaystackTransaction(reqData.Reference)
	if err != nil {
		log.Printf("Error verifying payment %s: %v", reqData.Reference, err)
		return failed()
	}
	if !result.IsSuccessful() {
		return failed()
	}

	sess, err := middleware.SessionStore.Get(c)
	if err != nil {
		return failed()
	}
	registrationID, ok := sess.Get("registration_id").(uint)
	if !ok {
		return failed()
	}

	var registration models.ProgramRegistration
	if err := database.Database.Db.First(&registration, registrationID).Error; err != nil {
		return failed()
	}

	registration.PaymentReference = &reqData.Reference
	registration.PaymentStatus = models.PaymentStatusSuccess
	if err := database.Database.Db.Save(&registration).Error; err != nil {
		log.Printf("Error updating registration %d: %v", registrationID, err)
		return failed()
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "Payment verified successfully!",
	})
}
