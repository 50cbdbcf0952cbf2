package registrationValidator

import (
	"edusite/middleware"
	"edusite/models"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Helper to validate email format
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// RegisterRequest is the validated registration initiate body
type RegisterRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Mode         string `json:"mode"`
	Duration     string `json:"duration"`
	Participants *int   `json:"participants"`
	Branch       *uint  `json:"branch"`
}

// Register validator middleware for the registration initiate step
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.FirstName) == "" {
			errors["first_name"] = "First name is required!"
		}
		if strings.TrimSpace(reqData.LastName) == "" {
			errors["last_name"] = "Last name is required!"
		}
		if reqData.Email == "" || !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email!"
		}
		if strings.TrimSpace(reqData.Phone) == "" {
			errors["phone"] = "Phone is required!"
		}

		if reqData.Mode != models.ModeOnline && reqData.Mode != models.ModeOffline {
			errors["mode"] = "Mode must be online or offline!"
		}
		if reqData.Duration != models.Duration6Weeks && reqData.Duration != models.Duration12Weeks {
			errors["duration"] = "Duration must be 6weeks or 12weeks!"
		}

		// Participants defaults to one when omitted
		if reqData.Participants == nil {
			one := 1
			reqData.Participants = &one
		} else if *reqData.Participants < 1 {
			errors["participants"] = "Participants must be at least 1!"
		}

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		// Pass validated registration to the next middleware
		c.Locals("validatedRegistration", reqData)
		return c.Next()
	}
}
