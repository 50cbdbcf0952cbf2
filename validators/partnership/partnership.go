package partnershipValidator

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

// ApplicationRequest is the validated partnership form body
type ApplicationRequest struct {
	SchoolName    string `json:"school_name"`
	SchoolAddress string `json:"school_address"`
	SchoolPhone   string `json:"school_phone"`
	SchoolEmail   string `json:"school_email"`
	ClassType     string `json:"class_type"`
}

// Apply validator middleware
func Apply() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ApplicationRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.SchoolName) == "" {
			errors["school_name"] = "School name is required!"
		}
		if strings.TrimSpace(reqData.SchoolAddress) == "" {
			errors["school_address"] = "School address is required!"
		}
		if strings.TrimSpace(reqData.SchoolPhone) == "" {
			errors["school_phone"] = "School phone is required!"
		}
		if reqData.SchoolEmail == "" || !isValidEmail(reqData.SchoolEmail) {
			errors["school_email"] = "Invalid email!"
		}

		switch reqData.ClassType {
		case models.ClassTypePrimary, models.ClassTypeSecondary, models.ClassTypeBoth:
		default:
			errors["class_type"] = "Class type must be primary, secondary or both!"
		}

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		// Pass validated application to the next middleware
		c.Locals("validatedApplication", reqData)
		return c.Next()
	}
}
