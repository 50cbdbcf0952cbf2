package careerValidator

import (
	"edusite/middleware"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Helper to validate email format
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// ApplicationRequest holds the validated text fields of the multipart
// career form. The CV and passport files stay on the request and are
// read again by the controller.
type ApplicationRequest struct {
	FullName          string
	Email             string
	Phone             string
	Position          string
	ApplicationLetter string
}

// Apply validator middleware for the multipart career form
func Apply() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := &ApplicationRequest{
			FullName:          c.FormValue("full_name"),
			Email:             c.FormValue("email"),
			Phone:             c.FormValue("phone"),
			Position:          c.FormValue("position"),
			ApplicationLetter: c.FormValue("application_letter"),
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.FullName) == "" {
			errors["full_name"] = "Full name is required!"
		}
		if reqData.Email == "" || !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email!"
		}
		if strings.TrimSpace(reqData.Phone) == "" {
			errors["phone"] = "Phone is required!"
		}
		if strings.TrimSpace(reqData.Position) == "" {
			errors["position"] = "Position is required!"
		}

		if _, err := c.FormFile("cv"); err != nil {
			errors["cv"] = "CV file is required!"
		}
		if _, err := c.FormFile("passport"); err != nil {
			errors["passport"] = "Passport photo is required!"
		}

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedApplication", reqData)
		return c.Next()
	}
}
