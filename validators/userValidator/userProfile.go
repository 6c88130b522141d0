package userValidator

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Register validates the registration form before the controller runs.
// Email, password and mobile number are the only hard-required fields.
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := strings.TrimSpace(c.FormValue("email"))
		password := c.FormValue("password")
		mobileNumber := strings.TrimSpace(c.FormValue("mobileNumber"))

		if email == "" || password == "" || mobileNumber == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Email, password, and mobile number are required",
			})
		}

		if err := validate.Var(email, "email"); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid email address",
			})
		}

		return c.Next()
	}
}
