package userRoutes

import (
	userController "vivah/controllers/userControllers"
	userValidator "vivah/validators/userValidator"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	uc := userController.NewUserController(db)

	api := app.Group("/api")

	api.Post("/register", userValidator.Register(), uc.Register)
	api.Get("/users", uc.ListUsers)
	api.Get("/user/:id", uc.GetUser)
	api.Put("/user/:id", uc.UpdateUser)
	api.Delete("/user/:id", uc.DeleteUser)
}
