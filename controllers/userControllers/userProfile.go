package userController

import (
	"errors"
	"log"

	"vivah/config"
	"vivah/models"
	"vivah/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserController serves the profile CRUD endpoints against a store handle
// acquired once at startup.
type UserController struct {
	Db *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{Db: db}
}

// Register creates a profile from a multipart form, saving the optional
// image upload and hashing the password before the row is written.
func (uc *UserController) Register(c *fiber.Ctx) error {
	user := new(models.User)
	if err := c.BodyParser(user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	// Check if user already exists
	if err := uc.Db.Where("email = ?", user.Email).First(&models.User{}).Error; err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "User already exists"})
	}

	// Save the uploaded image, if any, before touching the store
	if file, err := c.FormFile("image"); err == nil && file != nil {
		filename, err := utils.SaveProfileImage("image", file, config.AppConfig.UploadDir)
		if err != nil {
			if errors.Is(err, utils.ErrInvalidFileType) || errors.Is(err, utils.ErrFileTooLarge) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
			}
			log.Printf("Error saving uploaded image: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
		}
		user.Image = filename
	}

	// Hash the password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	user.Password = string(hashedPassword)

	if err := uc.Db.Create(user).Error; err != nil {
		return storeErrorResponse(c, err)
	}

	// Return only the new profile's identity
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"userId":  user.ID,
	})
}

// ListUsers returns every profile, optionally filtered by exact gender match.
func (uc *UserController) ListUsers(c *fiber.Ctx) error {
	query := uc.Db
	if gender := c.Query("gender"); gender != "" {
		query = query.Where("gender = ?", gender)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		log.Printf("Error listing users: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}

	return c.Status(fiber.StatusOK).JSON(users)
}

// GetUser returns the full profile for an id.
func (uc *UserController) GetUser(c *fiber.Ctx) error {
	var user models.User
	if err := uc.Db.First(&user, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
		}
		log.Printf("Error fetching user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

// UpdateUser merges the supplied fields into the stored profile. Text fields
// overwrite only when non-empty; numeric fields overwrite whenever present,
// zero included. Invariants are re-checked after the merge.
func (uc *UserController) UpdateUser(c *fiber.Ctx) error {
	var user models.User
	if err := uc.Db.First(&user, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
		}
		log.Printf("Error fetching user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}

	reqData := new(updateUserRequest)
	if err := c.BodyParser(reqData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	reqData.applyTo(&user)

	if err := uc.Db.Save(&user).Error; err != nil {
		return storeErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "User updated successfully",
		"user":    user,
	})
}

// DeleteUser removes a profile permanently.
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	var user models.User
	if err := uc.Db.First(&user, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
		}
		log.Printf("Error fetching user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}

	if err := uc.Db.Delete(&user).Error; err != nil {
		log.Printf("Error deleting user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "User deleted successfully"})
}

// storeErrorResponse maps store write failures onto API responses.
func storeErrorResponse(c *fiber.Ctx, err error) error {
	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": vErr.Error()})
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "User already exists"})
	default:
		log.Printf("Error saving user to database: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
}
