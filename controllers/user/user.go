package user

import (
	"errors"
	"fmt"

	"joyful-cargo/logger"
	expenseModel "joyful-cargo/models/expense"
	userModel "joyful-cargo/models/user"
	"joyful-cargo/types"
	userTypes "joyful-cargo/types/user"
	"joyful-cargo/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserController handles user management HTTP requests
type UserController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

// NewUserController creates a new user controller
func NewUserController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *UserController {
	return &UserController{
		DB:     db,
		Logger: asyncLogger,
	}
}

// Index lists all users.
func (uc *UserController) Index(c *fiber.Ctx) error {
	var users []userModel.User
	if err := uc.DB.Find(&users).Error; err != nil {
		return utils.RespondError(c, err)
	}
	return utils.RespondOK(c, "", users)
}

// Show returns one user.
func (uc *UserController) Show(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.RespondBadRequest(c, "Invalid user id")
	}

	var user userModel.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.RespondNotFound(c, "User not found")
		}
		return utils.RespondError(c, err)
	}
	return utils.RespondOK(c, "", user)
}

// Store creates a user. Admin only.
func (uc *UserController) Store(c *fiber.Ctx) error {
	var req userTypes.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return utils.RespondBadRequest(c, "Invalid request body")
	}

	if !utils.ValidateEmail(req.Email) {
		return utils.RespondBadRequest(c, "Invalid email")
	}

	var existing userModel.User
	err := uc.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
			Status:  fiber.StatusConflict,
			Message: "Email already exists",
		})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.RespondError(c, err)
	}

	role := req.Role
	if role == "" {
		role = userModel.RoleUser
	}

	newUser := userModel.User{
		Uuid:  uuid.NewString(),
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Role:  role,
	}
	if err := newUser.SetPassword(req.Password); err != nil {
		return utils.RespondError(c, err)
	}

	if err := uc.DB.Create(&newUser).Error; err != nil {
		return utils.RespondError(c, err)
	}

	logger.Success(fmt.Sprintf("User created: %s", newUser.Email))
	return utils.RespondCreated(c, "User created", newUser)
}

// Update patches profile fields on a user.
func (uc *UserController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.RespondBadRequest(c, "Invalid user id")
	}

	var req userTypes.UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return utils.RespondBadRequest(c, "Invalid request body")
	}

	var user userModel.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.RespondNotFound(c, "User not found")
		}
		return utils.RespondError(c, err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Password != nil && *req.Password != "" {
		if err := user.SetPassword(*req.Password); err != nil {
			return utils.RespondError(c, err)
		}
	}

	if err := uc.DB.Save(&user).Error; err != nil {
		return utils.RespondError(c, err)
	}
	return utils.RespondOK(c, "User updated", user)
}

// UpdateRole changes a user's role. Admin only.
func (uc *UserController) UpdateRole(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.RespondBadRequest(c, "Invalid user id")
	}

	var req userTypes.RoleRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return utils.RespondBadRequest(c, "Invalid request body")
	}

	var user userModel.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.RespondNotFound(c, "User not found")
		}
		return utils.RespondError(c, err)
	}

	if req.Role != "" {
		user.Role = req.Role
	}
	if err := uc.DB.Save(&user).Error; err != nil {
		return utils.RespondError(c, err)
	}
	return utils.RespondOK(c, "Role updated", user)
}

// Destroy deletes a user unless expenses still reference them. Admin only.
func (uc *UserController) Destroy(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.RespondBadRequest(c, "Invalid user id")
	}

	var user userModel.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.RespondNotFound(c, "User not found")
		}
		return utils.RespondError(c, err)
	}

	var expenseCount int64
	if err := uc.DB.Model(&expenseModel.Expense{}).Where("user_id = ?", user.ID).Count(&expenseCount).Error; err != nil {
		return utils.RespondError(c, err)
	}
	if expenseCount > 0 {
		return utils.RespondBadRequest(c, "Cannot delete user with existing expenses. Delete or reassign their expenses first.")
	}

	if err := uc.DB.Delete(&user).Error; err != nil {
		return utils.RespondError(c, err)
	}
	return utils.RespondOK(c, "User deleted", nil)
}
