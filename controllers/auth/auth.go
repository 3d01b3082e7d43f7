package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"joyful-cargo/logger"
	"joyful-cargo/middleware"
	userModel "joyful-cargo/models/user"
	authTypes "joyful-cargo/types/auth"
	"joyful-cargo/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

// AuthController handles registration, login and token renewal
type AuthController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

// NewAuthController creates a new auth controller
func NewAuthController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *AuthController {
	return &AuthController{
		DB:     db,
		Logger: asyncLogger,
	}
}

func signToken(user *userModel.User, ttl time.Duration, tokenType string) (string, error) {
	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		secret = "jwt_dev_key"
	}

	claims := jwt.MapClaims{
		"sub":  float64(user.ID),
		"role": user.Role,
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	if tokenType != "" {
		claims["type"] = tokenType
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Register creates a new account.
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req authTypes.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return utils.RespondBadRequest(c, "Invalid request body")
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return utils.RespondBadRequest(c, "Missing required fields")
	}
	if !utils.ValidateEmail(req.Email) {
		return utils.RespondBadRequest(c, "Invalid email")
	}

	var existing userModel.User
	err := ac.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return utils.RespondBadRequest(c, "Email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Database error while checking existing user", err)
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
		logger.Error("Failed to hash password", err)
		return utils.RespondError(c, err)
	}

	if err := ac.DB.Create(&newUser).Error; err != nil {
		logger.Error("Failed to create user", err)
		return utils.RespondError(c, err)
	}

	logger.Success(fmt.Sprintf("User registered: %s", newUser.Email))
	return utils.RespondCreated(c, "User registered successfully", newUser)
}

// Login verifies credentials and issues access + refresh tokens.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req authTypes.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return utils.RespondBadRequest(c, "Invalid request body")
	}

	var user userModel.User
	err := ac.DB.Where("email = ?", req.Email).First(&user).Error
	if err != nil || !user.CheckPassword(req.Password) {
		return utils.RespondUnauthorized(c, "Invalid credentials")
	}

	accessToken, err := signToken(&user, accessTokenTTL, "")
	if err != nil {
		logger.Error("Failed to sign access token", err)
		return utils.RespondError(c, err)
	}
	refreshToken, err := signToken(&user, refreshTokenTTL, "refresh")
	if err != nil {
		logger.Error("Failed to sign refresh token", err)
		return utils.RespondError(c, err)
	}

	return utils.RespondOK(c, "Login successful", fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"user":          user,
	})
}

// Refresh exchanges a valid refresh token for a new access token.
func (ac *AuthController) Refresh(c *fiber.Ctx) error {
	userID, ok := middleware.ActorID(c)
	if !ok {
		return utils.RespondUnauthorized(c, "Authentication required")
	}

	var user userModel.User
	if err := ac.DB.First(&user, userID).Error; err != nil {
		return utils.RespondUnauthorized(c, "User not found")
	}

	accessToken, err := signToken(&user, accessTokenTTL, "")
	if err != nil {
		logger.Error("Failed to sign access token", err)
		return utils.RespondError(c, err)
	}

	return utils.RespondOK(c, "Token refreshed", fiber.Map{
		"access_token": accessToken,
	})
}

// Me returns the authenticated user's profile.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, ok := middleware.ActorID(c)
	if !ok {
		return utils.RespondUnauthorized(c, "Authentication required")
	}

	var user userModel.User
	if err := ac.DB.First(&user, userID).Error; err != nil {
		return utils.RespondUnauthorized(c, "User not found")
	}
	return utils.RespondOK(c, "", user)
}

// Logout acknowledges the logout. Tokens are short-lived, so no blocklist
// is kept.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return utils.RespondOK(c, "Logged out successfully", nil)
}
