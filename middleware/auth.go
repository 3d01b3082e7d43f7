package middleware

import (
	"fmt"
	"os"
	"strings"

	"joyful-cargo/constants"
	"joyful-cargo/database"
	"joyful-cargo/models/user"
	"joyful-cargo/types"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		secret = "jwt_dev_key"
	}
	return []byte(secret)
}

// VerifyToken parses and validates a bearer token string.
func VerifyToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("authorization header missing")
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return "", fmt.Errorf("invalid token format")
	}
	return tokenParts[1], nil
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
		Status:  fiber.StatusUnauthorized,
		Message: message,
	})
}

// RequireAuth validates the access token and stores the acting identity
// on the request context.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return unauthorized(c, err.Error())
		}

		claims, err := VerifyToken(tokenString)
		if err != nil {
			return unauthorized(c, "Invalid or expired token")
		}

		if tokenType, _ := claims["type"].(string); tokenType == "refresh" {
			return unauthorized(c, "Refresh token cannot access resources")
		}

		sub, ok := claims["sub"].(float64)
		if !ok {
			return unauthorized(c, "User id not found in token")
		}

		role, _ := claims["role"].(string)
		c.Locals(constants.LocalsUserID, uint(sub))
		c.Locals(constants.LocalsUserRole, role)
		return c.Next()
	}
}

// RequireRefresh validates a refresh token for the token renewal endpoint.
func RequireRefresh() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return unauthorized(c, err.Error())
		}

		claims, err := VerifyToken(tokenString)
		if err != nil {
			return unauthorized(c, "Invalid or expired token")
		}

		if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
			return unauthorized(c, "Refresh token required")
		}

		sub, ok := claims["sub"].(float64)
		if !ok {
			return unauthorized(c, "User id not found in token")
		}

		c.Locals(constants.LocalsUserID, uint(sub))
		return c.Next()
	}
}

// RequireAdmin loads the acting user and rejects non-admins. Must run
// after RequireAuth.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals(constants.LocalsUserID).(uint)
		if !ok {
			return unauthorized(c, "Authentication required")
		}

		var actor user.User
		if err := database.DB.First(&actor, userID).Error; err != nil || !actor.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
				Status:  fiber.StatusForbidden,
				Message: "Admins only",
			})
		}
		return c.Next()
	}
}

// ActorID returns the authenticated user id stored by RequireAuth.
func ActorID(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals(constants.LocalsUserID).(uint)
	return userID, ok
}
