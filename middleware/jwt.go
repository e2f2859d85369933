package middleware

import (
	"fmt"
	"strings"
	"time"

	"eduportal/config"
	"eduportal/models"
	"eduportal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT generates a JWT token for the user
func GenerateJWT(user *models.User) (string, error) {
	ttl := time.Duration(config.AppConfig.JWTTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	claims := jwt.MapClaims{
		"userId": user.ID,
		"name":   user.Name,
		"role":   user.Role,
		"email":  user.Email,
		"iat":    time.Now().Unix(),          // issued at
		"exp":    time.Now().Add(ttl).Unix(), // expiry
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// bearerUser resolves the user behind the Authorization header. It returns a
// message suitable for a 401 when the header or token is unusable.
func bearerUser(authHeader string) (*models.User, string) {
	// The token should be prefixed with "Bearer "
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, "Invalid Authorization header format"
	}
	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return nil, "Invalid or expired token"
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, "Invalid token payload"
	}
	// JWT numbers decode as float64
	userID, ok := claims["userId"].(float64)
	if !ok || userID <= 0 {
		return nil, "Invalid token payload"
	}

	// Deleted accounts lose access even with an unexpired token
	user, err := services.FindUser(uint(userID))
	if err != nil {
		return nil, "User no longer exists"
	}
	return user, ""
}

// JWTMiddleware is a middleware to check for valid JWT token in the request
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing or invalid Authorization header", nil)
	}

	user, msg := bearerUser(authHeader)
	if user == nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, msg, nil)
	}

	c.Locals("userId", user.ID)
	c.Locals("user", user)
	return c.Next()
}

// OptionalJWT loads the user when a token is sent and lets guests through.
func OptionalJWT(c *fiber.Ctx) error {
	if c.Get("Authorization") == "" {
		return c.Next()
	}
	return JWTMiddleware(c)
}

// CurrentUser returns the authenticated user, or nil for a guest.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}
