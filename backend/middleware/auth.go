package middleware

import (
	"strings"
	"time"

	"vocabgame/backend/models"
	"vocabgame/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserIDKey is the ctx-locals key under which the authenticated user's
// id is stored for downstream handlers.
const UserIDKey = "userID"

// AuthMiddleware resolves the bearer token against the sessions table.
// A token is accepted only while its session row is unexpired; there
// is no other revocation path.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := strings.TrimPrefix(c.Get("Authorization"), "Bearer ")
		if token == "" {
			return utils.Unauthorized(c, "Missing authorization token")
		}

		var session models.Session
		err := db.Where("token = ? AND expires_at > ?", token, time.Now()).
			First(&session).Error
		if err != nil {
			return utils.Unauthorized(c, "Invalid or expired session")
		}

		c.Locals(UserIDKey, session.UserID)
		return c.Next()
	}
}

// UserID returns the id stashed by AuthMiddleware.
func UserID(c *fiber.Ctx) uint {
	id, _ := c.Locals(UserIDKey).(uint)
	return id
}
