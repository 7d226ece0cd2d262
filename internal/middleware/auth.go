package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/autokomis-pl/autokomis-api/internal/config"
	"github.com/autokomis-pl/autokomis-api/internal/httperr"
	"github.com/autokomis-pl/autokomis-api/internal/models"
	"github.com/autokomis-pl/autokomis-api/internal/token"
)

const ContextUser = "currentUser"

// Auth requires a valid bearer token and a still-existing user behind it.
// The user's public fields land in the gin context under ContextUser.
func Auth(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, errMsg := resolveUser(c, db, cfg)
		if user == nil {
			httperr.Unauthorized(c, errMsg)
			return
		}

		c.Set(ContextUser, user.Public())
		c.Next()
	}
}

// OptionalAuth resolves the caller identity when a valid token is present
// but never rejects the request.
func OptionalAuth(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, _ := resolveUser(c, db, cfg); user != nil {
			c.Set(ContextUser, user.Public())
		}
		c.Next()
	}
}

// CurrentUser reads the identity attached by Auth/OptionalAuth.
func CurrentUser(c *gin.Context) (models.PublicUser, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return models.PublicUser{}, false
	}
	user, ok := v.(models.PublicUser)
	return user, ok
}

func resolveUser(c *gin.Context, db *gorm.DB, cfg *config.Config) (*models.User, string) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, "Brak tokena"
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, "Brak tokena"
	}

	claims, err := token.Verify(parts[1], cfg)
	if err != nil {
		return nil, "Token nieprawidłowy lub wygasł"
	}

	var user models.User
	if err := db.First(&user, claims.UserID).Error; err != nil {
		return nil, "Użytkownik nie istnieje"
	}

	return &user, ""
}
