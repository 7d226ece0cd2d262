package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/autokomis-pl/autokomis-api/internal/config"
	"github.com/autokomis-pl/autokomis-api/internal/models"
)

var ErrInvalid = errors.New("invalid token")

// Claims is the identity carried by a bearer token. Validity is a function
// of signature and expiry only; the auth middleware re-resolves the user
// row on every request.
type Claims struct {
	UserID uint
	Email  string
}

func Sign(user *models.User, cfg *config.Config) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(cfg.JWTExpires).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

func Verify(raw string, cfg *config.Config) (Claims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !tok.Valid {
		return Claims{}, ErrInvalid
	}

	mapc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalid
	}

	sub, ok := mapc["sub"].(float64)
	if !ok {
		return Claims{}, ErrInvalid
	}
	email, _ := mapc["email"].(string)

	return Claims{UserID: uint(sub), Email: email}, nil
}
