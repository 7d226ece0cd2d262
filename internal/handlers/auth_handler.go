package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/autokomis-pl/autokomis-api/internal/config"
	"github.com/autokomis-pl/autokomis-api/internal/httperr"
	"github.com/autokomis-pl/autokomis-api/internal/httpresp"
	"github.com/autokomis-pl/autokomis-api/internal/middleware"
	"github.com/autokomis-pl/autokomis-api/internal/models"
	"github.com/autokomis-pl/autokomis-api/internal/token"
	"github.com/autokomis-pl/autokomis-api/internal/validators"
)

const bcryptCost = 12

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	log    *zap.SugaredLogger
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, log *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, log: log}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func validateRegister(req *RegisterRequest) []string {
	var errs []string

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || len(req.Name) > 100 {
		errs = append(errs, "Imię jest wymagane.")
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailValid(req.Email) {
		errs = append(errs, "Nieprawidłowy adres email.")
	}

	if len(req.Password) < 6 {
		errs = append(errs, "Hasło musi mieć minimum 6 znaków")
	}

	return errs
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Nieprawidłowy format danych.")
		return
	}

	if errs := validateRegister(&req); len(errs) > 0 {
		httperr.Validation(c, errs)
		return
	}

	var count int64
	if err := h.db.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		httperr.Internal(c, "Wewnętrzny błąd serwera.")
		return
	}
	if count > 0 {
		httperr.Conflict(c, "Użytkownik z tym emailem już istnieje")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		httperr.Internal(c, "Wewnętrzny błąd serwera.")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashed),
		Role:         "user",
	}

	if err := h.db.Create(&user).Error; err != nil {
		// a duplicate insert that raced past the pre-check lands here and
		// gets translated to the same 409
		httperr.Translate(c, h.log, err)
		return
	}

	raw, err := token.Sign(&user, h.config)
	if err != nil {
		httperr.Internal(c, "Wewnętrzny błąd serwera.")
		return
	}

	httpresp.Created(c, gin.H{
		"token": raw,
		"user":  user.Public(),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Nieprawidłowy format danych.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// one message for unknown email and bad password alike
			httperr.Write(c, http.StatusUnauthorized, "Nieprawidłowy email lub hasło.")
			return
		}
		httperr.Internal(c, "Wewnętrzny błąd serwera.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Write(c, http.StatusUnauthorized, "Nieprawidłowy email lub hasło.")
		return
	}

	raw, err := token.Sign(&user, h.config)
	if err != nil {
		httperr.Internal(c, "Wewnętrzny błąd serwera.")
		return
	}

	httpresp.OK(c, gin.H{
		"token": raw,
		"user":  user.Public(),
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		httperr.Unauthorized(c, "Brak tokena")
		return
	}

	httpresp.OK(c, gin.H{"user": user})
}
