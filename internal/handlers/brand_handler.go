package handlers

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/autokomis-pl/autokomis-api/internal/httperr"
	"github.com/autokomis-pl/autokomis-api/internal/httpresp"
	"github.com/autokomis-pl/autokomis-api/internal/models"
)

type BrandHandler struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewBrandHandler(db *gorm.DB, log *zap.SugaredLogger) *BrandHandler {
	return &BrandHandler{db: db, log: log}
}

// --------- Requests ---------

type BrandRequest struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	LogoURL string `json:"logo_url"`
}

func validateBrand(req *BrandRequest) []string {
	var errs []string

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || len(req.Name) > 100 {
		errs = append(errs, "Nazwa marki jest wymagana.")
	}

	req.Country = strings.TrimSpace(req.Country)
	if len(req.Country) > 100 {
		errs = append(errs, "Nazwa kraju może mieć maksymalnie 100 znaków.")
	}

	req.LogoURL = strings.TrimSpace(req.LogoURL)
	if req.LogoURL != "" {
		u, err := url.ParseRequestURI(req.LogoURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			errs = append(errs, "Nieprawidłowy URL logo.")
		}
	}

	return errs
}

// --------- Responses ---------

// brandWithCount is a brand row enriched with its referencing car count.
type brandWithCount struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Country   string    `json:"country"`
	LogoURL   string    `json:"logo_url"`
	CarCount  int64     `json:"car_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// --------- Handlers ---------

func (h *BrandHandler) List(c *gin.Context) {
	var brands []brandWithCount
	err := h.db.
		Table("brands AS b").
		Select("b.*, COUNT(c.id) AS car_count").
		Joins("LEFT JOIN cars c ON b.id = c.brand_id").
		Group("b.id").
		Order("b.name ASC").
		Scan(&brands).Error
	if err != nil {
		httperr.Translate(c, h.log, err)
		return
	}

	if brands == nil {
		brands = []brandWithCount{}
	}
	httpresp.OK(c, brands)
}

func (h *BrandHandler) Get(c *gin.Context) {
	var brand models.Brand
	if err := h.db.First(&brand, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Marka nie znaleziona.")
			return
		}
		httperr.Translate(c, h.log, err)
		return
	}

	httpresp.OK(c, brand)
}

func (h *BrandHandler) Create(c *gin.Context) {
	var req BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Nieprawidłowy format danych.")
		return
	}

	if errs := validateBrand(&req); len(errs) > 0 {
		httperr.Validation(c, errs)
		return
	}

	brand := models.Brand{
		Name:    req.Name,
		Country: req.Country,
		LogoURL: req.LogoURL,
	}

	if err := h.db.Create(&brand).Error; err != nil {
		httperr.Translate(c, h.log, err)
		return
	}

	httpresp.Created(c, brand)
}

func (h *BrandHandler) Update(c *gin.Context) {
	var brand models.Brand
	if err := h.db.First(&brand, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Marka nie znaleziona.")
			return
		}
		httperr.Translate(c, h.log, err)
		return
	}

	var req BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Nieprawidłowy format danych.")
		return
	}

	if errs := validateBrand(&req); len(errs) > 0 {
		httperr.Validation(c, errs)
		return
	}

	brand.Name = req.Name
	brand.Country = req.Country
	brand.LogoURL = req.LogoURL

	if err := h.db.Save(&brand).Error; err != nil {
		httperr.Translate(c, h.log, err)
		return
	}

	httpresp.OK(c, brand)
}

func (h *BrandHandler) Delete(c *gin.Context) {
	res := h.db.Delete(&models.Brand{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		// a referencing car raises a foreign key violation -> 400
		httperr.Translate(c, h.log, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "Marka nie znaleziona.")
		return
	}

	httpresp.Deleted(c, "Marka usunięta.", c.Param("id"))
}
