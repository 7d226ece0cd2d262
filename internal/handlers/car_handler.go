package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/autokomis-pl/autokomis-api/internal/cleanup"
	domain "github.com/autokomis-pl/autokomis-api/internal/domain/car"
	"github.com/autokomis-pl/autokomis-api/internal/httperr"
	"github.com/autokomis-pl/autokomis-api/internal/httpresp"
	"github.com/autokomis-pl/autokomis-api/internal/middleware"
	"github.com/autokomis-pl/autokomis-api/internal/models"
	"github.com/autokomis-pl/autokomis-api/internal/upload"
	ucCar "github.com/autokomis-pl/autokomis-api/internal/usecase/car"
	"github.com/autokomis-pl/autokomis-api/internal/validators"
)

type CarHandler struct {
	db      *gorm.DB
	log     *zap.SugaredLogger
	store   *upload.Store
	cleaner *cleanup.Dispatcher

	listUC *ucCar.ListCars
	getUC  *ucCar.GetCar
}

func NewCarHandler(
	db *gorm.DB,
	log *zap.SugaredLogger,
	store *upload.Store,
	cleaner *cleanup.Dispatcher,
	listUC *ucCar.ListCars,
	getUC *ucCar.GetCar,
) *CarHandler {
	return &CarHandler{
		db:      db,
		log:     log,
		store:   store,
		cleaner: cleaner,
		listUC:  listUC,
		getUC:   getUC,
	}
}

// --------- Query parsing ---------

func parseListFilters(c *gin.Context) (domain.ListFilters, bool) {
	var f domain.ListFilters

	parseUint := func(key string, dst **uint) bool {
		raw := strings.TrimSpace(c.Query(key))
		if raw == "" {
			return true
		}
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return false
		}
		u := uint(v)
		*dst = &u
		return true
	}
	parseInt := func(key string, dst **int) bool {
		raw := strings.TrimSpace(c.Query(key))
		if raw == "" {
			return true
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return false
		}
		*dst = &v
		return true
	}
	parseFloat := func(key string, dst **float64) bool {
		raw := strings.TrimSpace(c.Query(key))
		if raw == "" {
			return true
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return false
		}
		*dst = &v
		return true
	}

	ok := parseUint("brand_id", &f.BrandID) &&
		parseUint("added_by", &f.AddedBy) &&
		parseFloat("min_price", &f.MinPrice) &&
		parseFloat("max_price", &f.MaxPrice) &&
		parseInt("min_year", &f.MinYear) &&
		parseInt("max_year", &f.MaxYear)
	if !ok {
		return f, false
	}

	f.FuelType = c.Query("fuel_type")
	f.Transmission = c.Query("transmission")
	f.Status = c.Query("status")
	f.Search = c.Query("search")
	f.Sort = c.Query("sort")
	f.Order = c.Query("order")

	// unparsable paging falls back to the defaults
	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(domain.DefaultLimit)))

	return f, true
}

func parseCarID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "Nieprawidłowy format danych.")
		return 0, false
	}
	return uint(id), true
}

func carFormFromRequest(c *gin.Context) validators.CarForm {
	return validators.CarForm{
		BrandID:      c.PostForm("brand_id"),
		Model:        c.PostForm("model"),
		Year:         c.PostForm("year"),
		Price:        c.PostForm("price"),
		Mileage:      c.PostForm("mileage"),
		FuelType:     c.PostForm("fuel_type"),
		Transmission: c.PostForm("transmission"),
		Color:        c.PostForm("color"),
		Description:  c.PostForm("description"),
		Status:       c.PostForm("status"),
	}
}

// imageFromRequest returns the optional uploaded image header.
func imageFromRequest(c *gin.Context) (*multipart.FileHeader, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	return fh, nil
}

// --------- Handlers ---------

func (h *CarHandler) List(c *gin.Context) {
	f, ok := parseListFilters(c)
	if !ok {
		httperr.BadRequest(c, "Nieprawidłowy format danych.")
		return
	}

	res, err := h.listUC.Execute(c.Request.Context(), f)
	if err != nil {
		httperr.Translate(c, h.log, err)
		return
	}

	httpresp.OK(c, res)
}

func (h *CarHandler) Get(c *gin.Context) {
	id, ok := parseCarID(c)
	if !ok {
		return
	}

	row, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Samochód nie znaleziony.")
			return
		}
		httperr.Translate(c, h.log, err)
		return
	}

	httpresp.OK(c, row)
}

func (h *CarHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		httperr.Unauthorized(c, "Brak tokena")
		return
	}

	// the image is written first so field validation can roll it back,
	// mirroring the upload-then-validate order of the form pipeline
	stored, err := h.saveImage(c)
	if err != nil {
		return
	}

	in, errs := validators.ValidateCar(carFormFromRequest(c))
	if len(errs) > 0 {
		h.cleaner.RemoveFile(stored)
		httperr.Validation(c, errs)
		return
	}

	car := models.Car{
		BrandID:      in.BrandID,
		Model:        in.Model,
		Year:         in.Year,
		Price:        in.Price,
		Mileage:      in.Mileage,
		FuelType:     in.FuelType,
		Transmission: in.Transmission,
		Color:        in.Color,
		Description:  in.Description,
		Status:       in.Status,
		AddedBy:      &user.ID,
	}
	if stored != "" {
		car.ImageURL = h.store.URL(stored)
	}

	if err := h.db.Create(&car).Error; err != nil {
		h.cleaner.RemoveFile(stored)
		httperr.Translate(c, h.log, err)
		return
	}

	row, err := h.getUC.Execute(c.Request.Context(), car.ID)
	if err != nil {
		httperr.Translate(c, h.log, err)
		return
	}

	httpresp.Created(c, row)
}

func (h *CarHandler) Update(c *gin.Context) {
	id, ok := parseCarID(c)
	if !ok {
		return
	}

	var car models.Car
	if err := h.db.First(&car, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Samochód nie znaleziony.")
			return
		}
		httperr.Translate(c, h.log, err)
		return
	}

	stored, err := h.saveImage(c)
	if err != nil {
		return
	}

	in, errs := validators.ValidateCar(carFormFromRequest(c))
	if len(errs) > 0 {
		h.cleaner.RemoveFile(stored)
		httperr.Validation(c, errs)
		return
	}

	previousImage := car.ImageURL

	car.BrandID = in.BrandID
	car.Model = in.Model
	car.Year = in.Year
	car.Price = in.Price
	car.Mileage = in.Mileage
	car.FuelType = in.FuelType
	car.Transmission = in.Transmission
	car.Color = in.Color
	car.Description = in.Description
	car.Status = in.Status
	if stored != "" {
		car.ImageURL = h.store.URL(stored)
	}

	if err := h.db.Save(&car).Error; err != nil {
		h.cleaner.RemoveFile(stored)
		httperr.Translate(c, h.log, err)
		return
	}

	// the old file goes away only after the new one is committed
	if stored != "" && previousImage != "" {
		h.cleaner.RemoveURL(previousImage)
	}

	row, err := h.getUC.Execute(c.Request.Context(), car.ID)
	if err != nil {
		httperr.Translate(c, h.log, err)
		return
	}

	httpresp.OK(c, row)
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (h *CarHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseCarID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Nieprawidłowy format danych.")
		return
	}

	if !validators.IsValidStatus(req.Status) {
		httperr.Validation(c, []string{"Nieprawidłowy status."})
		return
	}

	var car models.Car
	if err := h.db.First(&car, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Samochód nie znaleziony.")
			return
		}
		httperr.Translate(c, h.log, err)
		return
	}

	car.Status = req.Status
	if err := h.db.Save(&car).Error; err != nil {
		httperr.Translate(c, h.log, err)
		return
	}

	httpresp.OK(c, car)
}

func (h *CarHandler) Delete(c *gin.Context) {
	id, ok := parseCarID(c)
	if !ok {
		return
	}

	var car models.Car
	if err := h.db.First(&car, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Samochód nie znaleziony.")
			return
		}
		httperr.Translate(c, h.log, err)
		return
	}

	if err := h.db.Delete(&car).Error; err != nil {
		httperr.Translate(c, h.log, err)
		return
	}

	if car.ImageURL != "" {
		h.cleaner.RemoveURL(car.ImageURL)
	}

	httpresp.Deleted(c, "Samochód usunięty.", c.Param("id"))
}

// saveImage persists the optional upload, answering the request itself on
// failure. The returned name is empty when no image was sent.
func (h *CarHandler) saveImage(c *gin.Context) (string, error) {
	fh, err := imageFromRequest(c)
	if err != nil {
		httperr.BadRequest(c, "Nieprawidłowy format danych.")
		return "", err
	}
	if fh == nil {
		return "", nil
	}

	stored, err := h.store.SaveCarImage(fh)
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.BadRequest(c, be.Message)
		} else {
			httperr.Translate(c, h.log, err)
		}
		return "", err
	}
	return stored, nil
}
