package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/autokomis-pl/autokomis-api/internal/httperr"
	"github.com/autokomis-pl/autokomis-api/internal/models"
)

// CarOwner lets only the user who added a car mutate it. Must run after
// Auth.
func CarOwner(db *gorm.DB) gin.HandlerFunc {
	return carOwner(func(id uint) (*models.Car, error) {
		var car models.Car
		if err := db.Select("id", "added_by").First(&car, "id = ?", id).Error; err != nil {
			return nil, err
		}
		return &car, nil
	})
}

func carOwner(loadCar func(id uint) (*models.Car, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			httperr.Unauthorized(c, "Brak tokena")
			return
		}

		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			httperr.Abort(c, http.StatusBadRequest, "Nieprawidłowy format danych.")
			return
		}

		car, err := loadCar(uint(id))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				httperr.Abort(c, http.StatusNotFound, "Samochód nie znaleziony.")
				return
			}
			httperr.Abort(c, http.StatusInternalServerError, "Wewnętrzny błąd serwera.")
			return
		}

		if car.AddedBy == nil || *car.AddedBy != user.ID {
			httperr.Forbidden(c, "Brak uprawnień. Możesz edytować tylko swoje ogłoszenia.")
			return
		}

		c.Next()
	}
}
