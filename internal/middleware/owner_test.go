package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/autokomis-pl/autokomis-api/internal/models"
)

func asUser(id uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextUser, models.PublicUser{ID: id, Name: "Jan", Email: "jan@example.com"})
	}
}

func ownerRouter(userID uint, loadCar func(id uint) (*models.Car, error)) *gin.Engine {
	r := gin.New()
	guard := []gin.HandlerFunc{carOwner(loadCar), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}}
	if userID != 0 {
		guard = append([]gin.HandlerFunc{asUser(userID)}, guard...)
	}
	r.PUT("/cars/:id", guard...)
	return r
}

func ownedBy(id uint) func(uint) (*models.Car, error) {
	return func(uint) (*models.Car, error) {
		return &models.Car{ID: 1, AddedBy: &id}, nil
	}
}

func TestCarOwnerAllowsOwner(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/cars/1", nil)
	ownerRouter(7, ownedBy(7)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestCarOwnerRejectsOtherUser(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/cars/1", nil)
	ownerRouter(8, ownedBy(7)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Brak uprawnień. Możesz edytować tylko swoje ogłoszenia."}`, w.Body.String())
}

func TestCarOwnerRejectsOrphanedCar(t *testing.T) {
	// added_by is NULL after the owner's account was deleted
	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/cars/1", nil)
	r := ownerRouter(7, func(uint) (*models.Car, error) {
		return &models.Car{ID: 1}, nil
	})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Brak uprawnień. Możesz edytować tylko swoje ogłoszenia."}`, w.Body.String())
}

func TestCarOwnerMissingCar(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/cars/99", nil)
	r := ownerRouter(7, func(uint) (*models.Car, error) {
		return nil, gorm.ErrRecordNotFound
	})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Samochód nie znaleziony."}`, w.Body.String())
}

func TestCarOwnerBadID(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/cars/abc", nil)
	r := ownerRouter(7, func(uint) (*models.Car, error) {
		t.Fatal("lookup should not run for a malformed id")
		return nil, nil
	})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Nieprawidłowy format danych."}`, w.Body.String())
}

func TestCarOwnerWithoutUser(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/cars/1", nil)
	ownerRouter(0, ownedBy(7)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Brak tokena"}`, w.Body.String())
}

func TestCarOwnerLookupFailure(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/cars/1", nil)
	r := ownerRouter(7, func(uint) (*models.Car, error) {
		return nil, errors.New("connection reset")
	})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Wewnętrzny błąd serwera."}`, w.Body.String())
}
