package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Deleted answers successful DELETEs with the shape {message, id}.
func Deleted(c *gin.Context, message string, id string) {
	c.JSON(http.StatusOK, gin.H{"message": message, "id": id})
}
