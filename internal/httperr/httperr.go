package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// All failures share one body shape: {"error": "..."} or, for field-level
// validation, {"errors": ["...", ...]}.

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func Abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func Validation(c *gin.Context, messages []string) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": messages})
}

func Unauthorized(c *gin.Context, message string) {
	Abort(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Abort(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Write(c, http.StatusConflict, message)
}

func Internal(c *gin.Context, message string) {
	Write(c, http.StatusInternalServerError, message)
}
