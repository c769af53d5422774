package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tobias-homewood/jobly/internal/apperr"
	"github.com/tobias-homewood/jobly/internal/sqlbuilder"
)

// respondError writes the JSON error envelope for a service or builder
// failure. Unknown errors become a 500 and are logged rather than leaked.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal Server Error"

	var appErr *apperr.Error
	var filterErr *sqlbuilder.FilterError
	switch {
	case errors.As(err, &appErr):
		status = appErr.Status
		message = appErr.Message
	case errors.As(err, &filterErr), errors.Is(err, sqlbuilder.ErrEmptyUpdate):
		status = http.StatusBadRequest
		message = err.Error()
	default:
		log.Printf("unhandled error: %v", err)
	}

	c.JSON(status, gin.H{"error": gin.H{"message": message, "status": status}})
}

// badRequest writes a 400 envelope for a malformed request body or parameter.
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": gin.H{"message": err.Error(), "status": http.StatusBadRequest},
	})
}
