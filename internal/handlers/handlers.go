package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirebridge/hirebridge/internal/repository"
	"github.com/hirebridge/hirebridge/internal/services"
)

// Root answers the bare health probe the client pings on startup.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "API Working"})
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

// respondError maps domain errors onto the API's status codes: validation
// and duplicates are 400, missing records 404, everything else 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, repository.ErrAlreadyApplied),
		errors.Is(err, repository.ErrUserExists):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error", "message": err.Error()})
	}
}
