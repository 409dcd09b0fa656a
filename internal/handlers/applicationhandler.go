package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirebridge/hirebridge/internal/dtos"
	"github.com/hirebridge/hirebridge/internal/services"
)

type ApplicationHandler struct {
	ApplicationService *services.ApplicationService
}

func NewApplicationHandler(a *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{ApplicationService: a}
}

// GetApplications is GET /api/applications, optionally narrowed by
// ?email= and/or ?jobId=.
func (h *ApplicationHandler) GetApplications(c *gin.Context) {
	apps, err := h.ApplicationService.List(c.Request.Context(), c.Query("email"), c.Query("jobId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	app, err := h.ApplicationService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// CreateApplication is POST /api/applications. A second submission for the
// same job and applicant email comes back 400.
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var req dtos.ApplicationCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "jobId and applicantEmail are required"})
		return
	}
	app, err := h.ApplicationService.Submit(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Application submitted successfully", "application": app})
}

// UpdateApplication is PUT /api/applications/:id — status decisions and
// resume edits both arrive as partial updates.
func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	app, err := h.ApplicationService.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application updated successfully", "application": app})
}

func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	if err := h.ApplicationService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application deleted successfully"})
}
