package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jpennells/stakeholder-map-go/internal/models"
	"github.com/jpennells/stakeholder-map-go/internal/service"
	"github.com/jpennells/stakeholder-map-go/pkg/response"
)

// SubmissionHandler handles HTTP requests for stakeholder submissions.
type SubmissionHandler struct {
	service *service.SubmissionService
}

// NewSubmissionHandler creates a new submission handler.
func NewSubmissionHandler(service *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

// PrepareEmail handles POST /api/v1/submissions/mailto
func (h *SubmissionHandler) PrepareEmail(c *gin.Context) {
	var sub models.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid submission payload")
		return
	}

	response.Success(c, gin.H{
		"mailto": h.service.PrepareEmail(sub),
	})
}
