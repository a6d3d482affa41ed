package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/suraksha-health/training-portal-api/internal/models"
	"github.com/suraksha-health/training-portal-api/internal/service"
	appErrors "github.com/suraksha-health/training-portal-api/pkg/errors"
	"github.com/suraksha-health/training-portal-api/pkg/response"
)

// ExportHandler serves trainee register downloads. Exports run the same
// query parameters as the list endpoint, so a filtered table exports exactly
// what is on screen.
type ExportHandler struct {
	service *service.ExportService
}

// NewExportHandler creates a new handler.
func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// TraineesCSV godoc
// @Summary Export trainees as CSV
// @Tags Exports
// @Produce text/csv
// @Param search query string false "Free-text search"
// @Param sort_by query string false "Sort field"
// @Success 200 {string} string "CSV document"
// @Failure 401 {object} response.ErrorEnvelope
// @Security BearerAuth
// @Router /export/trainees.csv [get]
func (h *ExportHandler) TraineesCSV(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	out, err := h.service.TraineesCSV(c.Request.Context(), actorFromClaims(claims), queryOptions(c, models.TraineeQuery))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="trainees-%s.csv"`, time.Now().UTC().Format("2006-01-02")))
	c.Data(http.StatusOK, "text/csv", out)
}

// TraineesPDF godoc
// @Summary Export trainees as PDF
// @Tags Exports
// @Produce application/pdf
// @Param search query string false "Free-text search"
// @Param sort_by query string false "Sort field"
// @Success 200 {string} string "PDF document"
// @Failure 401 {object} response.ErrorEnvelope
// @Security BearerAuth
// @Router /export/trainees.pdf [get]
func (h *ExportHandler) TraineesPDF(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	out, err := h.service.TraineesPDF(c.Request.Context(), actorFromClaims(claims), queryOptions(c, models.TraineeQuery))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="trainees-%s.pdf"`, time.Now().UTC().Format("2006-01-02")))
	c.Data(http.StatusOK, "application/pdf", out)
}
