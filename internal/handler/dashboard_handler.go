package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/suraksha-health/training-portal-api/internal/dto"
	"github.com/suraksha-health/training-portal-api/internal/service"
	appErrors "github.com/suraksha-health/training-portal-api/pkg/errors"
	"github.com/suraksha-health/training-portal-api/pkg/response"
)

// DashboardHandler serves the stat cards shown after login.
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler creates a new handler.
func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: svc}
}

// Stats godoc
// @Summary Dashboard statistics
// @Description Aggregate totals and skill coverage over the caller's visible records
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} response.ErrorEnvelope
// @Security BearerAuth
// @Router /dashboard [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	stats, err := h.service.Stats(c.Request.Context(), actorFromClaims(claims))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.DashboardResponse{Success: true, Stats: *stats})
}
