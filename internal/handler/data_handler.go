package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/suraksha-health/training-portal-api/internal/dto"
	"github.com/suraksha-health/training-portal-api/internal/service"
	"github.com/suraksha-health/training-portal-api/pkg/response"
)

// DataHandler serves the admin data viewer.
type DataHandler struct {
	service *service.DataService
}

// NewDataHandler creates a new handler.
func NewDataHandler(svc *service.DataService) *DataHandler {
	return &DataHandler{service: svc}
}

// Tables godoc
// @Summary Raw table contents
// @Description Dump users, trainees and trainings for the admin data viewer
// @Tags Data
// @Produce json
// @Success 200 {object} dto.DataResponse
// @Failure 401 {object} response.ErrorEnvelope
// @Failure 403 {object} response.ErrorEnvelope
// @Security BearerAuth
// @Router /data [get]
func (h *DataHandler) Tables(c *gin.Context) {
	users, trainees, trainings, err := h.service.Tables(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.DataResponse{
		Success: true,
		Data: dto.DataTables{
			Users:     users,
			Trainees:  trainees,
			Trainings: trainings,
		},
	})
}
