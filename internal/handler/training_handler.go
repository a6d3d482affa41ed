package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/suraksha-health/training-portal-api/internal/dto"
	"github.com/suraksha-health/training-portal-api/internal/models"
	"github.com/suraksha-health/training-portal-api/internal/service"
	appErrors "github.com/suraksha-health/training-portal-api/pkg/errors"
	"github.com/suraksha-health/training-portal-api/pkg/response"
)

// TrainingHandler wires HTTP endpoints to the training service.
type TrainingHandler struct {
	service   *service.TrainingService
	dashboard *service.DashboardService
}

// NewTrainingHandler creates a new handler.
func NewTrainingHandler(svc *service.TrainingService, dashboard *service.DashboardService) *TrainingHandler {
	return &TrainingHandler{service: svc, dashboard: dashboard}
}

// List godoc
// @Summary List trainings
// @Description List training sessions visible to the caller, newest first
// @Tags Trainings
// @Produce json
// @Param search query string false "Free-text search"
// @Param block query string false "Block filter"
// @Param status query string false "Status filter"
// @Param training_topic query string false "Topic filter"
// @Param sort_by query string false "Sort field"
// @Success 200 {object} dto.TrainingListResponse
// @Failure 401 {object} response.ErrorEnvelope
// @Security BearerAuth
// @Router /get_trainings [get]
func (h *TrainingHandler) List(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	opts := queryOptions(c, models.TrainingQuery)

	trainings, total, err := h.service.List(c.Request.Context(), actorFromClaims(claims), opts)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TrainingListResponse{Success: true, Trainings: trainings, Total: total})
}

// Create godoc
// @Summary Create a training
// @Description Schedule a training session conducted by the caller
// @Tags Trainings
// @Accept json
// @Produce json
// @Param payload body service.CreateTrainingRequest true "Training payload"
// @Success 201 {object} response.MessageEnvelope
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 401 {object} response.ErrorEnvelope
// @Security BearerAuth
// @Router /create_training [post]
func (h *TrainingHandler) Create(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req service.CreateTrainingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid training payload"))
		return
	}

	if _, err := h.service.Create(c.Request.Context(), actorFromClaims(claims), req); err != nil {
		response.Error(c, err)
		return
	}

	h.dashboard.Invalidate(c.Request.Context())
	response.Created(c, "Training created successfully")
}

// Edit godoc
// @Summary Edit a training
// @Description Update a training the caller conducts; the conductor never changes
// @Tags Trainings
// @Accept json
// @Produce json
// @Param id path int true "Training ID"
// @Param payload body service.EditTrainingRequest true "Training payload"
// @Success 200 {object} response.MessageEnvelope
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Security BearerAuth
// @Router /edit_training/{id} [put]
func (h *TrainingHandler) Edit(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	id, ok := idParam(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid training id"))
		return
	}

	var req service.EditTrainingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid training payload"))
		return
	}

	if err := h.service.Edit(c.Request.Context(), actorFromClaims(claims), id, req); err != nil {
		response.Error(c, err)
		return
	}

	h.dashboard.Invalidate(c.Request.Context())
	response.Message(c, "Training updated successfully")
}

// Delete godoc
// @Summary Delete a training
// @Description Remove a training the caller conducts
// @Tags Trainings
// @Produce json
// @Param id path int true "Training ID"
// @Success 200 {object} response.MessageEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Security BearerAuth
// @Router /delete_training/{id} [delete]
func (h *TrainingHandler) Delete(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	id, ok := idParam(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid training id"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), actorFromClaims(claims), id); err != nil {
		response.Error(c, err)
		return
	}

	h.dashboard.Invalidate(c.Request.Context())
	response.Message(c, "Training deleted successfully")
}
