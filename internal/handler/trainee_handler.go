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

// TraineeHandler wires HTTP endpoints to the trainee service. Visibility is
// derived from the caller's token claims, never from request parameters.
type TraineeHandler struct {
	service   *service.TraineeService
	dashboard *service.DashboardService
}

// NewTraineeHandler creates a new handler.
func NewTraineeHandler(svc *service.TraineeService, dashboard *service.DashboardService) *TraineeHandler {
	return &TraineeHandler{service: svc, dashboard: dashboard}
}

// List godoc
// @Summary List trainees
// @Description List trainees visible to the caller: all for admins, own registrations for professionals
// @Tags Trainees
// @Produce json
// @Param search query string false "Free-text search"
// @Param department query string false "Department filter"
// @Param block query string false "Block filter"
// @Param gender query string false "Gender filter"
// @Param cpr_training query string false "CPR training filter (true/false)"
// @Param first_aid_kit_given query string false "First aid kit filter (true/false)"
// @Param life_saving_skills query string false "Life saving skills filter (true/false)"
// @Param sort_by query string false "Sort field"
// @Success 200 {object} dto.TraineeListResponse
// @Failure 401 {object} response.ErrorEnvelope
// @Security BearerAuth
// @Router /get_trainees [get]
func (h *TraineeHandler) List(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	opts := queryOptions(c, models.TraineeQuery)

	trainees, total, err := h.service.List(c.Request.Context(), actorFromClaims(claims), opts)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TraineeListResponse{Success: true, Trainees: trainees, Total: total})
}

// Register godoc
// @Summary Register a trainee
// @Description Register a trainee owned by the calling professional
// @Tags Trainees
// @Accept json
// @Produce json
// @Param payload body service.CreateTraineeRequest true "Trainee payload"
// @Success 201 {object} response.MessageEnvelope
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 401 {object} response.ErrorEnvelope
// @Security BearerAuth
// @Router /register_trainee [post]
func (h *TraineeHandler) Register(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req service.CreateTraineeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid trainee payload"))
		return
	}

	if _, err := h.service.Create(c.Request.Context(), actorFromClaims(claims), req); err != nil {
		response.Error(c, err)
		return
	}

	h.dashboard.Invalidate(c.Request.Context())
	response.Created(c, "Trainee registered successfully")
}

// Edit godoc
// @Summary Edit a trainee
// @Description Update a trainee the caller registered; ownership never changes
// @Tags Trainees
// @Accept json
// @Produce json
// @Param id path int true "Trainee ID"
// @Param payload body service.EditTraineeRequest true "Trainee payload"
// @Success 200 {object} response.MessageEnvelope
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Security BearerAuth
// @Router /edit_trainee/{id} [put]
func (h *TraineeHandler) Edit(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	id, ok := idParam(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid trainee id"))
		return
	}

	var req service.EditTraineeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid trainee payload"))
		return
	}

	if err := h.service.Edit(c.Request.Context(), actorFromClaims(claims), id, req); err != nil {
		response.Error(c, err)
		return
	}

	h.dashboard.Invalidate(c.Request.Context())
	response.Message(c, "Trainee updated successfully")
}

// Delete godoc
// @Summary Delete a trainee
// @Description Remove a trainee the caller registered
// @Tags Trainees
// @Produce json
// @Param id path int true "Trainee ID"
// @Success 200 {object} response.MessageEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Security BearerAuth
// @Router /delete_trainee/{id} [delete]
func (h *TraineeHandler) Delete(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	id, ok := idParam(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid trainee id"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), actorFromClaims(claims), id); err != nil {
		response.Error(c, err)
		return
	}

	h.dashboard.Invalidate(c.Request.Context())
	response.Message(c, "Trainee deleted successfully")
}
