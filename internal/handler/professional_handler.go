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

// ProfessionalHandler wires HTTP endpoints to the professional roster
// service. All routes are admin-only.
type ProfessionalHandler struct {
	service   *service.ProfessionalService
	dashboard *service.DashboardService
}

// NewProfessionalHandler creates a new handler.
func NewProfessionalHandler(svc *service.ProfessionalService, dashboard *service.DashboardService) *ProfessionalHandler {
	return &ProfessionalHandler{service: svc, dashboard: dashboard}
}

// List godoc
// @Summary List professionals
// @Description List the roster with per-professional training and trainee counts
// @Tags Professionals
// @Produce json
// @Param search query string false "Free-text search"
// @Param department query string false "Department filter"
// @Param designation query string false "Designation filter"
// @Param gender query string false "Gender filter"
// @Param sort_by query string false "Sort field"
// @Success 200 {object} dto.ProfessionalListResponse
// @Failure 401 {object} response.ErrorEnvelope
// @Failure 403 {object} response.ErrorEnvelope
// @Security BearerAuth
// @Router /get_professionals [get]
func (h *ProfessionalHandler) List(c *gin.Context) {
	opts := queryOptions(c, models.ProfessionalQuery)

	professionals, total, err := h.service.List(c.Request.Context(), opts)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ProfessionalListResponse{Success: true, Professionals: professionals, Total: total})
}

// Register godoc
// @Summary Register a professional
// @Description Create a professional account; the mobile number is the initial password
// @Tags Professionals
// @Accept json
// @Produce json
// @Param payload body service.RegisterProfessionalRequest true "Professional payload"
// @Success 201 {object} response.MessageEnvelope
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 409 {object} response.ErrorEnvelope
// @Security BearerAuth
// @Router /register_professional [post]
func (h *ProfessionalHandler) Register(c *gin.Context) {
	var req service.RegisterProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid professional payload"))
		return
	}

	if _, err := h.service.Register(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	h.dashboard.Invalidate(c.Request.Context())
	response.Created(c, "Professional registered successfully")
}

// Edit godoc
// @Summary Edit a professional
// @Description Update a professional's profile; admin accounts cannot be edited
// @Tags Professionals
// @Accept json
// @Produce json
// @Param id path int true "Professional ID"
// @Param payload body service.EditProfessionalRequest true "Professional payload"
// @Success 200 {object} response.MessageEnvelope
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 403 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Security BearerAuth
// @Router /edit_professional/{id} [put]
func (h *ProfessionalHandler) Edit(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid professional id"))
		return
	}

	var req service.EditProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid professional payload"))
		return
	}

	if err := h.service.Edit(c.Request.Context(), id, req); err != nil {
		response.Error(c, err)
		return
	}

	h.dashboard.Invalidate(c.Request.Context())
	response.Message(c, "Professional updated successfully")
}

// Delete godoc
// @Summary Delete a professional
// @Description Remove a professional account; admin accounts cannot be deleted
// @Tags Professionals
// @Produce json
// @Param id path int true "Professional ID"
// @Success 200 {object} response.MessageEnvelope
// @Failure 403 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Security BearerAuth
// @Router /delete_professional/{id} [delete]
func (h *ProfessionalHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid professional id"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	h.dashboard.Invalidate(c.Request.Context())
	response.Message(c, "Professional deleted successfully")
}
