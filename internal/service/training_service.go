package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/suraksha-health/training-portal-api/internal/models"
	"github.com/suraksha-health/training-portal-api/internal/query"
	appErrors "github.com/suraksha-health/training-portal-api/pkg/errors"
)

type trainingRepository interface {
	List(ctx context.Context, ownerID *int64) ([]models.Training, error)
	FindByID(ctx context.Context, id int64) (*models.Training, error)
	Create(ctx context.Context, t *models.Training) error
	Update(ctx context.Context, t *models.Training) error
	Delete(ctx context.Context, id int64) error
}

// CreateTrainingRequest represents the payload for scheduling a training.
type CreateTrainingRequest struct {
	Title         string  `json:"title" validate:"required"`
	Description   *string `json:"description"`
	TrainingTopic string  `json:"training_topic" validate:"required"`
	Address       string  `json:"address"`
	Block         string  `json:"block"`
	TrainingDate  string  `json:"training_date" validate:"required,datetime=2006-01-02"`
	TrainingTime  string  `json:"training_time" validate:"required"`
	DurationHours float64 `json:"duration_hours" validate:"gte=0"`
	MaxTrainees   int     `json:"max_trainees" validate:"gte=0"`
	Status        string  `json:"status"`
}

// EditTrainingRequest represents the payload for editing a training. The
// conducting professional is fixed at creation and not part of the payload.
type EditTrainingRequest struct {
	Title         string  `json:"title" validate:"required"`
	Description   *string `json:"description"`
	TrainingTopic string  `json:"training_topic" validate:"required"`
	Address       string  `json:"address"`
	Block         string  `json:"block"`
	TrainingDate  string  `json:"training_date" validate:"required,datetime=2006-01-02"`
	TrainingTime  string  `json:"training_time" validate:"required"`
	DurationHours float64 `json:"duration_hours" validate:"gte=0"`
	MaxTrainees   int     `json:"max_trainees" validate:"gte=0"`
	Status        string  `json:"status" validate:"required"`
}

// TrainingService orchestrates training session operations with role-scoped
// visibility mirroring TraineeService.
type TrainingService struct {
	repo      trainingRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTrainingService constructs a TrainingService.
func NewTrainingService(repo trainingRepository, validate *validator.Validate, logger *zap.Logger) *TrainingService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TrainingService{repo: repo, validator: validate, logger: logger}
}

// List fetches the actor's visible trainings and runs the caller's query
// over them.
func (s *TrainingService) List(ctx context.Context, actor Actor, opts QueryOptions) ([]models.Training, int, error) {
	rows, err := s.repo.List(ctx, actor.scopeOwner())
	if err != nil {
		return nil, 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch trainings")
	}

	if !actor.IsAdmin() {
		if err := query.VerifyOwnership("trainings", rows, actor.UserID, func(t models.Training) (int64, int64) {
			return t.ID, t.ConductedBy
		}); err != nil {
			s.logger.Error("training scope violation", zap.Int64("user_id", actor.UserID), zap.Error(err))
			return nil, 0, err
		}
	}

	result := query.Apply(rows, models.TrainingQuery, opts.Search, opts.Filters)
	matches := query.SortBy(result.Matches, models.TrainingQuery, opts.SortBy)
	return matches, result.TotalCount, nil
}

// Create schedules a training conducted by the actor. Status defaults to
// Planned when omitted.
func (s *TrainingService) Create(ctx context.Context, actor Actor, req CreateTrainingRequest) (*models.Training, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Title, training topic, training date and training time are required")
	}

	status := models.TrainingStatus(strings.TrimSpace(req.Status))
	if status == "" {
		status = models.StatusPlanned
	}
	if !models.ValidStatus(status) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Invalid training status")
	}

	training := &models.Training{
		Title:         strings.TrimSpace(req.Title),
		Description:   normalizeOptional(req.Description),
		TrainingTopic: strings.TrimSpace(req.TrainingTopic),
		Address:       strings.TrimSpace(req.Address),
		Block:         strings.TrimSpace(req.Block),
		TrainingDate:  req.TrainingDate,
		TrainingTime:  req.TrainingTime,
		DurationHours: req.DurationHours,
		MaxTrainees:   req.MaxTrainees,
		Status:        status,
		ConductedBy:   actor.UserID,
	}

	if err := s.repo.Create(ctx, training); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create training")
	}
	return training, nil
}

// Edit modifies a training the actor can see. The conducting professional
// never changes.
func (s *TrainingService) Edit(ctx context.Context, actor Actor, id int64, req EditTrainingRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid training payload")
	}

	status := models.TrainingStatus(strings.TrimSpace(req.Status))
	if !models.ValidStatus(status) {
		return appErrors.Clone(appErrors.ErrValidation, "Invalid training status")
	}

	existing, err := s.loadVisible(ctx, actor, id)
	if err != nil {
		return err
	}

	training := &models.Training{
		ID:            existing.ID,
		Title:         strings.TrimSpace(req.Title),
		Description:   normalizeOptional(req.Description),
		TrainingTopic: strings.TrimSpace(req.TrainingTopic),
		Address:       strings.TrimSpace(req.Address),
		Block:         strings.TrimSpace(req.Block),
		TrainingDate:  req.TrainingDate,
		TrainingTime:  req.TrainingTime,
		DurationHours: req.DurationHours,
		MaxTrainees:   req.MaxTrainees,
		Status:        status,
		ConductedBy:   existing.ConductedBy,
	}

	if err := s.repo.Update(ctx, training); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "Training not found or could not be updated")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update training")
	}
	return nil
}

// Delete removes a training the actor can see.
func (s *TrainingService) Delete(ctx context.Context, actor Actor, id int64) error {
	if _, err := s.loadVisible(ctx, actor, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "Training not found or could not be deleted")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete training")
	}
	return nil
}

func (s *TrainingService) loadVisible(ctx context.Context, actor Actor, id int64) (*models.Training, error) {
	training, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Training not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load training")
	}
	if !actor.IsAdmin() && training.ConductedBy != actor.UserID {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "Training not found")
	}
	return training, nil
}
