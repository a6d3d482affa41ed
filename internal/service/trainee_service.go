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

type traineeRepository interface {
	List(ctx context.Context, ownerID *int64) ([]models.Trainee, error)
	FindByID(ctx context.Context, id int64) (*models.Trainee, error)
	Create(ctx context.Context, t *models.Trainee) error
	Update(ctx context.Context, t *models.Trainee) error
	Delete(ctx context.Context, id int64) error
}

// CreateTraineeRequest represents the payload for registering a trainee.
type CreateTraineeRequest struct {
	Name             string          `json:"name" validate:"required"`
	MobileNumber     string          `json:"mobile_number" validate:"required"`
	Gender           string          `json:"gender" validate:"required"`
	Age              int             `json:"age" validate:"required,gt=0"`
	Department       string          `json:"department" validate:"required"`
	Designation      *string         `json:"designation"`
	Address          string          `json:"address"`
	Block            string          `json:"block"`
	TrainingDate     string          `json:"training_date" validate:"required,datetime=2006-01-02"`
	CPRTraining      models.FlexBool `json:"cpr_training"`
	FirstAidKitGiven models.FlexBool `json:"first_aid_kit_given"`
	LifeSavingSkills models.FlexBool `json:"life_saving_skills"`
}

// EditTraineeRequest represents the payload for editing a trainee. The
// registering professional is never part of the payload; ownership is fixed
// at creation.
type EditTraineeRequest struct {
	Name             string          `json:"name" validate:"required"`
	MobileNumber     string          `json:"mobile_number" validate:"required"`
	Gender           string          `json:"gender" validate:"required"`
	Age              int             `json:"age" validate:"required,gt=0"`
	Department       string          `json:"department" validate:"required"`
	Designation      *string         `json:"designation"`
	Address          string          `json:"address"`
	Block            string          `json:"block"`
	TrainingDate     string          `json:"training_date" validate:"required,datetime=2006-01-02"`
	CPRTraining      models.FlexBool `json:"cpr_training"`
	FirstAidKitGiven models.FlexBool `json:"first_aid_kit_given"`
	LifeSavingSkills models.FlexBool `json:"life_saving_skills"`
}

// TraineeService orchestrates trainee operations with role-scoped
// visibility: admins see every record, professionals only their own.
type TraineeService struct {
	repo      traineeRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTraineeService constructs a TraineeService.
func NewTraineeService(repo traineeRepository, validate *validator.Validate, logger *zap.Logger) *TraineeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TraineeService{repo: repo, validator: validate, logger: logger}
}

// List fetches the actor's visible trainees and runs the caller's query over
// them. After a scoped fetch for a professional, ownership of every returned
// row is asserted before any result leaves the service.
func (s *TraineeService) List(ctx context.Context, actor Actor, opts QueryOptions) ([]models.Trainee, int, error) {
	rows, err := s.repo.List(ctx, actor.scopeOwner())
	if err != nil {
		return nil, 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch trainees")
	}

	if !actor.IsAdmin() {
		if err := query.VerifyOwnership("trainees", rows, actor.UserID, func(t models.Trainee) (int64, int64) {
			return t.ID, t.RegisteredBy
		}); err != nil {
			s.logger.Error("trainee scope violation", zap.Int64("user_id", actor.UserID), zap.Error(err))
			return nil, 0, err
		}
	}

	result := query.Apply(rows, models.TraineeQuery, opts.Search, opts.Filters)
	matches := query.SortBy(result.Matches, models.TraineeQuery, opts.SortBy)
	return matches, result.TotalCount, nil
}

// Create registers a trainee on behalf of the actor. Professionals always
// become the registering owner of what they create; admins record themselves.
func (s *TraineeService) Create(ctx context.Context, actor Actor, req CreateTraineeRequest) (*models.Trainee, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Name, mobile number, gender, age, department and training date are required")
	}

	trainee := &models.Trainee{
		Name:             strings.TrimSpace(req.Name),
		MobileNumber:     strings.TrimSpace(req.MobileNumber),
		Gender:           req.Gender,
		Age:              req.Age,
		Department:       strings.TrimSpace(req.Department),
		Designation:      normalizeOptional(req.Designation),
		Address:          strings.TrimSpace(req.Address),
		Block:            strings.TrimSpace(req.Block),
		TrainingDate:     req.TrainingDate,
		CPRTraining:      req.CPRTraining,
		FirstAidKitGiven: req.FirstAidKitGiven,
		LifeSavingSkills: req.LifeSavingSkills,
		RegisteredBy:     actor.UserID,
	}

	if err := s.repo.Create(ctx, trainee); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to register trainee")
	}
	return trainee, nil
}

// Edit modifies a trainee the actor can see. Professionals may only edit
// rows they registered; ownership itself never changes.
func (s *TraineeService) Edit(ctx context.Context, actor Actor, id int64, req EditTraineeRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid trainee payload")
	}

	existing, err := s.loadVisible(ctx, actor, id)
	if err != nil {
		return err
	}

	trainee := &models.Trainee{
		ID:               existing.ID,
		Name:             strings.TrimSpace(req.Name),
		MobileNumber:     strings.TrimSpace(req.MobileNumber),
		Gender:           req.Gender,
		Age:              req.Age,
		Department:       strings.TrimSpace(req.Department),
		Designation:      normalizeOptional(req.Designation),
		Address:          strings.TrimSpace(req.Address),
		Block:            strings.TrimSpace(req.Block),
		TrainingDate:     req.TrainingDate,
		CPRTraining:      req.CPRTraining,
		FirstAidKitGiven: req.FirstAidKitGiven,
		LifeSavingSkills: req.LifeSavingSkills,
		RegisteredBy:     existing.RegisteredBy,
	}

	if err := s.repo.Update(ctx, trainee); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "Trainee not found or could not be updated")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update trainee")
	}
	return nil
}

// Delete removes a trainee the actor can see.
func (s *TraineeService) Delete(ctx context.Context, actor Actor, id int64) error {
	if _, err := s.loadVisible(ctx, actor, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "Trainee not found or could not be deleted")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete trainee")
	}
	return nil
}

// loadVisible fetches a trainee and enforces the actor's visibility on it.
// Rows outside a professional's scope read as not found, never as forbidden,
// so their existence is not leaked.
func (s *TraineeService) loadVisible(ctx context.Context, actor Actor, id int64) (*models.Trainee, error) {
	trainee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Trainee not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load trainee")
	}
	if !actor.IsAdmin() && trainee.RegisteredBy != actor.UserID {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "Trainee not found")
	}
	return trainee, nil
}
