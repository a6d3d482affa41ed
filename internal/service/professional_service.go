package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/suraksha-health/training-portal-api/internal/models"
	"github.com/suraksha-health/training-portal-api/internal/query"
	appErrors "github.com/suraksha-health/training-portal-api/pkg/errors"
)

type professionalRepository interface {
	List(ctx context.Context) ([]models.Professional, error)
	RoleOf(ctx context.Context, id int64) (models.UserRole, error)
	ExistsByUsername(ctx context.Context, username string, excludeID int64) (bool, error)
	Create(ctx context.Context, p *models.Professional, passwordHash string) error
	Update(ctx context.Context, p *models.Professional) error
	Delete(ctx context.Context, id int64) error
}

// RegisterProfessionalRequest represents the payload for registering a
// professional. The initial password is the mobile number.
type RegisterProfessionalRequest struct {
	Name            string  `json:"name" validate:"required"`
	Username        string  `json:"username" validate:"required"`
	MobileNumber    string  `json:"mobile_number" validate:"required"`
	Gender          string  `json:"gender" validate:"required"`
	Age             int     `json:"age" validate:"required,gt=0"`
	Designation     *string `json:"designation"`
	Department      *string `json:"department"`
	Specialization  *string `json:"specialization"`
	ExperienceYears *int    `json:"experience_years" validate:"omitempty,gte=0"`
}

// EditProfessionalRequest represents the payload for editing a professional.
type EditProfessionalRequest struct {
	Name            string  `json:"name" validate:"required"`
	Username        string  `json:"username" validate:"required"`
	MobileNumber    string  `json:"mobile_number" validate:"required"`
	Gender          string  `json:"gender" validate:"required"`
	Age             int     `json:"age" validate:"required,gt=0"`
	Designation     *string `json:"designation"`
	Department      *string `json:"department"`
	Specialization  *string `json:"specialization"`
	ExperienceYears *int    `json:"experience_years" validate:"omitempty,gte=0"`
}

// ProfessionalService orchestrates roster operations. All of its operations
// are admin-only; route-level RBAC enforces that before calls arrive here.
type ProfessionalService struct {
	repo      professionalRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewProfessionalService constructs a ProfessionalService.
func NewProfessionalService(repo professionalRepository, validate *validator.Validate, logger *zap.Logger) *ProfessionalService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfessionalService{repo: repo, validator: validate, logger: logger}
}

// List fetches the full roster and runs the caller's query over it. The
// returned total always equals the number of rows returned.
func (s *ProfessionalService) List(ctx context.Context, opts QueryOptions) ([]models.Professional, int, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch professionals")
	}

	result := query.Apply(rows, models.ProfessionalQuery, opts.Search, opts.Filters)
	matches := query.SortBy(result.Matches, models.ProfessionalQuery, opts.SortBy)
	return matches, result.TotalCount, nil
}

// Register creates a new professional account. The mobile number doubles as
// the initial password, stored bcrypt-hashed.
func (s *ProfessionalService) Register(ctx context.Context, req RegisterProfessionalRequest) (*models.Professional, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Name, username, mobile number, gender and age are required")
	}

	exists, err := s.repo.ExistsByUsername(ctx, strings.TrimSpace(req.Username), 0)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check username")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "Username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.MobileNumber), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	professional := &models.Professional{
		Name:            strings.TrimSpace(req.Name),
		Username:        strings.TrimSpace(req.Username),
		MobileNumber:    strings.TrimSpace(req.MobileNumber),
		Gender:          req.Gender,
		Age:             req.Age,
		Designation:     normalizeOptional(req.Designation),
		Department:      normalizeOptional(req.Department),
		Specialization:  normalizeOptional(req.Specialization),
		ExperienceYears: req.ExperienceYears,
	}

	if err := s.repo.Create(ctx, professional, string(hash)); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to register professional")
	}
	return professional, nil
}

// Edit modifies an existing professional. Admin accounts cannot be edited
// through this path.
func (s *ProfessionalService) Edit(ctx context.Context, id int64, req EditProfessionalRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid professional payload")
	}

	role, err := s.repo.RoleOf(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "Professional not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load professional")
	}
	if role == models.RoleAdmin {
		return appErrors.Clone(appErrors.ErrForbidden, "Cannot edit admin user")
	}

	exists, err := s.repo.ExistsByUsername(ctx, strings.TrimSpace(req.Username), id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check username")
	}
	if exists {
		return appErrors.Clone(appErrors.ErrConflict, "Username already exists")
	}

	professional := &models.Professional{
		ID:              id,
		Name:            strings.TrimSpace(req.Name),
		Username:        strings.TrimSpace(req.Username),
		MobileNumber:    strings.TrimSpace(req.MobileNumber),
		Gender:          req.Gender,
		Age:             req.Age,
		Designation:     normalizeOptional(req.Designation),
		Department:      normalizeOptional(req.Department),
		Specialization:  normalizeOptional(req.Specialization),
		ExperienceYears: req.ExperienceYears,
	}

	if err := s.repo.Update(ctx, professional); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "Professional not found or could not be updated")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update professional")
	}
	return nil
}

// Delete removes a professional account. Admin accounts cannot be deleted.
func (s *ProfessionalService) Delete(ctx context.Context, id int64) error {
	role, err := s.repo.RoleOf(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "Professional not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load professional")
	}
	if role == models.RoleAdmin {
		return appErrors.Clone(appErrors.ErrForbidden, "Cannot delete admin user")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "Professional not found or could not be deleted")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete professional")
	}
	return nil
}

func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
