package service

import (
	"context"

	"github.com/suraksha-health/training-portal-api/internal/models"
	appErrors "github.com/suraksha-health/training-portal-api/pkg/errors"
)

type dataUserRepository interface {
	ListAll(ctx context.Context) ([]models.User, error)
}

// DataService backs the admin data viewer: the raw contents of all three
// tables in one response.
type DataService struct {
	users     dataUserRepository
	trainees  traineeRepository
	trainings trainingRepository
}

// NewDataService constructs a DataService.
func NewDataService(users dataUserRepository, trainees traineeRepository, trainings trainingRepository) *DataService {
	return &DataService{users: users, trainees: trainees, trainings: trainings}
}

// Tables returns every user, trainee and training. RBAC restricts this to
// admins before calls arrive here.
func (s *DataService) Tables(ctx context.Context) ([]models.User, []models.Trainee, []models.Training, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch users")
	}
	trainees, err := s.trainees.List(ctx, nil)
	if err != nil {
		return nil, nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch trainees")
	}
	trainings, err := s.trainings.List(ctx, nil)
	if err != nil {
		return nil, nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch trainings")
	}
	return users, trainees, trainings, nil
}
