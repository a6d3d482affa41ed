package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/suraksha-health/training-portal-api/internal/models"
	appErrors "github.com/suraksha-health/training-portal-api/pkg/errors"
)

type professionalRepoMock struct {
	listResp     []models.Professional
	listErr      error
	roles        map[int64]models.UserRole
	usernames    map[string]bool
	createdHash  string
	created      *models.Professional
	updated      *models.Professional
	deletedID    int64
	createCalled bool
}

func (m *professionalRepoMock) List(ctx context.Context) ([]models.Professional, error) {
	return m.listResp, m.listErr
}

func (m *professionalRepoMock) RoleOf(ctx context.Context, id int64) (models.UserRole, error) {
	role, ok := m.roles[id]
	if !ok {
		return "", sql.ErrNoRows
	}
	return role, nil
}

func (m *professionalRepoMock) ExistsByUsername(ctx context.Context, username string, excludeID int64) (bool, error) {
	return m.usernames[username], nil
}

func (m *professionalRepoMock) Create(ctx context.Context, p *models.Professional, passwordHash string) error {
	m.createCalled = true
	m.created = p
	m.createdHash = passwordHash
	p.ID = 10
	return nil
}

func (m *professionalRepoMock) Update(ctx context.Context, p *models.Professional) error {
	m.updated = p
	return nil
}

func (m *professionalRepoMock) Delete(ctx context.Context, id int64) error {
	m.deletedID = id
	return nil
}

func strPtr(s string) *string { return &s }

func validRegisterRequest() RegisterProfessionalRequest {
	return RegisterProfessionalRequest{
		Name:         "Dr. Rao",
		Username:     "rao",
		MobileNumber: "9123456789",
		Gender:       "Female",
		Age:          38,
		Department:   strPtr("Pediatrics"),
	}
}

func TestProfessionalServiceRegisterHashesMobileAsPassword(t *testing.T) {
	repo := &professionalRepoMock{usernames: map[string]bool{}}
	svc := NewProfessionalService(repo, nil, nil)

	professional, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)
	require.True(t, repo.createCalled)
	assert.Equal(t, int64(10), professional.ID)

	// the initial password is the mobile number
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.createdHash), []byte("9123456789")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(repo.createdHash), []byte("something-else")))
}

func TestProfessionalServiceRegisterDuplicateUsername(t *testing.T) {
	repo := &professionalRepoMock{usernames: map[string]bool{"rao": true}}
	svc := NewProfessionalService(repo, nil, nil)

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, "Username already exists", appErr.Message)
	assert.Equal(t, appErrors.ErrConflict.Status, appErr.Status)
	assert.False(t, repo.createCalled)
}

func TestProfessionalServiceRegisterValidation(t *testing.T) {
	repo := &professionalRepoMock{usernames: map[string]bool{}}
	svc := NewProfessionalService(repo, nil, nil)

	req := validRegisterRequest()
	req.Name = ""
	_, err := svc.Register(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Status, appErrors.FromError(err).Status)
	assert.False(t, repo.createCalled)
}

func TestProfessionalServiceEditRejectsAdmin(t *testing.T) {
	repo := &professionalRepoMock{roles: map[int64]models.UserRole{1: models.RoleAdmin}}
	svc := NewProfessionalService(repo, nil, nil)

	err := svc.Edit(context.Background(), 1, EditProfessionalRequest{
		Name: "Admin", Username: "admin", MobileNumber: "9000000000", Gender: "Male", Age: 50,
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, "Cannot edit admin user", appErr.Message)
	assert.Equal(t, appErrors.ErrForbidden.Status, appErr.Status)
	assert.Nil(t, repo.updated)
}

func TestProfessionalServiceEditMissing(t *testing.T) {
	repo := &professionalRepoMock{roles: map[int64]models.UserRole{}}
	svc := NewProfessionalService(repo, nil, nil)

	err := svc.Edit(context.Background(), 404, EditProfessionalRequest{
		Name: "Dr. Rao", Username: "rao", MobileNumber: "9123456789", Gender: "Female", Age: 38,
	})
	require.Error(t, err)
	assert.Equal(t, "Professional not found", appErrors.FromError(err).Message)
}

func TestProfessionalServiceEditUpdates(t *testing.T) {
	repo := &professionalRepoMock{
		roles:     map[int64]models.UserRole{6: models.RoleProfessional},
		usernames: map[string]bool{},
	}
	svc := NewProfessionalService(repo, nil, nil)

	err := svc.Edit(context.Background(), 6, EditProfessionalRequest{
		Name: "  Dr. Rao  ", Username: "rao", MobileNumber: "9123456789", Gender: "Female", Age: 39,
	})
	require.NoError(t, err)
	require.NotNil(t, repo.updated)
	assert.Equal(t, int64(6), repo.updated.ID)
	assert.Equal(t, "Dr. Rao", repo.updated.Name)
}

func TestProfessionalServiceDeleteRejectsAdmin(t *testing.T) {
	repo := &professionalRepoMock{roles: map[int64]models.UserRole{1: models.RoleAdmin}}
	svc := NewProfessionalService(repo, nil, nil)

	err := svc.Delete(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, "Cannot delete admin user", appErrors.FromError(err).Message)
	assert.Zero(t, repo.deletedID)
}

func TestProfessionalServiceDelete(t *testing.T) {
	repo := &professionalRepoMock{roles: map[int64]models.UserRole{6: models.RoleProfessional}}
	svc := NewProfessionalService(repo, nil, nil)

	require.NoError(t, svc.Delete(context.Background(), 6))
	assert.Equal(t, int64(6), repo.deletedID)
}

func TestProfessionalServiceListRunsQuery(t *testing.T) {
	repo := &professionalRepoMock{listResp: []models.Professional{
		{ID: 1, Name: "Dr. Mehta", Username: "mehta", MobileNumber: "9876543210", Gender: "Male", Department: strPtr("Cardiology"), TotalTrainings: 4},
		{ID: 2, Name: "Dr. Rao", Username: "rao", MobileNumber: "9123456789", Gender: "Female", Department: strPtr("Pediatrics"), TotalTrainings: 9},
		{ID: 3, Name: "Dr. Singh", Username: "singh", MobileNumber: "9988776655", Gender: "Male", Department: strPtr("Cardiology"), TotalTrainings: 1},
	}}
	svc := NewProfessionalService(repo, nil, nil)

	professionals, total, err := svc.List(context.Background(), QueryOptions{
		Filters: map[string]string{"department": "Cardiology"},
		SortBy:  "total_trainings",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, professionals, 2)
	assert.Equal(t, int64(3), professionals[0].ID)
	assert.Equal(t, int64(1), professionals[1].ID)
}
