package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suraksha-health/training-portal-api/internal/models"
)

func TestProfessionalRepositoryListIncludesCounts(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewProfessionalRepository(db)

	columns := []string{
		"id", "name", "username", "mobile_number", "gender", "age",
		"designation", "department", "specialization", "experience_years", "created_at",
		"total_trainings", "total_trainees_trained",
	}
	rows := sqlmock.NewRows(columns).
		AddRow(int64(5), "Dr. Mehta", "mehta", "9876543210", "Male", 45,
			"Surgeon", "Cardiology", nil, 12, time.Now(), 4, 38).
		AddRow(int64(6), "Dr. Rao", "rao", "9123456789", "Female", 38,
			nil, nil, nil, nil, time.Now(), 0, 0)
	mock.ExpectQuery(`WHERE u\.role = 'professional'`).WillReturnRows(rows)

	professionals, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, professionals, 2)
	assert.Equal(t, 4, professionals[0].TotalTrainings)
	assert.Equal(t, 38, professionals[0].TotalTraineesTrained)
	assert.Nil(t, professionals[1].Designation)
	assert.Zero(t, professionals[1].TotalTrainings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfessionalRepositoryRoleOf(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewProfessionalRepository(db)

	mock.ExpectQuery(`SELECT role FROM users WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"role"}).AddRow("admin"))

	role, err := repo.RoleOf(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, role)

	mock.ExpectQuery(`SELECT role FROM users WHERE id = \$1`).
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.RoleOf(context.Background(), 404)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestProfessionalRepositoryExistsByUsername(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewProfessionalRepository(db)

	mock.ExpectQuery(`SELECT 1 FROM users WHERE username = \$1 LIMIT 1`).
		WithArgs("mehta").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	exists, err := repo.ExistsByUsername(context.Background(), "mehta", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery(`SELECT 1 FROM users WHERE username = \$1 AND id <> \$2 LIMIT 1`).
		WithArgs("mehta", int64(5)).
		WillReturnError(sql.ErrNoRows)
	exists, err = repo.ExistsByUsername(context.Background(), "mehta", 5)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfessionalRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewProfessionalRepository(db)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Dr. Rao", "rao", "hashed", "9123456789", "Female", 38,
			nil, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), time.Now()))

	professional := &models.Professional{
		Name:         "Dr. Rao",
		Username:     "rao",
		MobileNumber: "9123456789",
		Gender:       "Female",
		Age:          38,
	}
	require.NoError(t, repo.Create(context.Background(), professional, "hashed"))
	assert.Equal(t, int64(7), professional.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfessionalRepositoryUpdateOnlyTouchesProfessionals(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewProfessionalRepository(db)

	mock.ExpectExec(`(?s)UPDATE users SET .+ WHERE id = \$1 AND role = 'professional'`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.Professional{ID: 1, Name: "Admin"})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestProfessionalRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewProfessionalRepository(db)

	mock.ExpectExec(`DELETE FROM users WHERE id = \$1 AND role = 'professional'`).
		WithArgs(int64(6)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), 6))
	assert.NoError(t, mock.ExpectationsWereMet())
}
