package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suraksha-health/training-portal-api/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

var traineeRowColumns = []string{
	"id", "name", "mobile_number", "gender", "age", "department", "designation",
	"address", "block", "training_date", "cpr_training", "first_aid_kit_given",
	"life_saving_skills", "registered_by", "registered_by_name", "created_at",
}

func traineeRow(id int64, name string, registeredBy int64) []driver.Value {
	return []driver.Value{
		id, name, "9876543210", "Female", 32, "Cardiology", nil,
		"Ward 5", "North", "2026-01-15", true, false,
		true, registeredBy, "Dr. Mehta", time.Now(),
	}
}

func TestTraineeRepositoryListAll(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewTraineeRepository(db)

	rows := sqlmock.NewRows(traineeRowColumns).
		AddRow(traineeRow(2, "Asha", 5)...).
		AddRow(traineeRow(1, "Ravi", 6)...)
	mock.ExpectQuery(`(?s)SELECT .+ FROM trainees t JOIN users u ON t\.registered_by = u\.id ORDER BY t\.created_at DESC`).
		WillReturnRows(rows)

	trainees, err := repo.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, trainees, 2)
	assert.Equal(t, int64(2), trainees[0].ID)
	assert.True(t, trainees[0].CPRTraining.Bool())
	assert.Equal(t, "Dr. Mehta", trainees[0].RegisteredByName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTraineeRepositoryListScopedByOwner(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewTraineeRepository(db)

	rows := sqlmock.NewRows(traineeRowColumns).AddRow(traineeRow(3, "Meena", 5)...)
	mock.ExpectQuery(`WHERE t\.registered_by = \$1 ORDER BY t\.created_at DESC`).
		WithArgs(int64(5)).
		WillReturnRows(rows)

	owner := int64(5)
	trainees, err := repo.List(context.Background(), &owner)
	require.NoError(t, err)
	require.Len(t, trainees, 1)
	assert.Equal(t, int64(5), trainees[0].RegisteredBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTraineeRepositoryCreateReturnsID(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewTraineeRepository(db)

	mock.ExpectQuery(`INSERT INTO trainees`).
		WithArgs("Asha", "9876543210", "Female", 32, "Cardiology", nil,
			"Ward 5", "North", "2026-01-15", models.FlexBool(true), models.FlexBool(false), models.FlexBool(false), int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), time.Now()))

	trainee := &models.Trainee{
		Name:         "Asha",
		MobileNumber: "9876543210",
		Gender:       "Female",
		Age:          32,
		Department:   "Cardiology",
		Address:      "Ward 5",
		Block:        "North",
		TrainingDate: "2026-01-15",
		CPRTraining:  true,
		RegisteredBy: 5,
	}
	require.NoError(t, repo.Create(context.Background(), trainee))
	assert.Equal(t, int64(11), trainee.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTraineeRepositoryUpdateOmitsOwner(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewTraineeRepository(db)

	mock.ExpectExec(`UPDATE trainees SET`).
		WithArgs(int64(3), "Asha", "9876543210", "Female", 33, "Cardiology", nil,
			"Ward 5", "North", "2026-01-15", models.FlexBool(true), models.FlexBool(true), models.FlexBool(false)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	trainee := &models.Trainee{
		ID:               3,
		Name:             "Asha",
		MobileNumber:     "9876543210",
		Gender:           "Female",
		Age:              33,
		Department:       "Cardiology",
		Address:          "Ward 5",
		Block:            "North",
		TrainingDate:     "2026-01-15",
		CPRTraining:      true,
		FirstAidKitGiven: true,
		RegisteredBy:     99,
	}
	require.NoError(t, repo.Update(context.Background(), trainee))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTraineeRepositoryUpdateMissingRow(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewTraineeRepository(db)

	mock.ExpectExec(`UPDATE trainees SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.Trainee{ID: 404})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestTraineeRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewTraineeRepository(db)

	mock.ExpectExec(`DELETE FROM trainees WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), 3))

	mock.ExpectExec(`DELETE FROM trainees WHERE id = \$1`).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), 404), sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
