package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suraksha-health/training-portal-api/internal/models"
)

var trainingRowColumns = []string{
	"id", "title", "description", "training_topic", "address", "block",
	"training_date", "training_time", "duration_hours", "max_trainees", "status",
	"conducted_by", "conducted_by_name", "created_at", "updated_at",
}

func trainingRow(id int64, title string, conductedBy int64) []driver.Value {
	now := time.Now()
	return []driver.Value{
		id, title, nil, "CPR Basics", "Community Hall", "North",
		"2026-02-10", "10:30:00", 2.5, 40, "Planned",
		conductedBy, "Dr. Mehta", now, now,
	}
}

func TestTrainingRepositoryListOrdering(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewTrainingRepository(db)

	rows := sqlmock.NewRows(trainingRowColumns).
		AddRow(trainingRow(2, "Advanced CPR", 5)...).
		AddRow(trainingRow(1, "First Aid", 6)...)
	mock.ExpectQuery(`(?s)SELECT .+ FROM trainings t JOIN users u ON t\.conducted_by = u\.id ORDER BY t\.training_date DESC, t\.training_time DESC`).
		WillReturnRows(rows)

	trainings, err := repo.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, trainings, 2)
	assert.Equal(t, "Advanced CPR", trainings[0].Title)
	assert.Equal(t, models.StatusPlanned, trainings[0].Status)
	assert.Equal(t, "2026-02-10", trainings[0].TrainingDate)
	assert.Equal(t, "10:30:00", trainings[0].TrainingTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrainingRepositoryListScopedByConductor(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewTrainingRepository(db)

	rows := sqlmock.NewRows(trainingRowColumns).AddRow(trainingRow(3, "First Aid", 5)...)
	mock.ExpectQuery(`WHERE t\.conducted_by = \$1 ORDER BY`).
		WithArgs(int64(5)).
		WillReturnRows(rows)

	owner := int64(5)
	trainings, err := repo.List(context.Background(), &owner)
	require.NoError(t, err)
	require.Len(t, trainings, 1)
	assert.Equal(t, int64(5), trainings[0].ConductedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrainingRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewTrainingRepository(db)

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO trainings`).
		WithArgs("First Aid", nil, "First Aid Basics", "Community Hall", "North",
			"2026-02-10", "10:30", 2.0, 30, "Planned", int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(9), now, now))

	training := &models.Training{
		Title:         "First Aid",
		TrainingTopic: "First Aid Basics",
		Address:       "Community Hall",
		Block:         "North",
		TrainingDate:  "2026-02-10",
		TrainingTime:  "10:30",
		DurationHours: 2.0,
		MaxTrainees:   30,
		Status:        models.StatusPlanned,
		ConductedBy:   5,
	}
	require.NoError(t, repo.Create(context.Background(), training))
	assert.Equal(t, int64(9), training.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrainingRepositoryUpdateMissingRow(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewTrainingRepository(db)

	mock.ExpectExec(`(?s)UPDATE trainings SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.Training{ID: 404, Status: models.StatusCompleted})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestTrainingRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewTrainingRepository(db)

	mock.ExpectExec(`DELETE FROM trainings WHERE id = \$1`).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), 9))

	mock.ExpectExec(`DELETE FROM trainings WHERE id = \$1`).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), 404), sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
