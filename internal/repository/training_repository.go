package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/suraksha-health/training-portal-api/internal/models"
)

const trainingColumns = `t.id, t.title, t.description, t.training_topic, t.address, t.block,
		to_char(t.training_date, 'YYYY-MM-DD') AS training_date,
		to_char(t.training_time, 'HH24:MI:SS') AS training_time,
		t.duration_hours, t.max_trainees, t.status,
		t.conducted_by, u.name AS conducted_by_name, t.created_at, t.updated_at`

// TrainingRepository manages persistence for training sessions.
type TrainingRepository struct {
	db *sqlx.DB
}

// NewTrainingRepository constructs a TrainingRepository.
func NewTrainingRepository(db *sqlx.DB) *TrainingRepository {
	return &TrainingRepository{db: db}
}

// List returns trainings ordered by session date, most recent first. A
// non-nil ownerID scopes the query to sessions conducted by that
// professional.
func (r *TrainingRepository) List(ctx context.Context, ownerID *int64) ([]models.Training, error) {
	query := fmt.Sprintf(`SELECT %s FROM trainings t JOIN users u ON t.conducted_by = u.id`, trainingColumns)
	var args []interface{}
	if ownerID != nil {
		query += " WHERE t.conducted_by = $1"
		args = append(args, *ownerID)
	}
	query += " ORDER BY t.training_date DESC, t.training_time DESC"

	trainings := []models.Training{}
	if err := r.db.SelectContext(ctx, &trainings, query, args...); err != nil {
		return nil, fmt.Errorf("list trainings: %w", err)
	}
	return trainings, nil
}

// FindByID fetches a training by ID.
func (r *TrainingRepository) FindByID(ctx context.Context, id int64) (*models.Training, error) {
	query := fmt.Sprintf(`SELECT %s FROM trainings t JOIN users u ON t.conducted_by = u.id WHERE t.id = $1 LIMIT 1`, trainingColumns)
	var training models.Training
	if err := r.db.GetContext(ctx, &training, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find training: %w", err)
	}
	return &training, nil
}

// Create inserts a new training session with status Planned.
func (r *TrainingRepository) Create(ctx context.Context, t *models.Training) error {
	const query = `INSERT INTO trainings (title, description, training_topic, address, block, training_date, training_time, duration_hours, max_trainees, status, conducted_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`
	row := r.db.QueryRowxContext(ctx, query,
		t.Title, t.Description, t.TrainingTopic, t.Address, t.Block,
		t.TrainingDate, t.TrainingTime, t.DurationHours, t.MaxTrainees, t.Status, t.ConductedBy)
	if err := row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return fmt.Errorf("create training: %w", err)
	}
	return nil
}

// Update modifies a training session. conducted_by is deliberately absent;
// ownership never changes. sql.ErrNoRows when the row is missing.
func (r *TrainingRepository) Update(ctx context.Context, t *models.Training) error {
	const query = `UPDATE trainings SET
			title = $2, description = $3, training_topic = $4, address = $5, block = $6,
			training_date = $7, training_time = $8, duration_hours = $9, max_trainees = $10, status = $11,
			updated_at = NOW()
		WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query,
		t.ID, t.Title, t.Description, t.TrainingTopic, t.Address, t.Block,
		t.TrainingDate, t.TrainingTime, t.DurationHours, t.MaxTrainees, t.Status)
	if err != nil {
		return fmt.Errorf("update training: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update training rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a training. sql.ErrNoRows when nothing matched.
func (r *TrainingRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM trainings WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete training: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete training rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
