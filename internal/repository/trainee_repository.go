package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/suraksha-health/training-portal-api/internal/models"
)

const traineeColumns = `t.id, t.name, t.mobile_number, t.gender, t.age, t.department, t.designation, t.address, t.block,
		to_char(t.training_date, 'YYYY-MM-DD') AS training_date,
		t.cpr_training, t.first_aid_kit_given, t.life_saving_skills,
		t.registered_by, u.name AS registered_by_name, t.created_at`

// TraineeRepository manages persistence for trainees.
type TraineeRepository struct {
	db *sqlx.DB
}

// NewTraineeRepository constructs a TraineeRepository.
func NewTraineeRepository(db *sqlx.DB) *TraineeRepository {
	return &TraineeRepository{db: db}
}

// List returns trainees newest first. A non-nil ownerID scopes the query to
// rows registered by that professional; nil returns the full collection.
func (r *TraineeRepository) List(ctx context.Context, ownerID *int64) ([]models.Trainee, error) {
	query := fmt.Sprintf(`SELECT %s FROM trainees t JOIN users u ON t.registered_by = u.id`, traineeColumns)
	var args []interface{}
	if ownerID != nil {
		query += " WHERE t.registered_by = $1"
		args = append(args, *ownerID)
	}
	query += " ORDER BY t.created_at DESC"

	trainees := []models.Trainee{}
	if err := r.db.SelectContext(ctx, &trainees, query, args...); err != nil {
		return nil, fmt.Errorf("list trainees: %w", err)
	}
	return trainees, nil
}

// FindByID fetches a trainee by ID.
func (r *TraineeRepository) FindByID(ctx context.Context, id int64) (*models.Trainee, error) {
	query := fmt.Sprintf(`SELECT %s FROM trainees t JOIN users u ON t.registered_by = u.id WHERE t.id = $1 LIMIT 1`, traineeColumns)
	var trainee models.Trainee
	if err := r.db.GetContext(ctx, &trainee, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find trainee: %w", err)
	}
	return &trainee, nil
}

// Create inserts a new trainee record.
func (r *TraineeRepository) Create(ctx context.Context, t *models.Trainee) error {
	const query = `INSERT INTO trainees (name, mobile_number, gender, age, department, designation, address, block, training_date, cpr_training, first_aid_kit_given, life_saving_skills, registered_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at`
	row := r.db.QueryRowxContext(ctx, query,
		t.Name, t.MobileNumber, t.Gender, t.Age, t.Department, t.Designation,
		t.Address, t.Block, t.TrainingDate,
		t.CPRTraining, t.FirstAidKitGiven, t.LifeSavingSkills, t.RegisteredBy)
	if err := row.Scan(&t.ID, &t.CreatedAt); err != nil {
		return fmt.Errorf("create trainee: %w", err)
	}
	return nil
}

// Update modifies a trainee. registered_by is deliberately absent from the
// statement; ownership never changes after creation. sql.ErrNoRows when the
// row is missing.
func (r *TraineeRepository) Update(ctx context.Context, t *models.Trainee) error {
	const query = `UPDATE trainees SET
			name = $2, mobile_number = $3, gender = $4, age = $5, department = $6, designation = $7,
			address = $8, block = $9, training_date = $10,
			cpr_training = $11, first_aid_kit_given = $12, life_saving_skills = $13
		WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query,
		t.ID, t.Name, t.MobileNumber, t.Gender, t.Age, t.Department, t.Designation,
		t.Address, t.Block, t.TrainingDate,
		t.CPRTraining, t.FirstAidKitGiven, t.LifeSavingSkills)
	if err != nil {
		return fmt.Errorf("update trainee: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update trainee rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a trainee. sql.ErrNoRows when nothing matched.
func (r *TraineeRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM trainees WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete trainee: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete trainee rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
