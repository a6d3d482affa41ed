package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/suraksha-health/training-portal-api/internal/models"
)

// ProfessionalRepository manages the professional-role rows of the users
// table.
type ProfessionalRepository struct {
	db *sqlx.DB
}

// NewProfessionalRepository constructs a ProfessionalRepository.
func NewProfessionalRepository(db *sqlx.DB) *ProfessionalRepository {
	return &ProfessionalRepository{db: db}
}

// List returns every professional with their training and trainee counts,
// newest first.
func (r *ProfessionalRepository) List(ctx context.Context) ([]models.Professional, error) {
	const query = `
		SELECT
			u.id, u.name, u.username, u.mobile_number, u.gender, u.age,
			u.designation, u.department, u.specialization, u.experience_years, u.created_at,
			COUNT(DISTINCT t.id) AS total_trainings,
			COUNT(DISTINCT tr.id) AS total_trainees_trained
		FROM users u
		LEFT JOIN trainings t ON u.id = t.conducted_by
		LEFT JOIN trainees tr ON u.id = tr.registered_by
		WHERE u.role = 'professional'
		GROUP BY u.id, u.name, u.username, u.mobile_number, u.gender, u.age,
			u.designation, u.department, u.specialization, u.experience_years, u.created_at
		ORDER BY u.created_at DESC`
	professionals := []models.Professional{}
	if err := r.db.SelectContext(ctx, &professionals, query); err != nil {
		return nil, fmt.Errorf("list professionals: %w", err)
	}
	return professionals, nil
}

// RoleOf returns the role of a user row. sql.ErrNoRows when absent.
func (r *ProfessionalRepository) RoleOf(ctx context.Context, id int64) (models.UserRole, error) {
	const query = `SELECT role FROM users WHERE id = $1 LIMIT 1`
	var role models.UserRole
	if err := r.db.GetContext(ctx, &role, query, id); err != nil {
		if err == sql.ErrNoRows {
			return "", err
		}
		return "", fmt.Errorf("find user role: %w", err)
	}
	return role, nil
}

// ExistsByUsername checks whether another user already holds the username.
func (r *ProfessionalRepository) ExistsByUsername(ctx context.Context, username string, excludeID int64) (bool, error) {
	query := "SELECT 1 FROM users WHERE username = $1"
	args := []interface{}{username}
	if excludeID > 0 {
		query += " AND id <> $2"
		args = append(args, excludeID)
	}
	var exists int
	if err := r.db.GetContext(ctx, &exists, query+" LIMIT 1", args...); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check username: %w", err)
	}
	return true, nil
}

// Create inserts a new professional user. The caller supplies the initial
// password hash.
func (r *ProfessionalRepository) Create(ctx context.Context, p *models.Professional, passwordHash string) error {
	const query = `INSERT INTO users (name, username, password_hash, mobile_number, gender, age, role, designation, department, specialization, experience_years)
		VALUES ($1, $2, $3, $4, $5, $6, 'professional', $7, $8, $9, $10)
		RETURNING id, created_at`
	row := r.db.QueryRowxContext(ctx, query,
		p.Name, p.Username, passwordHash, p.MobileNumber, p.Gender, p.Age,
		p.Designation, p.Department, p.Specialization, p.ExperienceYears)
	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return fmt.Errorf("create professional: %w", err)
	}
	return nil
}

// Update modifies a professional's profile. sql.ErrNoRows when the row is
// missing or not a professional.
func (r *ProfessionalRepository) Update(ctx context.Context, p *models.Professional) error {
	const query = `UPDATE users SET
			name = $2, username = $3, mobile_number = $4, gender = $5, age = $6,
			designation = $7, department = $8, specialization = $9, experience_years = $10
		WHERE id = $1 AND role = 'professional'`
	res, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Username, p.MobileNumber, p.Gender, p.Age,
		p.Designation, p.Department, p.Specialization, p.ExperienceYears)
	if err != nil {
		return fmt.Errorf("update professional: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update professional rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a professional user. sql.ErrNoRows when nothing matched.
func (r *ProfessionalRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id = $1 AND role = 'professional'`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete professional: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete professional rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
