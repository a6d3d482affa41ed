package models

import "time"

// UserRole represents the portal's two roles.
type UserRole string

const (
	RoleAdmin        UserRole = "admin"
	RoleProfessional UserRole = "professional"
)

// User represents an application user stored in the users table. Both
// administrators and medical professionals live here, discriminated by role.
type User struct {
	ID              int64     `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Username        string    `db:"username" json:"username"`
	PasswordHash    string    `db:"password_hash" json:"-"`
	MobileNumber    string    `db:"mobile_number" json:"mobile_number"`
	Gender          string    `db:"gender" json:"gender"`
	Age             int       `db:"age" json:"age"`
	Role            UserRole  `db:"role" json:"role"`
	Designation     *string   `db:"designation" json:"designation,omitempty"`
	Department      *string   `db:"department" json:"department,omitempty"`
	Specialization  *string   `db:"specialization" json:"specialization,omitempty"`
	ExperienceYears *int      `db:"experience_years" json:"experience_years,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// Info projects the user for the login response and session context.
func (u *User) Info() UserInfo {
	return UserInfo{
		ID:              u.ID,
		Name:            u.Name,
		Username:        u.Username,
		MobileNumber:    u.MobileNumber,
		Gender:          u.Gender,
		Age:             u.Age,
		Role:            u.Role,
		Designation:     u.Designation,
		Department:      u.Department,
		Specialization:  u.Specialization,
		ExperienceYears: u.ExperienceYears,
	}
}
