package models

import (
	"strconv"
	"time"

	"github.com/suraksha-health/training-portal-api/internal/query"
)

// Professional is the professional-role slice of the users table as the
// admin roster lists it, augmented with activity counts.
type Professional struct {
	ID                   int64     `db:"id" json:"id"`
	Name                 string    `db:"name" json:"name"`
	Username             string    `db:"username" json:"username"`
	MobileNumber         string    `db:"mobile_number" json:"mobile_number"`
	Gender               string    `db:"gender" json:"gender"`
	Age                  int       `db:"age" json:"age"`
	Designation          *string   `db:"designation" json:"designation,omitempty"`
	Department           *string   `db:"department" json:"department,omitempty"`
	Specialization       *string   `db:"specialization" json:"specialization,omitempty"`
	ExperienceYears      *int      `db:"experience_years" json:"experience_years,omitempty"`
	TotalTrainings       int       `db:"total_trainings" json:"total_trainings"`
	TotalTraineesTrained int       `db:"total_trainees_trained" json:"total_trainees_trained"`
	CreatedAt            time.Time `db:"created_at" json:"created_at"`
}

// ProfessionalQuery declares the roster's searchable, filterable and
// sortable fields.
var ProfessionalQuery = query.Config{
	SearchableFields: []string{"name", "username", "mobile_number", "designation", "department"},
	FilterableFields: []string{"department", "designation", "gender"},
	SortableFields:   []string{"name", "experience_years", "total_trainings", "total_trainees_trained"},
}

// QueryField implements query.Record.
func (p Professional) QueryField(name string) (string, bool) {
	switch name {
	case "name":
		return p.Name, true
	case "username":
		return p.Username, true
	case "mobile_number":
		return p.MobileNumber, true
	case "gender":
		return p.Gender, true
	case "designation":
		return deref(p.Designation), true
	case "department":
		return deref(p.Department), true
	case "specialization":
		return deref(p.Specialization), true
	case "experience_years":
		if p.ExperienceYears == nil {
			return "0", true
		}
		return strconv.Itoa(*p.ExperienceYears), true
	case "total_trainings":
		return strconv.Itoa(p.TotalTrainings), true
	case "total_trainees_trained":
		return strconv.Itoa(p.TotalTraineesTrained), true
	}
	return "", false
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
