package models

import (
	"strconv"
	"time"

	"github.com/suraksha-health/training-portal-api/internal/query"
)

// Trainee is a person registered into a training by a professional.
// RegisteredBy is set at creation and never changes; it is the ownership
// field visibility scoping runs on.
type Trainee struct {
	ID               int64     `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"`
	MobileNumber     string    `db:"mobile_number" json:"mobile_number"`
	Gender           string    `db:"gender" json:"gender"`
	Age              int       `db:"age" json:"age"`
	Department       string    `db:"department" json:"department"`
	Designation      *string   `db:"designation" json:"designation,omitempty"`
	Address          string    `db:"address" json:"address"`
	Block            string    `db:"block" json:"block"`
	TrainingDate     string    `db:"training_date" json:"training_date"`
	CPRTraining      FlexBool  `db:"cpr_training" json:"cpr_training"`
	FirstAidKitGiven FlexBool  `db:"first_aid_kit_given" json:"first_aid_kit_given"`
	LifeSavingSkills FlexBool  `db:"life_saving_skills" json:"life_saving_skills"`
	RegisteredBy     int64     `db:"registered_by" json:"registered_by"`
	RegisteredByName string    `db:"registered_by_name" json:"registered_by_name"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

// TraineeQuery declares the trainee list's searchable, filterable and
// sortable fields. The skill booleans stay out of free-text search and are
// matched exactly as "true"/"false".
var TraineeQuery = query.Config{
	SearchableFields: []string{"name", "mobile_number", "designation", "department", "address"},
	FilterableFields: []string{"department", "block", "gender", "cpr_training", "first_aid_kit_given", "life_saving_skills"},
	SortableFields:   []string{"name", "age", "training_date"},
}

// QueryField implements query.Record.
func (t Trainee) QueryField(name string) (string, bool) {
	switch name {
	case "name":
		return t.Name, true
	case "mobile_number":
		return t.MobileNumber, true
	case "gender":
		return t.Gender, true
	case "department":
		return t.Department, true
	case "designation":
		return deref(t.Designation), true
	case "address":
		return t.Address, true
	case "block":
		return t.Block, true
	case "training_date":
		return t.TrainingDate, true
	case "age":
		return strconv.Itoa(t.Age), true
	case "cpr_training":
		return strconv.FormatBool(t.CPRTraining.Bool()), true
	case "first_aid_kit_given":
		return strconv.FormatBool(t.FirstAidKitGiven.Bool()), true
	case "life_saving_skills":
		return strconv.FormatBool(t.LifeSavingSkills.Bool()), true
	}
	return "", false
}
