package models

import (
	"strconv"
	"time"

	"github.com/suraksha-health/training-portal-api/internal/query"
)

// TrainingStatus enumerates the lifecycle of a training session.
type TrainingStatus string

const (
	StatusPlanned   TrainingStatus = "Planned"
	StatusOngoing   TrainingStatus = "Ongoing"
	StatusCompleted TrainingStatus = "Completed"
	StatusCancelled TrainingStatus = "Cancelled"
)

// Training is a training session conducted by a professional. ConductedBy is
// the ownership field, immutable after creation.
type Training struct {
	ID              int64          `db:"id" json:"id"`
	Title           string         `db:"title" json:"title"`
	Description     *string        `db:"description" json:"description,omitempty"`
	TrainingTopic   string         `db:"training_topic" json:"training_topic"`
	Address         string         `db:"address" json:"address"`
	Block           string         `db:"block" json:"block"`
	TrainingDate    string         `db:"training_date" json:"training_date"`
	TrainingTime    string         `db:"training_time" json:"training_time"`
	DurationHours   float64        `db:"duration_hours" json:"duration_hours"`
	MaxTrainees     int            `db:"max_trainees" json:"max_trainees"`
	Status          TrainingStatus `db:"status" json:"status"`
	ConductedBy     int64          `db:"conducted_by" json:"conducted_by"`
	ConductedByName string         `db:"conducted_by_name" json:"conducted_by_name"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at" json:"updated_at"`
}

// TrainingQuery declares the training list's searchable, filterable and
// sortable fields.
var TrainingQuery = query.Config{
	SearchableFields: []string{"title", "training_topic", "address"},
	FilterableFields: []string{"block", "status", "training_topic"},
	SortableFields:   []string{"title", "training_date", "duration_hours", "max_trainees"},
}

// QueryField implements query.Record.
func (t Training) QueryField(name string) (string, bool) {
	switch name {
	case "title":
		return t.Title, true
	case "description":
		return deref(t.Description), true
	case "training_topic":
		return t.TrainingTopic, true
	case "address":
		return t.Address, true
	case "block":
		return t.Block, true
	case "status":
		return string(t.Status), true
	case "training_date":
		return t.TrainingDate, true
	case "duration_hours":
		return strconv.FormatFloat(t.DurationHours, 'f', -1, 64), true
	case "max_trainees":
		return strconv.Itoa(t.MaxTrainees), true
	}
	return "", false
}

// ValidStatus reports whether s is one of the four known statuses.
func ValidStatus(s TrainingStatus) bool {
	switch s {
	case StatusPlanned, StatusOngoing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
