// Package dto holds the wire shapes of list and aggregate endpoints. Success
// payloads carry an explicit success flag and the collection under its own
// key; the total field reports the query engine's match count.
package dto

import "github.com/suraksha-health/training-portal-api/internal/models"

// ProfessionalListResponse is the get_professionals payload.
type ProfessionalListResponse struct {
	Success       bool                  `json:"success"`
	Professionals []models.Professional `json:"professionals"`
	Total         int                   `json:"total"`
}

// TraineeListResponse is the get_trainees payload.
type TraineeListResponse struct {
	Success  bool             `json:"success"`
	Trainees []models.Trainee `json:"trainees"`
	Total    int              `json:"total"`
}

// TrainingListResponse is the get_trainings payload.
type TrainingListResponse struct {
	Success   bool              `json:"success"`
	Trainings []models.Training `json:"trainings"`
	Total     int               `json:"total"`
}

// DataTables bundles the raw contents of all three tables for the admin
// data viewer.
type DataTables struct {
	Users     []models.User     `json:"users"`
	Trainees  []models.Trainee  `json:"trainees"`
	Trainings []models.Training `json:"trainings"`
}

// DataResponse is the /data payload.
type DataResponse struct {
	Success bool       `json:"success"`
	Data    DataTables `json:"data"`
}

// DashboardResponse is the /dashboard payload.
type DashboardResponse struct {
	Success bool                  `json:"success"`
	Stats   models.DashboardStats `json:"stats"`
}

// HealthResponse is the /health payload.
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp,omitempty"`
}
