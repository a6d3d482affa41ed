package models

// DashboardStats backs the stat cards shown on both dashboards: collection
// totals plus skill coverage counts over the trainees visible to the caller.
type DashboardStats struct {
	TotalProfessionals int `json:"total_professionals,omitempty"`
	TotalTrainees      int `json:"total_trainees"`
	TotalTrainings     int `json:"total_trainings"`
	CPRTrained         int `json:"cpr_trained"`
	FirstAidKitsGiven  int `json:"first_aid_kits_given"`
	LifeSavingSkills   int `json:"life_saving_skills"`
}
