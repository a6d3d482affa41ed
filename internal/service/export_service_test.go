package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suraksha-health/training-portal-api/internal/models"
)

func exportFixture() *traineeRepoMock {
	designation := "ASHA Worker"
	return &traineeRepoMock{listResp: []models.Trainee{
		{
			ID: 1, Name: "Asha Kumari", MobileNumber: "9876543210", Gender: "Female",
			Age: 32, Department: "Cardiology", Designation: &designation,
			Address: "Ward 5", Block: "North", TrainingDate: "2026-01-15",
			CPRTraining: true, FirstAidKitGiven: false, LifeSavingSkills: true,
			RegisteredBy: 5, RegisteredByName: "Dr. Mehta",
		},
		{
			ID: 2, Name: "Ravi Sharma", MobileNumber: "9123456789", Gender: "Male",
			Age: 41, Department: "Neurology",
			Address: "Ward 2", Block: "South", TrainingDate: "2026-02-01",
			RegisteredBy: 5, RegisteredByName: "Dr. Mehta",
		},
	}}
}

func TestExportServiceTraineesCSVColumnsAlign(t *testing.T) {
	svc := NewExportService(NewTraineeService(exportFixture(), nil, nil), nil)

	out, err := svc.TraineesCSV(context.Background(), adminActor, QueryOptions{})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	header := records[0]
	byName := func(row []string, name string) string {
		for i, h := range header {
			if h == name {
				return row[i]
			}
		}
		t.Fatalf("missing column %q", name)
		return ""
	}

	assert.Equal(t, "Asha Kumari", byName(records[1], "Name"))
	assert.Equal(t, "32", byName(records[1], "Age"))
	assert.Equal(t, "ASHA Worker", byName(records[1], "Designation"))
	assert.Equal(t, "Yes", byName(records[1], "CPR Training"))
	assert.Equal(t, "No", byName(records[1], "First Aid Kit"))
	assert.Equal(t, "Yes", byName(records[1], "Life Saving Skills"))
	assert.Equal(t, "Dr. Mehta", byName(records[1], "Registered By"))

	// missing designation renders empty, booleans default to No
	assert.Equal(t, "", byName(records[2], "Designation"))
	assert.Equal(t, "No", byName(records[2], "CPR Training"))
}

func TestExportServiceTraineesPDFRenders(t *testing.T) {
	svc := NewExportService(NewTraineeService(exportFixture(), nil, nil), nil)

	out, err := svc.TraineesPDF(context.Background(), adminActor, QueryOptions{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestExportServiceScopedToActor(t *testing.T) {
	repo := exportFixture()
	svc := NewExportService(NewTraineeService(repo, nil, nil), nil)

	_, err := svc.TraineesCSV(context.Background(), professionalActor, QueryOptions{})
	require.NoError(t, err)
	require.NotNil(t, repo.lastOwner)
	assert.Equal(t, int64(5), *repo.lastOwner)
}
