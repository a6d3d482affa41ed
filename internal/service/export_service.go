package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/suraksha-health/training-portal-api/internal/models"
	appErrors "github.com/suraksha-health/training-portal-api/pkg/errors"
	"github.com/suraksha-health/training-portal-api/pkg/export"
)

// ExportService renders the actor's visible trainee roster as a downloadable
// file. It reuses TraineeService.List so exports honour the same query and
// visibility rules as the on-screen table.
type ExportService struct {
	trainees *TraineeService
	csv      *export.CSVExporter
	pdf      *export.PDFExporter
	logger   *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(trainees *TraineeService, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		trainees: trainees,
		csv:      export.NewCSVExporter(),
		pdf:      export.NewPDFExporter(),
		logger:   logger,
	}
}

// TraineesCSV renders the visible trainees as CSV bytes.
func (s *ExportService) TraineesCSV(ctx context.Context, actor Actor, opts QueryOptions) ([]byte, error) {
	dataset, err := s.traineeDataset(ctx, actor, opts)
	if err != nil {
		return nil, err
	}
	out, err := s.csv.Render(*dataset)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render CSV export")
	}
	return out, nil
}

// TraineesPDF renders the visible trainees as a landscape PDF table.
func (s *ExportService) TraineesPDF(ctx context.Context, actor Actor, opts QueryOptions) ([]byte, error) {
	dataset, err := s.traineeDataset(ctx, actor, opts)
	if err != nil {
		return nil, err
	}
	out, err := s.pdf.Render(*dataset, "Trainee Register")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render PDF export")
	}
	return out, nil
}

func (s *ExportService) traineeDataset(ctx context.Context, actor Actor, opts QueryOptions) (*export.Dataset, error) {
	trainees, _, err := s.trainees.List(ctx, actor, opts)
	if err != nil {
		return nil, err
	}

	dataset := &export.Dataset{
		Headers: []string{
			"Name", "Mobile Number", "Gender", "Age", "Department", "Designation",
			"Address", "Block", "Training Date", "CPR Training", "First Aid Kit", "Life Saving Skills", "Registered By",
		},
		Rows: make([]map[string]string, 0, len(trainees)),
	}
	for _, t := range trainees {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Name":               t.Name,
			"Mobile Number":      t.MobileNumber,
			"Gender":             t.Gender,
			"Age":                strconv.Itoa(t.Age),
			"Department":         t.Department,
			"Designation":        derefExport(t.Designation),
			"Address":            t.Address,
			"Block":              t.Block,
			"Training Date":      t.TrainingDate,
			"CPR Training":       yesNo(t.CPRTraining),
			"First Aid Kit":      yesNo(t.FirstAidKitGiven),
			"Life Saving Skills": yesNo(t.LifeSavingSkills),
			"Registered By":      t.RegisteredByName,
		})
	}
	return dataset, nil
}

func yesNo(b models.FlexBool) string {
	if b.Bool() {
		return "Yes"
	}
	return "No"
}

func derefExport(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
