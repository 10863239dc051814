package services

import (
	"context"
	"fmt"
	"log"

	"school-backend/internal/cache"
	"school-backend/internal/metrics"
	"school-backend/internal/models"
	"school-backend/internal/repositories"
	"school-backend/internal/timeutil"
)

// FeeGenerationService runs the monthly bulk fee generation. One run writes
// a fee record for every enrolled student from a shared charge schedule.
type FeeGenerationService struct {
	Repo        *repositories.FeeGenerationRepository
	FeeRepo     *repositories.StudentFeeRepository
	StudentRepo *repositories.StudentRepository
}

func NewFeeGenerationService(repo *repositories.FeeGenerationRepository, feeRepo *repositories.StudentFeeRepository, studentRepo *repositories.StudentRepository) *FeeGenerationService {
	return &FeeGenerationService{
		Repo:        repo,
		FeeRepo:     feeRepo,
		StudentRepo: studentRepo,
	}
}

// buildGenerationFee builds one student's fee record for a generation run.
// Tuition comes from the student profile, the shared charges from the
// schedule, and the carried-forward pending from the student's cached
// pending fee. Admission and security are one-time admission charges and
// stay zero here.
func buildGenerationFee(student *models.Student, gen *models.FeeGeneration) *models.StudentFee {
	fee := &models.StudentFee{
		StudentRollNo:     student.RollNo,
		Month:             gen.Month,
		TuitionFee:        student.TuitionFee,
		ExamFee:           gen.ExamFee,
		ACCharges:         gen.ACCharges,
		StationaryCharges: gen.StationaryCharges,
		LabCharges:        gen.LabCharges,
		Pending:           student.PendingFee,
	}
	fee.Recalculate()
	return fee
}

// Generate records the generation run and writes one fee record per
// enrolled student. Running twice for the same month doubles the charges;
// the caller decides when a run happens.
func (s *FeeGenerationService) Generate(ctx context.Context, req *models.CreateFeeGenerationRequest) (*models.FeeGenerationResult, error) {
	month, err := timeutil.ParseDate(req.Month)
	if err != nil {
		return nil, fmt.Errorf("invalid month: %w", err)
	}

	gen := &models.FeeGeneration{
		Month:             timeutil.TruncateMonth(month),
		ExamFee:           req.ExamFee,
		ACCharges:         req.ACCharges,
		StationaryCharges: req.StationaryCharges,
		LabCharges:        req.LabCharges,
	}
	if err := s.Repo.Create(ctx, gen); err != nil {
		return nil, err
	}

	students, err := s.StudentRepo.ListEnrolled(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrolled students: %w", err)
	}

	fees := make([]*models.StudentFee, 0, len(students))
	for _, student := range students {
		fees = append(fees, buildGenerationFee(student, gen))
	}

	if err := s.FeeRepo.BulkCreate(ctx, fees); err != nil {
		return nil, fmt.Errorf("fee generation %d failed: %w", gen.Serial, err)
	}

	metrics.FeeGenerationsRun.Inc()
	cache.InvalidateFeeCaches(ctx)
	log.Printf("[FeeGen] Generated %d fee records for %s", len(fees), gen.Month.Format(timeutil.MonthLayout))

	return &models.FeeGenerationResult{
		Generation:   gen,
		FeesCreated:  len(fees),
		StudentCount: len(students),
	}, nil
}

func (s *FeeGenerationService) GetGeneration(ctx context.Context, serial int) (*models.FeeGeneration, error) {
	return s.Repo.GetBySerial(ctx, serial)
}

func (s *FeeGenerationService) ListGenerations(ctx context.Context) ([]*models.FeeGeneration, error) {
	return s.Repo.List(ctx)
}
