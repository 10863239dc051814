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

// PayrollService runs the monthly bulk pay generation and manages
// individual pay records. Pays carry no balance forward: each record is the
// teacher's current rate for one month.
type PayrollService struct {
	GenRepo     *repositories.PayGenerationRepository
	PayRepo     *repositories.TeacherPayRepository
	TeacherRepo *repositories.TeacherRepository
}

func NewPayrollService(genRepo *repositories.PayGenerationRepository, payRepo *repositories.TeacherPayRepository, teacherRepo *repositories.TeacherRepository) *PayrollService {
	return &PayrollService{
		GenRepo:     genRepo,
		PayRepo:     payRepo,
		TeacherRepo: teacherRepo,
	}
}

// Generate records the generation run and writes one pay record per
// enrolled teacher at their current rate.
func (s *PayrollService) Generate(ctx context.Context, req *models.CreateGenerateTeacherPayRequest) (*models.PayGenerationResult, error) {
	month, err := timeutil.ParseDate(req.Month)
	if err != nil {
		return nil, fmt.Errorf("invalid month: %w", err)
	}

	gen := &models.GenerateTeacherPay{Month: timeutil.TruncateMonth(month)}
	if err := s.GenRepo.Create(ctx, gen); err != nil {
		return nil, err
	}

	teachers, err := s.TeacherRepo.ListEnrolled(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrolled teachers: %w", err)
	}

	pays := make([]*models.TeacherPay, 0, len(teachers))
	for _, teacher := range teachers {
		pays = append(pays, &models.TeacherPay{
			TeacherID: teacher.ID,
			Month:     gen.Month,
			Pay:       teacher.Pay,
		})
	}

	if err := s.PayRepo.BulkCreate(ctx, pays); err != nil {
		return nil, fmt.Errorf("pay generation %d failed: %w", gen.ID, err)
	}

	metrics.PayGenerationsRun.Inc()
	cache.InvalidatePayrollCaches(ctx)
	log.Printf("[Payroll] Generated %d pay records for %s", len(pays), gen.Month.Format(timeutil.MonthLayout))

	return &models.PayGenerationResult{
		Generation:   gen,
		PaysCreated:  len(pays),
		TeacherCount: len(teachers),
	}, nil
}

func (s *PayrollService) GetGeneration(ctx context.Context, id int) (*models.GenerateTeacherPay, error) {
	return s.GenRepo.GetByID(ctx, id)
}

func (s *PayrollService) ListGenerations(ctx context.Context) ([]*models.GenerateTeacherPay, error) {
	return s.GenRepo.List(ctx)
}

// UpdateGeneration edits the trigger record only. It never writes pay
// records, so correcting a mistyped month cannot double anyone's salary.
func (s *PayrollService) UpdateGeneration(ctx context.Context, id int, req *models.UpdateGenerateTeacherPayRequest) (*models.GenerateTeacherPay, error) {
	gen, err := s.GenRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("pay generation %d not found", id)
	}

	month, err := timeutil.ParseDate(req.Month)
	if err != nil {
		return nil, fmt.Errorf("invalid month: %w", err)
	}
	gen.Month = timeutil.TruncateMonth(month)

	if err := s.GenRepo.Update(ctx, gen); err != nil {
		return nil, err
	}
	return gen, nil
}

func (s *PayrollService) DeleteGeneration(ctx context.Context, id int) error {
	return s.GenRepo.Delete(ctx, id)
}

// RecordPay creates a single pay record outside a generation run
func (s *PayrollService) RecordPay(ctx context.Context, req *models.CreateTeacherPayRequest) (*models.TeacherPay, error) {
	if _, err := s.TeacherRepo.GetByID(ctx, req.TeacherID); err != nil {
		return nil, fmt.Errorf("teacher %d not found", req.TeacherID)
	}

	month, err := timeutil.ParseDate(req.Month)
	if err != nil {
		return nil, fmt.Errorf("invalid month: %w", err)
	}

	pay := &models.TeacherPay{
		TeacherID: req.TeacherID,
		Month:     timeutil.TruncateMonth(month),
		Pay:       req.Pay,
		Paid:      req.Paid,
	}
	if err := s.PayRepo.Create(ctx, pay); err != nil {
		return nil, err
	}

	cache.InvalidatePayrollCaches(ctx)
	return s.PayRepo.GetByID(ctx, pay.ID)
}

func (s *PayrollService) GetPay(ctx context.Context, id int) (*models.TeacherPay, error) {
	return s.PayRepo.GetByID(ctx, id)
}

func (s *PayrollService) ListPays(ctx context.Context) ([]*models.TeacherPay, error) {
	return s.PayRepo.List(ctx)
}

func (s *PayrollService) ListPaysByTeacher(ctx context.Context, teacherID int) ([]*models.TeacherPay, error) {
	return s.PayRepo.ListByTeacher(ctx, teacherID)
}

func (s *PayrollService) UpdatePay(ctx context.Context, id int, req *models.UpdateTeacherPayRequest) (*models.TeacherPay, error) {
	pay, err := s.PayRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("teacher pay %d not found", id)
	}

	pay.Pay = req.Pay
	pay.Paid = req.Paid

	if err := s.PayRepo.Update(ctx, pay); err != nil {
		return nil, err
	}

	cache.InvalidatePayrollCaches(ctx)
	return s.PayRepo.GetByID(ctx, pay.ID)
}

func (s *PayrollService) DeletePay(ctx context.Context, id int) error {
	if err := s.PayRepo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidatePayrollCaches(ctx)
	return nil
}
