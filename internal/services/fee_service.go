package services

import (
	"context"
	"fmt"

	"school-backend/internal/cache"
	"school-backend/internal/metrics"
	"school-backend/internal/models"
	"school-backend/internal/repositories"
	"school-backend/internal/timeutil"
)

// FeeService owns the student fee ledger. Every write path funnels through
// Recalculate so total_fee, balance and paid can never drift from the
// components, and every repository write refreshes the student's cached
// pending fee.
type FeeService struct {
	Repo        *repositories.StudentFeeRepository
	StudentRepo *repositories.StudentRepository
}

func NewFeeService(repo *repositories.StudentFeeRepository, studentRepo *repositories.StudentRepository) *FeeService {
	return &FeeService{
		Repo:        repo,
		StudentRepo: studentRepo,
	}
}

// RecordFee creates a fee record from a manual entry
func (s *FeeService) RecordFee(ctx context.Context, req *models.CreateStudentFeeRequest) (*models.StudentFee, error) {
	if _, err := s.StudentRepo.GetByRollNo(ctx, req.StudentRollNo); err != nil {
		return nil, fmt.Errorf("student %d not found", req.StudentRollNo)
	}

	month, err := timeutil.ParseDate(req.Month)
	if err != nil {
		return nil, fmt.Errorf("invalid month: %w", err)
	}

	fee := &models.StudentFee{
		StudentRollNo:     req.StudentRollNo,
		Month:             timeutil.TruncateMonth(month),
		TuitionFee:        req.TuitionFee,
		ExamFee:           req.ExamFee,
		ACCharges:         req.ACCharges,
		StationaryCharges: req.StationaryCharges,
		AdmissionFee:      req.AdmissionFee,
		LabCharges:        req.LabCharges,
		SecurityFee:       req.SecurityFee,
		Misc:              req.Misc,
		Pending:           req.Pending,
		AmountPaid:        req.AmountPaid,
		Description:       req.Description,
	}
	fee.Recalculate()

	if err := s.Repo.Create(ctx, fee); err != nil {
		return nil, err
	}

	metrics.FeeRecordsCreated.Inc()
	cache.InvalidateFeeCaches(ctx)
	return s.Repo.GetByID(ctx, fee.ID)
}

// UpdateFee rewrites a fee record's components, usually to record a
// payment. The carried-forward pending amount is fixed at creation and
// survives the update untouched.
func (s *FeeService) UpdateFee(ctx context.Context, id int, req *models.UpdateStudentFeeRequest) (*models.StudentFee, error) {
	fee, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fee %d not found", id)
	}

	fee.TuitionFee = req.TuitionFee
	fee.ExamFee = req.ExamFee
	fee.ACCharges = req.ACCharges
	fee.StationaryCharges = req.StationaryCharges
	fee.AdmissionFee = req.AdmissionFee
	fee.LabCharges = req.LabCharges
	fee.SecurityFee = req.SecurityFee
	fee.Misc = req.Misc
	fee.AmountPaid = req.AmountPaid
	fee.Description = req.Description
	fee.Recalculate()

	if err := s.Repo.Update(ctx, fee); err != nil {
		return nil, err
	}

	cache.InvalidateFeeCaches(ctx)
	return s.Repo.GetByID(ctx, fee.ID)
}

// ApplyPayment adds an amount to an existing fee record. Used by the
// online payment flow once a transaction is verified.
func (s *FeeService) ApplyPayment(ctx context.Context, feeID int, amount float64, description string) (*models.StudentFee, error) {
	fee, err := s.Repo.GetByID(ctx, feeID)
	if err != nil {
		return nil, fmt.Errorf("fee %d not found", feeID)
	}

	fee.AmountPaid += amount
	if description != "" {
		fee.Description = description
	}
	fee.Recalculate()

	if err := s.Repo.Update(ctx, fee); err != nil {
		return nil, err
	}

	cache.InvalidateFeeCaches(ctx)
	return s.Repo.GetByID(ctx, fee.ID)
}

func (s *FeeService) GetFee(ctx context.Context, id int) (*models.StudentFee, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *FeeService) ListFees(ctx context.Context) ([]*models.StudentFee, error) {
	return s.Repo.List(ctx)
}

func (s *FeeService) ListFeesByStudent(ctx context.Context, rollNo int) ([]*models.StudentFee, error) {
	return s.Repo.ListByStudent(ctx, rollNo)
}

func (s *FeeService) DeleteFee(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateFeeCaches(ctx)
	return nil
}
