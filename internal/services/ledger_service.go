package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"school-backend/internal/cache"
	"school-backend/internal/metrics"
	"school-backend/internal/models"
	"school-backend/internal/repositories"
)

// LedgerService computes the monthly profit breakdown and keeps the ledger
// table in sync with it.
type LedgerService struct {
	Repo        *repositories.LedgerRepository
	FeeRepo     *repositories.StudentFeeRepository
	PayRepo     *repositories.TeacherPayRepository
	ExpenseRepo *repositories.ExpenseRepository
}

func NewLedgerService(repo *repositories.LedgerRepository, feeRepo *repositories.StudentFeeRepository, payRepo *repositories.TeacherPayRepository, expenseRepo *repositories.ExpenseRepository) *LedgerService {
	return &LedgerService{
		Repo:        repo,
		FeeRepo:     feeRepo,
		PayRepo:     payRepo,
		ExpenseRepo: expenseRepo,
	}
}

const monthKeyLayout = "2006-01"

// combineMonthlyTotals joins the three per-month sums into one breakdown
// per month. The months with student fee records drive the result: a month
// with salaries or expenses but no fee records does not appear. Missing
// salary or expense totals count as zero.
func combineMonthlyTotals(fees, pays, expenses []models.MonthlyTotal) []models.MonthlyBreakdown {
	payByMonth := make(map[string]float64, len(pays))
	for _, p := range pays {
		payByMonth[p.Month.Format(monthKeyLayout)] += p.Total
	}
	expenseByMonth := make(map[string]float64, len(expenses))
	for _, e := range expenses {
		expenseByMonth[e.Month.Format(monthKeyLayout)] += e.Total
	}

	breakdowns := make([]models.MonthlyBreakdown, 0, len(fees))
	for _, f := range fees {
		key := f.Month.Format(monthKeyLayout)
		b := models.MonthlyBreakdown{
			Month:            f.Month,
			TotalStudentFees: f.Total,
			TotalTeacherPays: payByMonth[key],
			TotalExpenses:    expenseByMonth[key],
		}
		b.MonthlyProfit = b.TotalStudentFees - b.TotalTeacherPays - b.TotalExpenses
		breakdowns = append(breakdowns, b)
	}

	return breakdowns
}

// Breakdown computes the per-month totals without touching the ledger
// table. Served from Redis for five minutes; fee, payroll and expense
// writes invalidate it.
func (s *LedgerService) Breakdown(ctx context.Context) ([]models.MonthlyBreakdown, error) {
	if data, ok := cache.GetCached(ctx, cache.LedgerBreakdownKey); ok {
		var breakdowns []models.MonthlyBreakdown
		if err := json.Unmarshal(data, &breakdowns); err == nil {
			return breakdowns, nil
		}
	}

	breakdowns, err := s.computeBreakdown(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(breakdowns); err == nil {
		cache.SetCached(ctx, cache.LedgerBreakdownKey, data, 5*time.Minute)
	}
	return breakdowns, nil
}

func (s *LedgerService) computeBreakdown(ctx context.Context) ([]models.MonthlyBreakdown, error) {
	feeTotals, err := s.FeeRepo.MonthlyTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum student fees: %w", err)
	}
	payTotals, err := s.PayRepo.MonthlyTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum teacher pays: %w", err)
	}
	expenseTotals, err := s.ExpenseRepo.MonthlyTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}
	return combineMonthlyTotals(feeTotals, payTotals, expenseTotals), nil
}

// Populate recomputes every month's totals and upserts them into the
// ledger, keyed on month. Re-running is idempotent: existing rows are
// overwritten, never duplicated. Returns the computed breakdown.
func (s *LedgerService) Populate(ctx context.Context) ([]models.MonthlyBreakdown, error) {
	breakdowns, err := s.computeBreakdown(ctx)
	if err != nil {
		return nil, err
	}

	for _, b := range breakdowns {
		entry := &models.Ledger{
			Month:              b.Month,
			MonthlyStudentFees: b.TotalStudentFees,
			MonthlyTeacherPays: b.TotalTeacherPays,
			MonthlyExpenses:    b.TotalExpenses,
			MonthlyProfit:      b.MonthlyProfit,
		}
		if err := s.Repo.Upsert(ctx, entry); err != nil {
			return nil, err
		}
	}

	if data, err := json.Marshal(breakdowns); err == nil {
		cache.SetCached(ctx, cache.LedgerBreakdownKey, data, 5*time.Minute)
	}

	metrics.LedgerPopulations.Inc()
	log.Printf("[Ledger] Populated %d months", len(breakdowns))
	return breakdowns, nil
}

func (s *LedgerService) GetEntry(ctx context.Context, id int) (*models.Ledger, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *LedgerService) ListEntries(ctx context.Context) ([]*models.Ledger, error) {
	return s.Repo.List(ctx)
}

// UpdateEntry applies a manual correction to one month. The next Populate
// run overwrites it.
func (s *LedgerService) UpdateEntry(ctx context.Context, id int, req *models.UpdateLedgerRequest) (*models.Ledger, error) {
	entry, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("ledger %d not found", id)
	}

	entry.MonthlyStudentFees = req.MonthlyStudentFees
	entry.MonthlyTeacherPays = req.MonthlyTeacherPays
	entry.MonthlyExpenses = req.MonthlyExpenses
	entry.MonthlyProfit = req.MonthlyProfit

	if err := s.Repo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *LedgerService) DeleteEntry(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}
