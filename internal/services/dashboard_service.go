package services

import (
	"context"
	"encoding/json"
	"time"

	"school-backend/internal/cache"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DashboardSummary is the front-page snapshot of the school's finances
type DashboardSummary struct {
	EnrolledStudents int     `json:"enrolled_students"`
	EnrolledTeachers int     `json:"enrolled_teachers"`
	AlumniCount      int     `json:"alumni_count"`
	TotalPendingFees float64 `json:"total_pending_fees"`
	UnpaidFeeRecords int     `json:"unpaid_fee_records"`
	CollectedThis    float64 `json:"collected_this_month"`
	ExpensesThis     float64 `json:"expenses_this_month"`
}

// DashboardService computes the summary with a single aggregate query per
// table and caches the result in Redis for five minutes.
type DashboardService struct {
	DB *pgxpool.Pool
}

func NewDashboardService(db *pgxpool.Pool) *DashboardService {
	return &DashboardService{DB: db}
}

func (s *DashboardService) GetSummary(ctx context.Context) (*DashboardSummary, error) {
	if data, ok := cache.GetCached(ctx, cache.DashboardSummaryKey); ok {
		summary := &DashboardSummary{}
		if err := json.Unmarshal(data, summary); err == nil {
			return summary, nil
		}
	}

	summary := &DashboardSummary{}

	query := `
		SELECT
			(SELECT COUNT(*) FROM students WHERE enrolled),
			(SELECT COUNT(*) FROM teachers WHERE enrolled),
			(SELECT COUNT(*) FROM alumni),
			(SELECT COALESCE(SUM(pending_fee), 0) FROM students WHERE enrolled),
			(SELECT COUNT(*) FROM student_fees WHERE NOT paid),
			(SELECT COALESCE(SUM(amount_paid), 0) FROM student_fees
			 WHERE month = date_trunc('month', CURRENT_DATE)::date),
			(SELECT COALESCE(SUM(amount), 0) FROM expenses
			 WHERE date_trunc('month', date) = date_trunc('month', CURRENT_DATE))
	`

	err := s.DB.QueryRow(ctx, query).Scan(
		&summary.EnrolledStudents,
		&summary.EnrolledTeachers,
		&summary.AlumniCount,
		&summary.TotalPendingFees,
		&summary.UnpaidFeeRecords,
		&summary.CollectedThis,
		&summary.ExpensesThis,
	)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(summary); err == nil {
		cache.SetCached(ctx, cache.DashboardSummaryKey, data, 5*time.Minute)
	}

	return summary, nil
}
