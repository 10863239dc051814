package repositories

import (
	"context"
	"fmt"
	"time"

	"school-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LedgerRepository struct {
	DB *pgxpool.Pool
}

func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{DB: db}
}

// Upsert writes one month's totals, keyed on month. A populate run calls
// this once per month in the driving set; re-runs overwrite, never
// duplicate.
func (r *LedgerRepository) Upsert(ctx context.Context, entry *models.Ledger) error {
	query := `
		INSERT INTO ledger (month, monthly_student_fees, monthly_teacher_pays, monthly_expenses, monthly_profit)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (month) DO UPDATE
		SET monthly_student_fees = EXCLUDED.monthly_student_fees,
		    monthly_teacher_pays = EXCLUDED.monthly_teacher_pays,
		    monthly_expenses = EXCLUDED.monthly_expenses,
		    monthly_profit = EXCLUDED.monthly_profit,
		    updated_at = NOW()
		RETURNING id, updated_at
	`

	err := r.DB.QueryRow(ctx, query,
		entry.Month,
		entry.MonthlyStudentFees,
		entry.MonthlyTeacherPays,
		entry.MonthlyExpenses,
		entry.MonthlyProfit,
	).Scan(&entry.ID, &entry.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to upsert ledger for %s: %w", entry.Month.Format("2006-01"), err)
	}
	return nil
}

func scanLedger(row pgx.Row) (*models.Ledger, error) {
	l := &models.Ledger{}
	err := row.Scan(
		&l.ID,
		&l.Month,
		&l.MonthlyStudentFees,
		&l.MonthlyTeacherPays,
		&l.MonthlyExpenses,
		&l.MonthlyProfit,
		&l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *LedgerRepository) GetByID(ctx context.Context, id int) (*models.Ledger, error) {
	query := `
		SELECT id, month, monthly_student_fees, monthly_teacher_pays, monthly_expenses, monthly_profit, updated_at
		FROM ledger
		WHERE id = $1
	`
	return scanLedger(r.DB.QueryRow(ctx, query, id))
}

func (r *LedgerRepository) GetByMonth(ctx context.Context, month time.Time) (*models.Ledger, error) {
	query := `
		SELECT id, month, monthly_student_fees, monthly_teacher_pays, monthly_expenses, monthly_profit, updated_at
		FROM ledger
		WHERE month = $1
	`
	return scanLedger(r.DB.QueryRow(ctx, query, month))
}

func (r *LedgerRepository) List(ctx context.Context) ([]*models.Ledger, error) {
	query := `
		SELECT id, month, monthly_student_fees, monthly_teacher_pays, monthly_expenses, monthly_profit, updated_at
		FROM ledger
		ORDER BY month DESC
	`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.Ledger
	for rows.Next() {
		entry, err := scanLedger(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (r *LedgerRepository) Update(ctx context.Context, entry *models.Ledger) error {
	query := `
		UPDATE ledger
		SET monthly_student_fees = $1, monthly_teacher_pays = $2, monthly_expenses = $3,
		    monthly_profit = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`

	err := r.DB.QueryRow(ctx, query,
		entry.MonthlyStudentFees,
		entry.MonthlyTeacherPays,
		entry.MonthlyExpenses,
		entry.MonthlyProfit,
		entry.ID,
	).Scan(&entry.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to update ledger %d: %w", entry.ID, err)
	}
	return nil
}

func (r *LedgerRepository) Delete(ctx context.Context, id int) error {
	result, err := r.DB.Exec(ctx, `DELETE FROM ledger WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete ledger %d: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("ledger %d not found", id)
	}
	return nil
}
