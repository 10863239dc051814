package repositories

import (
	"context"
	"fmt"

	"school-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ExpenseRepository struct {
	DB *pgxpool.Pool
}

func NewExpenseRepository(db *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{DB: db}
}

func (r *ExpenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	query := `
		INSERT INTO expenses (category, amount, description, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.DB.QueryRow(ctx, query,
		expense.Category,
		expense.Amount,
		expense.Description,
		expense.Date,
	).Scan(&expense.ID, &expense.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

func scanExpense(row pgx.Row) (*models.Expense, error) {
	e := &models.Expense{}
	err := row.Scan(
		&e.ID,
		&e.Category,
		&e.Amount,
		&e.Description,
		&e.Date,
		&e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *ExpenseRepository) GetByID(ctx context.Context, id int) (*models.Expense, error) {
	query := `
		SELECT id, category, amount, COALESCE(description, ''), date, created_at
		FROM expenses
		WHERE id = $1
	`
	return scanExpense(r.DB.QueryRow(ctx, query, id))
}

func (r *ExpenseRepository) List(ctx context.Context) ([]*models.Expense, error) {
	query := `
		SELECT id, category, amount, COALESCE(description, ''), date, created_at
		FROM expenses
		ORDER BY date DESC, id DESC
	`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}

	return expenses, nil
}

func (r *ExpenseRepository) Update(ctx context.Context, expense *models.Expense) error {
	query := `
		UPDATE expenses
		SET category = $1, amount = $2, description = $3, date = $4
		WHERE id = $5
	`

	result, err := r.DB.Exec(ctx, query,
		expense.Category,
		expense.Amount,
		expense.Description,
		expense.Date,
		expense.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense %d: %w", expense.ID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("expense %d not found", expense.ID)
	}
	return nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, id int) error {
	result, err := r.DB.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense %d: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("expense %d not found", id)
	}
	return nil
}

// MonthlyTotals sums expense amounts grouped by the calendar month of the
// expense date.
func (r *ExpenseRepository) MonthlyTotals(ctx context.Context) ([]models.MonthlyTotal, error) {
	query := `
		SELECT date_trunc('month', date)::date, SUM(amount)
		FROM expenses
		GROUP BY date_trunc('month', date)
		ORDER BY date_trunc('month', date)
	`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []models.MonthlyTotal
	for rows.Next() {
		var t models.MonthlyTotal
		if err := rows.Scan(&t.Month, &t.Total); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}

	return totals, nil
}
