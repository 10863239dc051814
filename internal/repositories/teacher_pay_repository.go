package repositories

import (
	"context"
	"fmt"

	"school-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TeacherPayRepository struct {
	DB *pgxpool.Pool
}

func NewTeacherPayRepository(db *pgxpool.Pool) *TeacherPayRepository {
	return &TeacherPayRepository{DB: db}
}

func (r *TeacherPayRepository) Create(ctx context.Context, pay *models.TeacherPay) error {
	query := `
		INSERT INTO teacher_pays (teacher_id, month, pay, paid)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.DB.QueryRow(ctx, query,
		pay.TeacherID,
		pay.Month,
		pay.Pay,
		pay.Paid,
	).Scan(&pay.ID, &pay.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create teacher pay: %w", err)
	}
	return nil
}

// BulkCreate inserts a batch of pay records (one generation run) in a
// single transaction.
func (r *TeacherPayRepository) BulkCreate(ctx context.Context, pays []*models.TeacherPay) error {
	if len(pays) == 0 {
		return nil
	}

	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO teacher_pays (teacher_id, month, pay, paid)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	for _, pay := range pays {
		err := tx.QueryRow(ctx, query, pay.TeacherID, pay.Month, pay.Pay, pay.Paid).
			Scan(&pay.ID, &pay.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert pay for teacher %d: %w", pay.TeacherID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit pay generation: %w", err)
	}
	return nil
}

const paySelectColumns = `
	p.id, p.teacher_id, t.name, p.month, p.pay, p.paid, p.created_at`

func scanPay(row pgx.Row) (*models.TeacherPay, error) {
	pay := &models.TeacherPay{}
	err := row.Scan(
		&pay.ID,
		&pay.TeacherID,
		&pay.TeacherName,
		&pay.Month,
		&pay.Pay,
		&pay.Paid,
		&pay.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return pay, nil
}

func (r *TeacherPayRepository) GetByID(ctx context.Context, id int) (*models.TeacherPay, error) {
	query := `SELECT` + paySelectColumns + `
		FROM teacher_pays p
		JOIN teachers t ON p.teacher_id = t.id
		WHERE p.id = $1
	`
	return scanPay(r.DB.QueryRow(ctx, query, id))
}

func (r *TeacherPayRepository) List(ctx context.Context) ([]*models.TeacherPay, error) {
	query := `SELECT` + paySelectColumns + `
		FROM teacher_pays p
		JOIN teachers t ON p.teacher_id = t.id
		ORDER BY p.month DESC, p.id DESC
	`
	return r.queryPays(ctx, query)
}

func (r *TeacherPayRepository) ListByTeacher(ctx context.Context, teacherID int) ([]*models.TeacherPay, error) {
	query := `SELECT` + paySelectColumns + `
		FROM teacher_pays p
		JOIN teachers t ON p.teacher_id = t.id
		WHERE p.teacher_id = $1
		ORDER BY p.month DESC, p.id DESC
	`
	return r.queryPays(ctx, query, teacherID)
}

func (r *TeacherPayRepository) queryPays(ctx context.Context, query string, args ...interface{}) ([]*models.TeacherPay, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pays []*models.TeacherPay
	for rows.Next() {
		pay, err := scanPay(rows)
		if err != nil {
			return nil, err
		}
		pays = append(pays, pay)
	}

	return pays, nil
}

func (r *TeacherPayRepository) Update(ctx context.Context, pay *models.TeacherPay) error {
	query := `
		UPDATE teacher_pays
		SET pay = $1, paid = $2
		WHERE id = $3
	`

	result, err := r.DB.Exec(ctx, query, pay.Pay, pay.Paid, pay.ID)
	if err != nil {
		return fmt.Errorf("failed to update teacher pay %d: %w", pay.ID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("teacher pay %d not found", pay.ID)
	}
	return nil
}

func (r *TeacherPayRepository) Delete(ctx context.Context, id int) error {
	result, err := r.DB.Exec(ctx, `DELETE FROM teacher_pays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete teacher pay %d: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("teacher pay %d not found", id)
	}
	return nil
}

// MonthlyTotals sums pay per billing month.
func (r *TeacherPayRepository) MonthlyTotals(ctx context.Context) ([]models.MonthlyTotal, error) {
	query := `
		SELECT month, SUM(pay)
		FROM teacher_pays
		GROUP BY month
		ORDER BY month
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
