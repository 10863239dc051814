package repositories

import (
	"context"
	"fmt"

	"school-backend/internal/models"
	"school-backend/internal/timeutil"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OnlineTransactionRepository struct {
	DB *pgxpool.Pool
}

func NewOnlineTransactionRepository(db *pgxpool.Pool) *OnlineTransactionRepository {
	return &OnlineTransactionRepository{DB: db}
}

// Create records a pending online transaction
func (r *OnlineTransactionRepository) Create(ctx context.Context, tx *models.OnlineTransaction) error {
	query := `
		INSERT INTO online_transactions (razorpay_order_id, student_roll_no, student_name,
		                                 fee_id, amount, fee_amount, total_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := r.DB.QueryRow(ctx, query,
		tx.RazorpayOrderID,
		tx.StudentRollNo,
		tx.StudentName,
		tx.FeeID,
		tx.Amount,
		tx.FeeAmount,
		tx.TotalAmount,
		models.OnlineTxStatusPending,
	).Scan(&tx.ID, &tx.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create online transaction: %w", err)
	}

	tx.Status = models.OnlineTxStatusPending
	return nil
}

const onlineTxColumns = `
	id, razorpay_order_id, COALESCE(razorpay_payment_id, ''), student_roll_no,
	student_name, fee_id, amount, fee_amount, total_amount, status,
	COALESCE(failure_reason, ''), created_at, completed_at`

func scanOnlineTx(row pgx.Row) (*models.OnlineTransaction, error) {
	tx := &models.OnlineTransaction{}
	err := row.Scan(
		&tx.ID,
		&tx.RazorpayOrderID,
		&tx.RazorpayPaymentID,
		&tx.StudentRollNo,
		&tx.StudentName,
		&tx.FeeID,
		&tx.Amount,
		&tx.FeeAmount,
		&tx.TotalAmount,
		&tx.Status,
		&tx.FailureReason,
		&tx.CreatedAt,
		&tx.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// GetByOrderID retrieves a transaction by Razorpay order ID
func (r *OnlineTransactionRepository) GetByOrderID(ctx context.Context, orderID string) (*models.OnlineTransaction, error) {
	query := `SELECT` + onlineTxColumns + `
		FROM online_transactions
		WHERE razorpay_order_id = $1
	`
	return scanOnlineTx(r.DB.QueryRow(ctx, query, orderID))
}

func (r *OnlineTransactionRepository) List(ctx context.Context) ([]*models.OnlineTransaction, error) {
	query := `SELECT` + onlineTxColumns + `
		FROM online_transactions
		ORDER BY created_at DESC
	`
	return r.queryTransactions(ctx, query)
}

func (r *OnlineTransactionRepository) ListByStudent(ctx context.Context, rollNo int) ([]*models.OnlineTransaction, error) {
	query := `SELECT` + onlineTxColumns + `
		FROM online_transactions
		WHERE student_roll_no = $1
		ORDER BY created_at DESC
	`
	return r.queryTransactions(ctx, query, rollNo)
}

func (r *OnlineTransactionRepository) queryTransactions(ctx context.Context, query string, args ...interface{}) ([]*models.OnlineTransaction, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*models.OnlineTransaction
	for rows.Next() {
		tx, err := scanOnlineTx(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	return transactions, nil
}

// MarkSuccess records a verified payment
func (r *OnlineTransactionRepository) MarkSuccess(ctx context.Context, orderID, paymentID string) error {
	query := `
		UPDATE online_transactions
		SET razorpay_payment_id = $2, status = $3, completed_at = $4
		WHERE razorpay_order_id = $1
	`
	_, err := r.DB.Exec(ctx, query, orderID, paymentID, models.OnlineTxStatusSuccess, timeutil.Now())
	return err
}

// MarkFailed records a failed payment attempt
func (r *OnlineTransactionRepository) MarkFailed(ctx context.Context, orderID, reason string) error {
	query := `
		UPDATE online_transactions
		SET status = $2, failure_reason = $3, completed_at = $4
		WHERE razorpay_order_id = $1
	`
	_, err := r.DB.Exec(ctx, query, orderID, models.OnlineTxStatusFailed, reason, timeutil.Now())
	return err
}

// IsPaymentProcessed reports whether a payment has already been applied.
// Webhook and frontend verification can race; the first one wins.
func (r *OnlineTransactionRepository) IsPaymentProcessed(ctx context.Context, orderID string) (bool, error) {
	var status string
	err := r.DB.QueryRow(ctx, `SELECT status FROM online_transactions WHERE razorpay_order_id = $1`, orderID).Scan(&status)
	if err != nil {
		return false, err
	}
	return status == string(models.OnlineTxStatusSuccess), nil
}
