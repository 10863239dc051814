package repositories

import (
	"context"
	"fmt"

	"school-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StudentFeeRepository struct {
	DB *pgxpool.Pool
}

func NewStudentFeeRepository(db *pgxpool.Pool) *StudentFeeRepository {
	return &StudentFeeRepository{DB: db}
}

// refreshPendingFee writes the balance of the student's most recent fee
// record into students.pending_fee. Most recent means highest month, then
// highest id for ties within a month. Runs inside the caller's transaction
// so the fee write and the cache refresh commit or roll back together.
func refreshPendingFee(ctx context.Context, tx pgx.Tx, rollNo int) error {
	query := `
		UPDATE students
		SET pending_fee = COALESCE((
			SELECT balance FROM student_fees
			WHERE student_roll_no = $1
			ORDER BY month DESC, id DESC
			LIMIT 1
		), 0), updated_at = NOW()
		WHERE roll_no = $1
	`
	if _, err := tx.Exec(ctx, query, rollNo); err != nil {
		return fmt.Errorf("failed to refresh pending fee for student %d: %w", rollNo, err)
	}
	return nil
}

const insertFeeQuery = `
	INSERT INTO student_fees (student_roll_no, month, tuition_fee, exam_fee, ac_charges,
	                          stationary_charges, admission_fee, lab_charges, security_fee,
	                          misc, pending, amount_paid, total_fee, balance, paid, description)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	RETURNING id, created_at
`

func insertFee(ctx context.Context, tx pgx.Tx, fee *models.StudentFee) error {
	err := tx.QueryRow(ctx, insertFeeQuery,
		fee.StudentRollNo,
		fee.Month,
		fee.TuitionFee,
		fee.ExamFee,
		fee.ACCharges,
		fee.StationaryCharges,
		fee.AdmissionFee,
		fee.LabCharges,
		fee.SecurityFee,
		fee.Misc,
		fee.Pending,
		fee.AmountPaid,
		fee.TotalFee,
		fee.Balance,
		fee.Paid,
		fee.Description,
	).Scan(&fee.ID, &fee.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert fee for student %d: %w", fee.StudentRollNo, err)
	}
	return nil
}

// Create inserts a fee record and refreshes the student's cached pending
// fee in the same transaction. The caller must have run Recalculate first.
func (r *StudentFeeRepository) Create(ctx context.Context, fee *models.StudentFee) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := insertFee(ctx, tx, fee); err != nil {
		return err
	}
	if err := refreshPendingFee(ctx, tx, fee.StudentRollNo); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit fee creation: %w", err)
	}
	return nil
}

// BulkCreate inserts a batch of fee records (one generation run) in a
// single transaction, refreshing each affected student's cached pending fee
// once. All records commit or none do.
func (r *StudentFeeRepository) BulkCreate(ctx context.Context, fees []*models.StudentFee) error {
	if len(fees) == 0 {
		return nil
	}

	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, fee := range fees {
		if err := insertFee(ctx, tx, fee); err != nil {
			return err
		}
	}
	for _, fee := range fees {
		if err := refreshPendingFee(ctx, tx, fee.StudentRollNo); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit fee generation: %w", err)
	}
	return nil
}

// Update rewrites a fee record's components and refreshes the cached
// pending fee in the same transaction. Month and student are immutable.
func (r *StudentFeeRepository) Update(ctx context.Context, fee *models.StudentFee) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE student_fees
		SET tuition_fee = $1, exam_fee = $2, ac_charges = $3, stationary_charges = $4,
		    admission_fee = $5, lab_charges = $6, security_fee = $7, misc = $8,
		    amount_paid = $9, total_fee = $10, balance = $11, paid = $12, description = $13
		WHERE id = $14
	`

	result, err := tx.Exec(ctx, query,
		fee.TuitionFee,
		fee.ExamFee,
		fee.ACCharges,
		fee.StationaryCharges,
		fee.AdmissionFee,
		fee.LabCharges,
		fee.SecurityFee,
		fee.Misc,
		fee.AmountPaid,
		fee.TotalFee,
		fee.Balance,
		fee.Paid,
		fee.Description,
		fee.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update fee %d: %w", fee.ID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("fee %d not found", fee.ID)
	}

	if err := refreshPendingFee(ctx, tx, fee.StudentRollNo); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit fee update: %w", err)
	}
	return nil
}

// Delete removes a fee record. The cached pending fee is refreshed in the
// same transaction because the most recent record may have changed.
func (r *StudentFeeRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var rollNo int
	err = tx.QueryRow(ctx, `DELETE FROM student_fees WHERE id = $1 RETURNING student_roll_no`, id).Scan(&rollNo)
	if err != nil {
		if err == pgx.ErrNoRows {
			return fmt.Errorf("fee %d not found", id)
		}
		return fmt.Errorf("failed to delete fee %d: %w", id, err)
	}

	if err := refreshPendingFee(ctx, tx, rollNo); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit fee deletion: %w", err)
	}
	return nil
}

const feeSelectColumns = `
	f.id, f.student_roll_no, s.name, s.grade, f.month, f.tuition_fee, f.exam_fee,
	f.ac_charges, f.stationary_charges, f.admission_fee, f.lab_charges, f.security_fee,
	f.misc, f.pending, f.amount_paid, f.total_fee, f.balance, f.paid,
	COALESCE(f.description, ''), f.created_at`

func scanFee(row pgx.Row) (*models.StudentFee, error) {
	fee := &models.StudentFee{}
	err := row.Scan(
		&fee.ID,
		&fee.StudentRollNo,
		&fee.StudentName,
		&fee.StudentGrade,
		&fee.Month,
		&fee.TuitionFee,
		&fee.ExamFee,
		&fee.ACCharges,
		&fee.StationaryCharges,
		&fee.AdmissionFee,
		&fee.LabCharges,
		&fee.SecurityFee,
		&fee.Misc,
		&fee.Pending,
		&fee.AmountPaid,
		&fee.TotalFee,
		&fee.Balance,
		&fee.Paid,
		&fee.Description,
		&fee.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return fee, nil
}

func (r *StudentFeeRepository) GetByID(ctx context.Context, id int) (*models.StudentFee, error) {
	query := `SELECT` + feeSelectColumns + `
		FROM student_fees f
		JOIN students s ON f.student_roll_no = s.roll_no
		WHERE f.id = $1
	`
	return scanFee(r.DB.QueryRow(ctx, query, id))
}

func (r *StudentFeeRepository) List(ctx context.Context) ([]*models.StudentFee, error) {
	query := `SELECT` + feeSelectColumns + `
		FROM student_fees f
		JOIN students s ON f.student_roll_no = s.roll_no
		ORDER BY f.month DESC, f.id DESC
	`
	return r.queryFees(ctx, query)
}

func (r *StudentFeeRepository) ListByStudent(ctx context.Context, rollNo int) ([]*models.StudentFee, error) {
	query := `SELECT` + feeSelectColumns + `
		FROM student_fees f
		JOIN students s ON f.student_roll_no = s.roll_no
		WHERE f.student_roll_no = $1
		ORDER BY f.month DESC, f.id DESC
	`
	return r.queryFees(ctx, query, rollNo)
}

func (r *StudentFeeRepository) queryFees(ctx context.Context, query string, args ...interface{}) ([]*models.StudentFee, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fees []*models.StudentFee
	for rows.Next() {
		fee, err := scanFee(rows)
		if err != nil {
			return nil, err
		}
		fees = append(fees, fee)
	}

	return fees, nil
}

const monthlyFeeTotalsQuery = `
	SELECT month, SUM(total_fee)
	FROM student_fees
	GROUP BY month
	ORDER BY month
`

// MonthlyTotals sums total_fee per billing month, so the ledger records
// what was charged rather than what has been collected. These months are
// the driving set of a ledger populate run.
func (r *StudentFeeRepository) MonthlyTotals(ctx context.Context) ([]models.MonthlyTotal, error) {
	rows, err := r.DB.Query(ctx, monthlyFeeTotalsQuery)
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
