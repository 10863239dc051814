package models

import "time"

// Ledger is one calendar month's financial snapshot, unique on month.
// Rows are upserted by the monthly profit aggregator, never duplicated.
type Ledger struct {
	ID                 int       `json:"id"`
	Month              time.Time `json:"month"`
	MonthlyStudentFees float64   `json:"monthly_student_fees"`
	MonthlyTeacherPays float64   `json:"monthly_teacher_pays"`
	MonthlyExpenses    float64   `json:"monthly_expenses"`
	MonthlyProfit      float64   `json:"monthly_profit"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// UpdateLedgerRequest represents the request body for a manual ledger edit.
// The next aggregator run overwrites manual edits.
type UpdateLedgerRequest struct {
	MonthlyStudentFees float64 `json:"monthly_student_fees" validate:"gte=0"`
	MonthlyTeacherPays float64 `json:"monthly_teacher_pays" validate:"gte=0"`
	MonthlyExpenses    float64 `json:"monthly_expenses" validate:"gte=0"`
	MonthlyProfit      float64 `json:"monthly_profit"`
}

// MonthlyTotal is one month's summed amount from a group-by-month query
type MonthlyTotal struct {
	Month time.Time `json:"month"`
	Total float64   `json:"total"`
}

// MonthlyBreakdown is one month's computed result from an aggregator run
type MonthlyBreakdown struct {
	Month            time.Time `json:"month"`
	TotalStudentFees float64   `json:"total_student_fees"`
	TotalTeacherPays float64   `json:"total_teacher_salaries"`
	TotalExpenses    float64   `json:"total_expenses"`
	MonthlyProfit    float64   `json:"monthly_profit"`
}
