package models

import "time"

// ExpenseCategory is the school outflow classification
type ExpenseCategory string

const (
	ExpenseCategorySalaries ExpenseCategory = "SALARIES"
	ExpenseCategoryRent     ExpenseCategory = "RENT"
	ExpenseCategoryUtility  ExpenseCategory = "UTILITY_BILLS"
	ExpenseCategoryAcademic ExpenseCategory = "ACADEMIC_EXPENSES"
	ExpenseCategoryAdminGen ExpenseCategory = "ADMIN_GEN_EXPENSES"
)

type Expense struct {
	ID          int             `json:"id"`
	Category    ExpenseCategory `json:"category"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description,omitempty"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CreateExpenseRequest represents the request body for recording an expense
type CreateExpenseRequest struct {
	Category    string  `json:"category" validate:"required,oneof=SALARIES RENT UTILITY_BILLS ACADEMIC_EXPENSES ADMIN_GEN_EXPENSES"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description"`
	Date        string  `json:"date" validate:"required"` // YYYY-MM-DD
}

// UpdateExpenseRequest represents the request body for updating an expense
type UpdateExpenseRequest struct {
	Category    string  `json:"category" validate:"required,oneof=SALARIES RENT UTILITY_BILLS ACADEMIC_EXPENSES ADMIN_GEN_EXPENSES"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description"`
	Date        string  `json:"date" validate:"required"`
}
