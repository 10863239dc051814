package models

import "time"

// OnlineTransactionStatus represents the status of an online fee payment
type OnlineTransactionStatus string

const (
	OnlineTxStatusPending OnlineTransactionStatus = "pending"
	OnlineTxStatusSuccess OnlineTransactionStatus = "success"
	OnlineTxStatusFailed  OnlineTransactionStatus = "failed"
)

// OnlineTransaction represents a Razorpay fee payment transaction. A
// successful transaction is applied to the target StudentFee record through
// the fee engine.
type OnlineTransaction struct {
	ID                int    `json:"id"`
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id,omitempty"`

	StudentRollNo int    `json:"student_roll_no"`
	StudentName   string `json:"student_name"`
	FeeID         int    `json:"fee_id"`

	// Amounts in rupees
	Amount      float64 `json:"amount"`       // Payment applied to the fee record
	FeeAmount   float64 `json:"fee_amount"`   // Gateway convenience fee
	TotalAmount float64 `json:"total_amount"` // What the payer is charged

	Status        OnlineTransactionStatus `json:"status"`
	FailureReason string                  `json:"failure_reason,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// CreateOnlinePaymentRequest initiates an online fee payment
type CreateOnlinePaymentRequest struct {
	FeeID  int     `json:"fee_id" validate:"required,gt=0"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// CreateOrderResponse is returned to the frontend for Razorpay checkout
type CreateOrderResponse struct {
	OrderID     string  `json:"order_id"`
	Amount      int     `json:"amount"`       // In paise
	FeeAmount   int     `json:"fee_amount"`   // In paise
	TotalAmount int     `json:"total_amount"` // In paise
	Currency    string  `json:"currency"`
	KeyID       string  `json:"key_id"`
	StudentName string  `json:"student_name"`
	FeePercent  float64 `json:"fee_percent"`
}

// VerifyPaymentRequest is sent from the frontend after the Razorpay callback
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" validate:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature" validate:"required"`
}

// PaymentStatusResponse is returned when checking if online payments are
// enabled
type PaymentStatusResponse struct {
	Enabled    bool    `json:"enabled"`
	FeePercent float64 `json:"fee_percent"`
	KeyID      string  `json:"key_id,omitempty"`
}
