package models

import "time"

// TeacherPay is one salary record for a teacher in a billing month. Unlike
// student fees there is no carry-forward balance and nothing is derived.
type TeacherPay struct {
	ID          int       `json:"id"`
	TeacherID   int       `json:"teacher_id"`
	TeacherName string    `json:"teacher_name,omitempty"` // Joined from teachers table
	Month       time.Time `json:"month"`
	Pay         float64   `json:"pay"`
	Paid        bool      `json:"paid"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateTeacherPayRequest represents the request body for recording a pay
type CreateTeacherPayRequest struct {
	TeacherID int     `json:"teacher_id" validate:"required,gt=0"`
	Month     string  `json:"month" validate:"required"` // YYYY-MM-DD
	Pay       float64 `json:"pay" validate:"gte=0"`
	Paid      bool    `json:"paid"`
}

// UpdateTeacherPayRequest represents the request body for updating a pay
// record, typically to mark it disbursed
type UpdateTeacherPayRequest struct {
	Pay  float64 `json:"pay" validate:"gte=0"`
	Paid bool    `json:"paid"`
}

// GenerateTeacherPay is a write-once trigger record: creating one generates
// a TeacherPay for every enrolled teacher at their current rate.
type GenerateTeacherPay struct {
	ID        int       `json:"id"`
	Month     time.Time `json:"month"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateGenerateTeacherPayRequest represents the request body for a bulk
// pay generation run
type CreateGenerateTeacherPayRequest struct {
	Month string `json:"month" validate:"required"` // YYYY-MM-DD
}

// UpdateGenerateTeacherPayRequest edits the trigger record itself. Updates
// never regenerate pay records.
type UpdateGenerateTeacherPayRequest struct {
	Month string `json:"month" validate:"required"`
}

// PayGenerationResult is returned after a generation run
type PayGenerationResult struct {
	Generation   *GenerateTeacherPay `json:"generation"`
	PaysCreated  int                 `json:"pays_created"`
	TeacherCount int                 `json:"teacher_count"`
}
