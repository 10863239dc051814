package models

import "time"

// FeeGeneration is a write-once trigger record: creating one generates a
// StudentFee for every enrolled student with the shared schedule below.
// Re-saving an existing generation never regenerates.
type FeeGeneration struct {
	Serial            int       `json:"serial"`
	Month             time.Time `json:"month"`
	ExamFee           float64   `json:"exam_fee"`
	ACCharges         float64   `json:"ac_charges"`
	StationaryCharges float64   `json:"stationary_charges"`
	LabCharges        float64   `json:"lab_charges"`
	CreatedAt         time.Time `json:"created_at"`
}

// CreateFeeGenerationRequest represents the request body for a bulk fee
// generation run
type CreateFeeGenerationRequest struct {
	Month             string  `json:"month" validate:"required"` // YYYY-MM-DD
	ExamFee           float64 `json:"exam_fee" validate:"gte=0"`
	ACCharges         float64 `json:"ac_charges" validate:"gte=0"`
	StationaryCharges float64 `json:"stationary_charges" validate:"gte=0"`
	LabCharges        float64 `json:"lab_charges" validate:"gte=0"`
}

// FeeGenerationResult is returned after a generation run
type FeeGenerationResult struct {
	Generation   *FeeGeneration `json:"generation"`
	FeesCreated  int            `json:"fees_created"`
	StudentCount int            `json:"student_count"`
}
