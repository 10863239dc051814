package models

import "time"

// StudentFee is one billing record for a student in a billing month.
// TotalFee, Balance and Paid are derived on every save and never trusted
// from request input.
type StudentFee struct {
	ID                int       `json:"id"`
	StudentRollNo     int       `json:"student_roll_no"`
	StudentName       string    `json:"student_name,omitempty"` // Joined from students table
	StudentGrade      int       `json:"student_grade,omitempty"`
	Month             time.Time `json:"month"`
	TuitionFee        float64   `json:"tuition_fee"`
	ExamFee           float64   `json:"exam_fee"`
	ACCharges         float64   `json:"ac_charges"`
	StationaryCharges float64   `json:"stationary_charges"`
	AdmissionFee      float64   `json:"admission_fee"`
	LabCharges        float64   `json:"lab_charges"`
	SecurityFee       float64   `json:"security_fee"`
	Misc              float64   `json:"misc"`
	// Pending is the balance carried forward from the previous billing
	// month, fixed at creation time.
	Pending     float64   `json:"pending"`
	AmountPaid  float64   `json:"amount_paid"`
	TotalFee    float64   `json:"total_fee"`
	Balance     float64   `json:"balance"`
	Paid        bool      `json:"paid"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Recalculate derives TotalFee, Balance and Paid from the record's
// components. Balance never goes negative: an overpayment is absorbed, not
// carried as credit. A record counts as paid whenever any non-zero amount
// was received, including a negative refund amount.
func (f *StudentFee) Recalculate() {
	f.TotalFee = f.TuitionFee + f.ExamFee + f.ACCharges + f.StationaryCharges +
		f.SecurityFee + f.AdmissionFee + f.LabCharges + f.Misc + f.Pending

	f.Balance = f.TotalFee - f.AmountPaid
	if f.Balance < 0 {
		f.Balance = 0
	}

	f.Paid = f.AmountPaid != 0
}

// CreateStudentFeeRequest represents the request body for recording a fee.
// Pending is accepted here because the carried-forward balance is fixed at
// creation time; total_fee/balance/paid from the client are ignored.
type CreateStudentFeeRequest struct {
	StudentRollNo     int     `json:"student_roll_no" validate:"required,gt=0"`
	Month             string  `json:"month" validate:"required"` // YYYY-MM-DD
	TuitionFee        float64 `json:"tuition_fee" validate:"gte=0"`
	ExamFee           float64 `json:"exam_fee" validate:"gte=0"`
	ACCharges         float64 `json:"ac_charges" validate:"gte=0"`
	StationaryCharges float64 `json:"stationary_charges" validate:"gte=0"`
	AdmissionFee      float64 `json:"admission_fee" validate:"gte=0"`
	LabCharges        float64 `json:"lab_charges" validate:"gte=0"`
	SecurityFee       float64 `json:"security_fee"`
	Misc              float64 `json:"misc" validate:"gte=0"`
	Pending           float64 `json:"pending" validate:"gte=0"`
	AmountPaid        float64 `json:"amount_paid"`
	Description       string  `json:"description"`
}

// UpdateStudentFeeRequest represents the request body for updating a fee
// record, typically to record a payment. Month and student are immutable
// once the record exists.
type UpdateStudentFeeRequest struct {
	TuitionFee        float64 `json:"tuition_fee" validate:"gte=0"`
	ExamFee           float64 `json:"exam_fee" validate:"gte=0"`
	ACCharges         float64 `json:"ac_charges" validate:"gte=0"`
	StationaryCharges float64 `json:"stationary_charges" validate:"gte=0"`
	AdmissionFee      float64 `json:"admission_fee" validate:"gte=0"`
	LabCharges        float64 `json:"lab_charges" validate:"gte=0"`
	SecurityFee       float64 `json:"security_fee"`
	Misc              float64 `json:"misc" validate:"gte=0"`
	AmountPaid        float64 `json:"amount_paid"`
	Description       string  `json:"description"`
}
