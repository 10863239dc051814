package models

import "time"

type Student struct {
	RollNo        int        `json:"roll_no"`
	Name          string     `json:"name"`
	Grade         int        `json:"grade"`
	FatherName    string     `json:"father_name"`
	Contact       string     `json:"contact"`
	DOB           *time.Time `json:"dob,omitempty"`
	AdmissionDate *time.Time `json:"admission_date,omitempty"`
	Address       string     `json:"address"`
	TuitionFee    float64    `json:"tuition_fee"`
	SecurityFee   float64    `json:"security_fee"`
	AdmissionFee  float64    `json:"admission_fee"`
	// PendingFee mirrors the balance of the student's most recent fee
	// record. It is refreshed inside the same transaction as every fee
	// write and must never be set from request input.
	PendingFee float64   `json:"pending_fee"`
	Enrolled   bool      `json:"enrolled"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateStudentRequest represents the request body for admitting a student
type CreateStudentRequest struct {
	Name          string  `json:"name" validate:"required"`
	Grade         int     `json:"grade" validate:"gte=0"`
	FatherName    string  `json:"father_name"`
	Contact       string  `json:"contact"`
	DOB           string  `json:"dob,omitempty"`            // YYYY-MM-DD
	AdmissionDate string  `json:"admission_date,omitempty"` // YYYY-MM-DD
	Address       string  `json:"address"`
	TuitionFee    float64 `json:"tuition_fee" validate:"gte=0"`
	SecurityFee   float64 `json:"security_fee" validate:"gte=0"`
	AdmissionFee  float64 `json:"admission_fee" validate:"gte=0"`
}

// UpdateStudentRequest represents the request body for updating a student.
// Setting Enrolled to false on a currently enrolled student triggers the
// security deposit refund.
type UpdateStudentRequest struct {
	Name          string  `json:"name" validate:"required"`
	Grade         int     `json:"grade" validate:"gte=0"`
	FatherName    string  `json:"father_name"`
	Contact       string  `json:"contact"`
	DOB           string  `json:"dob,omitempty"`
	AdmissionDate string  `json:"admission_date,omitempty"`
	Address       string  `json:"address"`
	TuitionFee    float64 `json:"tuition_fee" validate:"gte=0"`
	SecurityFee   float64 `json:"security_fee" validate:"gte=0"`
	AdmissionFee  float64 `json:"admission_fee" validate:"gte=0"`
	Enrolled      bool    `json:"enrolled"`
}
