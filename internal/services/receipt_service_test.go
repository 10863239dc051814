package services

import (
	"testing"

	"school-backend/internal/models"
)

func TestChargeRows(t *testing.T) {
	fee := &models.StudentFee{
		TuitionFee: 4000,
		ExamFee:    500,
		LabCharges: 250,
		Pending:    1800,
	}

	rows := chargeRows(fee)
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4 (zero charges must be skipped)", len(rows))
	}

	want := [][2]string{
		{"Tuition Fee", "4000.00"},
		{"Exam Fee", "500.00"},
		{"Lab Charges", "250.00"},
		{"Previous Balance", "1800.00"},
	}
	for i, w := range want {
		if rows[i] != w {
			t.Errorf("row %d = %v, want %v", i, rows[i], w)
		}
	}
}

func TestChargeRowsRefund(t *testing.T) {
	fee := &models.StudentFee{SecurityFee: -5000}

	rows := chargeRows(fee)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0] != [2]string{"Security Fee", "-5000.00"} {
		t.Errorf("row 0 = %v, want negative security fee", rows[0])
	}
}
