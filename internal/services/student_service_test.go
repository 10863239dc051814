package services

import (
	"testing"

	"school-backend/internal/models"
	"school-backend/internal/timeutil"
)

func TestBuildRefundFee(t *testing.T) {
	student := &models.Student{
		RollNo:      42,
		Name:        "Ahmed Khan",
		SecurityFee: 5000,
		PendingFee:  1200,
	}

	fee := buildRefundFee(student)

	if fee.StudentRollNo != 42 {
		t.Errorf("StudentRollNo = %d, want 42", fee.StudentRollNo)
	}
	if fee.SecurityFee != -5000 {
		t.Errorf("SecurityFee = %v, want -5000", fee.SecurityFee)
	}
	if fee.AmountPaid != -5000 {
		t.Errorf("AmountPaid = %v, want -5000", fee.AmountPaid)
	}
	if fee.TotalFee != -5000 {
		t.Errorf("TotalFee = %v, want -5000", fee.TotalFee)
	}
	// The refund must reset the student's cached pending fee to zero
	if fee.Balance != 0 {
		t.Errorf("Balance = %v, want 0", fee.Balance)
	}
	if !fee.Paid {
		t.Error("Paid = false, want true")
	}
	if fee.Description != "Security refund" {
		t.Errorf("Description = %q, want %q", fee.Description, "Security refund")
	}
	// The refund does not carry the pending balance forward
	if fee.Pending != 0 {
		t.Errorf("Pending = %v, want 0", fee.Pending)
	}
	if !timeutil.SameMonth(fee.Month, timeutil.Now()) {
		t.Errorf("Month = %v, want current month", fee.Month)
	}
}
