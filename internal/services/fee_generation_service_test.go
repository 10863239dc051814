package services

import (
	"testing"
	"time"

	"school-backend/internal/models"
	"school-backend/internal/timeutil"
)

func TestBuildGenerationFee(t *testing.T) {
	month := time.Date(2025, 4, 1, 0, 0, 0, 0, timeutil.PKT)
	gen := &models.FeeGeneration{
		Month:             month,
		ExamFee:           500,
		ACCharges:         300,
		StationaryCharges: 150,
		LabCharges:        250,
	}

	cases := []struct {
		name        string
		student     models.Student
		wantTotal   float64
		wantBalance float64
		wantPending float64
	}{
		{
			name:        "student with no dues",
			student:     models.Student{RollNo: 1, TuitionFee: 4000},
			wantTotal:   5200,
			wantBalance: 5200,
			wantPending: 0,
		},
		{
			name:        "student carrying a pending balance",
			student:     models.Student{RollNo: 2, TuitionFee: 4000, PendingFee: 1800},
			wantTotal:   7000,
			wantBalance: 7000,
			wantPending: 1800,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fee := buildGenerationFee(&tc.student, gen)

			if fee.StudentRollNo != tc.student.RollNo {
				t.Errorf("StudentRollNo = %d, want %d", fee.StudentRollNo, tc.student.RollNo)
			}
			if !fee.Month.Equal(month) {
				t.Errorf("Month = %v, want %v", fee.Month, month)
			}
			if fee.TuitionFee != tc.student.TuitionFee {
				t.Errorf("TuitionFee = %v, want %v", fee.TuitionFee, tc.student.TuitionFee)
			}
			if fee.Pending != tc.wantPending {
				t.Errorf("Pending = %v, want %v", fee.Pending, tc.wantPending)
			}
			// Admission and security are one-time charges and never
			// appear in a generation run
			if fee.AdmissionFee != 0 || fee.SecurityFee != 0 {
				t.Errorf("AdmissionFee = %v, SecurityFee = %v, want both 0", fee.AdmissionFee, fee.SecurityFee)
			}
			if fee.TotalFee != tc.wantTotal {
				t.Errorf("TotalFee = %v, want %v", fee.TotalFee, tc.wantTotal)
			}
			if fee.Balance != tc.wantBalance {
				t.Errorf("Balance = %v, want %v", fee.Balance, tc.wantBalance)
			}
			if fee.Paid {
				t.Error("Paid = true, want false")
			}
		})
	}
}
