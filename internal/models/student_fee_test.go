package models

import "testing"

func TestRecalculate(t *testing.T) {
	cases := []struct {
		name        string
		fee         StudentFee
		wantTotal   float64
		wantBalance float64
		wantPaid    bool
	}{
		{
			name:        "all components summed",
			fee:         StudentFee{TuitionFee: 5000, ExamFee: 500, ACCharges: 300, StationaryCharges: 200, AdmissionFee: 1000, LabCharges: 400, SecurityFee: 2000, Misc: 100, Pending: 1500},
			wantTotal:   11000,
			wantBalance: 11000,
			wantPaid:    false,
		},
		{
			name:        "partial payment",
			fee:         StudentFee{TuitionFee: 5000, Pending: 1000, AmountPaid: 4000},
			wantTotal:   6000,
			wantBalance: 2000,
			wantPaid:    true,
		},
		{
			name:        "exact payment",
			fee:         StudentFee{TuitionFee: 5000, AmountPaid: 5000},
			wantTotal:   5000,
			wantBalance: 0,
			wantPaid:    true,
		},
		{
			name:        "overpayment clamps balance to zero",
			fee:         StudentFee{TuitionFee: 5000, AmountPaid: 7000},
			wantTotal:   5000,
			wantBalance: 0,
			wantPaid:    true,
		},
		{
			name:        "zero payment is unpaid",
			fee:         StudentFee{TuitionFee: 5000},
			wantTotal:   5000,
			wantBalance: 5000,
			wantPaid:    false,
		},
		{
			name:        "security refund counts as paid",
			fee:         StudentFee{SecurityFee: -5000, AmountPaid: -5000},
			wantTotal:   -5000,
			wantBalance: 0,
			wantPaid:    true,
		},
		{
			name:        "zero record",
			fee:         StudentFee{},
			wantTotal:   0,
			wantBalance: 0,
			wantPaid:    false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.fee.Recalculate()
			if tc.fee.TotalFee != tc.wantTotal {
				t.Errorf("TotalFee = %v, want %v", tc.fee.TotalFee, tc.wantTotal)
			}
			if tc.fee.Balance != tc.wantBalance {
				t.Errorf("Balance = %v, want %v", tc.fee.Balance, tc.wantBalance)
			}
			if tc.fee.Paid != tc.wantPaid {
				t.Errorf("Paid = %v, want %v", tc.fee.Paid, tc.wantPaid)
			}
		})
	}
}
