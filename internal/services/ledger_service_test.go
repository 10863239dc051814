package services

import (
	"testing"
	"time"

	"school-backend/internal/models"
	"school-backend/internal/timeutil"
)

func month(year int, m time.Month) time.Time {
	return time.Date(year, m, 1, 0, 0, 0, 0, timeutil.PKT)
}

func TestCombineMonthlyTotals(t *testing.T) {
	jan := month(2025, time.January)
	feb := month(2025, time.February)
	mar := month(2025, time.March)

	fees := []models.MonthlyTotal{
		{Month: jan, Total: 10000},
		{Month: feb, Total: 12000},
	}
	pays := []models.MonthlyTotal{
		{Month: jan, Total: 6000},
		// March salaries exist but no fee records do
		{Month: mar, Total: 6000},
	}
	expenses := []models.MonthlyTotal{
		{Month: jan, Total: 1500},
	}

	got := combineMonthlyTotals(fees, pays, expenses)

	if len(got) != 2 {
		t.Fatalf("got %d breakdowns, want 2", len(got))
	}

	if !got[0].Month.Equal(jan) {
		t.Errorf("breakdown 0 month = %v, want %v", got[0].Month, jan)
	}
	if got[0].TotalStudentFees != 10000 || got[0].TotalTeacherPays != 6000 || got[0].TotalExpenses != 1500 {
		t.Errorf("january totals = %v/%v/%v, want 10000/6000/1500",
			got[0].TotalStudentFees, got[0].TotalTeacherPays, got[0].TotalExpenses)
	}
	if got[0].MonthlyProfit != 2500 {
		t.Errorf("january profit = %v, want 2500", got[0].MonthlyProfit)
	}

	// February has fees but no salaries or expenses: missing totals are zero
	if got[1].TotalTeacherPays != 0 || got[1].TotalExpenses != 0 {
		t.Errorf("february totals = %v/%v, want 0/0", got[1].TotalTeacherPays, got[1].TotalExpenses)
	}
	if got[1].MonthlyProfit != 12000 {
		t.Errorf("february profit = %v, want 12000", got[1].MonthlyProfit)
	}

	// March has salaries but no fee records, so it must not appear
	for _, b := range got {
		if b.Month.Equal(mar) {
			t.Error("march appeared in breakdown despite having no fee records")
		}
	}
}

func TestCombineMonthlyTotalsEmpty(t *testing.T) {
	got := combineMonthlyTotals(nil, nil, nil)
	if len(got) != 0 {
		t.Errorf("got %d breakdowns, want 0", len(got))
	}
}

func TestCombineMonthlyTotalsNegativeProfit(t *testing.T) {
	jan := month(2025, time.January)
	got := combineMonthlyTotals(
		[]models.MonthlyTotal{{Month: jan, Total: 5000}},
		[]models.MonthlyTotal{{Month: jan, Total: 7000}},
		[]models.MonthlyTotal{{Month: jan, Total: 1000}},
	)

	if len(got) != 1 {
		t.Fatalf("got %d breakdowns, want 1", len(got))
	}
	if got[0].MonthlyProfit != -3000 {
		t.Errorf("profit = %v, want -3000", got[0].MonthlyProfit)
	}
}
