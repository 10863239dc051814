package repositories

import (
	"strings"
	"testing"
)

// The ledger must record what each month charged, not what has been
// collected so far. A generation run that bills 10000 with nothing paid
// yet still contributes 10000 to that month's student fees.
func TestMonthlyFeeTotalsSumsChargedAmount(t *testing.T) {
	if !strings.Contains(monthlyFeeTotalsQuery, "SUM(total_fee)") {
		t.Errorf("monthly totals query must aggregate total_fee, got:\n%s", monthlyFeeTotalsQuery)
	}
	if strings.Contains(monthlyFeeTotalsQuery, "amount_paid") {
		t.Errorf("monthly totals query must not aggregate amount_paid, got:\n%s", monthlyFeeTotalsQuery)
	}
	for _, clause := range []string{"GROUP BY month", "ORDER BY month"} {
		if !strings.Contains(monthlyFeeTotalsQuery, clause) {
			t.Errorf("monthly totals query missing %q", clause)
		}
	}
}
