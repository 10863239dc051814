package timeutil

import (
	"testing"
	"time"
)

func TestTruncateMonth(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "mid month",
			in:   time.Date(2025, 3, 17, 14, 30, 0, 0, PKT),
			want: time.Date(2025, 3, 1, 0, 0, 0, 0, PKT),
		},
		{
			name: "first of month stays",
			in:   time.Date(2025, 3, 1, 0, 0, 0, 0, PKT),
			want: time.Date(2025, 3, 1, 0, 0, 0, 0, PKT),
		},
		{
			name: "last day of month",
			in:   time.Date(2024, 2, 29, 23, 59, 59, 0, PKT),
			want: time.Date(2024, 2, 1, 0, 0, 0, 0, PKT),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := TruncateMonth(tc.in)
			if !got.Equal(tc.want) {
				t.Errorf("TruncateMonth(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestTruncateMonthConvertsZone(t *testing.T) {
	// 2025-03-31 21:00 UTC is already April 1st in PKT
	in := time.Date(2025, 3, 31, 21, 0, 0, 0, time.UTC)
	got := TruncateMonth(in)
	want := time.Date(2025, 4, 1, 0, 0, 0, 0, PKT)
	if !got.Equal(want) {
		t.Errorf("TruncateMonth(%v) = %v, want %v", in, got, want)
	}
}

func TestSameMonth(t *testing.T) {
	a := time.Date(2025, 3, 1, 0, 0, 0, 0, PKT)
	b := time.Date(2025, 3, 31, 23, 59, 0, 0, PKT)
	c := time.Date(2025, 4, 1, 0, 0, 0, 0, PKT)

	if !SameMonth(a, b) {
		t.Errorf("expected %v and %v to be the same month", a, b)
	}
	if SameMonth(b, c) {
		t.Errorf("expected %v and %v to be different months", b, c)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-06-01")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	want := time.Date(2025, 6, 1, 0, 0, 0, 0, PKT)
	if !got.Equal(want) {
		t.Errorf("ParseDate = %v, want %v", got, want)
	}

	if _, err := ParseDate("06/01/2025"); err == nil {
		t.Error("expected error for non ISO date")
	}
	if _, err := ParseDate(""); err == nil {
		t.Error("expected error for empty string")
	}
}
