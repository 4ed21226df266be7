package utils

import "testing"

func TestToCentsRounding(t *testing.T) {
	cases := []struct {
		in   float64
		want Cents
	}{
		{110.00, 11000},
		{0.01, 1},
		{59.99, 5999},
		{1250.50, 125050},
		{-5.25, -525},
		{0, 0},
	}
	for _, tc := range cases {
		if got := ToCents(tc.in); got != tc.want {
			t.Fatalf("ToCents(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestRoundedTax(t *testing.T) {
	if got := RoundedTax(10000, 0.10); got != 1000 {
		t.Fatalf("tax on 100.00 at 10%% = %d, want 1000", got)
	}
	// 33.33 * 7% = 2.3331 -> 2.33
	if got := RoundedTax(3333, 0.07); got != 233 {
		t.Fatalf("tax on 33.33 at 7%% = %d, want 233", got)
	}
	if got := RoundedTax(3333, 0); got != 0 {
		t.Fatalf("zero rate must yield zero tax, got %d", got)
	}
}

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney(11000); got != "110.00" {
		t.Fatalf("FormatMoney(11000) = %q", got)
	}
	if got := FormatMoney(5); got != "0.05" {
		t.Fatalf("FormatMoney(5) = %q", got)
	}
}

func TestParseMoney(t *testing.T) {
	got, err := ParseMoney("1,250.50")
	if err != nil {
		t.Fatalf("ParseMoney returned error: %v", err)
	}
	if got != 125050 {
		t.Fatalf("ParseMoney = %d, want 125050", got)
	}
	if _, err := ParseMoney(""); err == nil {
		t.Fatalf("expected error for empty amount")
	}
}
