package types

import "testing"

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   float64
		want int64
	}{
		{0, 0},
		{1.4, 1},
		{1.5, 2},
		{2.5, 3},
		{97.75, 98},
		{-1.5, -2},
	}
	for _, tt := range tests {
		if got := RoundHalfUp(tt.in); got != tt.want {
			t.Errorf("RoundHalfUp(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestMoney_Scale(t *testing.T) {
	m := Money{Amount: 8500, Currency: "FJD"}
	if got := m.Scale(0.44); got.Amount != 3740 {
		t.Errorf("Scale(0.44) = %d, want 3740", got.Amount)
	}
	if got := m.Scale(1.25); got.Amount != 10625 {
		t.Errorf("Scale(1.25) = %d, want 10625", got.Amount)
	}
}

func TestMoney_String(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{Money{8500, "FJD"}, "85.00 FJD"},
		{Money{3740, "USD"}, "37.40 USD"},
		{Money{-850, "FJD"}, "-8.50 FJD"},
		{Money{5, "FJD"}, "0.05 FJD"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
