package currency

import "testing"

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{249.5, "$249.50"},
		{1234.56, "$1,234.56"},
		{1000000, "$1,000,000.00"},
		{999.999, "$1,000.00"},
		{-42.5, "-$42.50"},
		{0.01, "$0.01"},
	}

	for _, tt := range tests {
		if got := FormatUSD(tt.amount); got != tt.want {
			t.Errorf("FormatUSD(%v) = %s, expected %s", tt.amount, got, tt.want)
		}
	}
}
