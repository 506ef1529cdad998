package menu

import (
	"math"
	"testing"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{12.5, "$12.50"},
		{4, "$4.00"},
		{0, "$0.00"},
		{6.499, "$6.50"},
		{math.NaN(), "$NaN"},
		{math.Inf(1), "$NaN"},
		{math.Inf(-1), "$NaN"},
		{ParsePrice("1e999"), "$NaN"},
	}
	for _, tt := range tests {
		if got := FormatPrice(tt.price); got != tt.want {
			t.Errorf("FormatPrice(%v) = %q, want %q", tt.price, got, tt.want)
		}
	}
}

func TestFormatAmountRoundTrips(t *testing.T) {
	for _, price := range []float64{4, 12.5, 0.1, 1000} {
		if got := ParsePrice(FormatAmount(price)); got != price {
			t.Errorf("ParsePrice(FormatAmount(%v)) = %v", price, got)
		}
	}
}
