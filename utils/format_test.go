package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{"both zero", 0, 0, 0},
		{"no previous, some current", 100, 0, 100},
		{"growth", 150, 100, 50},
		{"decline", 50, 100, -50},
		{"to zero", 0, 100, -100},
		{"unchanged", 80, 80, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PercentChange(tt.current, tt.previous), 1e-9)
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 3.33, Round2(10.0/3.0))
	assert.Equal(t, 2.68, Round2(2.675000001))
	assert.Equal(t, -1.5, Round2(-1.499))
}

func TestFormatCurrencyK(t *testing.T) {
	assert.Equal(t, "₹177k", FormatCurrencyK(176500))
	assert.Equal(t, "₹0k", FormatCurrencyK(0))
	assert.Equal(t, "₹1k", FormatCurrencyK(1000))
	assert.Equal(t, "₹2k", FormatCurrencyK(1500))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "₹1235", FormatCurrency(1234.56))
	assert.Equal(t, "₹0", FormatCurrency(0))
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "0", FormatCount(0))
	assert.Equal(t, "999", FormatCount(999))
	assert.Equal(t, "1,000", FormatCount(1000))
	assert.Equal(t, "1,234,567", FormatCount(1234567))
	assert.Equal(t, "-12,345", FormatCount(-12345))
}
