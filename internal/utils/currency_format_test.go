package utils_test

import (
	"testing"

	"github.com/aymanouf/committee-finance/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatKD(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "KD 0.00"},
		{"12.3", "KD 12.30"},
		{"100.005", "KD 100.01"},
		{"-45.5", "KD -45.50"},
		{"1234567.891", "KD 1234567.89"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := utils.FormatKD(decimal.RequireFromString(tt.amount))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPercentOf(t *testing.T) {
	assert.True(t, decimal.NewFromInt(50).Equal(
		utils.PercentOf(decimal.NewFromInt(75), decimal.NewFromInt(150))))

	// Zero total must not panic and reports 0%.
	assert.True(t, decimal.Zero.Equal(
		utils.PercentOf(decimal.NewFromInt(10), decimal.Zero)))
}
