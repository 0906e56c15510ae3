package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCostFrequencyConstants(t *testing.T) {
	tests := []struct {
		name      string
		frequency CostFrequency
		expected  string
	}{
		{"Monthly", FrequencyMonthly, "monthly"},
		{"Quarterly", FrequencyQuarterly, "quarterly"},
		{"Annually", FrequencyAnnually, "annually"},
		{"OneTime", FrequencyOneTime, "one-time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(tt.frequency))
			assert.True(t, IsValidCostFrequency(tt.frequency))
		})
	}

	assert.False(t, IsValidCostFrequency("weekly"))
	assert.False(t, IsValidCostFrequency(""))
}

func TestCostBreakdownSumItems(t *testing.T) {
	item := func(amount string) CostItem {
		return CostItem{Description: "Payment amount", Amount: decimal.RequireFromString(amount), Currency: "USD"}
	}

	breakdown := CostBreakdown{
		OneTimeCosts:   []CostItem{item("50000"), item("1200.50")},
		RecurringCosts: []CostItem{item("99.99")},
		Fees:           []CostItem{item("250")},
	}

	total := breakdown.SumItems()
	assert.True(t, total.Equal(decimal.RequireFromString("51550.49")), "got %s", total)
}

func TestCostBreakdownSumItemsEmpty(t *testing.T) {
	var breakdown CostBreakdown
	assert.True(t, breakdown.SumItems().IsZero())
}
