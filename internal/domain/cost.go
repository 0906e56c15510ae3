package domain

import "github.com/shopspring/decimal"

// CostFrequency represents how often a cost recurs
type CostFrequency string

const (
	FrequencyMonthly   CostFrequency = "monthly"
	FrequencyQuarterly CostFrequency = "quarterly"
	FrequencyAnnually  CostFrequency = "annually"
	FrequencyOneTime   CostFrequency = "one-time"
)

// IsValidCostFrequency checks if a CostFrequency is valid
func IsValidCostFrequency(f CostFrequency) bool {
	switch f {
	case FrequencyMonthly, FrequencyQuarterly, FrequencyAnnually, FrequencyOneTime:
		return true
	}
	return false
}

// CostItem is one monetary amount extracted from a payment clause.
// Frequency is empty when no recurrence cue was found near the amount.
type CostItem struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Frequency   CostFrequency   `json:"frequency,omitempty"`
}

// CostBreakdown groups extracted cost items by bucket. Total is the sum of
// all amounts across every bucket regardless of currency; mixed-currency
// documents therefore produce a nominal total, not a converted one.
type CostBreakdown struct {
	OneTimeCosts   []CostItem      `json:"one_time_costs"`
	RecurringCosts []CostItem      `json:"recurring_costs"`
	Fees           []CostItem      `json:"fees"`
	Total          decimal.Decimal `json:"total"`
}

// SumItems adds up the amounts of every item in the breakdown.
func (b *CostBreakdown) SumItems() decimal.Decimal {
	total := decimal.Zero
	for _, bucket := range [][]CostItem{b.OneTimeCosts, b.RecurringCosts, b.Fees} {
		for _, item := range bucket {
			total = total.Add(item.Amount)
		}
	}
	return total
}
