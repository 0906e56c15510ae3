package service

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/clauselens/clauselens/internal/domain"
)

// costContextRadius is how many characters of surrounding text are kept on
// each side of a matched amount when deriving its description.
const costContextRadius = 50

// currencyMatchers run in declaration order over each payment clause.
type currencyMatcher struct {
	re       *regexp.Regexp
	currency string
}

var currencyMatchers = []currencyMatcher{
	{regexp.MustCompile(`\$\s*([\d,]+(?:\.\d{2})?)`), "USD"},
	{regexp.MustCompile(`([\d,]+(?:\.\d{2})?)\s*USD`), "USD"},
	{regexp.MustCompile(`([\d,]+(?:\.\d{2})?)\s*EUR`), "EUR"},
	{regexp.MustCompile(`([\d,]+(?:\.\d{2})?)\s*GBP`), "GBP"},
}

var (
	feeDescriptionRe = regexp.MustCompile(`(?i)fee|charge`)
	fragmentSplitRe  = regexp.MustCompile(`[.;]`)
)

// frequencyCues are checked in priority order against the combination of
// clause text and description.
var frequencyCues = []struct {
	frequency domain.CostFrequency
	cues      []string
}{
	{domain.FrequencyMonthly, []string{"monthly", "per month", "/month"}},
	{domain.FrequencyQuarterly, []string{"quarterly", "per quarter"}},
	{domain.FrequencyAnnually, []string{"annually", "per year", "per annum", "/year"}},
	{domain.FrequencyOneTime, []string{"one-time", "one time", "initial", "upfront"}},
}

type extractedAmount struct {
	amount      decimal.Decimal
	currency    string
	description string
}

// AnalyzeCosts scans payment-category clauses for monetary amounts and
// groups them into one-time costs, recurring costs, and fees. Total sums
// every amount with no currency conversion; mixed-currency documents yield
// a nominal total.
func AnalyzeCosts(clauses []domain.Clause) domain.CostBreakdown {
	breakdown := domain.CostBreakdown{
		OneTimeCosts:   make([]domain.CostItem, 0),
		RecurringCosts: make([]domain.CostItem, 0),
		Fees:           make([]domain.CostItem, 0),
	}

	for _, clause := range domain.FilterByCategory(clauses, domain.CategoryPayment) {
		for _, extracted := range extractAmounts(clause.Content) {
			frequency := determineFrequency(clause.Content, extracted.description)

			item := domain.CostItem{
				Description: extracted.description,
				Amount:      extracted.amount,
				Currency:    extracted.currency,
				Frequency:   frequency,
			}

			switch {
			case frequency == domain.FrequencyOneTime:
				breakdown.OneTimeCosts = append(breakdown.OneTimeCosts, item)
			case frequency != "":
				breakdown.RecurringCosts = append(breakdown.RecurringCosts, item)
			case feeDescriptionRe.MatchString(extracted.description):
				breakdown.Fees = append(breakdown.Fees, item)
			default:
				breakdown.OneTimeCosts = append(breakdown.OneTimeCosts, item)
			}
		}
	}

	breakdown.Total = breakdown.SumItems()
	return breakdown
}

func extractAmounts(text string) []extractedAmount {
	var results []extractedAmount

	for _, matcher := range currencyMatchers {
		for _, match := range matcher.re.FindAllStringSubmatchIndex(text, -1) {
			raw := strings.ReplaceAll(text[match[2]:match[3]], ",", "")
			amount, err := decimal.NewFromString(raw)
			if err != nil {
				continue
			}

			contextStart := max(0, match[0]-costContextRadius)
			contextEnd := min(len(text), match[0]+costContextRadius)
			context := strings.TrimSpace(text[contextStart:contextEnd])

			results = append(results, extractedAmount{
				amount:      amount,
				currency:    matcher.currency,
				description: describeAmount(context),
			})
		}
	}

	return results
}

// describeAmount picks the first sentence-like fragment of the context
// window as the item description.
func describeAmount(context string) string {
	for _, fragment := range fragmentSplitRe.Split(context, -1) {
		if len(fragment) > 10 && len(fragment) < 100 {
			return strings.TrimSpace(fragment)
		}
	}
	return "Payment amount"
}

func determineFrequency(clauseText, description string) domain.CostFrequency {
	combined := strings.ToLower(clauseText + " " + description)

	for _, candidate := range frequencyCues {
		for _, cue := range candidate.cues {
			if strings.Contains(combined, cue) {
				return candidate.frequency
			}
		}
	}

	return ""
}
