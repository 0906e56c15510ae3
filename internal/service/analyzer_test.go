package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clauselens/clauselens/internal/domain"
)

const sampleContract = `1. Parties. This agreement is entered into by and between: Acme Corporation and Beta Industries, hereinafter referred to as the parties.

2. Term. The term of this agreement is 2 years, effective as of 1/15/2024, and runs until 1/14/2026. This agreement shall automatically renew for successive one year terms.

3. Payment Terms. Client shall pay $5,000 monthly for services. A one-time setup payment of $10,000 is due at signing.

4. Confidentiality: Each party shall keep all proprietary information secret.

5. Governing Law: This agreement shall be governed by the laws of Delaware.

6. Termination. Either party may terminate this agreement with 30 days notice.

7. Penalty: In case of breach, the breaching party shall pay liquidated damages of $50,000.`

func TestAnalyze_FullContract(t *testing.T) {
	svc := NewAnalysisService()

	report, err := svc.Analyze(context.Background(), AnalyzeInput{
		Text: &domain.ExtractedText{Content: sampleContract},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, report.ID)
	assert.False(t, report.AnalyzedAt.IsZero())

	require.Len(t, report.Clauses, 7)
	expected := []domain.ClauseCategory{
		domain.CategoryParties,
		domain.CategoryDuration,
		domain.CategoryPayment,
		domain.CategoryConfidentiality,
		domain.CategoryGoverningLaw,
		domain.CategoryTermination,
		domain.CategoryPenalties,
	}
	for i, clause := range report.Clauses {
		assert.Equal(t, expected[i], clause.Category, "clause %d", i)
	}

	// risk: penalty high, confidentiality medium, rest low
	require.Len(t, report.RiskMap.High, 1)
	assert.Equal(t, domain.CategoryPenalties, report.RiskMap.High[0].Clause.Category)
	assert.Equal(t, reasonPenalty, report.RiskMap.High[0].Reason)
	require.Len(t, report.RiskMap.Medium, 1)
	assert.Equal(t, domain.CategoryConfidentiality, report.RiskMap.Medium[0].Clause.Category)
	assert.Len(t, report.RiskMap.Low, 5)
	assert.Equal(t, len(report.Clauses), report.RiskMap.Size())

	assert.Empty(t, report.Compliance)

	assert.InDelta(t, 0.3, report.Complexity.Metrics.PenaltySeverity, 1e-9)
	assert.Equal(t, 7, report.Complexity.Metrics.ClauseCount)
	assert.GreaterOrEqual(t, report.Complexity.Score, 0)
	assert.LessOrEqual(t, report.Complexity.Score, 100)

	// clause text says "monthly", so both payment amounts land in recurring
	require.Len(t, report.Costs.RecurringCosts, 2)
	assert.True(t, report.Costs.Total.Equal(decimal.NewFromInt(15000)))

	require.NotNil(t, report.Timeline.StartDate)
	require.NotNil(t, report.Timeline.EndDate)
	assert.NotEmpty(t, report.Timeline.RenewalTerms)
	require.Len(t, report.Timeline.Milestones, 3)
	assert.Equal(t, domain.MilestoneRenewal, report.Timeline.Milestones[1].Type)
	assert.Equal(t, report.Timeline.EndDate.AddDate(0, 0, -30), report.Timeline.Milestones[1].Date)

	assert.Equal(t, []string{"Acme Corporation and Beta Industries"}, report.Summary.KeyParties)
	assert.Equal(t, "2 year(s)", report.Summary.ContractLength)
	assert.Contains(t, report.Summary.PaymentHighlights, "$5,000")
	require.NotEmpty(t, report.Summary.TopRisks)
	assert.Contains(t, report.Summary.TopRisks[0], reasonPenalty)
}

func TestAnalyze_MissingClausesProduceFindings(t *testing.T) {
	svc := NewAnalysisService()
	text := "1. Termination. Either party may terminate this agreement with 30 days notice.\n\n2. Payment Terms. Client shall pay all fees monthly in advance."

	report, err := svc.Analyze(context.Background(), AnalyzeInput{
		Text: &domain.ExtractedText{Content: text},
	})
	require.NoError(t, err)

	titles := issueTitles(report.Compliance)
	assert.NotContains(t, titles, "Missing Termination Clause")
	assert.Contains(t, titles, "Missing Confidentiality Clause")
	assert.Contains(t, titles, "Missing Governing Law")
}

func TestAnalyze_InvalidInput(t *testing.T) {
	svc := NewAnalysisService()

	tests := []struct {
		name string
		text *domain.ExtractedText
	}{
		{"nil text", nil},
		{"empty content", &domain.ExtractedText{Content: ""}},
		{"blank content", &domain.ExtractedText{Content: "  \n\t  "}},
		{"invalid utf-8", &domain.ExtractedText{Content: string([]byte{0xff, 0xfe, 0xfd})}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Analyze(context.Background(), AnalyzeInput{Text: tt.text})

			require.Error(t, err)
			var domainErr *domain.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, domain.ErrCodeInvalidInput, domainErr.Code)
		})
	}
}

func TestAnalyze_WithNormalization(t *testing.T) {
	svc := NewAnalysisService()
	text := "CONFIDENTIAL\n1. Termination. Either party may terminate this agreement with 30 days notice."

	report, err := svc.Analyze(context.Background(), AnalyzeInput{
		Text:      &domain.ExtractedText{Content: text},
		Normalize: true,
	})
	require.NoError(t, err)

	require.Len(t, report.Clauses, 1)
	assert.NotContains(t, report.Clauses[0].Content, "CONFIDENTIAL")
}

func TestCompareService(t *testing.T) {
	svc := NewAnalysisService()

	oldText := &domain.ExtractedText{Content: "1. Termination. Either party may terminate this agreement with 30 days notice."}
	newText := &domain.ExtractedText{Content: "1. Termination. Either party may terminate this agreement with 30 days notice.\n\n2. Confidentiality: Each party shall keep all proprietary information secret."}

	result, err := svc.Compare(context.Background(), oldText, newText, false)
	require.NoError(t, err)

	require.Len(t, result.Added, 1)
	assert.Equal(t, domain.CategoryConfidentiality, result.Added[0].Category)
	assert.Empty(t, result.Removed)
	assert.Empty(t, result.Modified)
}

func TestCompareService_InvalidInput(t *testing.T) {
	svc := NewAnalysisService()

	_, err := svc.Compare(context.Background(), nil, &domain.ExtractedText{Content: "x"}, false)

	assert.Error(t, err)
}
