package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clauselens/clauselens/internal/domain"
)

func issueTitles(issues []domain.ComplianceIssue) []string {
	titles := make([]string, len(issues))
	for i, issue := range issues {
		titles[i] = issue.Issue
	}
	return titles
}

func TestCheckCompliance_CompleteContract(t *testing.T) {
	clauses := []domain.Clause{
		{Category: domain.CategoryTermination, Content: "Either party may terminate with 30 days notice."},
		{Category: domain.CategoryPayment, Content: "Fees are invoiced monthly."},
		{Category: domain.CategoryConfidentiality, Content: "All information remains confidential."},
		{Category: domain.CategoryGoverningLaw, Content: "Delaware law governs this agreement."},
	}

	issues := CheckCompliance(clauses)

	assert.Empty(t, issues)
	assert.NotNil(t, issues)
}

func TestCheckCompliance_MissingConfidentialityAndGoverningLaw(t *testing.T) {
	clauses := []domain.Clause{
		{Category: domain.CategoryTermination, Content: "Either party may terminate with 30 days notice."},
		{Category: domain.CategoryPayment, Content: "Fees are invoiced monthly."},
	}

	issues := CheckCompliance(clauses)

	require.Len(t, issues, 2)
	assert.Equal(t, "Missing Confidentiality Clause", issues[0].Issue)
	assert.Equal(t, domain.SeverityMedium, issues[0].Severity)
	assert.Equal(t, "Missing Governing Law", issues[1].Issue)
	assert.Equal(t, domain.SeverityHigh, issues[1].Severity)
}

func TestCheckCompliance_EmptyClauseSet(t *testing.T) {
	issues := CheckCompliance(nil)

	titles := issueTitles(issues)
	assert.Equal(t, []string{
		"Missing Termination Clause",
		"Missing Confidentiality Clause",
		"Missing Governing Law",
	}, titles)
}

func TestCheckCompliance_UndefinedPaymentCycle(t *testing.T) {
	clauses := []domain.Clause{
		{Category: domain.CategoryTermination, Content: "Either party may terminate."},
		{Category: domain.CategoryPayment, Content: "Client shall pay $5,000 for the services."},
		{Category: domain.CategoryConfidentiality, Content: "Confidential."},
		{Category: domain.CategoryGoverningLaw, Content: "Delaware law."},
	}

	issues := CheckCompliance(clauses)

	require.Len(t, issues, 1)
	assert.Equal(t, "Undefined Payment Cycle", issues[0].Issue)
	assert.Equal(t, domain.SeverityMedium, issues[0].Severity)
}

func TestCheckCompliance_PaymentCycleDefinedInAnyClause(t *testing.T) {
	clauses := []domain.Clause{
		{Category: domain.CategoryPayment, Content: "Client shall pay $5,000."},
		{Category: domain.CategoryPayment, Content: "Invoices are issued quarterly."},
	}

	issues := CheckCompliance(clauses)

	assert.NotContains(t, issueTitles(issues), "Undefined Payment Cycle")
}

func TestCheckCompliance_OneSidedLiability(t *testing.T) {
	clauses := []domain.Clause{
		{Category: domain.CategoryPenalties, Content: "Only one party shall be liable for all damages arising from this agreement."},
	}

	issues := CheckCompliance(clauses)

	assert.Contains(t, issueTitles(issues), "One-Sided Liability Clause")
}

func TestCheckCompliance_ExcessiveNonCompete(t *testing.T) {
	tests := []struct {
		name    string
		content string
		flagged bool
	}{
		{"five years", "Contractor shall not compete for 5 years after termination.", true},
		{"one year", "Contractor shall not compete for 1 year after termination.", false},
		{"no duration", "Contractor shall not compete in the same market.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clauses := []domain.Clause{{Category: domain.CategoryNonCompete, Content: tt.content}}

			issues := CheckCompliance(clauses)
			titles := issueTitles(issues)

			if tt.flagged {
				assert.Contains(t, titles, "Excessive Non-Compete Duration")
				for _, issue := range issues {
					if issue.Issue == "Excessive Non-Compete Duration" {
						assert.Contains(t, issue.Details, "5 years")
					}
				}
			} else {
				assert.NotContains(t, titles, "Excessive Non-Compete Duration")
			}
		})
	}
}

func TestCheckCompliance_EveryIssueHasRecommendation(t *testing.T) {
	issues := CheckCompliance(nil)

	require.NotEmpty(t, issues)
	for _, issue := range issues {
		assert.NotEmpty(t, issue.Details)
		assert.NotEmpty(t, issue.Recommendation)
		assert.True(t, domain.IsValidSeverity(issue.Severity))
	}
}
