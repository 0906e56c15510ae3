package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/clauselens/clauselens/internal/domain"
)

// Defaults used when a heuristic finds nothing. Extraction over free-form
// prose cannot guarantee a match, so every field has a fallback.
const (
	defaultPurpose        = "General contractual agreement"
	defaultParties        = "Not specified"
	defaultContractLength = "Not specified"
	defaultPayments       = "No payment information found"
	defaultRisks          = "No significant risks identified"
)

// earlyClauseWindow bounds how far into the document an uncategorized
// clause may start and still be considered a purpose statement.
const earlyClauseWindow = 500

const (
	maxKeyParties        = 5
	maxPaymentHighlights = 5
	maxTopRisks          = 5
	maxKeyPoints         = 10
)

var (
	partyCueRe        = regexp.MustCompile(`(?i)(?:between|party|parties)[:\s]+([^,;.]+)`)
	partyPrefixRe     = regexp.MustCompile(`(?i)(?:between|party|parties)[:\s]+`)
	yearCountRe       = regexp.MustCompile(`(?i)(\d+)\s*year`)
	monthCountRe      = regexp.MustCompile(`(?i)(\d+)\s*month`)
	currencyAmountRe  = regexp.MustCompile(`(?:\$|USD|EUR|GBP)\s*[\d,]+(?:\.\d{2})?`)
	paymentFreqWordRe = regexp.MustCompile(`(?i)(monthly|annually|quarterly)`)
)

// GenerateSummary aggregates the clause list, risk map, and complexity
// score into a short natural-language synopsis. It is a pure aggregation
// and must run after the other analyzers.
func GenerateSummary(clauses []domain.Clause, riskMap domain.RiskMap, complexity domain.ComplexityScore) domain.ContractSummary {
	return domain.ContractSummary{
		Purpose:           extractPurpose(clauses),
		KeyParties:        extractKeyParties(clauses),
		ContractLength:    extractContractLength(clauses),
		PaymentHighlights: extractPaymentHighlights(clauses),
		TopRisks:          extractTopRisks(riskMap),
		KeyPoints:         generateKeyPoints(clauses, riskMap, complexity),
	}
}

func extractPurpose(clauses []domain.Clause) string {
	for _, clause := range clauses {
		content := strings.ToLower(clause.Content)
		if strings.Contains(content, "purpose") ||
			strings.Contains(content, "whereas") ||
			(clause.Category == domain.CategoryOther && clause.StartIndex < earlyClauseWindow) {
			if first := firstSentence(clause.Content); first != "" {
				return first
			}
			return defaultPurpose
		}
	}
	return defaultPurpose
}

func firstSentence(content string) string {
	parts := sentenceEndRe.Split(content, -1)
	if len(parts) == 0 {
		return ""
	}
	return strings.TrimSpace(parts[0])
}

func extractKeyParties(clauses []domain.Clause) []string {
	var parties []string
	for _, clause := range domain.FilterByCategory(clauses, domain.CategoryParties) {
		for _, match := range partyCueRe.FindAllString(clause.Content, -1) {
			party := strings.TrimSpace(partyPrefixRe.ReplaceAllString(match, ""))
			if len(party) > 2 && len(party) < 100 {
				parties = append(parties, party)
			}
		}
	}

	if len(parties) == 0 {
		return []string{defaultParties}
	}
	return capList(parties, maxKeyParties)
}

func extractContractLength(clauses []domain.Clause) string {
	for _, clause := range domain.FilterByCategory(clauses, domain.CategoryDuration) {
		if match := yearCountRe.FindStringSubmatch(clause.Content); match != nil {
			return fmt.Sprintf("%s year(s)", match[1])
		}
		if match := monthCountRe.FindStringSubmatch(clause.Content); match != nil {
			return fmt.Sprintf("%s month(s)", match[1])
		}
	}
	return defaultContractLength
}

func extractPaymentHighlights(clauses []domain.Clause) []string {
	var highlights []string
	for _, clause := range domain.FilterByCategory(clauses, domain.CategoryPayment) {
		highlights = append(highlights, currencyAmountRe.FindAllString(clause.Content, -1)...)

		if match := paymentFreqWordRe.FindStringSubmatch(clause.Content); match != nil {
			highlights = append(highlights, "Payment frequency: "+match[1])
		}
	}

	if len(highlights) == 0 {
		return []string{defaultPayments}
	}
	return capList(highlights, maxPaymentHighlights)
}

// extractTopRisks lists high-risk items first and pads with medium-risk
// items up to the cap.
func extractTopRisks(riskMap domain.RiskMap) []string {
	var risks []string
	for _, assessment := range riskMap.High {
		risks = append(risks, fmt.Sprintf("%s: %s", assessment.Clause.Title, assessment.Reason))
	}
	for _, assessment := range riskMap.Medium {
		if len(risks) >= maxTopRisks {
			break
		}
		risks = append(risks, fmt.Sprintf("%s: %s", assessment.Clause.Title, assessment.Reason))
	}

	if len(risks) == 0 {
		return []string{defaultRisks}
	}
	return capList(risks, maxTopRisks)
}

func generateKeyPoints(clauses []domain.Clause, riskMap domain.RiskMap, complexity domain.ComplexityScore) []string {
	points := []string{
		fmt.Sprintf("Contract complexity: %s (score: %d/100)", complexity.Label, complexity.Score),
		fmt.Sprintf("Total clauses identified: %d", len(clauses)),
		fmt.Sprintf("Risk assessment: %d high, %d medium, %d low",
			len(riskMap.High), len(riskMap.Medium), len(riskMap.Low)),
	}

	categories := domain.CategoriesOf(clauses)
	if categories[domain.CategoryTermination] {
		points = append(points, "Termination clause present")
	}
	if categories[domain.CategoryConfidentiality] {
		points = append(points, "Confidentiality agreement included")
	}
	if categories[domain.CategoryNonCompete] {
		points = append(points, "Non-compete clause included")
	}
	if categories[domain.CategoryDisputeResolution] {
		points = append(points, "Dispute resolution mechanism defined")
	}

	if paymentClauses := domain.FilterByCategory(clauses, domain.CategoryPayment); len(paymentClauses) > 0 {
		points = append(points, fmt.Sprintf("%d payment-related clause(s) found", len(paymentClauses)))
	}

	return capList(points, maxKeyPoints)
}

func capList(list []string, limit int) []string {
	if len(list) > limit {
		return list[:limit]
	}
	return list
}
