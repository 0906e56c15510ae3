package service

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/clauselens/clauselens/internal/domain"
)

// complianceRule is one independent check in the battery. Each rule may
// emit zero, one, or many findings and never depends on another rule's
// result.
type complianceRule struct {
	id    string
	check func(clauses []domain.Clause) []domain.ComplianceIssue
}

var (
	paymentCycleRe  = regexp.MustCompile(`(?i)monthly|quarterly|annually|weekly`)
	oneSidedCueRe   = regexp.MustCompile(`(?i)one\s+party|unilateral`)
	liabilityCueRe  = regexp.MustCompile(`(?i)liable|liability`)
	nonCompeteYears = regexp.MustCompile(`(?i)(\d+)\s*year`)
)

// complianceRules is evaluated in declaration order; findings are appended
// in that order.
var complianceRules = []complianceRule{
	{id: "missing-termination", check: checkMissingTermination},
	{id: "undefined-payment-cycle", check: checkUndefinedPaymentCycle},
	{id: "missing-confidentiality", check: checkMissingConfidentiality},
	{id: "missing-governing-law", check: checkMissingGoverningLaw},
	{id: "one-sided-liability", check: checkOneSidedLiability},
	{id: "excessive-non-compete", check: checkExcessiveNonCompete},
}

// CheckCompliance evaluates the whole clause set against the fixed rule
// battery and returns the ordered findings.
func CheckCompliance(clauses []domain.Clause) []domain.ComplianceIssue {
	issues := make([]domain.ComplianceIssue, 0)
	for _, rule := range complianceRules {
		issues = append(issues, rule.check(clauses)...)
	}
	return issues
}

func checkMissingTermination(clauses []domain.Clause) []domain.ComplianceIssue {
	if domain.CategoriesOf(clauses)[domain.CategoryTermination] {
		return nil
	}
	return []domain.ComplianceIssue{{
		Issue:          "Missing Termination Clause",
		Severity:       domain.SeverityHigh,
		Details:        "No termination clause found. This may make it difficult to exit the agreement.",
		Recommendation: "Add a termination clause specifying conditions and notice periods.",
	}}
}

func checkUndefinedPaymentCycle(clauses []domain.Clause) []domain.ComplianceIssue {
	paymentClauses := domain.FilterByCategory(clauses, domain.CategoryPayment)
	if len(paymentClauses) == 0 {
		return nil
	}
	for _, clause := range paymentClauses {
		if paymentCycleRe.MatchString(clause.Content) {
			return nil
		}
	}
	return []domain.ComplianceIssue{{
		Issue:          "Undefined Payment Cycle",
		Severity:       domain.SeverityMedium,
		Details:        "Payment terms exist but the payment frequency is not clearly defined.",
		Recommendation: "Specify whether payments are monthly, quarterly, or annually.",
	}}
}

func checkMissingConfidentiality(clauses []domain.Clause) []domain.ComplianceIssue {
	if domain.CategoriesOf(clauses)[domain.CategoryConfidentiality] {
		return nil
	}
	return []domain.ComplianceIssue{{
		Issue:          "Missing Confidentiality Clause",
		Severity:       domain.SeverityMedium,
		Details:        "No confidentiality or NDA clause found.",
		Recommendation: "Consider adding confidentiality provisions to protect sensitive information.",
	}}
}

func checkMissingGoverningLaw(clauses []domain.Clause) []domain.ComplianceIssue {
	if domain.CategoriesOf(clauses)[domain.CategoryGoverningLaw] {
		return nil
	}
	return []domain.ComplianceIssue{{
		Issue:          "Missing Governing Law",
		Severity:       domain.SeverityHigh,
		Details:        "No governing law or jurisdiction clause found.",
		Recommendation: "Specify which jurisdiction's laws will govern the agreement.",
	}}
}

func checkOneSidedLiability(clauses []domain.Clause) []domain.ComplianceIssue {
	var issues []domain.ComplianceIssue
	for _, clause := range domain.FilterByCategory(clauses, domain.CategoryPenalties) {
		if oneSidedCueRe.MatchString(clause.Content) && liabilityCueRe.MatchString(clause.Content) {
			issues = append(issues, domain.ComplianceIssue{
				Issue:          "One-Sided Liability Clause",
				Severity:       domain.SeverityHigh,
				Details:        "Liability appears to be heavily weighted toward one party.",
				Recommendation: "Review liability provisions to ensure fair allocation of risk.",
			})
		}
	}
	return issues
}

func checkExcessiveNonCompete(clauses []domain.Clause) []domain.ComplianceIssue {
	var issues []domain.ComplianceIssue
	for _, clause := range domain.FilterByCategory(clauses, domain.CategoryNonCompete) {
		match := nonCompeteYears.FindStringSubmatch(clause.Content)
		if match == nil {
			continue
		}
		years, err := strconv.Atoi(match[1])
		if err != nil || years <= 1 {
			continue
		}
		issues = append(issues, domain.ComplianceIssue{
			Issue:          "Excessive Non-Compete Duration",
			Severity:       domain.SeverityMedium,
			Details:        fmt.Sprintf("Non-compete clause extends for %d years, which may be unreasonable.", years),
			Recommendation: "Consider negotiating a shorter non-compete period (typically 6-12 months).",
		})
	}
	return issues
}
