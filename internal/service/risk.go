package service

import (
	"strings"

	"github.com/clauselens/clauselens/internal/domain"
)

// Fixed reason strings attached to each risk branch. These are enumerated,
// not generated.
const (
	reasonPenalty            = "Contains penalty or liquidated damages provisions"
	reasonUnilateralTerm     = "Unilateral termination clause detected"
	reasonUnlimitedLiability = "Unlimited liability or indemnification clause"
	reasonRestrictive        = "Restrictive covenant that may limit future opportunities"
	reasonConfidentiality    = "Confidentiality obligations require careful compliance"
	reasonAutoRenewal        = "Automatic renewal clause - requires attention to termination dates"
	reasonStandard           = "Standard clause with minimal risk"
)

// AssessClause maps one clause to a risk tier. Rules are evaluated in a
// fixed order and the first match wins; all content checks run on the
// lower-cased clause text.
func AssessClause(clause domain.Clause) domain.RiskAssessment {
	content := strings.ToLower(clause.Content)

	level := domain.RiskLow
	reason := reasonStandard

	switch {
	case clause.Category == domain.CategoryPenalties ||
		strings.Contains(content, "penalty") ||
		strings.Contains(content, "liquidated damages"):
		level, reason = domain.RiskHigh, reasonPenalty
	case strings.Contains(content, "unilateral") && clause.Category == domain.CategoryTermination:
		level, reason = domain.RiskHigh, reasonUnilateralTerm
	case strings.Contains(content, "unlimited liability") || strings.Contains(content, "indemnify"):
		level, reason = domain.RiskHigh, reasonUnlimitedLiability
	case clause.Category == domain.CategoryNonCompete || clause.Category == domain.CategoryNonSolicitation:
		level, reason = domain.RiskMedium, reasonRestrictive
	case clause.Category == domain.CategoryConfidentiality:
		level, reason = domain.RiskMedium, reasonConfidentiality
	case strings.Contains(content, "automatic renewal"):
		level, reason = domain.RiskMedium, reasonAutoRenewal
	}

	return domain.RiskAssessment{
		Clause:    clause,
		RiskLevel: level,
		Reason:    reason,
	}
}

// GenerateRiskMap assesses every clause and partitions the results by tier,
// preserving clause order within each partition.
func GenerateRiskMap(clauses []domain.Clause) domain.RiskMap {
	riskMap := domain.RiskMap{
		High:   make([]domain.RiskAssessment, 0),
		Medium: make([]domain.RiskAssessment, 0),
		Low:    make([]domain.RiskAssessment, 0),
	}

	for _, clause := range clauses {
		assessment := AssessClause(clause)
		switch assessment.RiskLevel {
		case domain.RiskHigh:
			riskMap.High = append(riskMap.High, assessment)
		case domain.RiskMedium:
			riskMap.Medium = append(riskMap.Medium, assessment)
		default:
			riskMap.Low = append(riskMap.Low, assessment)
		}
	}

	return riskMap
}
