package domain

// Severity represents how serious a compliance finding is
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// IsValidSeverity checks if a Severity is valid
func IsValidSeverity(s Severity) bool {
	switch s {
	case SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// ComplianceIssue is a document-level finding flagged by the compliance
// rule battery. It is independent of any single clause.
type ComplianceIssue struct {
	Issue          string   `json:"issue"`
	Severity       Severity `json:"severity"`
	Details        string   `json:"details"`
	Recommendation string   `json:"recommendation,omitempty"`
}
