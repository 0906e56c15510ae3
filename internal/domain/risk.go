package domain

// RiskLevel represents the risk tier assigned to a clause
type RiskLevel string

const (
	RiskHigh   RiskLevel = "high"
	RiskMedium RiskLevel = "medium"
	RiskLow    RiskLevel = "low"
)

// IsValidRiskLevel checks if a RiskLevel is valid
func IsValidRiskLevel(l RiskLevel) bool {
	switch l {
	case RiskHigh, RiskMedium, RiskLow:
		return true
	}
	return false
}

// RiskAssessment pairs a clause with its derived risk tier and the fixed
// explanatory reason for that tier.
type RiskAssessment struct {
	Clause    Clause    `json:"clause"`
	RiskLevel RiskLevel `json:"risk_level"`
	Reason    string    `json:"reason"`
}

// RiskMap partitions all assessments for one document by risk tier.
// Within each partition, clause order is preserved.
type RiskMap struct {
	High   []RiskAssessment `json:"high"`
	Medium []RiskAssessment `json:"medium"`
	Low    []RiskAssessment `json:"low"`
}

// Size returns the total number of assessments across all partitions.
func (m *RiskMap) Size() int {
	return len(m.High) + len(m.Medium) + len(m.Low)
}
