package domain

import (
	"time"
	"unicode/utf8"
)

// DocumentMetadata describes the extracted document as reported by the
// upstream text-extraction collaborator.
type DocumentMetadata struct {
	PageCount      int `json:"page_count"`
	CharacterCount int `json:"character_count"`
}

// ExtractedText is the input interface from the text-extraction
// collaborator: normalized content plus blank-line-delimited paragraphs.
// The analysis pipeline consumes only Content.
type ExtractedText struct {
	Content    string           `json:"content"`
	Paragraphs []string         `json:"paragraphs,omitempty"`
	Metadata   DocumentMetadata `json:"metadata"`
}

// ValidateExtractedText rejects malformed input before analysis. Heuristic
// extraction over free-form prose never fails, so this is the only error
// class the pipeline itself raises.
func ValidateExtractedText(text *ExtractedText) error {
	if text == nil {
		return NewDomainError(ErrCodeInvalidInput, "extracted text cannot be nil")
	}
	if !utf8.ValidString(text.Content) {
		return ErrInvalidEncoding
	}
	if isBlank(text.Content) {
		return ErrEmptyDocument
	}
	return nil
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}

// AnalysisReport aggregates every derived structure for one analysis run.
// All fields are value objects: created once, immutable, safe to share
// read-only across consumers.
type AnalysisReport struct {
	ID         string            `json:"id"`
	AnalyzedAt time.Time         `json:"analyzed_at"`
	Summary    ContractSummary   `json:"summary"`
	Clauses    []Clause          `json:"clauses"`
	RiskMap    RiskMap           `json:"risk_map"`
	Compliance []ComplianceIssue `json:"compliance"`
	Complexity ComplexityScore   `json:"complexity"`
	Timeline   Timeline          `json:"timeline"`
	Costs      CostBreakdown     `json:"costs"`
}
