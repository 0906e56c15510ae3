package domain

// ComplexityLabel represents the human-readable complexity band
type ComplexityLabel string

const (
	ComplexitySimple   ComplexityLabel = "simple"
	ComplexityModerate ComplexityLabel = "moderate"
	ComplexityComplex  ComplexityLabel = "complex"
)

// ComplexityMetrics holds the five component metrics behind the score.
type ComplexityMetrics struct {
	AvgSentenceLength float64 `json:"avg_sentence_length"`
	JargonDensity     float64 `json:"jargon_density"`
	ClauseCount       int     `json:"clause_count"`
	NestedClauseCount int     `json:"nested_clause_count"`
	PenaltySeverity   float64 `json:"penalty_severity"`
}

// ComplexityScore is the 0-100 readability/complexity score for one document.
type ComplexityScore struct {
	Score   int               `json:"score"`
	Label   ComplexityLabel   `json:"label"`
	Metrics ComplexityMetrics `json:"metrics"`
}

// LabelForScore maps a composite score to its complexity band.
func LabelForScore(score int) ComplexityLabel {
	switch {
	case score <= 30:
		return ComplexitySimple
	case score <= 60:
		return ComplexityModerate
	default:
		return ComplexityComplex
	}
}
