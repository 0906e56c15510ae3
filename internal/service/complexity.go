package service

import (
	"math"
	"regexp"
	"strings"

	"github.com/clauselens/clauselens/internal/domain"
)

// legalJargonTerms is the fixed boilerplate vocabulary used for jargon
// density. A word counts if it contains any term as a substring.
var legalJargonTerms = []string{
	"herein", "thereof", "hereby", "hereto", "whereas", "aforementioned",
	"notwithstanding", "pursuant", "indemnify", "covenant", "severability",
	"jurisdiction", "arbitration", "liquidated", "waiver", "supersede",
}

var (
	sentenceSplitRe = regexp.MustCompile(`[.!?]+`)
	parentheticalRe = regexp.MustCompile(`\([^)]+\)`)
	subClauseRe     = regexp.MustCompile(`;\s*\([a-z]\)`)
)

// CalculateComplexity computes the 0-100 complexity score from whole-text
// statistics and the clause list. The weighting is a fixed, reproducible
// formula: 20 points each for sentence length, clause count and nesting,
// 25 for jargon density, 15 for penalty severity.
func CalculateComplexity(text string, clauses []domain.Clause) domain.ComplexityScore {
	metrics := domain.ComplexityMetrics{
		AvgSentenceLength: avgSentenceLength(text),
		JargonDensity:     jargonDensity(text),
		ClauseCount:       len(clauses),
		NestedClauseCount: countNestedClauses(text),
		PenaltySeverity:   penaltySeverity(clauses),
	}

	score := math.Min(metrics.AvgSentenceLength/30*20, 20)
	score += metrics.JargonDensity * 25
	score += math.Min(float64(metrics.ClauseCount)/50*20, 20)
	score += math.Min(float64(metrics.NestedClauseCount)/10*20, 20)
	score += metrics.PenaltySeverity * 15

	rounded := int(math.Round(math.Min(score, 100)))

	return domain.ComplexityScore{
		Score:   rounded,
		Label:   domain.LabelForScore(rounded),
		Metrics: metrics,
	}
}

func avgSentenceLength(text string) float64 {
	var sentences []string
	for _, s := range sentenceSplitRe.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences = append(sentences, s)
		}
	}
	if len(sentences) == 0 {
		return 0
	}

	totalWords := 0
	for _, s := range sentences {
		totalWords += len(strings.Fields(s))
	}

	return math.Round(float64(totalWords) / float64(len(sentences)))
}

func jargonDensity(text string) float64 {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return 0
	}

	jargonCount := 0
	for _, word := range words {
		for _, term := range legalJargonTerms {
			if strings.Contains(word, term) {
				jargonCount++
				break
			}
		}
	}

	return math.Min(float64(jargonCount)/float64(len(words)), 1)
}

// countNestedClauses counts parenthetical spans plus "; (x)"-style
// sub-clause markers.
func countNestedClauses(text string) int {
	return len(parentheticalRe.FindAllString(text, -1)) + len(subClauseRe.FindAllString(text, -1))
}

func penaltySeverity(clauses []domain.Clause) float64 {
	penaltyClauses := domain.FilterByCategory(clauses, domain.CategoryPenalties)
	if len(penaltyClauses) == 0 {
		return 0
	}

	severity := 0.0
	for _, clause := range penaltyClauses {
		content := strings.ToLower(clause.Content)
		if strings.Contains(content, "unlimited") {
			severity += 0.5
		}
		if strings.Contains(content, "liquidated damages") {
			severity += 0.3
		}
		if strings.Contains(content, "indemnify") {
			severity += 0.2
		}
	}

	return math.Min(severity, 1)
}
