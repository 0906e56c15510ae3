package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/clauselens/clauselens/internal/domain"
	"github.com/clauselens/clauselens/internal/telemetry"
)

// AnalysisService runs the document analysis pipeline: segmentation,
// classification, the five downstream analyzers, and the summary. It holds
// no state; every run owns its derived data exclusively, so one instance
// is safe to share across concurrent requests.
type AnalysisService struct{}

// NewAnalysisService creates a new AnalysisService instance
func NewAnalysisService() *AnalysisService {
	return &AnalysisService{}
}

// AnalyzeInput carries one document into the pipeline.
type AnalyzeInput struct {
	Text *domain.ExtractedText
	// Normalize runs the text cleanup filter before analysis, for callers
	// submitting raw rather than pre-normalized text.
	Normalize bool
}

// Analyze validates the input and runs every pipeline stage in dependency
// order, returning the full report. It fails only on malformed input; all
// extraction heuristics fall back to defaults instead of erroring.
func (s *AnalysisService) Analyze(ctx context.Context, input AnalyzeInput) (*domain.AnalysisReport, error) {
	if err := domain.ValidateExtractedText(input.Text); err != nil {
		return nil, err
	}

	content := input.Text.Content
	if input.Normalize {
		content = NormalizeText(content)
		if err := domain.ValidateExtractedText(&domain.ExtractedText{Content: content}); err != nil {
			return nil, err
		}
	}

	reportID := uuid.NewString()

	_, span := telemetry.StartSpan(ctx, "analysis.run", telemetry.SpanAttributes{
		ReportID:      reportID,
		Operation:     "analyze",
		DocumentChars: len(content),
	})
	defer span.End()

	clauses := DetectClauses(content)
	riskMap := GenerateRiskMap(clauses)
	compliance := CheckCompliance(clauses)
	complexity := CalculateComplexity(content, clauses)
	costs := AnalyzeCosts(clauses)
	timeline := GenerateTimeline(clauses)
	summary := GenerateSummary(clauses, riskMap, complexity)

	return &domain.AnalysisReport{
		ID:         reportID,
		AnalyzedAt: time.Now().UTC(),
		Summary:    summary,
		Clauses:    clauses,
		RiskMap:    riskMap,
		Compliance: compliance,
		Complexity: complexity,
		Timeline:   timeline,
		Costs:      costs,
	}, nil
}

// Compare analyzes both revisions' clause structure and reports the
// differences between them.
func (s *AnalysisService) Compare(ctx context.Context, oldText, newText *domain.ExtractedText, normalize bool) (*domain.ComparisonResult, error) {
	clauseSets := make([][]domain.Clause, 2)
	for i, text := range []*domain.ExtractedText{oldText, newText} {
		if err := domain.ValidateExtractedText(text); err != nil {
			return nil, err
		}
		content := text.Content
		if normalize {
			content = NormalizeText(content)
		}
		clauseSets[i] = DetectClauses(content)
	}

	_, span := telemetry.StartSpan(ctx, "analysis.compare", telemetry.SpanAttributes{
		Operation: "compare",
	})
	defer span.End()

	result := CompareDocuments(clauseSets[0], clauseSets[1])
	return &result, nil
}
