package service

import (
	"regexp"
	"strings"

	"github.com/clauselens/clauselens/internal/domain"
)

// minSpanLength is the shortest trimmed span kept by segmentation. Anything
// at or below this is treated as noise, e.g. a stray heading.
const minSpanLength = 20

var (
	sectionMarkerRe  = regexp.MustCompile(`(?i)(?:^|\n)(?:\d+\.|Article\s+\d+|Section\s+\d+|Clause\s+\d+)[:\s]`)
	paragraphSplitRe = regexp.MustCompile(`\n{2,}`)
)

// Span is one clause candidate: a contiguous slice of the source text with
// its original offsets. StartIndex/EndIndex always bound the untrimmed span.
type Span struct {
	Content    string
	StartIndex int
	EndIndex   int
}

// SegmentText splits normalized document text into ordered, non-overlapping
// clause candidate spans. Numbered-section markers ("1.", "Article 3",
// "Section 2", "Clause 4" at line start) take precedence; documents without
// any markers degrade to blank-line paragraph granularity.
func SegmentText(text string) []Span {
	if markers := sectionMarkerRe.FindAllStringIndex(text, -1); len(markers) > 0 {
		return segmentByMarkers(text, markers)
	}
	return segmentByParagraphs(text)
}

func segmentByMarkers(text string, markers [][]int) []Span {
	spans := make([]Span, 0, len(markers))
	for i, marker := range markers {
		start := marker[0]
		end := len(text)
		if i < len(markers)-1 {
			end = markers[i+1][0]
		}

		content := strings.TrimSpace(text[start:end])
		if len(content) > minSpanLength {
			spans = append(spans, Span{Content: content, StartIndex: start, EndIndex: end})
		}
	}
	return spans
}

func segmentByParagraphs(text string) []Span {
	var spans []Span
	current := 0
	for _, paragraph := range paragraphSplitRe.Split(text, -1) {
		trimmed := strings.TrimSpace(paragraph)
		if len(trimmed) > minSpanLength {
			spans = append(spans, Span{
				Content:    trimmed,
				StartIndex: current,
				EndIndex:   current + len(paragraph),
			})
		}
		// +2 accounts for the consumed blank-line separator.
		current += len(paragraph) + 2
	}
	return spans
}

// DetectClauses segments the document and classifies each span, producing
// the immutable clause list every downstream analyzer consumes.
func DetectClauses(text string) []domain.Clause {
	spans := SegmentText(text)
	clauses := make([]domain.Clause, 0, len(spans))
	for _, span := range spans {
		category := CategorizeClause(span.Content)
		clauses = append(clauses, domain.Clause{
			Title:      deriveTitle(span.Content, category),
			Content:    span.Content,
			StartIndex: span.StartIndex,
			EndIndex:   span.EndIndex,
			Category:   category,
		})
	}
	return clauses
}
