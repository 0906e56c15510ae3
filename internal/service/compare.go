package service

import (
	"strings"

	"github.com/clauselens/clauselens/internal/domain"
)

// CompareDocuments reports the clause-level changes between two analyzed
// revisions of a contract. Clauses are matched by category plus normalized
// title; a matched pair with differing content is reported as modified,
// unmatched new clauses as added, unmatched old clauses as removed.
func CompareDocuments(oldClauses, newClauses []domain.Clause) domain.ComparisonResult {
	result := domain.ComparisonResult{
		Added:    make([]domain.Clause, 0),
		Removed:  make([]domain.Clause, 0),
		Modified: make([]domain.ModifiedClause, 0),
	}

	oldByKey := make(map[string][]int)
	for i, clause := range oldClauses {
		key := clauseKey(clause)
		oldByKey[key] = append(oldByKey[key], i)
	}

	matched := make([]bool, len(oldClauses))
	for _, clause := range newClauses {
		key := clauseKey(clause)

		idx := -1
		for _, candidate := range oldByKey[key] {
			if !matched[candidate] {
				idx = candidate
				break
			}
		}

		if idx < 0 {
			result.Added = append(result.Added, clause)
			continue
		}

		matched[idx] = true
		old := oldClauses[idx]
		if normalizeForDiff(old.Content) != normalizeForDiff(clause.Content) {
			result.Modified = append(result.Modified, domain.ModifiedClause{
				OldClause:   old,
				NewClause:   clause,
				Differences: diffClauseText(old.Content, clause.Content),
			})
		}
	}

	for i, clause := range oldClauses {
		if !matched[i] {
			result.Removed = append(result.Removed, clause)
		}
	}

	return result
}

func clauseKey(clause domain.Clause) string {
	return string(clause.Category) + "|" + strings.ToLower(strings.TrimSpace(clause.Title))
}

func normalizeForDiff(content string) string {
	return strings.Join(strings.Fields(content), " ")
}

// diffClauseText walks both texts line by line and records positional
// changes. Position is the character offset of the line within the version
// that carries the change (the new text for additions and modifications,
// the old text for deletions).
func diffClauseText(oldContent, newContent string) []domain.TextDiff {
	oldLines := strings.Split(oldContent, "\n")
	newLines := strings.Split(newContent, "\n")

	oldOffsets := lineOffsets(oldLines)
	newOffsets := lineOffsets(newLines)

	var diffs []domain.TextDiff
	for i := 0; i < len(oldLines) || i < len(newLines); i++ {
		switch {
		case i >= len(oldLines):
			diffs = append(diffs, domain.TextDiff{
				Type:     domain.DiffAddition,
				Text:     newLines[i],
				Position: newOffsets[i],
			})
		case i >= len(newLines):
			diffs = append(diffs, domain.TextDiff{
				Type:     domain.DiffDeletion,
				Text:     oldLines[i],
				Position: oldOffsets[i],
			})
		case normalizeForDiff(oldLines[i]) != normalizeForDiff(newLines[i]):
			diffs = append(diffs, domain.TextDiff{
				Type:     domain.DiffModification,
				Text:     newLines[i],
				Position: newOffsets[i],
			})
		}
	}

	return diffs
}

func lineOffsets(lines []string) []int {
	offsets := make([]int, len(lines))
	offset := 0
	for i, line := range lines {
		offsets[i] = offset
		offset += len(line) + 1
	}
	return offsets
}
