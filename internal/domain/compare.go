package domain

// DiffType represents the kind of change between two clause texts
type DiffType string

const (
	DiffAddition     DiffType = "addition"
	DiffDeletion     DiffType = "deletion"
	DiffModification DiffType = "modification"
)

// TextDiff is one positional change inside a modified clause.
type TextDiff struct {
	Type     DiffType `json:"type"`
	Text     string   `json:"text"`
	Position int      `json:"position"`
}

// ModifiedClause pairs the old and new versions of a clause that survived
// between two document revisions but changed content.
type ModifiedClause struct {
	OldClause   Clause     `json:"old_clause"`
	NewClause   Clause     `json:"new_clause"`
	Differences []TextDiff `json:"differences"`
}

// ComparisonResult reports the clause-level changes between two analyzed
// documents.
type ComparisonResult struct {
	Added    []Clause         `json:"added"`
	Removed  []Clause         `json:"removed"`
	Modified []ModifiedClause `json:"modified"`
}
