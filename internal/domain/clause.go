package domain

// ClauseCategory represents the classification bucket of a clause
type ClauseCategory string

const (
	CategoryParties           ClauseCategory = "parties"
	CategoryEffectiveDate     ClauseCategory = "effective_date"
	CategoryDuration          ClauseCategory = "duration"
	CategoryPayment           ClauseCategory = "payment"
	CategoryConfidentiality   ClauseCategory = "confidentiality"
	CategoryTermination       ClauseCategory = "termination"
	CategoryPenalties         ClauseCategory = "penalties"
	CategoryDisputeResolution ClauseCategory = "dispute_resolution"
	CategoryGoverningLaw      ClauseCategory = "governing_law"
	CategoryResponsibilities  ClauseCategory = "responsibilities"
	CategoryNonCompete        ClauseCategory = "non_compete"
	CategoryNonSolicitation   ClauseCategory = "non_solicitation"
	CategoryOther             ClauseCategory = "other"
)

// AllClauseCategories lists every category in declaration order.
var AllClauseCategories = []ClauseCategory{
	CategoryParties,
	CategoryEffectiveDate,
	CategoryDuration,
	CategoryPayment,
	CategoryConfidentiality,
	CategoryTermination,
	CategoryPenalties,
	CategoryDisputeResolution,
	CategoryGoverningLaw,
	CategoryResponsibilities,
	CategoryNonCompete,
	CategoryNonSolicitation,
	CategoryOther,
}

// Clause represents one contiguous span of source text treated as a single
// contractual provision. Clauses are created once by segmentation and
// classification and are immutable afterwards.
type Clause struct {
	Title      string         `json:"title"`
	Content    string         `json:"content"`
	StartIndex int            `json:"start_index"`
	EndIndex   int            `json:"end_index"`
	Category   ClauseCategory `json:"category"`
}

// ValidateClause validates a Clause instance
func ValidateClause(c *Clause) error {
	if c == nil {
		return NewDomainError(ErrCodeValidation, "clause cannot be nil")
	}

	if c.Content == "" {
		return NewDomainError(ErrCodeValidation, "clause content is required")
	}

	if c.StartIndex < 0 || c.EndIndex <= c.StartIndex {
		return ErrInvalidClauseSpan
	}

	if !IsValidClauseCategory(c.Category) {
		return ErrInvalidClauseCategory
	}

	return nil
}

// IsValidClauseCategory checks if a ClauseCategory is valid
func IsValidClauseCategory(c ClauseCategory) bool {
	switch c {
	case CategoryParties, CategoryEffectiveDate, CategoryDuration,
		CategoryPayment, CategoryConfidentiality, CategoryTermination,
		CategoryPenalties, CategoryDisputeResolution, CategoryGoverningLaw,
		CategoryResponsibilities, CategoryNonCompete, CategoryNonSolicitation,
		CategoryOther:
		return true
	}
	return false
}

// CategoriesOf returns the set of categories present in a clause list.
func CategoriesOf(clauses []Clause) map[ClauseCategory]bool {
	set := make(map[ClauseCategory]bool, len(clauses))
	for _, c := range clauses {
		set[c.Category] = true
	}
	return set
}

// FilterByCategory returns the clauses matching any of the given categories,
// preserving input order.
func FilterByCategory(clauses []Clause, categories ...ClauseCategory) []Clause {
	var out []Clause
	for _, c := range clauses {
		for _, cat := range categories {
			if c.Category == cat {
				out = append(out, c)
				break
			}
		}
	}
	return out
}
