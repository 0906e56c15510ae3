package service

import (
	"regexp"
	"strings"

	"github.com/clauselens/clauselens/internal/domain"
)

// categoryRule scores one category: structural patterns are worth 3 points
// each, keywords 1 point each, and the sum is weighted by priority. A
// pattern counts once per clause no matter how often it matches.
type categoryRule struct {
	category domain.ClauseCategory
	patterns []*regexp.Regexp
	keywords []string
	priority int
}

const (
	patternWeight = 3
	keywordWeight = 1
)

// categoryRules is evaluated in declaration order. CategorizeClause only
// replaces the current best on strict improvement, so earlier rules win
// score ties.
var categoryRules = []categoryRule{
	{
		category: domain.CategoryParties,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:this\s+(?:agreement|contract).*?between|parties?\s+to\s+this\s+(?:agreement|contract))[:\s]+([^.]+)`),
			regexp.MustCompile(`(?i)(?:entered\s+into\s+by\s+and\s+between)[:\s]+([^.]+)`),
			regexp.MustCompile(`(?i)(?:party|parties)[:\s]+([^.]+?)(?:hereinafter|referred\s+to)`),
		},
		keywords: []string{"party", "parties", "between", "hereinafter", "referred to as"},
		priority: 10,
	},
	{
		category: domain.CategoryEffectiveDate,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)effective\s+date[:\s]+([^.]+)`),
			regexp.MustCompile(`(?i)(?:dated|executed\s+on|signed\s+on)[:\s]+([^.]+)`),
			regexp.MustCompile(`(?i)(?:this\s+agreement.*?dated)[:\s]+([^.]+)`),
		},
		keywords: []string{"effective date", "dated", "executed on", "commencement date"},
		priority: 9,
	},
	{
		category: domain.CategoryDuration,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:term|duration)[:\s]+([^.]+)`),
			regexp.MustCompile(`(?i)(?:period\s+of)[:\s]+([^.]+)`),
			regexp.MustCompile(`(?i)(?:shall\s+(?:remain|continue)\s+in\s+(?:force|effect)\s+for)[:\s]+([^.]+)`),
		},
		keywords: []string{"term", "duration", "period", "years", "months"},
		priority: 8,
	},
	{
		category: domain.CategoryPayment,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:payment|compensation|fee|price)[:\s]+([^.]+)`),
			regexp.MustCompile(`(?i)(?:\$|USD|EUR|GBP)\s*[\d,]+(?:\.\d{2})?`),
			regexp.MustCompile(`(?i)(?:shall\s+pay|payment\s+of)[:\s]+([^.]+)`),
		},
		keywords: []string{"payment", "compensation", "fee", "price", "amount", "invoice", "billing"},
		priority: 9,
	},
	{
		category: domain.CategoryConfidentiality,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)confidential(?:ity)?[:\s]+([^.]+)`),
			regexp.MustCompile(`(?i)(?:non-disclosure|nda)[:\s]+([^.]+)`),
			regexp.MustCompile(`(?i)(?:proprietary\s+information)[:\s]+([^.]+)`),
		},
		keywords: []string{"confidential", "confidentiality", "non-disclosure", "proprietary", "secret"},
		priority: 8,
	},
	{
		category: domain.CategoryTermination,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)termination[:\s]+([^.]+)`),
			regexp.MustCompile(`(?i)(?:either\s+party\s+may\s+terminate)[:\s]+([^.]+)`),
			regexp.MustCompile(`(?i)(?:this\s+agreement.*?(?:terminated|cancelled))[:\s]+([^.]+)`),
		},
		keywords: []string{"termination", "terminate", "cancel", "cancellation", "end"},
		priority: 9,
	},
	{
		category: domain.CategoryPenalties,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:penalty|penalties|liquidated\s+damages)[:\s]+([^.]+)`),
			regexp.MustCompile(`(?i)(?:breach.*?(?:shall\s+pay|liable\s+for))[:\s]+([^.]+)`),
			regexp.MustCompile(`(?i)(?:damages|indemnif(?:y|ication))[:\s]+([^.]+)`),
		},
		keywords: []string{"penalty", "penalties", "damages", "liquidated", "indemnify", "liable"},
		priority: 8,
	},
	{
		category: domain.CategoryDisputeResolution,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:dispute\s+resolution|arbitration)[:\s]+([^.]+)`),
			regexp.MustCompile(`(?i)(?:in\s+the\s+event\s+of.*?dispute)[:\s]+([^.]+)`),
			regexp.MustCompile(`(?i)(?:mediation|arbitration\s+proceedings)[:\s]+([^.]+)`),
		},
		keywords: []string{"dispute", "arbitration", "mediation", "resolution", "litigation"},
		priority: 7,
	},
	{
		category: domain.CategoryGoverningLaw,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:governing\s+law|applicable\s+law)[:\s]+([^.]+)`),
			regexp.MustCompile(`(?i)(?:shall\s+be\s+governed\s+by)[:\s]+([^.]+)`),
			regexp.MustCompile(`(?i)(?:jurisdiction)[:\s]+([^.]+)`),
		},
		keywords: []string{"governing law", "jurisdiction", "applicable law", "governed by"},
		priority: 7,
	},
	{
		category: domain.CategoryResponsibilities,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:obligations?|responsibilities|duties)[:\s]+([^.]+)`),
			regexp.MustCompile(`(?i)(?:shall\s+(?:be\s+responsible|perform|provide))[:\s]+([^.]+)`),
		},
		keywords: []string{"obligations", "responsibilities", "duties", "shall", "must"},
		priority: 6,
	},
	{
		category: domain.CategoryNonCompete,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:non-compete|non\s+compete)[:\s]+([^.]+)`),
			regexp.MustCompile(`(?i)(?:shall\s+not\s+(?:compete|engage\s+in))[:\s]+([^.]+)`),
			regexp.MustCompile(`(?i)(?:restrictive\s+covenant)[:\s]+([^.]+)`),
		},
		keywords: []string{"non-compete", "non compete", "restrictive covenant", "competition"},
		priority: 7,
	},
	{
		category: domain.CategoryNonSolicitation,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:non-solicitation|non\s+solicitation)[:\s]+([^.]+)`),
			regexp.MustCompile(`(?i)(?:shall\s+not\s+solicit)[:\s]+([^.]+)`),
		},
		keywords: []string{"non-solicitation", "non solicitation", "solicit", "employees", "customers"},
		priority: 7,
	},
}

// CategorizeClause assigns a clause text to one of the fixed categories.
// The strictly highest-scoring rule wins; ties and an all-zero result both
// resolve to CategoryOther.
func CategorizeClause(text string) domain.ClauseCategory {
	best := domain.CategoryOther
	bestScore := 0

	lower := strings.ToLower(text)
	for _, rule := range categoryRules {
		score := 0
		for _, pattern := range rule.patterns {
			if pattern.MatchString(text) {
				score += patternWeight
			}
		}
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				score += keywordWeight
			}
		}
		score *= rule.priority

		if score > bestScore {
			best = rule.category
			bestScore = score
		}
	}

	return best
}

var (
	numberedTitleRe = regexp.MustCompile(`(?i)^(?:\d+\.|Article\s+\d+|Section\s+\d+|Clause\s+\d+)`)
	titleCaseRe     = regexp.MustCompile(`^[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*$`)
)

// categoryTitles is total over all 13 categories; deriveTitle falls back to
// it when a clause's first line does not look like a heading.
var categoryTitles = map[domain.ClauseCategory]string{
	domain.CategoryParties:           "Parties to the Agreement",
	domain.CategoryEffectiveDate:     "Effective Date",
	domain.CategoryDuration:          "Term and Duration",
	domain.CategoryPayment:           "Payment Terms",
	domain.CategoryConfidentiality:   "Confidentiality",
	domain.CategoryTermination:       "Termination",
	domain.CategoryPenalties:         "Penalties and Damages",
	domain.CategoryDisputeResolution: "Dispute Resolution",
	domain.CategoryGoverningLaw:      "Governing Law",
	domain.CategoryResponsibilities:  "Obligations and Responsibilities",
	domain.CategoryNonCompete:        "Non-Compete Clause",
	domain.CategoryNonSolicitation:   "Non-Solicitation Clause",
	domain.CategoryOther:             "General Provision",
}

// TitleForCategory returns the fixed human-readable label for a category.
func TitleForCategory(category domain.ClauseCategory) string {
	if title, ok := categoryTitles[category]; ok {
		return title
	}
	return categoryTitles[domain.CategoryOther]
}

// deriveTitle uses the first line of the clause verbatim when it is 6-99
// characters long and looks like a heading (numbered marker, all caps, or a
// title-cased word sequence); otherwise it synthesizes one from the category.
func deriveTitle(content string, category domain.ClauseCategory) string {
	firstLine := content
	if idx := strings.IndexByte(content, '\n'); idx >= 0 {
		firstLine = content[:idx]
	}
	firstLine = strings.TrimSpace(firstLine)

	if len(firstLine) > 5 && len(firstLine) < 100 {
		if numberedTitleRe.MatchString(firstLine) {
			return firstLine
		}
		if firstLine == strings.ToUpper(firstLine) || titleCaseRe.MatchString(firstLine) {
			return firstLine
		}
	}

	return TitleForCategory(category)
}
