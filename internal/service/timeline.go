package service

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/clauselens/clauselens/internal/domain"
)

// renewalNoticeDays is how far before the end date the renewal decision
// milestone is placed.
const renewalNoticeDays = 30

const monthNamePattern = `(January|February|March|April|May|June|July|August|September|October|November|December)`

var (
	numericDateRe      = regexp.MustCompile(`(\d{1,2})[/\-](\d{1,2})[/\-](\d{4})`)
	monthNameDateRe    = regexp.MustCompile(`(?i)` + monthNamePattern + `\s+(\d{1,2}),?\s+(\d{4})`)
	endNumericDateRe   = regexp.MustCompile(`(?i)(?:until|through|ending)\s+(\d{1,2})[/\-](\d{1,2})[/\-](\d{4})`)
	endMonthNameDateRe = regexp.MustCompile(`(?i)(?:until|through|ending)\s+` + monthNamePattern + `\s+(\d{1,2}),?\s+(\d{4})`)
	renewalCueRe       = regexp.MustCompile(`(?i)renew|renewal|automatic`)
	renewalTermRe      = regexp.MustCompile(`(?i)renew`)
	sentenceEndRe      = regexp.MustCompile(`[.!?]`)
)

var monthsByName = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

// GenerateTimeline derives the contract's start date, end date, renewal
// terms and ordered milestones from date- and duration-category clauses.
func GenerateTimeline(clauses []domain.Clause) domain.Timeline {
	startDate := extractStartDate(clauses)
	endDate := extractEndDate(clauses)
	renewalTerms := extractRenewalTerms(clauses)

	return domain.Timeline{
		StartDate:    startDate,
		EndDate:      endDate,
		RenewalTerms: renewalTerms,
		Milestones:   buildMilestones(startDate, endDate, renewalTerms),
	}
}

// extractStartDate scans effective-date and duration clauses in list order;
// the first numeric (M/D/YYYY-style) or month-name date wins.
func extractStartDate(clauses []domain.Clause) *time.Time {
	dateClauses := domain.FilterByCategory(clauses, domain.CategoryEffectiveDate, domain.CategoryDuration)

	for _, clause := range dateClauses {
		if match := numericDateRe.FindStringSubmatch(clause.Content); match != nil {
			return numericDate(match[1], match[2], match[3])
		}
		if match := monthNameDateRe.FindStringSubmatch(clause.Content); match != nil {
			return monthNameDate(match[1], match[2], match[3])
		}
	}

	return nil
}

// extractEndDate only considers duration clauses, and only dates preceded
// by an "until"/"through"/"ending" cue.
func extractEndDate(clauses []domain.Clause) *time.Time {
	for _, clause := range domain.FilterByCategory(clauses, domain.CategoryDuration) {
		if match := endNumericDateRe.FindStringSubmatch(clause.Content); match != nil {
			return numericDate(match[1], match[2], match[3])
		}
		if match := endMonthNameDateRe.FindStringSubmatch(clause.Content); match != nil {
			return monthNameDate(match[1], match[2], match[3])
		}
	}

	return nil
}

func extractRenewalTerms(clauses []domain.Clause) string {
	for _, clause := range domain.FilterByCategory(clauses, domain.CategoryDuration) {
		if !renewalCueRe.MatchString(clause.Content) {
			continue
		}
		for _, sentence := range sentenceEndRe.Split(clause.Content, -1) {
			if renewalTermRe.MatchString(sentence) {
				return strings.TrimSpace(sentence)
			}
		}
		return ""
	}

	return ""
}

func buildMilestones(startDate, endDate *time.Time, renewalTerms string) []domain.Milestone {
	milestones := make([]domain.Milestone, 0, 3)

	if startDate != nil {
		milestones = append(milestones, domain.Milestone{
			Date:  *startDate,
			Label: "Contract Start",
			Type:  domain.MilestoneStart,
		})
	}

	if endDate != nil {
		milestones = append(milestones, domain.Milestone{
			Date:  *endDate,
			Label: "Contract End",
			Type:  domain.MilestoneEnd,
		})

		if renewalTerms != "" {
			milestones = append(milestones, domain.Milestone{
				Date:  endDate.AddDate(0, 0, -renewalNoticeDays),
				Label: "Renewal Decision Point",
				Type:  domain.MilestoneRenewal,
			})
		}
	}

	sort.SliceStable(milestones, func(i, j int) bool {
		return milestones[i].Date.Before(milestones[j].Date)
	})

	return milestones
}

// numericDate interprets its arguments as month/day/year.
func numericDate(month, day, year string) *time.Time {
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	y, _ := strconv.Atoi(year)
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	return &t
}

func monthNameDate(month, day, year string) *time.Time {
	m, ok := monthsByName[strings.ToLower(month)]
	if !ok {
		return nil
	}
	d, _ := strconv.Atoi(day)
	y, _ := strconv.Atoi(year)
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}
