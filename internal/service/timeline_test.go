package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clauselens/clauselens/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateTimeline_FullContract(t *testing.T) {
	clauses := []domain.Clause{
		{Category: domain.CategoryEffectiveDate, Content: "This agreement is effective as of 1/15/2024."},
		{Category: domain.CategoryDuration, Content: "The term runs until 12/31/2024. This agreement shall automatically renew for successive one year terms."},
	}

	timeline := GenerateTimeline(clauses)

	require.NotNil(t, timeline.StartDate)
	assert.Equal(t, date(2024, time.January, 15), *timeline.StartDate)
	require.NotNil(t, timeline.EndDate)
	assert.Equal(t, date(2024, time.December, 31), *timeline.EndDate)
	assert.Equal(t, "This agreement shall automatically renew for successive one year terms", timeline.RenewalTerms)

	require.Len(t, timeline.Milestones, 3)
	assert.Equal(t, domain.MilestoneStart, timeline.Milestones[0].Type)
	assert.Equal(t, "Contract Start", timeline.Milestones[0].Label)
	assert.Equal(t, domain.MilestoneRenewal, timeline.Milestones[1].Type)
	assert.Equal(t, date(2024, time.December, 1), timeline.Milestones[1].Date)
	assert.Equal(t, domain.MilestoneEnd, timeline.Milestones[2].Type)
	assert.Equal(t, "Contract End", timeline.Milestones[2].Label)
}

func TestGenerateTimeline_MonthNameDates(t *testing.T) {
	clauses := []domain.Clause{
		{Category: domain.CategoryEffectiveDate, Content: "Executed on March 1, 2024 by both parties."},
		{Category: domain.CategoryDuration, Content: "The term continues through December 31, 2024."},
	}

	timeline := GenerateTimeline(clauses)

	require.NotNil(t, timeline.StartDate)
	assert.Equal(t, date(2024, time.March, 1), *timeline.StartDate)
	require.NotNil(t, timeline.EndDate)
	assert.Equal(t, date(2024, time.December, 31), *timeline.EndDate)
}

func TestGenerateTimeline_EndDateNeedsCue(t *testing.T) {
	clauses := []domain.Clause{
		{Category: domain.CategoryDuration, Content: "The term begins on 1/1/2024 and spans two years."},
	}

	timeline := GenerateTimeline(clauses)

	require.NotNil(t, timeline.StartDate)
	assert.Equal(t, date(2024, time.January, 1), *timeline.StartDate)
	assert.Nil(t, timeline.EndDate)

	require.Len(t, timeline.Milestones, 1)
	assert.Equal(t, domain.MilestoneStart, timeline.Milestones[0].Type)
}

func TestGenerateTimeline_EndDateOnlyFromDurationClauses(t *testing.T) {
	clauses := []domain.Clause{
		{Category: domain.CategoryTermination, Content: "This agreement runs until 6/30/2025."},
	}

	timeline := GenerateTimeline(clauses)

	assert.Nil(t, timeline.EndDate)
}

func TestGenerateTimeline_NoRenewalMilestoneWithoutRenewalTerms(t *testing.T) {
	clauses := []domain.Clause{
		{Category: domain.CategoryDuration, Content: "The term runs until 12/31/2024."},
	}

	timeline := GenerateTimeline(clauses)

	require.NotNil(t, timeline.EndDate)
	assert.Empty(t, timeline.RenewalTerms)

	// the bare date in the duration clause doubles as the start date
	require.NotNil(t, timeline.StartDate)
	assert.Equal(t, *timeline.EndDate, *timeline.StartDate)
	require.Len(t, timeline.Milestones, 2)
	assert.Equal(t, domain.MilestoneStart, timeline.Milestones[0].Type)
	assert.Equal(t, domain.MilestoneEnd, timeline.Milestones[1].Type)
}

func TestGenerateTimeline_RenewalCueWithoutRenewSentence(t *testing.T) {
	clauses := []domain.Clause{
		{Category: domain.CategoryDuration, Content: "Automatic extension applies. The term runs until 12/31/2024."},
	}

	timeline := GenerateTimeline(clauses)

	assert.Empty(t, timeline.RenewalTerms)
}

func TestGenerateTimeline_MilestonesSorted(t *testing.T) {
	clauses := []domain.Clause{
		{Category: domain.CategoryEffectiveDate, Content: "Effective 1/1/2024."},
		{Category: domain.CategoryDuration, Content: "Runs until 3/1/2024. The contract may renew annually."},
	}

	timeline := GenerateTimeline(clauses)

	require.NotEmpty(t, timeline.Milestones)
	for i := 1; i < len(timeline.Milestones); i++ {
		assert.False(t, timeline.Milestones[i].Date.Before(timeline.Milestones[i-1].Date))
	}
}

func TestGenerateTimeline_Empty(t *testing.T) {
	timeline := GenerateTimeline(nil)

	assert.Nil(t, timeline.StartDate)
	assert.Nil(t, timeline.EndDate)
	assert.Empty(t, timeline.RenewalTerms)
	assert.NotNil(t, timeline.Milestones)
	assert.Empty(t, timeline.Milestones)
}
