package domain

import "time"

// MilestoneType represents the kind of dated event on a contract timeline
type MilestoneType string

const (
	MilestoneStart   MilestoneType = "start"
	MilestoneEnd     MilestoneType = "end"
	MilestoneRenewal MilestoneType = "renewal"
	MilestoneGeneric MilestoneType = "milestone"
)

// Milestone is a dated event derived from date and duration clauses.
type Milestone struct {
	Date  time.Time     `json:"date"`
	Label string        `json:"label"`
	Type  MilestoneType `json:"type"`
}

// Timeline holds the dates and renewal terms extracted from a document.
// Milestones are always sorted ascending by date.
type Timeline struct {
	StartDate    *time.Time  `json:"start_date,omitempty"`
	EndDate      *time.Time  `json:"end_date,omitempty"`
	RenewalTerms string      `json:"renewal_terms,omitempty"`
	Milestones   []Milestone `json:"milestones"`
}
