package domain

import "time"

// NominationStatus is the approval state of a candidacy.
type NominationStatus string

const (
	NominationPending  NominationStatus = "pending"
	NominationApproved NominationStatus = "approved"
	NominationRejected NominationStatus = "rejected"
)

// Nomination is a resident's candidacy in one election. At most one
// nomination exists per (election, resident).
type Nomination struct {
	ID             string           `json:"id"`
	ElectionID     string           `json:"electionId"`
	ResidentID     string           `json:"residentId"`
	Statement      string           `json:"statement"`
	Qualifications string           `json:"qualifications,omitempty"`
	Goals          string           `json:"goals,omitempty"`
	Status         NominationStatus `json:"status"`
	SubmittedAt    time.Time        `json:"submittedAt"`
}
