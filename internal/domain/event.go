package domain

import "time"

// Event types published to the audit signal channel.
const (
	EventElectionCreated    = "election.created"
	EventElectionDeleted    = "election.deleted"
	EventElectionTallied    = "election.tallied"
	EventNominationSubmit   = "nomination.submitted"
	EventNominationApproved = "nomination.approved"
	EventNominationRejected = "nomination.rejected"
	EventVoteCast           = "vote.cast"
	EventWinnerConfirmed    = "winner.confirmed"
	EventWinnerRejected     = "winner.rejected"
)

// Event is an audit record of a state change in the election core.
type Event struct {
	Type       string    `json:"type"`
	ElectionID string    `json:"electionId"`
	SubjectID  string    `json:"subjectId,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
