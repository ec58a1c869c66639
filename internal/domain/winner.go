package domain

import "time"

// WinnerStatus is the confirmation state of a tally result.
type WinnerStatus string

const (
	WinnerPending   WinnerStatus = "pending"
	WinnerConfirmed WinnerStatus = "confirmed"
	WinnerRejected  WinnerStatus = "rejected"
)

// Winner is the computed result of tallying an election. Exactly zero
// or one winner record exists per election; tally overwrites it.
type Winner struct {
	ID           string       `json:"id"`
	ElectionID   string       `json:"electionId"`
	NominationID string       `json:"nominationId"`
	VoteCount    int          `json:"voteCount"`
	Status       WinnerStatus `json:"status"`
	ConfirmedBy  *string      `json:"confirmedBy,omitempty"`
	ConfirmedAt  *time.Time   `json:"confirmedAt,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
}
