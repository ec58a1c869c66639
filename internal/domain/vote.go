package domain

import "time"

// Vote is one resident's ballot in one election. Votes are append-only:
// no update path exists, and deletion is an administrative correction.
type Vote struct {
	ID           string    `json:"id"`
	ElectionID   string    `json:"electionId"`
	ResidentID   string    `json:"residentId"`
	NominationID string    `json:"nominationId"`
	CastAt       time.Time `json:"castAt"`
}

// VoteCounts is the per-nomination breakdown of an election's ballots.
type VoteCounts struct {
	TotalVotes int            `json:"totalVotes"`
	VoteCounts map[string]int `json:"voteCounts"`
}
