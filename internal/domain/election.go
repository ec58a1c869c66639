package domain

import "time"

// ElectionStatus is the phase of an election's lifecycle.
type ElectionStatus string

const (
	ElectionScheduled       ElectionStatus = "scheduled"
	ElectionRunning         ElectionStatus = "running"
	ElectionEnded           ElectionStatus = "ended"
	ElectionWinnerPending   ElectionStatus = "winner_pending"
	ElectionWinnerConfirmed ElectionStatus = "winner_confirmed"
)

// Election is the unit of voting activity for one building.
type Election struct {
	ID         string         `json:"id"`
	BuildingID string         `json:"buildingId"`
	Number     int            `json:"number"`
	StartDate  time.Time      `json:"startDate"`
	EndDate    time.Time      `json:"endDate"`
	Status     ElectionStatus `json:"status"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// IsRunning reports whether the voting window is open at now.
func (e Election) IsRunning(now time.Time) bool {
	return !now.Before(e.StartDate) && !now.After(e.EndDate)
}

// DeriveStatus computes the election phase from wall-clock time.
// winner_confirmed is terminal and never recomputed, and winner_pending
// survives the end of the voting window until the winner is decided.
func DeriveStatus(e Election, now time.Time) ElectionStatus {
	if e.Status == ElectionWinnerConfirmed {
		return ElectionWinnerConfirmed
	}
	switch {
	case now.Before(e.StartDate):
		return ElectionScheduled
	case !now.After(e.EndDate):
		return ElectionRunning
	case e.Status == ElectionWinnerPending:
		return ElectionWinnerPending
	default:
		return ElectionEnded
	}
}
