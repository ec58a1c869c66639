package domain

// Read-side composed views. Write-side entities stay normalized and
// reference-only; these are produced by query-time joins.

// NominationView is a nomination with its candidate resolved for display.
type NominationView struct {
	Nomination
	Resident *Resident `json:"resident,omitempty"`
}

// ElectionView is an election with its building number resolved.
type ElectionView struct {
	Election
	BuildingNumber string `json:"buildingNumber,omitempty"`
}

// ElectionDetail composes everything a client needs to render one
// election: candidacies, turnout and the tally result if any.
type ElectionDetail struct {
	ElectionView
	Nominations []NominationView `json:"nominations"`
	VotesCount  int              `json:"votesCount"`
	Winner      *Winner          `json:"winner,omitempty"`
}

// WinnerView is a winner with its nomination and candidate resolved.
type WinnerView struct {
	Winner
	Nomination *NominationView `json:"nomination,omitempty"`
	Election   *ElectionView   `json:"election,omitempty"`
}
