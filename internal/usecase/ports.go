package usecase

import (
	"context"

	"github.com/Ahmedfares-dev/darmasr/internal/domain"
)

// ElectionRepository defines persistence for elections.
type ElectionRepository interface {
	Create(ctx context.Context, e domain.Election) (domain.Election, error)
	Get(ctx context.Context, id string) (domain.Election, error)
	List(ctx context.Context, buildingID string) ([]domain.Election, error)
	UpdateStatus(ctx context.Context, id string, status domain.ElectionStatus) error
	// DeleteCascade removes the election together with its nominations,
	// votes and winner in one transaction.
	DeleteCascade(ctx context.Context, id string) error
}

// NominationFilter narrows nomination listings.
type NominationFilter struct {
	ElectionID string
	Status     domain.NominationStatus
}

// NominationRepository defines persistence for nominations.
type NominationRepository interface {
	Create(ctx context.Context, n domain.Nomination) (domain.Nomination, error)
	Get(ctx context.Context, id string) (domain.Nomination, error)
	List(ctx context.Context, filter NominationFilter) ([]domain.Nomination, error)
	UpdateStatus(ctx context.Context, id string, status domain.NominationStatus) error
	Delete(ctx context.Context, id string) error
}

// VoteRepository defines persistence for votes. Create must translate
// the (election, resident) unique-index violation into
// domain.AlreadyVotedError so the storage layer arbitrates races.
type VoteRepository interface {
	Create(ctx context.Context, v domain.Vote) (domain.Vote, error)
	Get(ctx context.Context, id string) (domain.Vote, error)
	HasVoted(ctx context.Context, electionID, residentID string) (bool, error)
	ListByElection(ctx context.Context, electionID string) ([]domain.Vote, error)
	CountByElection(ctx context.Context, electionID string) (int64, error)
	Delete(ctx context.Context, id string) error
}

// WinnerFilter narrows winner listings.
type WinnerFilter struct {
	Status     domain.WinnerStatus
	BuildingID string
}

// WinnerRepository defines persistence for tally results.
type WinnerRepository interface {
	// Upsert creates the election's winner record or overwrites the
	// existing one, keyed by election id.
	Upsert(ctx context.Context, w domain.Winner) (domain.Winner, error)
	Get(ctx context.Context, id string) (domain.Winner, error)
	GetByElection(ctx context.Context, electionID string) (domain.Winner, error)
	List(ctx context.Context, filter WinnerFilter) ([]domain.Winner, error)
	Update(ctx context.Context, w domain.Winner) error
}

// DirectoryRepository is the read side of the building/resident
// directory. The election core consumes it for identity and
// eligibility lookups; it owns neither entity.
type DirectoryRepository interface {
	GetBuilding(ctx context.Context, id string) (domain.Building, error)
	ListBuildings(ctx context.Context) ([]domain.BuildingSummary, error)
	CountBuildings(ctx context.Context) (int64, error)
	SeedBuildings(ctx context.Context, count int) error
	GetResident(ctx context.Context, id string) (domain.Resident, error)
	ListResidents(ctx context.Context, buildingID string) ([]domain.Resident, error)
}

// EventPublisher emits audit events for state changes. Publishing is
// best-effort; failures must not fail the triggering operation.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}
