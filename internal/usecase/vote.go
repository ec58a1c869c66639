package usecase

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/Ahmedfares-dev/darmasr/internal/domain"
)

var tracer = otel.Tracer("ballot")

// CastVoteInput is the validated input for one ballot.
type CastVoteInput struct {
	ElectionID   string `json:"electionId"`
	ResidentID   string `json:"residentId"`
	NominationID string `json:"nominationId"`
}

// VoteCountCache caches per-election vote counts for a short window.
type VoteCountCache interface {
	Get(electionID string) (domain.VoteCounts, bool)
	Set(electionID string, counts domain.VoteCounts)
	Invalidate(electionID string)
}

type VoteUsecase struct {
	votes       VoteRepository
	elections   ElectionRepository
	nominations NominationRepository
	directory   DirectoryRepository
	counts      VoteCountCache
	signal      EventPublisher
}

func NewVoteUsecase(
	votes VoteRepository,
	elections ElectionRepository,
	nominations NominationRepository,
	directory DirectoryRepository,
	counts VoteCountCache,
	signal EventPublisher,
) *VoteUsecase {
	return &VoteUsecase{
		votes:       votes,
		elections:   elections,
		nominations: nominations,
		directory:   directory,
		counts:      counts,
		signal:      signal,
	}
}

// Cast records one resident's ballot. The checks run in a fixed order
// so each failure mode is distinguishable; the final insert relies on
// the storage-layer (election, resident) unique index as the
// authoritative defense against concurrent casts, so exactly one of
// two racing ballots succeeds and the loser observes AlreadyVoted.
func (uc *VoteUsecase) Cast(ctx context.Context, input CastVoteInput) (domain.Vote, error) {
	ctx, span := tracer.Start(ctx, "Ballot.Usecase.Cast")
	defer span.End()

	election, err := uc.elections.Get(ctx, input.ElectionID)
	if err != nil {
		return domain.Vote{}, err
	}

	resident, err := uc.directory.GetResident(ctx, input.ResidentID)
	if err != nil {
		return domain.Vote{}, err
	}

	if resident.BuildingID != election.BuildingID {
		return domain.Vote{}, domain.DomainMismatchError{Detail: "resident does not belong to this building"}
	}

	nomination, err := uc.nominations.Get(ctx, input.NominationID)
	if err != nil {
		return domain.Vote{}, err
	}

	if nomination.ElectionID != election.ID {
		return domain.Vote{}, domain.DomainMismatchError{Detail: "nomination does not belong to this election"}
	}

	if nomination.Status != domain.NominationApproved {
		return domain.Vote{}, domain.InvalidStateError{Detail: "only approved nominations are votable"}
	}

	if !election.IsRunning(time.Now()) {
		return domain.Vote{}, domain.PeriodClosedError{Detail: "election is not open for voting"}
	}

	voted, err := uc.votes.HasVoted(ctx, input.ElectionID, input.ResidentID)
	if err != nil {
		return domain.Vote{}, errors.Wrap(err, "failed to inspect ballot box")
	}
	if voted {
		return domain.Vote{}, domain.AlreadyVotedError{}
	}

	vote := domain.Vote{
		ElectionID:   input.ElectionID,
		ResidentID:   input.ResidentID,
		NominationID: input.NominationID,
		CastAt:       time.Now(),
	}

	created, err := uc.votes.Create(ctx, vote)
	if err != nil {
		span.RecordError(err)
		return domain.Vote{}, err
	}

	if uc.counts != nil {
		uc.counts.Invalidate(input.ElectionID)
	}

	emit(ctx, uc.signal, domain.EventVoteCast, created.ElectionID, created.ID)

	return created, nil
}

// Counts returns the per-nomination tallies for an election, cached
// briefly since clients poll it while an election runs.
func (uc *VoteUsecase) Counts(ctx context.Context, electionID string) (domain.VoteCounts, error) {
	if uc.counts != nil {
		if cached, ok := uc.counts.Get(electionID); ok {
			return cached, nil
		}
	}

	if _, err := uc.elections.Get(ctx, electionID); err != nil {
		return domain.VoteCounts{}, err
	}

	votes, err := uc.votes.ListByElection(ctx, electionID)
	if err != nil {
		return domain.VoteCounts{}, err
	}

	counts := domain.VoteCounts{
		TotalVotes: len(votes),
		VoteCounts: map[string]int{},
	}
	for _, v := range votes {
		counts.VoteCounts[v.NominationID]++
	}

	if uc.counts != nil {
		uc.counts.Set(electionID, counts)
	}

	return counts, nil
}

func (uc *VoteUsecase) Get(ctx context.Context, id string) (domain.Vote, error) {
	return uc.votes.Get(ctx, id)
}

func (uc *VoteUsecase) ListByElection(ctx context.Context, electionID string) ([]domain.Vote, error) {
	return uc.votes.ListByElection(ctx, electionID)
}

// Delete removes a ballot. Administrative corrections only; there is
// no resident-facing vote-change path.
func (uc *VoteUsecase) Delete(ctx context.Context, id string) error {
	vote, err := uc.votes.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.votes.Delete(ctx, id); err != nil {
		return err
	}
	if uc.counts != nil {
		uc.counts.Invalidate(vote.ElectionID)
	}
	return nil
}
