package usecase

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Ahmedfares-dev/darmasr/internal/domain"
)

// Tie-break policy: among nominations sharing the maximum vote count,
// the winner is the one submitted earliest; identical submission times
// fall back to the lowest nomination id. Deterministic, so re-running
// tally over unchanged votes always yields the same winner.

type TallyUsecase struct {
	elections   ElectionRepository
	nominations NominationRepository
	votes       VoteRepository
	winners     WinnerRepository
	signal      EventPublisher
}

func NewTallyUsecase(
	elections ElectionRepository,
	nominations NominationRepository,
	votes VoteRepository,
	winners WinnerRepository,
	signal EventPublisher,
) *TallyUsecase {
	return &TallyUsecase{
		elections:   elections,
		nominations: nominations,
		votes:       votes,
		winners:     winners,
		signal:      signal,
	}
}

// Tally counts the ballots of an ended election and upserts the
// pending winner record. Idempotent: a re-run overwrites the winner
// and resets its status to pending, which is the designed recovery
// path after a winner rejection.
func (uc *TallyUsecase) Tally(ctx context.Context, electionID string) (domain.Winner, error) {
	ctx, span := tracer.Start(ctx, "Tally.Usecase.Tally")
	defer span.End()
	span.SetAttributes(attribute.String("electionId", electionID))

	election, err := uc.elections.Get(ctx, electionID)
	if err != nil {
		return domain.Winner{}, err
	}

	if time.Now().Before(election.EndDate) {
		return domain.Winner{}, domain.TooEarlyError{}
	}

	votes, err := uc.votes.ListByElection(ctx, electionID)
	if err != nil {
		return domain.Winner{}, err
	}
	if len(votes) == 0 {
		return domain.Winner{}, domain.NoVotesError{}
	}

	counts := map[string]int{}
	for _, v := range votes {
		counts[v.NominationID]++
	}

	nominations, err := uc.nominations.List(ctx, NominationFilter{ElectionID: electionID})
	if err != nil {
		return domain.Winner{}, err
	}
	submitted := make(map[string]domain.Nomination, len(nominations))
	for _, n := range nominations {
		submitted[n.ID] = n
	}

	winnerID, maxVotes := pickWinner(counts, submitted)

	winner := domain.Winner{
		ElectionID:   electionID,
		NominationID: winnerID,
		VoteCount:    maxVotes,
		Status:       domain.WinnerPending,
	}

	upserted, err := uc.winners.Upsert(ctx, winner)
	if err != nil {
		return domain.Winner{}, err
	}

	if err := uc.elections.UpdateStatus(ctx, electionID, domain.ElectionWinnerPending); err != nil {
		return domain.Winner{}, err
	}

	emit(ctx, uc.signal, domain.EventElectionTallied, electionID, upserted.ID)

	return upserted, nil
}

// pickWinner selects the nomination with the strictly greatest count,
// applying the tie-break policy documented above.
func pickWinner(counts map[string]int, nominations map[string]domain.Nomination) (string, int) {
	var winnerID string
	maxVotes := 0

	for id, count := range counts {
		if count > maxVotes {
			winnerID = id
			maxVotes = count
			continue
		}
		if count == maxVotes && beats(nominations, id, winnerID) {
			winnerID = id
		}
	}

	return winnerID, maxVotes
}

// beats reports whether candidate wins the tie against incumbent.
func beats(nominations map[string]domain.Nomination, candidate, incumbent string) bool {
	if incumbent == "" {
		return true
	}
	c, cok := nominations[candidate]
	i, iok := nominations[incumbent]
	if cok && iok && !c.SubmittedAt.Equal(i.SubmittedAt) {
		return c.SubmittedAt.Before(i.SubmittedAt)
	}
	return candidate < incumbent
}
