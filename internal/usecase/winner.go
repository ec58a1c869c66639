package usecase

import (
	"context"
	"time"

	"github.com/Ahmedfares-dev/darmasr/internal/domain"
)

type WinnerUsecase struct {
	winners     WinnerRepository
	elections   ElectionRepository
	nominations NominationRepository
	directory   DirectoryRepository
	signal      EventPublisher
}

func NewWinnerUsecase(
	winners WinnerRepository,
	elections ElectionRepository,
	nominations NominationRepository,
	directory DirectoryRepository,
	signal EventPublisher,
) *WinnerUsecase {
	return &WinnerUsecase{
		winners:     winners,
		elections:   elections,
		nominations: nominations,
		directory:   directory,
		signal:      signal,
	}
}

// Confirm finalizes a pending tally result. The confirming manager and
// timestamp are recorded, and the election reaches its terminal
// winner_confirmed status.
func (uc *WinnerUsecase) Confirm(ctx context.Context, id string, confirmedBy string) (domain.Winner, error) {
	winner, err := uc.winners.Get(ctx, id)
	if err != nil {
		return domain.Winner{}, err
	}

	if winner.Status != domain.WinnerPending {
		return domain.Winner{}, domain.AlreadyConfirmedError{}
	}

	now := time.Now()
	winner.Status = domain.WinnerConfirmed
	winner.ConfirmedBy = &confirmedBy
	winner.ConfirmedAt = &now

	if err := uc.winners.Update(ctx, winner); err != nil {
		return domain.Winner{}, err
	}

	if err := uc.elections.UpdateStatus(ctx, winner.ElectionID, domain.ElectionWinnerConfirmed); err != nil {
		return domain.Winner{}, err
	}

	emit(ctx, uc.signal, domain.EventWinnerConfirmed, winner.ElectionID, winner.ID)

	return winner, nil
}

// Reject sends a pending tally result back. The election returns to
// ended, from which tally may run again; the voting window stays
// closed.
func (uc *WinnerUsecase) Reject(ctx context.Context, id string) (domain.Winner, error) {
	winner, err := uc.winners.Get(ctx, id)
	if err != nil {
		return domain.Winner{}, err
	}

	if winner.Status != domain.WinnerPending {
		return domain.Winner{}, domain.AlreadyConfirmedError{}
	}

	winner.Status = domain.WinnerRejected

	if err := uc.winners.Update(ctx, winner); err != nil {
		return domain.Winner{}, err
	}

	if err := uc.elections.UpdateStatus(ctx, winner.ElectionID, domain.ElectionEnded); err != nil {
		return domain.Winner{}, err
	}

	emit(ctx, uc.signal, domain.EventWinnerRejected, winner.ElectionID, winner.ID)

	return winner, nil
}

func (uc *WinnerUsecase) Get(ctx context.Context, id string) (domain.WinnerView, error) {
	winner, err := uc.winners.Get(ctx, id)
	if err != nil {
		return domain.WinnerView{}, err
	}
	return uc.view(ctx, winner), nil
}

func (uc *WinnerUsecase) GetByElection(ctx context.Context, electionID string) (domain.WinnerView, error) {
	winner, err := uc.winners.GetByElection(ctx, electionID)
	if err != nil {
		return domain.WinnerView{}, err
	}
	return uc.view(ctx, winner), nil
}

func (uc *WinnerUsecase) List(ctx context.Context, filter WinnerFilter) ([]domain.WinnerView, error) {
	winners, err := uc.winners.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	views := make([]domain.WinnerView, 0, len(winners))
	for _, w := range winners {
		views = append(views, uc.view(ctx, w))
	}
	return views, nil
}

func (uc *WinnerUsecase) view(ctx context.Context, w domain.Winner) domain.WinnerView {
	view := domain.WinnerView{Winner: w}

	if nomination, err := uc.nominations.Get(ctx, w.NominationID); err == nil {
		nv := domain.NominationView{Nomination: nomination}
		if resident, err := uc.directory.GetResident(ctx, nomination.ResidentID); err == nil {
			nv.Resident = &resident
		}
		view.Nomination = &nv
	}

	if election, err := uc.elections.Get(ctx, w.ElectionID); err == nil {
		ev := domain.ElectionView{Election: election}
		if building, err := uc.directory.GetBuilding(ctx, election.BuildingID); err == nil {
			ev.BuildingNumber = building.Number
		}
		view.Election = &ev
	}

	return view
}
