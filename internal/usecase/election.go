package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Ahmedfares-dev/darmasr/internal/domain"
)

// CreateElectionInput is the validated input for scheduling an election.
type CreateElectionInput struct {
	BuildingID string    `json:"buildingId"`
	Number     int       `json:"number"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
}

type ElectionUsecase struct {
	elections   ElectionRepository
	nominations NominationRepository
	votes       VoteRepository
	winners     WinnerRepository
	directory   DirectoryRepository
	signal      EventPublisher
}

func NewElectionUsecase(
	elections ElectionRepository,
	nominations NominationRepository,
	votes VoteRepository,
	winners WinnerRepository,
	directory DirectoryRepository,
	signal EventPublisher,
) *ElectionUsecase {
	return &ElectionUsecase{
		elections:   elections,
		nominations: nominations,
		votes:       votes,
		winners:     winners,
		directory:   directory,
		signal:      signal,
	}
}

func (uc *ElectionUsecase) Create(ctx context.Context, input CreateElectionInput) (domain.Election, error) {
	if _, err := uc.directory.GetBuilding(ctx, input.BuildingID); err != nil {
		return domain.Election{}, err
	}

	if !input.StartDate.Before(input.EndDate) {
		return domain.Election{}, domain.InvalidStateError{Detail: "end date must be after start date"}
	}

	election := domain.Election{
		BuildingID: input.BuildingID,
		Number:     input.Number,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
	}
	election.Status = domain.DeriveStatus(election, time.Now())

	created, err := uc.elections.Create(ctx, election)
	if err != nil {
		return domain.Election{}, err
	}

	emit(ctx, uc.signal, domain.EventElectionCreated, created.ID, "")

	return created, nil
}

// Get reads an election and lazily refreshes its time-derived status.
// A changed status is persisted immediately so reads reflect time-based
// transitions without a background sweep; the persist is best-effort
// and the fresh status is returned either way.
func (uc *ElectionUsecase) Get(ctx context.Context, id string) (domain.Election, error) {
	election, err := uc.elections.Get(ctx, id)
	if err != nil {
		return domain.Election{}, err
	}
	return uc.refreshStatus(ctx, election), nil
}

// Detail composes the read-side view of one election: candidacies with
// their residents resolved, turnout, and the tally result if any.
func (uc *ElectionUsecase) Detail(ctx context.Context, id string) (domain.ElectionDetail, error) {
	election, err := uc.Get(ctx, id)
	if err != nil {
		return domain.ElectionDetail{}, err
	}

	detail := domain.ElectionDetail{
		ElectionView: uc.electionView(ctx, election),
		Nominations:  []domain.NominationView{},
	}

	nominations, err := uc.nominations.List(ctx, NominationFilter{ElectionID: id})
	if err != nil {
		return domain.ElectionDetail{}, err
	}
	for _, n := range nominations {
		view := domain.NominationView{Nomination: n}
		if resident, err := uc.directory.GetResident(ctx, n.ResidentID); err == nil {
			view.Resident = &resident
		}
		detail.Nominations = append(detail.Nominations, view)
	}

	count, err := uc.votes.CountByElection(ctx, id)
	if err != nil {
		return domain.ElectionDetail{}, err
	}
	detail.VotesCount = int(count)

	winner, err := uc.winners.GetByElection(ctx, id)
	if err == nil {
		detail.Winner = &winner
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.ElectionDetail{}, err
	}

	return detail, nil
}

func (uc *ElectionUsecase) List(ctx context.Context, buildingID string) ([]domain.ElectionView, error) {
	elections, err := uc.elections.List(ctx, buildingID)
	if err != nil {
		return nil, err
	}

	views := make([]domain.ElectionView, 0, len(elections))
	for _, e := range elections {
		views = append(views, uc.electionView(ctx, uc.refreshStatus(ctx, e)))
	}
	return views, nil
}

// Delete removes an election and cascades to its nominations, votes
// and winner in one transaction.
func (uc *ElectionUsecase) Delete(ctx context.Context, id string) error {
	if _, err := uc.elections.Get(ctx, id); err != nil {
		return err
	}
	if err := uc.elections.DeleteCascade(ctx, id); err != nil {
		return err
	}

	emit(ctx, uc.signal, domain.EventElectionDeleted, id, "")

	return nil
}

func (uc *ElectionUsecase) refreshStatus(ctx context.Context, election domain.Election) domain.Election {
	derived := domain.DeriveStatus(election, time.Now())
	if derived == election.Status {
		return election
	}

	if err := uc.elections.UpdateStatus(ctx, election.ID, derived); err != nil {
		slog.WarnContext(ctx, "failed to persist derived election status",
			slog.String("electionId", election.ID),
			slog.String("status", string(derived)),
			slog.String("error", err.Error()),
		)
	}

	election.Status = derived
	return election
}

func (uc *ElectionUsecase) electionView(ctx context.Context, election domain.Election) domain.ElectionView {
	view := domain.ElectionView{Election: election}
	if building, err := uc.directory.GetBuilding(ctx, election.BuildingID); err == nil {
		view.BuildingNumber = building.Number
	}
	return view
}
