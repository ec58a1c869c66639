package usecase

import (
	"context"
	"time"

	"github.com/Ahmedfares-dev/darmasr/internal/domain"
)

// SubmitNominationInput is the validated input for a candidacy.
type SubmitNominationInput struct {
	ElectionID     string `json:"electionId"`
	ResidentID     string `json:"residentId"`
	Statement      string `json:"statement"`
	Qualifications string `json:"qualifications"`
	Goals          string `json:"goals"`
}

type NominationUsecase struct {
	nominations NominationRepository
	elections   ElectionRepository
	directory   DirectoryRepository
	signal      EventPublisher
}

func NewNominationUsecase(
	nominations NominationRepository,
	elections ElectionRepository,
	directory DirectoryRepository,
	signal EventPublisher,
) *NominationUsecase {
	return &NominationUsecase{
		nominations: nominations,
		elections:   elections,
		directory:   directory,
		signal:      signal,
	}
}

// Submit registers a pending candidacy. Nominations close exactly at
// the election's end, independent of when voting starts, so residents
// may nominate themselves before the voting window opens.
func (uc *NominationUsecase) Submit(ctx context.Context, input SubmitNominationInput) (domain.Nomination, error) {
	if input.Statement == "" {
		return domain.Nomination{}, domain.InvalidStateError{Detail: "statement is required"}
	}

	election, err := uc.elections.Get(ctx, input.ElectionID)
	if err != nil {
		return domain.Nomination{}, err
	}

	resident, err := uc.directory.GetResident(ctx, input.ResidentID)
	if err != nil {
		return domain.Nomination{}, err
	}

	if resident.BuildingID != election.BuildingID {
		return domain.Nomination{}, domain.DomainMismatchError{Detail: "resident does not belong to this building"}
	}

	if !time.Now().Before(election.EndDate) {
		return domain.Nomination{}, domain.PeriodClosedError{Detail: "nomination period has closed, the election has ended"}
	}

	nomination := domain.Nomination{
		ElectionID:     input.ElectionID,
		ResidentID:     input.ResidentID,
		Statement:      input.Statement,
		Qualifications: input.Qualifications,
		Goals:          input.Goals,
		Status:         domain.NominationPending,
		SubmittedAt:    time.Now(),
	}

	created, err := uc.nominations.Create(ctx, nomination)
	if err != nil {
		return domain.Nomination{}, err
	}

	emit(ctx, uc.signal, domain.EventNominationSubmit, created.ElectionID, created.ID)

	return created, nil
}

// Approve marks a pending nomination votable. Only pending nominations
// transition; re-deciding an approved or rejected one fails.
func (uc *NominationUsecase) Approve(ctx context.Context, id string) (domain.Nomination, error) {
	return uc.decide(ctx, id, domain.NominationApproved, domain.EventNominationApproved)
}

// Reject declines a pending nomination.
func (uc *NominationUsecase) Reject(ctx context.Context, id string) (domain.Nomination, error) {
	return uc.decide(ctx, id, domain.NominationRejected, domain.EventNominationRejected)
}

func (uc *NominationUsecase) decide(ctx context.Context, id string, status domain.NominationStatus, eventType string) (domain.Nomination, error) {
	nomination, err := uc.nominations.Get(ctx, id)
	if err != nil {
		return domain.Nomination{}, err
	}

	if nomination.Status != domain.NominationPending {
		return domain.Nomination{}, domain.InvalidStateError{Detail: "nomination has already been " + string(nomination.Status)}
	}

	if err := uc.nominations.UpdateStatus(ctx, id, status); err != nil {
		return domain.Nomination{}, err
	}
	nomination.Status = status

	emit(ctx, uc.signal, eventType, nomination.ElectionID, nomination.ID)

	return nomination, nil
}

func (uc *NominationUsecase) Get(ctx context.Context, id string) (domain.NominationView, error) {
	nomination, err := uc.nominations.Get(ctx, id)
	if err != nil {
		return domain.NominationView{}, err
	}
	return uc.view(ctx, nomination), nil
}

func (uc *NominationUsecase) List(ctx context.Context, filter NominationFilter) ([]domain.NominationView, error) {
	nominations, err := uc.nominations.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	views := make([]domain.NominationView, 0, len(nominations))
	for _, n := range nominations {
		views = append(views, uc.view(ctx, n))
	}
	return views, nil
}

// Delete is an administrative correction, not a resident-facing path.
func (uc *NominationUsecase) Delete(ctx context.Context, id string) error {
	if _, err := uc.nominations.Get(ctx, id); err != nil {
		return err
	}
	return uc.nominations.Delete(ctx, id)
}

func (uc *NominationUsecase) view(ctx context.Context, n domain.Nomination) domain.NominationView {
	view := domain.NominationView{Nomination: n}
	if resident, err := uc.directory.GetResident(ctx, n.ResidentID); err == nil {
		view.Resident = &resident
	}
	return view
}
