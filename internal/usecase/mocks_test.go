package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Ahmedfares-dev/darmasr/internal/domain"
)

// memStore is a shared in-memory backing store for the mock
// repositories. It mirrors the storage-layer contracts the real
// repositories provide, including the unique-index translations.
type memStore struct {
	mu          sync.Mutex
	seq         int
	elections   map[string]domain.Election
	nominations map[string]domain.Nomination
	votes       map[string]domain.Vote
	winners     map[string]domain.Winner
	buildings   map[string]domain.Building
	residents   map[string]domain.Resident
}

func newMemStore() *memStore {
	s := &memStore{
		elections:   map[string]domain.Election{},
		nominations: map[string]domain.Nomination{},
		votes:       map[string]domain.Vote{},
		winners:     map[string]domain.Winner{},
		buildings:   map[string]domain.Building{},
		residents:   map[string]domain.Resident{},
	}

	s.buildings["b1"] = domain.Building{ID: "b1", Number: "1", Status: domain.BuildingActive}
	s.buildings["b2"] = domain.Building{ID: "b2", Number: "2", Status: domain.BuildingActive}
	s.residents["r1"] = domain.Resident{ID: "r1", BuildingID: "b1", FullName: "Ahmed Saleh", Unit: "101", OwnerType: domain.OwnerTypeOwner, IsActive: true}
	s.residents["r2"] = domain.Resident{ID: "r2", BuildingID: "b1", FullName: "Mona Adel", Unit: "102", OwnerType: domain.OwnerTypeRental, IsActive: true}
	s.residents["r3"] = domain.Resident{ID: "r3", BuildingID: "b2", FullName: "Omar Khalil", Unit: "201", OwnerType: domain.OwnerTypeOwner, IsActive: true}

	return s
}

func (s *memStore) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s%03d", prefix, s.seq)
}

// --- elections ---

type mockElectionRepo struct {
	s *memStore
}

func (r *mockElectionRepo) Create(ctx context.Context, e domain.Election) (domain.Election, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.elections {
		if existing.BuildingID == e.BuildingID && existing.Number == e.Number {
			return domain.Election{}, domain.DuplicateError{Resource: "election number for this building"}
		}
	}

	e.ID = r.s.nextID("e")
	e.CreatedAt = time.Now()
	r.s.elections[e.ID] = e
	return e, nil
}

func (r *mockElectionRepo) Get(ctx context.Context, id string) (domain.Election, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.elections[id]
	if !ok {
		return domain.Election{}, domain.NotFoundError{Resource: "election"}
	}
	return e, nil
}

func (r *mockElectionRepo) List(ctx context.Context, buildingID string) ([]domain.Election, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []domain.Election
	for _, e := range r.s.elections {
		if buildingID != "" && e.BuildingID != buildingID {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *mockElectionRepo) UpdateStatus(ctx context.Context, id string, status domain.ElectionStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.elections[id]
	if !ok {
		return domain.NotFoundError{Resource: "election"}
	}
	e.Status = status
	r.s.elections[id] = e
	return nil
}

func (r *mockElectionRepo) DeleteCascade(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.elections[id]; !ok {
		return domain.NotFoundError{Resource: "election"}
	}
	for vid, v := range r.s.votes {
		if v.ElectionID == id {
			delete(r.s.votes, vid)
		}
	}
	for wid, w := range r.s.winners {
		if w.ElectionID == id {
			delete(r.s.winners, wid)
		}
	}
	for nid, n := range r.s.nominations {
		if n.ElectionID == id {
			delete(r.s.nominations, nid)
		}
	}
	delete(r.s.elections, id)
	return nil
}

// --- nominations ---

type mockNominationRepo struct {
	s *memStore
}

func (r *mockNominationRepo) Create(ctx context.Context, n domain.Nomination) (domain.Nomination, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.nominations {
		if existing.ElectionID == n.ElectionID && existing.ResidentID == n.ResidentID {
			return domain.Nomination{}, domain.DuplicateError{Resource: "nomination for this election"}
		}
	}

	n.ID = r.s.nextID("n")
	r.s.nominations[n.ID] = n
	return n, nil
}

func (r *mockNominationRepo) Get(ctx context.Context, id string) (domain.Nomination, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	n, ok := r.s.nominations[id]
	if !ok {
		return domain.Nomination{}, domain.NotFoundError{Resource: "nomination"}
	}
	return n, nil
}

func (r *mockNominationRepo) List(ctx context.Context, filter NominationFilter) ([]domain.Nomination, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []domain.Nomination
	for _, n := range r.s.nominations {
		if filter.ElectionID != "" && n.ElectionID != filter.ElectionID {
			continue
		}
		if filter.Status != "" && n.Status != filter.Status {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.Before(out[j].SubmittedAt) })
	return out, nil
}

func (r *mockNominationRepo) UpdateStatus(ctx context.Context, id string, status domain.NominationStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	n, ok := r.s.nominations[id]
	if !ok {
		return domain.NotFoundError{Resource: "nomination"}
	}
	n.Status = status
	r.s.nominations[id] = n
	return nil
}

func (r *mockNominationRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.nominations[id]; !ok {
		return domain.NotFoundError{Resource: "nomination"}
	}
	delete(r.s.nominations, id)
	return nil
}

// --- votes ---

// mockVoteRepo honors the storage contract: Create reports the
// (election, resident) uniqueness violation as AlreadyVotedError.
// With blindPrecheck set, HasVoted always reports false, simulating
// two racing casts that both pass the advisory pre-check.
type mockVoteRepo struct {
	s             *memStore
	blindPrecheck bool
}

func (r *mockVoteRepo) Create(ctx context.Context, v domain.Vote) (domain.Vote, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.votes {
		if existing.ElectionID == v.ElectionID && existing.ResidentID == v.ResidentID {
			return domain.Vote{}, domain.AlreadyVotedError{}
		}
	}

	v.ID = r.s.nextID("v")
	r.s.votes[v.ID] = v
	return v, nil
}

func (r *mockVoteRepo) Get(ctx context.Context, id string) (domain.Vote, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	v, ok := r.s.votes[id]
	if !ok {
		return domain.Vote{}, domain.NotFoundError{Resource: "vote"}
	}
	return v, nil
}

func (r *mockVoteRepo) HasVoted(ctx context.Context, electionID, residentID string) (bool, error) {
	if r.blindPrecheck {
		return false, nil
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, v := range r.s.votes {
		if v.ElectionID == electionID && v.ResidentID == residentID {
			return true, nil
		}
	}
	return false, nil
}

func (r *mockVoteRepo) ListByElection(ctx context.Context, electionID string) ([]domain.Vote, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []domain.Vote
	for _, v := range r.s.votes {
		if v.ElectionID == electionID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CastAt.Before(out[j].CastAt) })
	return out, nil
}

func (r *mockVoteRepo) CountByElection(ctx context.Context, electionID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var count int64
	for _, v := range r.s.votes {
		if v.ElectionID == electionID {
			count++
		}
	}
	return count, nil
}

func (r *mockVoteRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.votes[id]; !ok {
		return domain.NotFoundError{Resource: "vote"}
	}
	delete(r.s.votes, id)
	return nil
}

// --- winners ---

type mockWinnerRepo struct {
	s *memStore
}

func (r *mockWinnerRepo) Upsert(ctx context.Context, w domain.Winner) (domain.Winner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, existing := range r.s.winners {
		if existing.ElectionID == w.ElectionID {
			w.ID = id
			w.CreatedAt = existing.CreatedAt
			w.ConfirmedBy = nil
			w.ConfirmedAt = nil
			r.s.winners[id] = w
			return w, nil
		}
	}

	w.ID = r.s.nextID("w")
	w.CreatedAt = time.Now()
	r.s.winners[w.ID] = w
	return w, nil
}

func (r *mockWinnerRepo) Get(ctx context.Context, id string) (domain.Winner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	w, ok := r.s.winners[id]
	if !ok {
		return domain.Winner{}, domain.NotFoundError{Resource: "winner"}
	}
	return w, nil
}

func (r *mockWinnerRepo) GetByElection(ctx context.Context, electionID string) (domain.Winner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, w := range r.s.winners {
		if w.ElectionID == electionID {
			return w, nil
		}
	}
	return domain.Winner{}, domain.NotFoundError{Resource: "winner"}
}

func (r *mockWinnerRepo) List(ctx context.Context, filter WinnerFilter) ([]domain.Winner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []domain.Winner
	for _, w := range r.s.winners {
		if filter.Status != "" && w.Status != filter.Status {
			continue
		}
		if filter.BuildingID != "" {
			e, ok := r.s.elections[w.ElectionID]
			if !ok || e.BuildingID != filter.BuildingID {
				continue
			}
		}
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *mockWinnerRepo) Update(ctx context.Context, w domain.Winner) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.winners[w.ID]; !ok {
		return domain.NotFoundError{Resource: "winner"}
	}
	r.s.winners[w.ID] = w
	return nil
}

// --- directory ---

type mockDirectoryRepo struct {
	s *memStore
}

func (r *mockDirectoryRepo) GetBuilding(ctx context.Context, id string) (domain.Building, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.buildings[id]
	if !ok {
		return domain.Building{}, domain.NotFoundError{Resource: "building"}
	}
	return b, nil
}

func (r *mockDirectoryRepo) ListBuildings(ctx context.Context) ([]domain.BuildingSummary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []domain.BuildingSummary
	for _, b := range r.s.buildings {
		summary := domain.BuildingSummary{Building: b}
		for _, res := range r.s.residents {
			if res.BuildingID == b.ID {
				summary.ResidentCount++
			}
		}
		out = append(out, summary)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (r *mockDirectoryRepo) CountBuildings(ctx context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.buildings)), nil
}

func (r *mockDirectoryRepo) SeedBuildings(ctx context.Context, count int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := 1; i <= count; i++ {
		id := r.s.nextID("b")
		r.s.buildings[id] = domain.Building{ID: id, Number: fmt.Sprintf("%d", i), Status: domain.BuildingActive}
	}
	return nil
}

func (r *mockDirectoryRepo) GetResident(ctx context.Context, id string) (domain.Resident, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	res, ok := r.s.residents[id]
	if !ok {
		return domain.Resident{}, domain.NotFoundError{Resource: "resident"}
	}
	return res, nil
}

func (r *mockDirectoryRepo) ListResidents(ctx context.Context, buildingID string) ([]domain.Resident, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []domain.Resident
	for _, res := range r.s.residents {
		if buildingID != "" && res.BuildingID != buildingID {
			continue
		}
		out = append(out, res)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// --- signal & cache ---

type mockSignal struct {
	mu     sync.Mutex
	events []domain.Event
	err    error
}

func (m *mockSignal) Publish(ctx context.Context, event domain.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, event)
	return nil
}

func (m *mockSignal) last() (domain.Event, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.events) == 0 {
		return domain.Event{}, false
	}
	return m.events[len(m.events)-1], true
}

type mockCountCache struct {
	mu          sync.Mutex
	entries     map[string]domain.VoteCounts
	invalidated []string
}

func newMockCountCache() *mockCountCache {
	return &mockCountCache{entries: map[string]domain.VoteCounts{}}
}

func (m *mockCountCache) Get(electionID string) (domain.VoteCounts, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	counts, ok := m.entries[electionID]
	return counts, ok
}

func (m *mockCountCache) Set(electionID string, counts domain.VoteCounts) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[electionID] = counts
}

func (m *mockCountCache) Invalidate(electionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, electionID)
	m.invalidated = append(m.invalidated, electionID)
}

// --- seeding helpers ---

func seedElection(s *memStore, buildingID string, number int, start, end time.Time, status domain.ElectionStatus) domain.Election {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := domain.Election{
		ID:         s.nextID("e"),
		BuildingID: buildingID,
		Number:     number,
		StartDate:  start,
		EndDate:    end,
		Status:     status,
		CreatedAt:  time.Now(),
	}
	s.elections[e.ID] = e
	return e
}

func seedNomination(s *memStore, electionID, residentID string, status domain.NominationStatus, submittedAt time.Time) domain.Nomination {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := domain.Nomination{
		ID:          s.nextID("n"),
		ElectionID:  electionID,
		ResidentID:  residentID,
		Statement:   "statement",
		Status:      status,
		SubmittedAt: submittedAt,
	}
	s.nominations[n.ID] = n
	return n
}

func seedVote(s *memStore, electionID, residentID, nominationID string, castAt time.Time) domain.Vote {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := domain.Vote{
		ID:           s.nextID("v"),
		ElectionID:   electionID,
		ResidentID:   residentID,
		NominationID: nominationID,
		CastAt:       castAt,
	}
	s.votes[v.ID] = v
	return v
}
