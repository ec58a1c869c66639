package gateway

import (
	"context"
	"testing"

	"github.com/Ahmedfares-dev/darmasr/internal/domain"
)

type countingDirectory struct {
	buildingCalls int
	residentCalls int
}

func (d *countingDirectory) GetBuilding(ctx context.Context, id string) (domain.Building, error) {
	d.buildingCalls++
	if id != "b1" {
		return domain.Building{}, domain.NotFoundError{Resource: "building"}
	}
	return domain.Building{ID: "b1", Number: "1", Status: domain.BuildingActive}, nil
}

func (d *countingDirectory) GetResident(ctx context.Context, id string) (domain.Resident, error) {
	d.residentCalls++
	if id != "r1" {
		return domain.Resident{}, domain.NotFoundError{Resource: "resident"}
	}
	return domain.Resident{ID: "r1", BuildingID: "b1", FullName: "Ahmed Saleh"}, nil
}

func (d *countingDirectory) ListBuildings(ctx context.Context) ([]domain.BuildingSummary, error) {
	return nil, nil
}

func (d *countingDirectory) CountBuildings(ctx context.Context) (int64, error) {
	return 0, nil
}

func (d *countingDirectory) SeedBuildings(ctx context.Context, count int) error {
	return nil
}

func (d *countingDirectory) ListResidents(ctx context.Context, buildingID string) ([]domain.Resident, error) {
	return nil, nil
}

func TestDirectoryGatewayCachesBuildings(t *testing.T) {
	repo := &countingDirectory{}
	g := NewDirectoryGateway(repo)

	for i := 0; i < 3; i++ {
		building, err := g.GetBuilding(context.Background(), "b1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if building.Number != "1" {
			t.Fatalf("unexpected building: %+v", building)
		}
	}

	if repo.buildingCalls != 1 {
		t.Fatalf("expected one repository hit, got %d", repo.buildingCalls)
	}
}

func TestDirectoryGatewayCachesResidents(t *testing.T) {
	repo := &countingDirectory{}
	g := NewDirectoryGateway(repo)

	for i := 0; i < 3; i++ {
		if _, err := g.GetResident(context.Background(), "r1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if repo.residentCalls != 1 {
		t.Fatalf("expected one repository hit, got %d", repo.residentCalls)
	}
}

func TestDirectoryGatewayDoesNotCacheMisses(t *testing.T) {
	repo := &countingDirectory{}
	g := NewDirectoryGateway(repo)

	for i := 0; i < 2; i++ {
		if _, err := g.GetBuilding(context.Background(), "missing"); err == nil {
			t.Fatalf("expected error for unknown building")
		}
	}

	if repo.buildingCalls != 2 {
		t.Fatalf("expected misses to reach the repository, got %d calls", repo.buildingCalls)
	}
}
