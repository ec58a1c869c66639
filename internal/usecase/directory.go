package usecase

import (
	"context"

	"github.com/Ahmedfares-dev/darmasr/internal/domain"
)

// DirectoryUsecase is the read-mostly building/resident surface the
// election core leans on. Buildings are seeded in bulk once; residents
// are owned by the registration flow and only read here.
type DirectoryUsecase struct {
	directory DirectoryRepository
}

func NewDirectoryUsecase(directory DirectoryRepository) *DirectoryUsecase {
	return &DirectoryUsecase{directory: directory}
}

func (uc *DirectoryUsecase) GetBuilding(ctx context.Context, id string) (domain.Building, error) {
	return uc.directory.GetBuilding(ctx, id)
}

func (uc *DirectoryUsecase) ListBuildings(ctx context.Context) ([]domain.BuildingSummary, error) {
	return uc.directory.ListBuildings(ctx)
}

// SeedBuildings creates count numbered buildings. Refuses when any
// buildings already exist so the seed stays a one-shot bootstrap.
func (uc *DirectoryUsecase) SeedBuildings(ctx context.Context, count int) error {
	if count <= 0 {
		return domain.InvalidStateError{Detail: "seed count must be positive"}
	}

	existing, err := uc.directory.CountBuildings(ctx)
	if err != nil {
		return err
	}
	if existing > 0 {
		return domain.DuplicateError{Resource: "buildings"}
	}

	return uc.directory.SeedBuildings(ctx, count)
}

func (uc *DirectoryUsecase) GetResident(ctx context.Context, id string) (domain.Resident, error) {
	return uc.directory.GetResident(ctx, id)
}

func (uc *DirectoryUsecase) ListResidents(ctx context.Context, buildingID string) ([]domain.Resident, error) {
	return uc.directory.ListResidents(ctx, buildingID)
}
