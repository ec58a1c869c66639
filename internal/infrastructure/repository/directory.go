package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ahmedfares-dev/darmasr/internal/domain"
	"github.com/Ahmedfares-dev/darmasr/internal/infrastructure/database/models"
)

// DirectoryRepository reads the building/resident directory. The
// election core never writes residents; buildings are only written by
// the one-shot seed.
type DirectoryRepository struct {
	db *gorm.DB
}

func NewDirectoryRepository(db *gorm.DB) *DirectoryRepository {
	return &DirectoryRepository{db: db}
}

func (r *DirectoryRepository) GetBuilding(ctx context.Context, id string) (domain.Building, error) {
	var record models.Building
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Building{}, domain.NotFoundError{Resource: "building"}
		}
		return domain.Building{}, err
	}
	return buildingToDomain(record), nil
}

func (r *DirectoryRepository) ListBuildings(ctx context.Context) ([]domain.BuildingSummary, error) {
	var records []models.Building
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}

	summaries := make([]domain.BuildingSummary, 0, len(records))
	for _, record := range records {
		var count int64
		err := r.db.WithContext(ctx).
			Model(&models.Resident{}).
			Where("building_id = ?", record.ID).
			Count(&count).Error
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, domain.BuildingSummary{
			Building:      buildingToDomain(record),
			ResidentCount: int(count),
		})
	}

	// Building numbers are stored as text; sort numerically for display.
	sortBuildingSummaries(summaries)

	return summaries, nil
}

func (r *DirectoryRepository) CountBuildings(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Building{}).Count(&count).Error
	return count, err
}

func (r *DirectoryRepository) SeedBuildings(ctx context.Context, count int) error {
	records := make([]models.Building, 0, count)
	for i := 1; i <= count; i++ {
		records = append(records, models.Building{
			ID:     uuid.NewString(),
			Number: strconv.Itoa(i),
			Status: string(domain.BuildingActive),
		})
	}
	return r.db.WithContext(ctx).Create(&records).Error
}

func (r *DirectoryRepository) GetResident(ctx context.Context, id string) (domain.Resident, error) {
	var record models.Resident
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Resident{}, domain.NotFoundError{Resource: "resident"}
		}
		return domain.Resident{}, err
	}
	return residentToDomain(record), nil
}

func (r *DirectoryRepository) ListResidents(ctx context.Context, buildingID string) ([]domain.Resident, error) {
	query := r.db.WithContext(ctx).Order("full_name ASC")
	if buildingID != "" {
		query = query.Where("building_id = ?", buildingID)
	}

	var records []models.Resident
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}

	residents := make([]domain.Resident, 0, len(records))
	for _, record := range records {
		residents = append(residents, residentToDomain(record))
	}
	return residents, nil
}

func sortBuildingSummaries(summaries []domain.BuildingSummary) {
	sort.Slice(summaries, func(i, j int) bool {
		ni, _ := strconv.Atoi(summaries[i].Number)
		nj, _ := strconv.Atoi(summaries[j].Number)
		return ni < nj
	})
}

func buildingToDomain(record models.Building) domain.Building {
	return domain.Building{
		ID:     record.ID,
		Number: record.Number,
		Status: domain.BuildingStatus(record.Status),
	}
}

func residentToDomain(record models.Resident) domain.Resident {
	return domain.Resident{
		ID:         record.ID,
		BuildingID: record.BuildingID,
		FullName:   record.FullName,
		Unit:       record.Unit,
		OwnerType:  domain.OwnerType(record.OwnerType),
		IsActive:   record.IsActive,
	}
}
