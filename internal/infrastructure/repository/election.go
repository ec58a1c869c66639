package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ahmedfares-dev/darmasr/internal/domain"
	"github.com/Ahmedfares-dev/darmasr/internal/infrastructure/database/models"
)

type ElectionRepository struct {
	db *gorm.DB
}

func NewElectionRepository(db *gorm.DB) *ElectionRepository {
	return &ElectionRepository{db: db}
}

func (r *ElectionRepository) Create(ctx context.Context, e domain.Election) (domain.Election, error) {
	record := models.Election{
		ID:         uuid.NewString(),
		BuildingID: e.BuildingID,
		Number:     e.Number,
		StartDate:  e.StartDate,
		EndDate:    e.EndDate,
		Status:     string(e.Status),
	}

	err := r.db.WithContext(ctx).Create(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Election{}, domain.DuplicateError{Resource: "election number for this building"}
		}
		return domain.Election{}, err
	}

	return electionToDomain(record), nil
}

func (r *ElectionRepository) Get(ctx context.Context, id string) (domain.Election, error) {
	var record models.Election
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Election{}, domain.NotFoundError{Resource: "election"}
		}
		return domain.Election{}, err
	}
	return electionToDomain(record), nil
}

func (r *ElectionRepository) List(ctx context.Context, buildingID string) ([]domain.Election, error) {
	query := r.db.WithContext(ctx).Order("c_date DESC")
	if buildingID != "" {
		query = query.Where("building_id = ?", buildingID)
	}

	var records []models.Election
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}

	elections := make([]domain.Election, 0, len(records))
	for _, record := range records {
		elections = append(elections, electionToDomain(record))
	}
	return elections, nil
}

func (r *ElectionRepository) UpdateStatus(ctx context.Context, id string, status domain.ElectionStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.Election{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "election"}
	}
	return nil
}

// DeleteCascade removes the election and everything it owns in a
// single transaction so a failed step never leaves a partial delete.
func (r *ElectionRepository) DeleteCascade(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Vote{}, "election_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Winner{}, "election_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Nomination{}, "election_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Election{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.NotFoundError{Resource: "election"}
		}
		return nil
	})
}

func electionToDomain(record models.Election) domain.Election {
	return domain.Election{
		ID:         record.ID,
		BuildingID: record.BuildingID,
		Number:     record.Number,
		StartDate:  record.StartDate,
		EndDate:    record.EndDate,
		Status:     domain.ElectionStatus(record.Status),
		CreatedAt:  record.CDate,
	}
}
