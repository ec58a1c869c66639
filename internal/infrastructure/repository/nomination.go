package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ahmedfares-dev/darmasr/internal/domain"
	"github.com/Ahmedfares-dev/darmasr/internal/infrastructure/database/models"
	"github.com/Ahmedfares-dev/darmasr/internal/usecase"
)

type NominationRepository struct {
	db *gorm.DB
}

func NewNominationRepository(db *gorm.DB) *NominationRepository {
	return &NominationRepository{db: db}
}

func (r *NominationRepository) Create(ctx context.Context, n domain.Nomination) (domain.Nomination, error) {
	record := models.Nomination{
		ID:             uuid.NewString(),
		ElectionID:     n.ElectionID,
		ResidentID:     n.ResidentID,
		Statement:      n.Statement,
		Qualifications: n.Qualifications,
		Goals:          n.Goals,
		Status:         string(n.Status),
		SubmittedAt:    n.SubmittedAt,
	}

	err := r.db.WithContext(ctx).Create(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Nomination{}, domain.DuplicateError{Resource: "nomination for this resident in this election"}
		}
		return domain.Nomination{}, err
	}

	return nominationToDomain(record), nil
}

func (r *NominationRepository) Get(ctx context.Context, id string) (domain.Nomination, error) {
	var record models.Nomination
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Nomination{}, domain.NotFoundError{Resource: "nomination"}
		}
		return domain.Nomination{}, err
	}
	return nominationToDomain(record), nil
}

func (r *NominationRepository) List(ctx context.Context, filter usecase.NominationFilter) ([]domain.Nomination, error) {
	query := r.db.WithContext(ctx).Order("submitted_at ASC")
	if filter.ElectionID != "" {
		query = query.Where("election_id = ?", filter.ElectionID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	var records []models.Nomination
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}

	nominations := make([]domain.Nomination, 0, len(records))
	for _, record := range records {
		nominations = append(nominations, nominationToDomain(record))
	}
	return nominations, nil
}

func (r *NominationRepository) UpdateStatus(ctx context.Context, id string, status domain.NominationStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.Nomination{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "nomination"}
	}
	return nil
}

func (r *NominationRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Nomination{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "nomination"}
	}
	return nil
}

func nominationToDomain(record models.Nomination) domain.Nomination {
	return domain.Nomination{
		ID:             record.ID,
		ElectionID:     record.ElectionID,
		ResidentID:     record.ResidentID,
		Statement:      record.Statement,
		Qualifications: record.Qualifications,
		Goals:          record.Goals,
		Status:         domain.NominationStatus(record.Status),
		SubmittedAt:    record.SubmittedAt,
	}
}
