package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Ahmedfares-dev/darmasr/internal/domain"
	"github.com/Ahmedfares-dev/darmasr/internal/infrastructure/database/models"
	"github.com/Ahmedfares-dev/darmasr/internal/usecase"
)

type WinnerRepository struct {
	db *gorm.DB
}

func NewWinnerRepository(db *gorm.DB) *WinnerRepository {
	return &WinnerRepository{db: db}
}

// Upsert writes the election's single winner record, overwriting the
// nomination, count and status of a previous tally if one exists.
func (r *WinnerRepository) Upsert(ctx context.Context, w domain.Winner) (domain.Winner, error) {
	record := models.Winner{
		ID:           uuid.NewString(),
		ElectionID:   w.ElectionID,
		NominationID: w.NominationID,
		VoteCount:    w.VoteCount,
		Status:       string(w.Status),
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "election_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"nomination_id": record.NominationID,
			"vote_count":    record.VoteCount,
			"status":        record.Status,
			"confirmed_by":  nil,
			"confirmed_at":  nil,
		}),
	}).Create(&record).Error
	if err != nil {
		return domain.Winner{}, err
	}

	// The conflict path keeps the original row id; read it back so the
	// caller always sees the persisted record.
	return r.GetByElection(ctx, w.ElectionID)
}

func (r *WinnerRepository) Get(ctx context.Context, id string) (domain.Winner, error) {
	var record models.Winner
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Winner{}, domain.NotFoundError{Resource: "winner"}
		}
		return domain.Winner{}, err
	}
	return winnerToDomain(record), nil
}

func (r *WinnerRepository) GetByElection(ctx context.Context, electionID string) (domain.Winner, error) {
	var record models.Winner
	err := r.db.WithContext(ctx).
		Where("election_id = ?", electionID).
		Take(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Winner{}, domain.NotFoundError{Resource: "winner"}
		}
		return domain.Winner{}, err
	}
	return winnerToDomain(record), nil
}

func (r *WinnerRepository) List(ctx context.Context, filter usecase.WinnerFilter) ([]domain.Winner, error) {
	query := r.db.WithContext(ctx).Model(&models.Winner{}).Order("winners.c_date DESC")
	if filter.Status != "" {
		query = query.Where("winners.status = ?", string(filter.Status))
	}
	if filter.BuildingID != "" {
		query = query.
			Joins("JOIN elections ON elections.id = winners.election_id").
			Where("elections.building_id = ?", filter.BuildingID)
	}

	var records []models.Winner
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}

	winners := make([]domain.Winner, 0, len(records))
	for _, record := range records {
		winners = append(winners, winnerToDomain(record))
	}
	return winners, nil
}

func (r *WinnerRepository) Update(ctx context.Context, w domain.Winner) error {
	result := r.db.WithContext(ctx).
		Model(&models.Winner{}).
		Where("id = ?", w.ID).
		Updates(map[string]any{
			"status":       string(w.Status),
			"confirmed_by": w.ConfirmedBy,
			"confirmed_at": w.ConfirmedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "winner"}
	}
	return nil
}

func winnerToDomain(record models.Winner) domain.Winner {
	return domain.Winner{
		ID:           record.ID,
		ElectionID:   record.ElectionID,
		NominationID: record.NominationID,
		VoteCount:    record.VoteCount,
		Status:       domain.WinnerStatus(record.Status),
		ConfirmedBy:  record.ConfirmedBy,
		ConfirmedAt:  record.ConfirmedAt,
		CreatedAt:    record.CDate,
	}
}
