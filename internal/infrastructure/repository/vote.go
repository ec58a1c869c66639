package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ahmedfares-dev/darmasr/internal/domain"
	"github.com/Ahmedfares-dev/darmasr/internal/infrastructure/database/models"
)

type VoteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) *VoteRepository {
	return &VoteRepository{db: db}
}

// Create inserts a ballot. The (election_id, resident_id) unique index
// arbitrates concurrent casts: the losing insert comes back as
// gorm.ErrDuplicatedKey and is surfaced as AlreadyVoted, never as a
// generic storage error.
func (r *VoteRepository) Create(ctx context.Context, v domain.Vote) (domain.Vote, error) {
	record := models.Vote{
		ID:           uuid.NewString(),
		ElectionID:   v.ElectionID,
		ResidentID:   v.ResidentID,
		NominationID: v.NominationID,
		CastAt:       v.CastAt,
	}

	err := r.db.WithContext(ctx).Create(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Vote{}, domain.AlreadyVotedError{}
		}
		return domain.Vote{}, err
	}

	return voteToDomain(record), nil
}

func (r *VoteRepository) Get(ctx context.Context, id string) (domain.Vote, error) {
	var record models.Vote
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Vote{}, domain.NotFoundError{Resource: "vote"}
		}
		return domain.Vote{}, err
	}
	return voteToDomain(record), nil
}

func (r *VoteRepository) HasVoted(ctx context.Context, electionID, residentID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Vote{}).
		Where("election_id = ? AND resident_id = ?", electionID, residentID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *VoteRepository) ListByElection(ctx context.Context, electionID string) ([]domain.Vote, error) {
	var records []models.Vote
	err := r.db.WithContext(ctx).
		Where("election_id = ?", electionID).
		Order("cast_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	votes := make([]domain.Vote, 0, len(records))
	for _, record := range records {
		votes = append(votes, voteToDomain(record))
	}
	return votes, nil
}

func (r *VoteRepository) CountByElection(ctx context.Context, electionID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Vote{}).
		Where("election_id = ?", electionID).
		Count(&count).Error
	return count, err
}

func (r *VoteRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Vote{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "vote"}
	}
	return nil
}

func voteToDomain(record models.Vote) domain.Vote {
	return domain.Vote{
		ID:           record.ID,
		ElectionID:   record.ElectionID,
		ResidentID:   record.ResidentID,
		NominationID: record.NominationID,
		CastAt:       record.CastAt,
	}
}
