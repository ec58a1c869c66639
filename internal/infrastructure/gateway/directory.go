package gateway

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/Ahmedfares-dev/darmasr/internal/domain"
	"github.com/Ahmedfares-dev/darmasr/internal/usecase"
)

// DirectoryGateway wraps the directory repository with a short-lived
// in-process cache. Vote and nomination validation hit the same
// building/resident rows over and over; the directory changes rarely,
// so stale reads within the TTL are acceptable.
type DirectoryGateway struct {
	repo  usecase.DirectoryRepository
	cache *cache.Cache
}

func NewDirectoryGateway(repo usecase.DirectoryRepository) *DirectoryGateway {
	return &DirectoryGateway{
		repo:  repo,
		cache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

func (g *DirectoryGateway) GetBuilding(ctx context.Context, id string) (domain.Building, error) {
	key := "building:" + id
	if cached, found := g.cache.Get(key); found {
		return cached.(domain.Building), nil
	}

	building, err := g.repo.GetBuilding(ctx, id)
	if err != nil {
		return domain.Building{}, err
	}
	g.cache.Set(key, building, cache.DefaultExpiration)
	return building, nil
}

func (g *DirectoryGateway) GetResident(ctx context.Context, id string) (domain.Resident, error) {
	key := "resident:" + id
	if cached, found := g.cache.Get(key); found {
		return cached.(domain.Resident), nil
	}

	resident, err := g.repo.GetResident(ctx, id)
	if err != nil {
		return domain.Resident{}, err
	}
	g.cache.Set(key, resident, cache.DefaultExpiration)
	return resident, nil
}

// Listings and the seed bypass the cache; they are rare and want fresh
// data.

func (g *DirectoryGateway) ListBuildings(ctx context.Context) ([]domain.BuildingSummary, error) {
	return g.repo.ListBuildings(ctx)
}

func (g *DirectoryGateway) CountBuildings(ctx context.Context) (int64, error) {
	return g.repo.CountBuildings(ctx)
}

func (g *DirectoryGateway) SeedBuildings(ctx context.Context, count int) error {
	return g.repo.SeedBuildings(ctx, count)
}

func (g *DirectoryGateway) ListResidents(ctx context.Context, buildingID string) ([]domain.Resident, error) {
	return g.repo.ListResidents(ctx, buildingID)
}
