package service

import (
	"encoding/json"
	"log/slog"

	"github.com/bradfitz/gomemcache/memcache"

	"github.com/Ahmedfares-dev/darmasr/internal/domain"
)

// voteCountTTL keeps polled counts cheap without hiding new ballots
// for long.
const voteCountTTL = 5 // seconds

// VoteCountCache caches per-election vote counts in memcached. Misses
// and memcached outages degrade to database reads, never to errors.
type VoteCountCache struct {
	mc *memcache.Client
}

func NewVoteCountCache(mc *memcache.Client) *VoteCountCache {
	return &VoteCountCache{mc: mc}
}

func (c *VoteCountCache) key(electionID string) string {
	return "darmasr:votecount:" + electionID
}

func (c *VoteCountCache) Get(electionID string) (domain.VoteCounts, bool) {
	item, err := c.mc.Get(c.key(electionID))
	if err != nil {
		return domain.VoteCounts{}, false
	}

	var counts domain.VoteCounts
	if err := json.Unmarshal(item.Value, &counts); err != nil {
		return domain.VoteCounts{}, false
	}
	return counts, true
}

func (c *VoteCountCache) Set(electionID string, counts domain.VoteCounts) {
	value, err := json.Marshal(counts)
	if err != nil {
		return
	}

	err = c.mc.Set(&memcache.Item{
		Key:        c.key(electionID),
		Value:      value,
		Expiration: voteCountTTL,
	})
	if err != nil {
		slog.Debug("vote count cache set failed",
			slog.String("electionId", electionID),
			slog.String("error", err.Error()),
		)
	}
}

func (c *VoteCountCache) Invalidate(electionID string) {
	err := c.mc.Delete(c.key(electionID))
	if err != nil && err != memcache.ErrCacheMiss {
		slog.Debug("vote count cache invalidate failed",
			slog.String("electionId", electionID),
			slog.String("error", err.Error()),
		)
	}
}
