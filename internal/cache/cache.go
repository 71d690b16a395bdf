package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/srinivas0721/InterviewBot/pkg/model"
)

const shareTokenTTL = 24 * time.Hour

// NewRedisClient builds the shared redis connection. Callers should Ping it
// and pass nil to New when redis is unreachable.
func NewRedisClient(addr, pass string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: pass,
		DB:       db,
	})
}

func Ping(ctx context.Context, c *redis.Client) error {
	return c.Ping(ctx).Err()
}

// Cache wraps redis with the few typed lookups the API uses. Every method is
// nil-safe and treats redis errors as cache misses, so a dead redis never
// takes a request down with it.
type Cache struct {
	rdb      *redis.Client
	statsTTL time.Duration
}

func New(rdb *redis.Client, statsTTL time.Duration) *Cache {
	return &Cache{rdb: rdb, statsTTL: statsTTL}
}

func statsKey(userID uuid.UUID) string {
	return "dashboard:stats:" + userID.String()
}

func shareKey(token string) string {
	return "share:session:" + token
}

func (c *Cache) GetDashboardStats(ctx context.Context, userID uuid.UUID) (*model.DashboardStats, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, statsKey(userID)).Bytes()
	if err != nil {
		return nil, false
	}
	var stats model.DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, false
	}
	return &stats, true
}

func (c *Cache) SetDashboardStats(ctx context.Context, userID uuid.UUID, stats *model.DashboardStats) {
	if c == nil || c.rdb == nil || stats == nil {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, statsKey(userID), raw, c.statsTTL)
}

// InvalidateDashboard drops a user's cached stats. Called whenever a session
// finalizes or is deleted.
func (c *Cache) InvalidateDashboard(ctx context.Context, userID uuid.UUID) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, statsKey(userID))
}

// GetShareSession returns the cached public view for a share token. The
// payload is already anonymized before it is cached.
func (c *Cache) GetShareSession(ctx context.Context, token string) (*model.SharedSession, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, shareKey(token)).Bytes()
	if err != nil {
		return nil, false
	}
	var shared model.SharedSession
	if err := json.Unmarshal(raw, &shared); err != nil {
		return nil, false
	}
	return &shared, true
}

func (c *Cache) SetShareSession(ctx context.Context, token string, shared *model.SharedSession) {
	if c == nil || c.rdb == nil || shared == nil {
		return
	}
	raw, err := json.Marshal(shared)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, shareKey(token), raw, shareTokenTTL)
}

func (c *Cache) DeleteShareSession(ctx context.Context, token string) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, shareKey(token))
}
