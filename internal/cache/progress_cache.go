package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-billing/internal/domain"
	"github.com/spec-kit/ticket-billing/internal/events"
)

const progressKeyPrefix = "company_progress:"

// ProgressCache keeps short-lived company progress snapshots in Redis. A
// snapshot is only valid for the instant it was computed, so entries carry a
// small TTL and are dropped eagerly whenever a ticket or order of the
// company changes. Cache failures degrade to recomputation, never to errors.
type ProgressCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewProgressCache builds the cache. A nil client disables caching.
func NewProgressCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *ProgressCache {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &ProgressCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached snapshot for a company, if present.
func (c *ProgressCache) Get(ctx context.Context, companyID string) (*domain.CompanyProgress, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, progressKeyPrefix+companyID).Bytes()
	if err != nil {
		return nil, false
	}
	var progress domain.CompanyProgress
	if err := json.Unmarshal(raw, &progress); err != nil {
		return nil, false
	}
	return &progress, true
}

// Set stores a snapshot under the cache TTL.
func (c *ProgressCache) Set(ctx context.Context, companyID string, progress domain.CompanyProgress) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(progress)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, progressKeyPrefix+companyID, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("progress cache set failed", zap.Error(err))
	}
}

// Invalidate drops the snapshot for a company.
func (c *ProgressCache) Invalidate(ctx context.Context, companyID string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, progressKeyPrefix+companyID).Err(); err != nil {
		c.logger.Warn("progress cache invalidation failed", zap.Error(err))
	}
}

// RegisterInvalidation subscribes the cache to every event that can change a
// company's progress.
func (c *ProgressCache) RegisterInvalidation(dispatcher events.Dispatcher) {
	if c == nil || dispatcher == nil {
		return
	}
	handler := func(ctx context.Context, event events.Event) error {
		c.Invalidate(ctx, event.CompanyID)
		return nil
	}
	for _, eventType := range []events.EventType{
		events.EventTicketCreated,
		events.EventTicketPaused,
		events.EventTicketResumed,
		events.EventTicketClosed,
		events.EventTicketEdited,
		events.EventTicketDeleted,
		events.EventOrderPlaced,
		events.EventOrderDeleted,
	} {
		dispatcher.Subscribe(eventType, handler)
	}
}
