package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rothkoai/annotation-service/internal/core/ports"
)

const idempotencyTTL = 24 * time.Hour

// IdempotencyStore records which annotation an Idempotency-Key created.
// Key format: idempotency:annotation:<key>, value: JSON ports.IdempotencyRecord.
type IdempotencyStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewIdempotencyStore wraps the given Redis client.
func NewIdempotencyStore(client redis.Cmdable) *IdempotencyStore {
	return &IdempotencyStore{client: client, ttl: idempotencyTTL}
}

// Lookup reports the record stored for key.
func (s *IdempotencyStore) Lookup(ctx context.Context, key string) (ports.IdempotencyRecord, bool, error) {
	var rec ports.IdempotencyRecord

	val, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return rec, false, nil
		}
		return rec, false, fmt.Errorf("idempotency lookup: %w", err)
	}

	if err := json.Unmarshal(val, &rec); err != nil {
		return rec, false, fmt.Errorf("idempotency lookup: corrupt value %q: %w", val, err)
	}
	return rec, true, nil
}

// Remember stores rec for key (expires after idempotencyTTL).
// An existing entry is kept so the first creation wins.
func (s *IdempotencyStore) Remember(ctx context.Context, key string, rec ports.IdempotencyRecord) error {
	val, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("idempotency remember: %w", err)
	}
	if err := s.client.SetNX(ctx, s.key(key), val, s.ttl).Err(); err != nil {
		return fmt.Errorf("idempotency remember: %w", err)
	}
	return nil
}

func (s *IdempotencyStore) key(key string) string {
	return "idempotency:annotation:" + key
}
