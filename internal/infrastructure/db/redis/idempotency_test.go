package redis

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/rothkoai/annotation-service/internal/core/ports"
)

func newTestStore(t *testing.T) *IdempotencyStore {
	t.Helper()
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}

	client, err := Connect(context.Background(), Config{Addr: addr})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return NewIdempotencyStore(client)
}

func TestIdempotencyStore_LookupMiss(t *testing.T) {
	store := newTestStore(t)

	_, ok, err := store.Lookup(context.Background(), fmt.Sprintf("miss-%d", time.Now().UnixNano()))
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if ok {
		t.Fatalf("expected miss")
	}
}

func TestIdempotencyStore_FirstRememberWins(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	key := fmt.Sprintf("key-%d", time.Now().UnixNano())
	t.Cleanup(func() { _ = store.client.Del(ctx, store.key(key)).Err() })

	if err := store.Remember(ctx, key, ports.IdempotencyRecord{AnnotationID: 7, Fingerprint: "a"}); err != nil {
		t.Fatalf("remember: %v", err)
	}
	if err := store.Remember(ctx, key, ports.IdempotencyRecord{AnnotationID: 8, Fingerprint: "b"}); err != nil {
		t.Fatalf("second remember: %v", err)
	}

	rec, ok, err := store.Lookup(ctx, key)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !ok || rec.AnnotationID != 7 || rec.Fingerprint != "a" {
		t.Fatalf("expected first record, got %+v (found=%v)", rec, ok)
	}

	ttl, err := store.client.TTL(ctx, store.key(key)).Result()
	if err != nil {
		t.Fatalf("ttl: %v", err)
	}
	if ttl <= 0 || ttl > idempotencyTTL {
		t.Fatalf("unexpected ttl %v", ttl)
	}
}

func TestIdempotencyStore_KeyFormat(t *testing.T) {
	store := NewIdempotencyStore(nil)
	if got := store.key("abc"); got != "idempotency:annotation:abc" {
		t.Fatalf("unexpected key %q", got)
	}
}
