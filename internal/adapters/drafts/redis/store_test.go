package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"animal-id-card/internal/domain/drafts"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Necesita un Redis real: REDIS_ADDR=localhost:6379 go test ./internal/adapters/drafts/redis
func newTestStore(t *testing.T, ttl time.Duration) *Store {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	client := NewClient(Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	s := New(client, ttl)
	require.NoError(t, s.Ping(context.Background()))
	return s
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, time.Minute)
	id := uuid.NewString()

	_, err := s.Load(ctx, id)
	assert.ErrorIs(t, err, drafts.ErrNotFound)

	in := drafts.Draft{Name: "Bella", Gender: "Female", Birthmark: "3", AnimalType: "Mammals"}
	require.NoError(t, s.Save(ctx, id, in))

	got, err := s.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, in, got)

	ttl, err := s.client.TTL(ctx, keyPrefix+id).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, s.Delete(ctx, id))
	_, err = s.Load(ctx, id)
	assert.ErrorIs(t, err, drafts.ErrNotFound)
}
