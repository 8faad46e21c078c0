package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore(func() time.Time { return now })

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	value := []byte("person")
	require.NoError(t, store.Set(ctx, "k", value, time.Minute))
	value[0] = 'X'

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "person", string(got), "stored bytes are copied on write")

	got[0] = 'Y'
	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "person", string(again), "returned bytes are copied on read")

	now = now.Add(time.Minute)
	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStore_NonPositiveTTLIsIgnored(t *testing.T) {
	store := NewMemoryStore(time.Now)
	require.NoError(t, store.Set(context.Background(), "k", []byte("v"), 0))
	assert.Equal(t, 0, store.Len())
}
