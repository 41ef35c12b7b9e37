package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPartialCache(t *testing.T, c PartialCache) {
	t.Helper()
	ctx := context.Background()
	docID := uuid.New()

	_, ok, err := c.GetPartial(ctx, docID)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.SetPartial(ctx, docID, []byte(`{"a":1}`), time.Minute))
	data, ok, err := c.GetPartial(ctx, docID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"a":1}`, string(data))

	// later partials overwrite unconditionally
	require.NoError(t, c.SetPartial(ctx, docID, []byte(`{"a":1,"b":2}`), time.Minute))
	data, ok, err = c.GetPartial(ctx, docID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"a":1,"b":2}`, string(data))

	// other documents are unaffected
	_, ok, err = c.GetPartial(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.DeletePartial(ctx, docID))
	_, ok, err = c.GetPartial(ctx, docID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCache(t *testing.T) {
	testPartialCache(t, NewMemoryCache())
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()
	docID := uuid.New()

	require.NoError(t, c.SetPartial(ctx, docID, []byte(`{}`), time.Nanosecond))
	time.Sleep(5 * time.Millisecond)
	_, ok, err := c.GetPartial(ctx, docID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache(t *testing.T) {
	srv := miniredis.RunT(t)
	c, err := NewRedisCache("redis://" + srv.Addr())
	require.NoError(t, err)
	require.NoError(t, c.Ping(context.Background()))

	testPartialCache(t, c)
}
