package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, ok, err := store.Get(ctx, WidgetKey("u1"))
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, WidgetKey("u1"), []byte(`[{"id":"42"}]`)))

	data, ok, err := store.Get(ctx, WidgetKey("u1"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"42"}]`, string(data))

	require.NoError(t, store.Delete(ctx, WidgetKey("u1")))
	_, ok, err = store.Get(ctx, WidgetKey("u1"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_CopiesOnWriteAndRead(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	src := []byte("original")
	require.NoError(t, store.Set(ctx, "k", src))
	src[0] = 'X'

	got, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "original", string(got))

	got[0] = 'Y'
	again, _, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "original", string(again))
}

func TestWidgetKey(t *testing.T) {
	assert.Equal(t, "dashboard_widgets_u1", WidgetKey("u1"))
}
