package queueservice

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testStore 对任意Store实现执行相同的行为检查
func testStore(t *testing.T, store Store, prefix string) {
	ctx := context.Background()
	name := prefix + "orders"

	_, err := store.Load(ctx, name)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)

	data := QueueData{
		Name:      name,
		Capacity:  3,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Items:     []string{"x", "y"},
	}
	require.NoError(t, store.Save(ctx, data))

	loaded, err := store.Load(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, data.Name, loaded.Name)
	assert.Equal(t, data.Capacity, loaded.Capacity)
	assert.Equal(t, data.Items, loaded.Items)
	assert.True(t, data.CreatedAt.Equal(loaded.CreatedAt))

	// 覆盖写入
	data.Items = []string{"z"}
	require.NoError(t, store.Save(ctx, data))
	loaded, err = store.Load(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, []string{"z"}, loaded.Items)

	require.NoError(t, store.Save(ctx, QueueData{Name: prefix + "audit", Capacity: 1}))
	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, names, name)
	assert.Contains(t, names, prefix+"audit")

	require.NoError(t, store.Delete(ctx, name))
	require.NoError(t, store.Delete(ctx, name))
	require.NoError(t, store.Delete(ctx, prefix+"audit"))
	_, err = store.Load(ctx, name)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore(), "")
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	store := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Save(ctx, QueueData{Name: "q", Capacity: 1}), context.Canceled)
	_, err := store.Load(ctx, "q")
	assert.ErrorIs(t, err, context.Canceled)
	_, err = store.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestRedisStore 需要一个可用的Redis，通过RINGQ_TEST_REDIS_ADDR指定地址
func TestRedisStore(t *testing.T) {
	addr := os.Getenv("RINGQ_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("RINGQ_TEST_REDIS_ADDR not set")
	}

	cfg := DefaultRedisConfig()
	cfg.Addr = addr
	cfg.KeyPrefix = "ringq:test:" + uuid.New().String() + ":"
	store := NewRedisStore(cfg)
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		t.Skipf("redis not reachable at %s: %v", addr, err)
	}

	testStore(t, store, "")
}
