package queueservice

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fyerfyer/ringq/queue"
)

func TestInMemoryService_CreateQueue(t *testing.T) {
	svc := NewInMemoryService()
	defer svc.Close()

	require.NoError(t, svc.CreateQueue("orders", QueueOptions{Capacity: 3}))
	assert.ErrorIs(t, svc.CreateQueue("orders", QueueOptions{Capacity: 3}), ErrQueueExists)
	assert.ErrorIs(t, svc.CreateQueue("", QueueOptions{Capacity: 3}), ErrEmptyName)
	assert.ErrorIs(t, svc.CreateQueue("bad", QueueOptions{Capacity: 0}), queue.ErrInvalidCapacity)

	_, err := svc.GetQueue("bad")
	assert.ErrorIs(t, err, ErrQueueNotFound)

	q, err := svc.GetQueue("orders")
	require.NoError(t, err)
	assert.Equal(t, 3, q.Capacity())
}

func TestInMemoryService_ItemOperations(t *testing.T) {
	svc := NewInMemoryService()
	defer svc.Close()
	require.NoError(t, svc.CreateQueue("jobs", QueueOptions{Capacity: 2}))

	require.NoError(t, svc.EnqueueItem("jobs", "a"))
	require.NoError(t, svc.EnqueueItem("jobs", "b"))
	err := svc.EnqueueItem("jobs", "c")
	assert.ErrorIs(t, err, queue.ErrQueueFull)
	assert.Equal(t, queue.StatusFull, queue.StatusOf(err))

	front, err := svc.PeekFront("jobs")
	require.NoError(t, err)
	assert.Equal(t, "a", front)
	rear, err := svc.PeekRear("jobs")
	require.NoError(t, err)
	assert.Equal(t, "b", rear)

	n, err := svc.Count("jobs")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	item, err := svc.DequeueItem("jobs")
	require.NoError(t, err)
	assert.Equal(t, "a", item)
	item, err = svc.DequeueItem("jobs")
	require.NoError(t, err)
	assert.Equal(t, "b", item)

	_, err = svc.DequeueItem("jobs")
	assert.ErrorIs(t, err, queue.ErrQueueEmpty)

	stats, err := svc.QueueStats("jobs")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), stats.Enqueued)
	assert.Equal(t, uint64(2), stats.Dequeued)
	assert.Equal(t, uint64(1), stats.Rejected)

	// 未知队列
	assert.ErrorIs(t, svc.EnqueueItem("missing", "x"), ErrQueueNotFound)
	_, err = svc.DequeueItem("missing")
	assert.ErrorIs(t, err, ErrQueueNotFound)
	_, err = svc.Count("missing")
	assert.ErrorIs(t, err, ErrQueueNotFound)
}

func TestInMemoryService_ListQueues(t *testing.T) {
	svc := NewInMemoryService()
	defer svc.Close()

	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, svc.CreateQueue(name, QueueOptions{Capacity: 1}))
	}
	require.NoError(t, svc.EnqueueItem("mid", "x"))

	infos := svc.ListQueues()
	require.Len(t, infos, 3)
	assert.Equal(t, "alpha", infos[0].Name)
	assert.Equal(t, "mid", infos[1].Name)
	assert.Equal(t, "zeta", infos[2].Name)
	assert.Equal(t, queue.StateFull, infos[1].State)
	assert.Equal(t, queue.StateEmpty, infos[0].State)
	assert.NotEqual(t, infos[0].ID, infos[1].ID)
}

func TestInMemoryService_DeleteQueue(t *testing.T) {
	svc := NewInMemoryService()
	require.NoError(t, svc.CreateQueue("tmp", QueueOptions{Capacity: 1}))

	q, err := svc.GetQueue("tmp")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteQueue("tmp"))
	assert.ErrorIs(t, svc.DeleteQueue("tmp"), ErrQueueNotFound)

	// 已删除队列的句柄被销毁
	assert.ErrorIs(t, q.Enqueue("x"), queue.ErrQueueDestroyed)
	assert.NoError(t, svc.Close())
}

func TestInMemoryService_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	svc := NewInMemoryService(WithStore(store))
	defer svc.Close()

	require.NoError(t, svc.CreateQueue("ring", QueueOptions{Capacity: 3}))
	for _, item := range []string{"A", "B", "C"} {
		require.NoError(t, svc.EnqueueItem("ring", item))
	}
	_, err := svc.DequeueItem("ring")
	require.NoError(t, err)
	require.NoError(t, svc.EnqueueItem("ring", "D"))

	require.NoError(t, svc.SaveQueue(ctx, "ring"))

	// 修改后再恢复，得到保存时的内容
	_, err = svc.DequeueItem("ring")
	require.NoError(t, err)
	require.NoError(t, svc.LoadQueue(ctx, "ring"))

	q, err := svc.GetQueue("ring")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "D"}, q.Items())
	assert.Equal(t, 3, q.Capacity())

	err = svc.LoadQueue(ctx, "unknown")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
	assert.ErrorIs(t, svc.SaveQueue(ctx, "unknown"), ErrQueueNotFound)
}

func TestInMemoryService_NoStore(t *testing.T) {
	svc := NewInMemoryService()
	defer svc.Close()
	require.NoError(t, svc.CreateQueue("q", QueueOptions{Capacity: 1}))

	assert.ErrorIs(t, svc.SaveQueue(context.Background(), "q"), ErrNoStore)
	assert.ErrorIs(t, svc.LoadQueue(context.Background(), "q"), ErrNoStore)
}

func TestInMemoryService_AutoSave(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	svc := NewInMemoryService(WithStore(store), WithAutoSave(true))
	defer svc.Close()

	require.NoError(t, svc.CreateQueue("events", QueueOptions{Capacity: 4}))
	require.NoError(t, svc.EnqueueItem("events", "e1"))
	require.NoError(t, svc.EnqueueItem("events", "e2"))
	_, err := svc.DequeueItem("events")
	require.NoError(t, err)

	data, err := store.Load(ctx, "events")
	require.NoError(t, err)
	assert.Equal(t, 4, data.Capacity)
	assert.Equal(t, []string{"e2"}, data.Items)

	require.NoError(t, svc.DeleteQueue("events"))
	_, err = store.Load(ctx, "events")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

// slowStore 在写入前随机停顿，放大并发写快照时的乱序
type slowStore struct {
	*MemoryStore
	n  int
	mu sync.Mutex
}

func (s *slowStore) Save(ctx context.Context, data QueueData) error {
	s.mu.Lock()
	s.n++
	delay := time.Duration(s.n%3) * time.Millisecond
	s.mu.Unlock()

	time.Sleep(delay)
	return s.MemoryStore.Save(ctx, data)
}

func TestInMemoryService_AutoSaveConcurrent(t *testing.T) {
	store := &slowStore{MemoryStore: NewMemoryStore()}
	svc := NewInMemoryService(WithStore(store), WithAutoSave(true))
	defer svc.Close()

	require.NoError(t, svc.CreateQueue("jobs", QueueOptions{Capacity: 64}))

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				_ = svc.EnqueueItem("jobs", fmt.Sprintf("w%d-%d", w, i))
				if i%3 == 0 {
					_, _ = svc.DequeueItem("jobs")
				}
			}
		}(w)
	}
	wg.Wait()

	q, err := svc.GetQueue("jobs")
	require.NoError(t, err)

	// 最后一次写入的快照必须与队列最终内容一致
	data, err := store.Load(context.Background(), "jobs")
	require.NoError(t, err)
	assert.Equal(t, q.Items(), data.Items)
}

func TestInMemoryService_Logging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	svc := NewInMemoryService(WithLogger(zap.New(core)))
	defer svc.Close()

	require.NoError(t, svc.CreateQueue("logged", QueueOptions{Capacity: 1}))
	require.NoError(t, svc.EnqueueItem("logged", "x"))
	require.Error(t, svc.EnqueueItem("logged", "y"))

	assert.Equal(t, 1, logs.FilterMessage("queue created").Len())
	assert.Equal(t, 1, logs.FilterMessage("item enqueued").Len())

	rejected := logs.FilterMessage("enqueue rejected").All()
	require.Len(t, rejected, 1)
	assert.Equal(t, "full", rejected[0].ContextMap()["status"])
}
