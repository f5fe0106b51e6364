package queue

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynchronized_ConcurrentProducersConsumers(t *testing.T) {
	inner, err := New[int](8)
	require.NoError(t, err)
	q := NewSynchronized[int](inner)

	const producers, perProducer = 4, 500
	var (
		wg       sync.WaitGroup
		consumed atomic.Int64
		sum      atomic.Int64
	)

	// 生产者在队列满时重试
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				for q.Enqueue(base+i) != nil {
				}
			}
		}(p * perProducer)
	}

	total := int64(producers * perProducer)
	var cwg sync.WaitGroup
	for c := 0; c < 2; c++ {
		cwg.Add(1)
		go func() {
			defer cwg.Done()
			for consumed.Load() < total {
				v, err := q.Dequeue()
				if err != nil {
					continue
				}
				sum.Add(int64(v))
				consumed.Add(1)
			}
		}()
	}

	wg.Wait()
	cwg.Wait()

	assert.Equal(t, total, consumed.Load())
	assert.Equal(t, total*(total-1)/2, sum.Load())

	n, err := q.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, StatusOK, StatusOf(q.Destroy()))
}

func TestSynchronized_NilInner(t *testing.T) {
	var inner *CircularQueue[int]
	q := NewSynchronized[int](inner)

	assert.ErrorIs(t, q.Enqueue(1), ErrNilQueue)
	_, err := q.Dequeue()
	assert.ErrorIs(t, err, ErrNilQueue)
	assert.ErrorIs(t, q.Destroy(), ErrNilQueue)

	var nilWrapper *Synchronized[int]
	_, err = nilWrapper.Count()
	assert.ErrorIs(t, err, ErrNilQueue)
	assert.True(t, nilWrapper.IsEmpty())
}
