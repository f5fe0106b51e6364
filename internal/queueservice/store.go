package queueservice

import (
	"context"
	"sort"
	"sync"
)

// Store 保存和读取队列快照
type Store interface {
	// Save 写入快照，覆盖同名快照
	Save(ctx context.Context, data QueueData) error

	// Load 读取快照，不存在时返回ErrSnapshotNotFound
	Load(ctx context.Context, name string) (QueueData, error)

	// Delete 删除快照，不存在时不报错
	Delete(ctx context.Context, name string) error

	// List 返回所有快照名称
	List(ctx context.Context) ([]string, error)
}

// MemoryStore 是进程内的快照存储，保存序列化后的字节
type MemoryStore struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

// NewMemoryStore 创建一个空的内存快照存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snapshots: make(map[string][]byte)}
}

func (s *MemoryStore) Save(ctx context.Context, data QueueData) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b, err := SerializeQueueData(data)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.snapshots[data.Name] = b
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Load(ctx context.Context, name string) (QueueData, error) {
	if err := ctx.Err(); err != nil {
		return QueueData{}, err
	}

	s.mu.RLock()
	b, ok := s.snapshots[name]
	s.mu.RUnlock()
	if !ok {
		return QueueData{}, ErrSnapshotNotFound
	}
	return DeserializeQueueData(b)
}

func (s *MemoryStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.snapshots, name)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	names := make([]string, 0, len(s.snapshots))
	for name := range s.snapshots {
		names = append(names, name)
	}
	s.mu.RUnlock()

	sort.Strings(names)
	return names, nil
}
