package queueservice

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fyerfyer/ringq/queue"
)

const defaultSaveTimeout = 3 * time.Second

// Option 配置InMemoryService
type Option func(*InMemoryService)

// WithStore 设置快照存储
func WithStore(store Store) Option {
	return func(s *InMemoryService) {
		s.store = store
	}
}

// WithLogger 设置日志器
func WithLogger(logger *zap.Logger) Option {
	return func(s *InMemoryService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithAutoSave 开启后每次成功修改队列都会保存快照
func WithAutoSave(enabled bool) Option {
	return func(s *InMemoryService) {
		s.autoSave = enabled
	}
}

// WithSaveTimeout 设置自动保存的超时时间
func WithSaveTimeout(timeout time.Duration) Option {
	return func(s *InMemoryService) {
		if timeout > 0 {
			s.saveTimeout = timeout
		}
	}
}

// InMemoryService 实现了Service接口，队列保存在进程内存中
type InMemoryService struct {
	// 队列名称到队列实例的映射
	queues map[string]queueEntry
	// 保护映射的互斥锁
	mu sync.RWMutex

	store       Store
	logger      *zap.Logger
	autoSave    bool
	saveTimeout time.Duration
}

// queueEntry 包含队列及其元数据
// mu 串行化"修改队列 + 写快照"，保证存储中的快照顺序与队列修改顺序一致
type queueEntry struct {
	id string
	q  *queue.Synchronized[string]
	mu *sync.Mutex
}

func newEntry(q queue.Queue[string]) queueEntry {
	return queueEntry{
		id: uuid.New().String(),
		q:  queue.NewSynchronized[string](q),
		mu: &sync.Mutex{},
	}
}

// NewInMemoryService 创建一个新的内存队列服务
func NewInMemoryService(options ...Option) *InMemoryService {
	s := &InMemoryService{
		queues:      make(map[string]queueEntry),
		logger:      zap.NewNop(),
		saveTimeout: defaultSaveTimeout,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// CreateQueue 创建一个新队列
func (s *InMemoryService) CreateQueue(name string, opts QueueOptions) error {
	if name == "" {
		return ErrEmptyName
	}

	s.mu.Lock()
	if _, exists := s.queues[name]; exists {
		s.mu.Unlock()
		return ErrQueueExists
	}

	q, err := queue.New[string](opts.Capacity)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("create queue %q: %w", name, err)
	}

	entry := newEntry(q)
	entry.mu.Lock()
	defer entry.mu.Unlock()
	s.queues[name] = entry
	s.mu.Unlock()

	s.logger.Info("queue created",
		zap.String("queue", name),
		zap.String("id", entry.id),
		zap.Int("capacity", opts.Capacity))

	s.persist(name, entry.q)
	return nil
}

// GetQueue 获取指定名称的队列
func (s *InMemoryService) GetQueue(name string) (queue.Queue[string], error) {
	entry, err := s.entry(name)
	if err != nil {
		return nil, err
	}
	return entry.q, nil
}

func (s *InMemoryService) entry(name string) (queueEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, exists := s.queues[name]
	if !exists {
		return queueEntry{}, ErrQueueNotFound
	}
	return entry, nil
}

// ListQueues 按名称顺序列出所有队列
func (s *InMemoryService) ListQueues() []QueueInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]QueueInfo, 0, len(s.queues))
	for name, entry := range s.queues {
		result = append(result, QueueInfo{
			ID:    entry.id,
			Name:  name,
			State: entry.q.State(),
			Stats: entry.q.Stats(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// EnqueueItem 向指定队列添加项目
func (s *InMemoryService) EnqueueItem(queueName string, item string) error {
	entry, err := s.entry(queueName)
	if err != nil {
		return err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if err := entry.q.Enqueue(item); err != nil {
		s.logger.Debug("enqueue rejected",
			zap.String("queue", queueName),
			zap.Stringer("status", queue.StatusOf(err)))
		return err
	}

	s.logger.Debug("item enqueued", zap.String("queue", queueName), zap.String("item", item))
	s.persist(queueName, entry.q)
	return nil
}

// DequeueItem 从指定队列获取项目
func (s *InMemoryService) DequeueItem(queueName string) (string, error) {
	entry, err := s.entry(queueName)
	if err != nil {
		return "", err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	item, err := entry.q.Dequeue()
	if err != nil {
		s.logger.Debug("dequeue rejected",
			zap.String("queue", queueName),
			zap.Stringer("status", queue.StatusOf(err)))
		return "", err
	}

	s.logger.Debug("item dequeued", zap.String("queue", queueName), zap.String("item", item))
	s.persist(queueName, entry.q)
	return item, nil
}

// PeekFront 查看指定队列的头部项目
func (s *InMemoryService) PeekFront(queueName string) (string, error) {
	q, err := s.GetQueue(queueName)
	if err != nil {
		return "", err
	}
	return q.PeekFront()
}

// PeekRear 查看指定队列的尾部项目
func (s *InMemoryService) PeekRear(queueName string) (string, error) {
	q, err := s.GetQueue(queueName)
	if err != nil {
		return "", err
	}
	return q.PeekRear()
}

// Count 返回指定队列的元素数量
func (s *InMemoryService) Count(queueName string) (int, error) {
	q, err := s.GetQueue(queueName)
	if err != nil {
		return 0, err
	}
	return q.Count()
}

// QueueStats 获取队列统计信息
func (s *InMemoryService) QueueStats(queueName string) (queue.Stats, error) {
	q, err := s.GetQueue(queueName)
	if err != nil {
		return queue.Stats{}, err
	}

	return q.Stats(), nil
}

// DeleteQueue 销毁并删除队列
// 开启自动保存时同时删除存储中的快照
func (s *InMemoryService) DeleteQueue(queueName string) error {
	s.mu.Lock()
	entry, exists := s.queues[queueName]
	if !exists {
		s.mu.Unlock()
		return ErrQueueNotFound
	}
	delete(s.queues, queueName)
	s.mu.Unlock()

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if err := entry.q.Destroy(); err != nil {
		return fmt.Errorf("destroy queue %q: %w", queueName, err)
	}
	s.logger.Info("queue deleted", zap.String("queue", queueName), zap.String("id", entry.id))

	if s.autoSave && s.store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), s.saveTimeout)
		defer cancel()
		if err := s.store.Delete(ctx, queueName); err != nil {
			s.logger.Warn("delete snapshot failed", zap.String("queue", queueName), zap.Error(err))
		}
	}
	return nil
}

// SaveQueue 将队列快照写入存储
func (s *InMemoryService) SaveQueue(ctx context.Context, queueName string) error {
	if s.store == nil {
		return ErrNoStore
	}

	entry, err := s.entry(queueName)
	if err != nil {
		return err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if err := s.store.Save(ctx, Snapshot(queueName, entry.q)); err != nil {
		return fmt.Errorf("save queue %q: %w", queueName, err)
	}

	s.logger.Debug("queue saved", zap.String("queue", queueName))
	return nil
}

// LoadQueue 从存储恢复队列，替换同名的现有队列
func (s *InMemoryService) LoadQueue(ctx context.Context, queueName string) error {
	if s.store == nil {
		return ErrNoStore
	}

	data, err := s.store.Load(ctx, queueName)
	if err != nil {
		return fmt.Errorf("load queue %q: %w", queueName, err)
	}

	q, err := Restore(data)
	if err != nil {
		return err
	}

	entry := newEntry(q)

	s.mu.Lock()
	old, exists := s.queues[queueName]
	s.queues[queueName] = entry
	s.mu.Unlock()

	if exists {
		_ = old.q.Destroy()
	}

	s.logger.Info("queue loaded",
		zap.String("queue", queueName),
		zap.String("id", entry.id),
		zap.Int("items", len(data.Items)))
	return nil
}

// Close 销毁所有队列
func (s *InMemoryService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for name, entry := range s.queues {
		if err := entry.q.Destroy(); err != nil {
			errs = append(errs, fmt.Errorf("destroy queue %q: %w", name, err))
		}
	}

	s.queues = make(map[string]queueEntry)
	_ = s.logger.Sync()
	return errors.Join(errs...)
}

// persist 在开启自动保存时写入快照，失败只记录日志
// 调用方必须持有队列条目的锁
func (s *InMemoryService) persist(name string, q queue.Queue[string]) {
	if !s.autoSave || s.store == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.saveTimeout)
	defer cancel()

	if err := s.store.Save(ctx, Snapshot(name, q)); err != nil {
		s.logger.Warn("auto save failed", zap.String("queue", name), zap.Error(err))
	}
}

var _ Service = (*InMemoryService)(nil)
