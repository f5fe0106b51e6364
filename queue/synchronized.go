package queue

import "sync"

// Synchronized 用互斥锁包装一个Queue，每个操作在整个执行期间持有锁
type Synchronized[T any] struct {
	mu sync.Mutex
	q  Queue[T]
}

// NewSynchronized 包装一个队列，使其可以被多个goroutine共享
func NewSynchronized[T any](q Queue[T]) *Synchronized[T] {
	return &Synchronized[T]{q: q}
}

// Unwrap 返回被包装的队列
func (s *Synchronized[T]) Unwrap() Queue[T] {
	return s.q
}

func (s *Synchronized[T]) Enqueue(item T) error {
	if s == nil || s.q == nil {
		return ErrNilQueue
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.Enqueue(item)
}

func (s *Synchronized[T]) Dequeue() (T, error) {
	if s == nil || s.q == nil {
		var zero T
		return zero, ErrNilQueue
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.Dequeue()
}

func (s *Synchronized[T]) PeekFront() (T, error) {
	if s == nil || s.q == nil {
		var zero T
		return zero, ErrNilQueue
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.PeekFront()
}

func (s *Synchronized[T]) PeekRear() (T, error) {
	if s == nil || s.q == nil {
		var zero T
		return zero, ErrNilQueue
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.PeekRear()
}

func (s *Synchronized[T]) Count() (int, error) {
	if s == nil || s.q == nil {
		return 0, ErrNilQueue
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.Count()
}

func (s *Synchronized[T]) Capacity() int {
	if s == nil || s.q == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.Capacity()
}

func (s *Synchronized[T]) IsEmpty() bool {
	if s == nil || s.q == nil {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.IsEmpty()
}

func (s *Synchronized[T]) IsFull() bool {
	if s == nil || s.q == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.IsFull()
}

func (s *Synchronized[T]) State() State {
	if s == nil || s.q == nil {
		return StateEmpty
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.State()
}

func (s *Synchronized[T]) Items() []T {
	if s == nil || s.q == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.Items()
}

func (s *Synchronized[T]) Clear() {
	if s == nil || s.q == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.q.Clear()
}

func (s *Synchronized[T]) Stats() Stats {
	if s == nil || s.q == nil {
		return Stats{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.Stats()
}

func (s *Synchronized[T]) Destroy() error {
	if s == nil || s.q == nil {
		return ErrNilQueue
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.Destroy()
}

var (
	_ Queue[int] = (*CircularQueue[int])(nil)
	_ Queue[int] = (*Synchronized[int])(nil)
)
