package queue

import (
	"reflect"
	"time"
)

// position 是队列头尾的索引
// valid为false表示队列为空，没有可用索引
type position struct {
	idx   int
	valid bool
}

// next 返回环形前进一格后的位置，空位置前进后指向0
func (p position) next(capacity int) position {
	if !p.valid {
		return position{idx: 0, valid: true}
	}
	idx := p.idx + 1
	if idx == capacity {
		idx = 0
	}
	return position{idx: idx, valid: true}
}

// CircularQueue 是定长循环队列，容量在创建时确定，不会扩容
//
// CircularQueue 没有内部锁，不能在多个goroutine中同时使用；
// 需要并发访问时请使用 NewSynchronized 包装。
// 当T是指针等引用类型时，队列只保存引用，不拥有也不复制被引用的数据。
type CircularQueue[T any] struct {
	// 队列选项
	opts *Options

	// 底层存储，长度等于容量
	data []T

	// 队列容量
	capacity int

	// 当前元素数量
	count int

	// 最早入队元素的位置
	front position

	// 最近入队元素的位置
	rear position

	// 是否已销毁
	destroyed bool

	// T是否可能为空引用，在New中确定一次
	nilable bool

	// 事件发射器
	events *EventEmitter

	// 统计信息
	stats Stats
}

// New 创建一个容量为capacity的循环队列
// capacity必须为正数；超出MaxCapacity时返回ErrAllocationFailed，不会返回可用的队列
func New[T any](capacity int, options ...Option) (*CircularQueue[T], error) {
	opts := DefaultOptions()
	for _, opt := range options {
		opt(opts)
	}

	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if capacity > opts.MaxCapacity {
		return nil, ErrAllocationFailed
	}

	q := &CircularQueue[T]{
		opts:     opts,
		data:     make([]T, capacity),
		capacity: capacity,
		nilable:  nilableType[T](),
		stats:    Stats{CreatedAt: time.Now(), Capacity: capacity},
	}
	q.events = NewEventEmitter(opts.EventListeners)

	return q, nil
}

// check 校验句柄是否可用，空检查优先于状态检查
func (q *CircularQueue[T]) check() error {
	if q == nil {
		return ErrNilQueue
	}
	if q.destroyed {
		return ErrQueueDestroyed
	}
	return nil
}

// Enqueue 将元素添加到队列尾部
func (q *CircularQueue[T]) Enqueue(item T) error {
	if q == nil {
		return ErrNilQueue
	}
	if q.nilable && isNilItem(item) {
		q.reject(ErrNilItem)
		return ErrNilItem
	}
	if err := q.check(); err != nil {
		return err
	}

	if q.count == q.capacity {
		q.stats.Rejected++
		q.reject(ErrQueueFull)
		return ErrQueueFull
	}

	q.rear = q.rear.next(q.capacity)
	q.data[q.rear.idx] = item
	if q.count == 0 {
		q.front = q.rear
	}
	q.count++
	q.stats.Enqueued++

	if q.events.HasListeners() {
		q.events.Emit(Event{Type: EventEnqueue, Item: item, Size: q.count})
		if q.count == q.capacity {
			q.events.Emit(Event{Type: EventFull, Size: q.count})
		}
	}

	return nil
}

// Dequeue 从队列头部移除并返回元素
// 出队后清空该槽位，避免队列继续持有已出队元素的引用
func (q *CircularQueue[T]) Dequeue() (T, error) {
	var zero T

	if err := q.check(); err != nil {
		return zero, err
	}
	if q.count == 0 {
		q.stats.EmptyReads++
		q.reject(ErrQueueEmpty)
		return zero, ErrQueueEmpty
	}

	item := q.data[q.front.idx]
	q.data[q.front.idx] = zero

	if q.count == 1 {
		q.front = position{}
		q.rear = position{}
	} else {
		q.front = q.front.next(q.capacity)
	}
	q.count--
	q.stats.Dequeued++

	if q.events.HasListeners() {
		q.events.Emit(Event{Type: EventDequeue, Item: item, Size: q.count})
		if q.count == 0 {
			q.events.Emit(Event{Type: EventEmpty, Size: 0})
		}
	}

	return item, nil
}

// PeekFront 查看队列头部元素但不移除
func (q *CircularQueue[T]) PeekFront() (T, error) {
	return q.peek(func() position { return q.front })
}

// PeekRear 查看队列尾部元素但不移除
func (q *CircularQueue[T]) PeekRear() (T, error) {
	return q.peek(func() position { return q.rear })
}

func (q *CircularQueue[T]) peek(at func() position) (T, error) {
	var zero T

	if err := q.check(); err != nil {
		return zero, err
	}
	if q.count == 0 {
		q.stats.EmptyReads++
		q.reject(ErrQueueEmpty)
		return zero, ErrQueueEmpty
	}

	return q.data[at().idx], nil
}

// Count 返回队列当前元素数量
// 对有效句柄不会失败，已销毁的队列返回0
func (q *CircularQueue[T]) Count() (int, error) {
	if q == nil {
		return 0, ErrNilQueue
	}
	return q.count, nil
}

// Capacity 返回队列容量
func (q *CircularQueue[T]) Capacity() int {
	if q == nil {
		return 0
	}
	return q.capacity
}

// IsEmpty 检查队列是否为空
func (q *CircularQueue[T]) IsEmpty() bool {
	return q == nil || q.count == 0
}

// IsFull 检查队列是否已满
func (q *CircularQueue[T]) IsFull() bool {
	return q != nil && !q.destroyed && q.count == q.capacity
}

// State 返回队列当前所处的状态
func (q *CircularQueue[T]) State() State {
	if q == nil || q.destroyed {
		return StateEmpty
	}
	return stateOf(q.count, q.capacity)
}

// Front 返回头部索引，队列为空时ok为false
func (q *CircularQueue[T]) Front() (idx int, ok bool) {
	if q == nil {
		return 0, false
	}
	return q.front.idx, q.front.valid
}

// Rear 返回尾部索引，队列为空时ok为false
func (q *CircularQueue[T]) Rear() (idx int, ok bool) {
	if q == nil {
		return 0, false
	}
	return q.rear.idx, q.rear.valid
}

// Items 按出队顺序返回队列元素的副本
func (q *CircularQueue[T]) Items() []T {
	if q.check() != nil || q.count == 0 {
		return nil
	}

	items := make([]T, q.count)
	for i := 0; i < q.count; i++ {
		items[i] = q.data[(q.front.idx+i)%q.capacity]
	}
	return items
}

// Clear 清空队列中的所有元素
func (q *CircularQueue[T]) Clear() {
	if q.check() != nil {
		return
	}

	wasEmpty := q.count == 0
	clear(q.data)
	q.count = 0
	q.front = position{}
	q.rear = position{}

	if !wasEmpty {
		q.events.Emit(Event{Type: EventEmpty, Size: 0})
	}
}

// Stats 返回队列的统计信息
func (q *CircularQueue[T]) Stats() Stats {
	if q == nil {
		return Stats{}
	}

	statsCopy := q.stats
	statsCopy.Size = q.count
	return statsCopy
}

// Destroy 释放底层存储，之后所有操作返回ErrQueueDestroyed
// 元素引用的数据由调用方负责释放
func (q *CircularQueue[T]) Destroy() error {
	if err := q.check(); err != nil {
		return err
	}

	size := q.count
	clear(q.data)
	q.data = nil
	q.count = 0
	q.front = position{}
	q.rear = position{}
	q.destroyed = true

	q.events.Emit(Event{Type: EventDestroy, Size: size})
	return nil
}

func (q *CircularQueue[T]) reject(err error) {
	if q.events.HasListeners() {
		q.events.Emit(Event{Type: EventError, Size: q.count, Err: err})
	}
}

// nilableType 判断T的值是否可能为空引用
// 只有指针、接口、map、切片、通道和函数类型可能为空
func nilableType[T any]() bool {
	return isNilableKind(reflect.TypeOf((*T)(nil)).Elem().Kind())
}

func isNilableKind(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

// isNilItem 判断元素是否为空引用，只在T可能为空时调用
func isNilItem[T any](item T) bool {
	boxed := any(item)
	if boxed == nil {
		return true
	}

	v := reflect.ValueOf(boxed)
	return isNilableKind(v.Kind()) && v.IsNil()
}
