package queue

import "errors"

var (
	// ErrNilQueue 表示在空的队列句柄上调用了操作
	ErrNilQueue = errors.New("queue is nil")

	// ErrNilItem 表示尝试入队空引用
	ErrNilItem = errors.New("cannot enqueue nil item")

	// ErrQueueFull 表示队列已满，无法添加更多元素
	ErrQueueFull = errors.New("queue is full")

	// ErrQueueEmpty 表示队列为空，无法获取元素
	ErrQueueEmpty = errors.New("queue is empty")

	// ErrInvalidCapacity 表示指定的队列容量无效
	ErrInvalidCapacity = errors.New("invalid queue capacity")

	// ErrAllocationFailed 表示无法为队列分配底层存储
	ErrAllocationFailed = errors.New("queue storage allocation failed")

	// ErrQueueDestroyed 表示队列已被销毁，句柄不可再使用
	ErrQueueDestroyed = errors.New("queue is destroyed")
)
