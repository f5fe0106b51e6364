package queue

// Queue 定义定长循环队列的基本操作接口
// 泛型参数T代表队列中存储的元素类型
type Queue[T any] interface {
	// Enqueue 将元素添加到队列尾部
	// 如果队列已满将返回ErrQueueFull，队列保持不变
	Enqueue(item T) error

	// Dequeue 从队列头部移除并返回元素
	// 如果队列为空将返回ErrQueueEmpty
	Dequeue() (T, error)

	// PeekFront 查看队列头部（最早入队）的元素但不移除
	PeekFront() (T, error)

	// PeekRear 查看队列尾部（最近入队）的元素但不移除
	PeekRear() (T, error)

	// Count 返回队列当前元素数量
	Count() (int, error)

	// Capacity 返回队列容量
	Capacity() int

	// IsEmpty 检查队列是否为空
	IsEmpty() bool

	// IsFull 检查队列是否已满
	IsFull() bool

	// State 返回队列当前所处的状态
	State() State

	// Items 按出队顺序返回队列元素的副本
	Items() []T

	// Clear 清空队列中的所有元素
	Clear()

	// Stats 返回队列的统计信息
	Stats() Stats

	// Destroy 释放底层存储，之后句柄不可再使用
	// 不会释放元素本身引用的数据
	Destroy() error
}

// State 表示队列状态，仅由元素数量决定
type State int

const (
	// StateEmpty 队列中没有元素
	StateEmpty State = iota
	// StatePartial 队列中有元素但未满
	StatePartial
	// StateFull 元素数量等于容量
	StateFull
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StatePartial:
		return "partial"
	case StateFull:
		return "full"
	default:
		return "unknown"
	}
}

// stateOf 根据数量和容量计算状态
func stateOf(count, capacity int) State {
	switch {
	case count == 0:
		return StateEmpty
	case count >= capacity:
		return StateFull
	default:
		return StatePartial
	}
}
