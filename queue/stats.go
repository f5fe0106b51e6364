package queue

import "time"

// Stats 表示队列的统计信息
type Stats struct {
	// 创建时间
	CreatedAt time.Time

	// 队列容量
	Capacity int

	// 当前元素数量
	Size int

	// 成功入队次数
	Enqueued uint64

	// 成功出队次数
	Dequeued uint64

	// 因队列已满被拒绝的入队次数
	Rejected uint64

	// 在空队列上执行出队或查看的次数
	EmptyReads uint64
}

// IsEmpty 返回队列是否为空
func (s *Stats) IsEmpty() bool {
	return s.Size == 0
}

// IsFull 返回队列是否已满
func (s *Stats) IsFull() bool {
	return s.Capacity > 0 && s.Size >= s.Capacity
}

// Utilization 返回队列利用率，范围从0到1
func (s *Stats) Utilization() float64 {
	if s.Capacity <= 0 {
		return 0
	}
	return float64(s.Size) / float64(s.Capacity)
}
