package queue

import "errors"

// Status 是操作结果的状态码，与错误值一一对应
type Status int

const (
	// StatusNOK 操作失败，且不属于下面任何一类
	StatusNOK Status = iota

	// StatusOK 操作成功
	StatusOK

	// StatusFull 队列已满
	StatusFull

	// StatusEmpty 队列为空
	StatusEmpty

	// StatusNullReference 队列或元素引用为空
	StatusNullReference

	// StatusAllocationFailure 构造时无法分配存储
	StatusAllocationFailure
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusFull:
		return "full"
	case StatusEmpty:
		return "empty"
	case StatusNullReference:
		return "null reference"
	case StatusAllocationFailure:
		return "allocation failure"
	default:
		return "nok"
	}
}

// StatusOf 将操作返回的错误映射为状态码
// 支持被包装过的错误
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrNilQueue), errors.Is(err, ErrNilItem):
		return StatusNullReference
	case errors.Is(err, ErrAllocationFailed):
		return StatusAllocationFailure
	case errors.Is(err, ErrQueueFull):
		return StatusFull
	case errors.Is(err, ErrQueueEmpty):
		return StatusEmpty
	default:
		return StatusNOK
	}
}
