package cmd

import (
	"fmt"

	"github.com/fyerfyer/ringq/queue"
)

// statusError 包装错误并附带队列状态码
func statusError(msg string, err error) error {
	return fmt.Errorf("%s (status: %s): %w", msg, queue.StatusOf(err), err)
}
