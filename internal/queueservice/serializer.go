package queueservice

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fyerfyer/ringq/queue"
)

// QueueData 表示队列的可序列化数据结构
type QueueData struct {
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"createdAt"`
	Items     []string  `json:"items,omitempty"`
}

// Snapshot 按出队顺序抓取队列内容
func Snapshot(name string, q queue.Queue[string]) QueueData {
	stats := q.Stats()
	return QueueData{
		Name:      name,
		Capacity:  q.Capacity(),
		CreatedAt: stats.CreatedAt,
		Items:     q.Items(),
	}
}

// Restore 根据快照重建队列，元素顺序与快照一致
func Restore(data QueueData, options ...queue.Option) (*queue.CircularQueue[string], error) {
	q, err := queue.New[string](data.Capacity, options...)
	if err != nil {
		return nil, fmt.Errorf("restore queue %q: %w", data.Name, err)
	}

	for i, item := range data.Items {
		if err := q.Enqueue(item); err != nil {
			_ = q.Destroy()
			return nil, fmt.Errorf("restore queue %q item %d: %w", data.Name, i, err)
		}
	}
	return q, nil
}

// SerializeQueueData 将队列数据序列化为JSON
func SerializeQueueData(data QueueData) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

// DeserializeQueueData 从JSON反序列化队列数据
func DeserializeQueueData(data []byte) (QueueData, error) {
	var queueData QueueData
	err := json.Unmarshal(data, &queueData)
	return queueData, err
}

// FormatQueueInfo 返回队列信息的格式化字符串表示
func FormatQueueInfo(info QueueInfo) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Queue: %s\n", info.Name))
	sb.WriteString(fmt.Sprintf("ID: %s\n", info.ID))
	sb.WriteString(fmt.Sprintf("State: %s\n", info.State))
	sb.WriteString(fmt.Sprintf("Size: %d/%d\n", info.Stats.Size, info.Stats.Capacity))
	sb.WriteString(fmt.Sprintf("Created: %s\n", formatTimeAgo(info.Stats.CreatedAt)))
	sb.WriteString(fmt.Sprintf("Operations: %d enqueued, %d dequeued\n",
		info.Stats.Enqueued, info.Stats.Dequeued))

	return sb.String()
}

// FormatQueueStats 返回队列统计信息的格式化字符串表示
func FormatQueueStats(stats queue.Stats) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Size: %d\n", stats.Size))
	sb.WriteString(fmt.Sprintf("Capacity: %d (%.1f%% utilized)\n",
		stats.Capacity, stats.Utilization()*100))
	sb.WriteString(fmt.Sprintf("Created: %s\n", formatTimeAgo(stats.CreatedAt)))
	sb.WriteString(fmt.Sprintf("Operations: %d enqueued, %d dequeued\n",
		stats.Enqueued, stats.Dequeued))

	if stats.Rejected > 0 {
		sb.WriteString(fmt.Sprintf("Rejected: %d\n", stats.Rejected))
	}

	if stats.EmptyReads > 0 {
		sb.WriteString(fmt.Sprintf("Empty reads: %d\n", stats.EmptyReads))
	}

	return sb.String()
}

// formatTimeAgo 将时间格式化为人类可读的"多久之前"字符串
func formatTimeAgo(t time.Time) string {
	duration := time.Since(t)

	seconds := int(duration.Seconds())
	if seconds < 60 {
		return fmt.Sprintf("%d seconds ago", seconds)
	}

	minutes := int(duration.Minutes())
	if minutes < 60 {
		return fmt.Sprintf("%d minutes ago", minutes)
	}

	hours := int(duration.Hours())
	if hours < 24 {
		return fmt.Sprintf("%d hours ago", hours)
	}

	days := int(duration.Hours() / 24)
	return fmt.Sprintf("%d days ago", days)
}
