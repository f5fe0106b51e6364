package queueservice

import (
	"context"
	"errors"

	"github.com/fyerfyer/ringq/queue"
)

var (
	// ErrQueueNotFound 表示请求的队列不存在
	ErrQueueNotFound = errors.New("queue not found")

	// ErrQueueExists 表示队列已存在
	ErrQueueExists = errors.New("queue already exists")

	// ErrEmptyName 表示队列名称为空
	ErrEmptyName = errors.New("queue name is empty")

	// ErrNoStore 表示服务未配置快照存储
	ErrNoStore = errors.New("no snapshot store configured")

	// ErrSnapshotNotFound 表示存储中没有该队列的快照
	ErrSnapshotNotFound = errors.New("snapshot not found")
)

// QueueOptions 表示创建队列时的选项
type QueueOptions struct {
	// 队列容量，必须为正数
	Capacity int
}

// QueueInfo 包含队列的基本信息
type QueueInfo struct {
	// 队列唯一ID
	ID string
	// 队列名称
	Name string
	// 队列状态
	State queue.State
	// 队列统计信息
	Stats queue.Stats
}

// Service 定义队列服务接口
type Service interface {
	// CreateQueue 创建一个新队列
	CreateQueue(name string, opts QueueOptions) error

	// GetQueue 获取指定名称的队列
	GetQueue(name string) (queue.Queue[string], error)

	// ListQueues 按名称顺序列出所有队列
	ListQueues() []QueueInfo

	// EnqueueItem 向指定队列添加项目
	EnqueueItem(queueName string, item string) error

	// DequeueItem 从指定队列获取项目
	DequeueItem(queueName string) (string, error)

	// PeekFront 查看指定队列的头部项目
	PeekFront(queueName string) (string, error)

	// PeekRear 查看指定队列的尾部项目
	PeekRear(queueName string) (string, error)

	// Count 返回指定队列的元素数量
	Count(queueName string) (int, error)

	// QueueStats 获取队列统计信息
	QueueStats(queueName string) (queue.Stats, error)

	// DeleteQueue 销毁并删除队列
	DeleteQueue(queueName string) error

	// SaveQueue 将队列快照写入存储
	SaveQueue(ctx context.Context, queueName string) error

	// LoadQueue 从存储恢复队列，替换同名的现有队列
	LoadQueue(ctx context.Context, queueName string) error

	// Close 销毁所有队列
	Close() error
}
