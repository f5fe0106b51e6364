package queue

// DefaultMaxCapacity 是未配置时允许分配的最大槽位数
const DefaultMaxCapacity = 1 << 24

// Options 定义队列的配置选项
type Options struct {
	// 允许分配的最大容量，超出时构造返回ErrAllocationFailed
	MaxCapacity int

	// 事件监听器列表
	EventListeners []EventListener
}

// Option 函数类型用于设置队列选项
type Option func(*Options)

// DefaultOptions 返回默认的队列选项
func DefaultOptions() *Options {
	return &Options{
		MaxCapacity:    DefaultMaxCapacity,
		EventListeners: nil,
	}
}

// WithMaxCapacity 设置允许分配的最大容量
func WithMaxCapacity(max int) Option {
	return func(o *Options) {
		if max <= 0 {
			max = DefaultMaxCapacity
		}
		o.MaxCapacity = max
	}
}

// WithEventListener 添加事件监听器
func WithEventListener(listener EventListener) Option {
	return func(o *Options) {
		if listener == nil {
			return
		}
		o.EventListeners = append(o.EventListeners, listener)
	}
}

// WithEventListeners 设置事件监听器列表
func WithEventListeners(listeners []EventListener) Option {
	return func(o *Options) {
		o.EventListeners = listeners
	}
}
