package queueservice

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

// DefaultKeyPrefix 是快照在Redis中的键前缀
const DefaultKeyPrefix = "ringq:queue:"

// RedisConfig 定义 Redis 快照存储的连接配置
type RedisConfig struct {
	// 连接设置
	Addr     string
	Username string
	Password string
	DB       int

	// 超时设置
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// 键前缀，为空时使用DefaultKeyPrefix
	KeyPrefix string
}

// DefaultRedisConfig 返回默认的 Redis 配置
func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Addr:         "localhost:6379",
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		KeyPrefix:    DefaultKeyPrefix,
	}
}

// RedisStore 把队列快照以JSON形式保存在Redis中
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore 根据配置创建 Redis 快照存储
func NewRedisStore(cfg RedisConfig) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Username:     cfg.Username,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})
	return NewRedisStoreFromClient(client, cfg.KeyPrefix)
}

// NewRedisStoreFromClient 使用已有的客户端创建存储
func NewRedisStoreFromClient(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &RedisStore{client: client, prefix: prefix}
}

// Ping 检查 Redis 是否可用
func (s *RedisStore) Ping(ctx context.Context) error {
	return errors.Wrap(s.client.Ping(ctx).Err(), "ping redis")
}

func (s *RedisStore) key(name string) string {
	return s.prefix + name
}

func (s *RedisStore) Save(ctx context.Context, data QueueData) error {
	b, err := SerializeQueueData(data)
	if err != nil {
		return errors.Wrapf(err, "serialize snapshot %q", data.Name)
	}
	return errors.Wrapf(s.client.Set(ctx, s.key(data.Name), b, 0).Err(), "save snapshot %q", data.Name)
}

func (s *RedisStore) Load(ctx context.Context, name string) (QueueData, error) {
	b, err := s.client.Get(ctx, s.key(name)).Bytes()
	if err == redis.Nil {
		return QueueData{}, ErrSnapshotNotFound
	}
	if err != nil {
		return QueueData{}, errors.Wrapf(err, "load snapshot %q", name)
	}

	data, err := DeserializeQueueData(b)
	if err != nil {
		return QueueData{}, errors.Wrapf(err, "decode snapshot %q", name)
	}
	return data, nil
}

func (s *RedisStore) Delete(ctx context.Context, name string) error {
	return errors.Wrapf(s.client.Del(ctx, s.key(name)).Err(), "delete snapshot %q", name)
}

func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	var names []string
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		names = append(names, strings.TrimPrefix(iter.Val(), s.prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "list snapshots")
	}

	sort.Strings(names)
	return names, nil
}

// Close 关闭底层客户端
func (s *RedisStore) Close() error {
	return s.client.Close()
}
