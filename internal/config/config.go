package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// 存储后端类型
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config 是qcli的运行配置
type Config struct {
	// 快照存储后端：memory 或 redis
	Store string

	// Redis 连接设置
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// 日志级别：debug、info、warn、error
	LogLevel string

	// 每次修改后是否自动保存快照
	AutoSave bool

	// create 命令未指定容量时使用的默认容量
	DefaultCapacity int
}

// Default 返回默认配置
func Default() Config {
	return Config{
		Store:           StoreMemory,
		RedisAddr:       "localhost:6379",
		RedisDB:         0,
		LogLevel:        "warn",
		AutoSave:        false,
		DefaultCapacity: 16,
	}
}

// FromEnv 用 RINGQ_* 环境变量覆盖base中的设置
func FromEnv(base Config) (Config, error) {
	return fromLookup(base, os.LookupEnv)
}

func fromLookup(base Config, lookup func(string) (string, bool)) (Config, error) {
	cfg := base

	if v, ok := lookup("RINGQ_STORE"); ok && v != "" {
		cfg.Store = strings.ToLower(v)
	}
	if v, ok := lookup("RINGQ_REDIS_ADDR"); ok && v != "" {
		cfg.RedisAddr = v
	}
	if v, ok := lookup("RINGQ_REDIS_PASSWORD"); ok {
		cfg.RedisPassword = v
	}
	if v, ok := lookup("RINGQ_REDIS_DB"); ok && v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return base, fmt.Errorf("invalid RINGQ_REDIS_DB %q: %w", v, err)
		}
		cfg.RedisDB = db
	}
	if v, ok := lookup("RINGQ_LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup("RINGQ_AUTO_SAVE"); ok && v != "" {
		autoSave, err := strconv.ParseBool(v)
		if err != nil {
			return base, fmt.Errorf("invalid RINGQ_AUTO_SAVE %q: %w", v, err)
		}
		cfg.AutoSave = autoSave
	}
	if v, ok := lookup("RINGQ_DEFAULT_CAPACITY"); ok && v != "" {
		capacity, err := strconv.Atoi(v)
		if err != nil {
			return base, fmt.Errorf("invalid RINGQ_DEFAULT_CAPACITY %q: %w", v, err)
		}
		cfg.DefaultCapacity = capacity
	}

	return cfg, nil
}

// Validate 检查配置是否有效
func (c Config) Validate() error {
	switch c.Store {
	case StoreMemory:
	case StoreRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("redis store requires an address")
		}
	default:
		return fmt.Errorf("unknown store %q, must be '%s' or '%s'", c.Store, StoreMemory, StoreRedis)
	}

	if c.DefaultCapacity <= 0 {
		return fmt.Errorf("default capacity must be positive, got %d", c.DefaultCapacity)
	}
	return nil
}
