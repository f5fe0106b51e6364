package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyerfyer/ringq/internal/config"
	"github.com/fyerfyer/ringq/internal/logging"
	"github.com/fyerfyer/ringq/internal/queueservice"
)

var (
	// 队列服务实例，所有命令共享
	queueSvc queueservice.Service

	// 快照存储，memory 模式下为 MemoryStore
	snapshotStore queueservice.Store

	logger = zap.NewNop()

	// oneShot 表示进程只执行一条命令，队列不会在进程之间保留
	oneShot bool
)

// rootCmd 表示CLI工具的根命令
var rootCmd = &cobra.Command{
	Use:   "qcli",
	Short: "A CLI tool for managing fixed-capacity circular queues",
	Long: `Queue CLI (qcli) is a command line interface for creating and managing
fixed-capacity circular queues. Items can be enqueued, dequeued and inspected,
and queue snapshots can be saved to and loaded from memory or Redis.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupService(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		// 如果没有子命令被调用，显示帮助信息
		_ = cmd.Help()
	},
}

// Execute 运行根命令并处理任何错误
// 不带参数时进入交互模式
func Execute() {
	ctx := context.Background()

	var err error
	oneShot = len(os.Args) > 1
	if !oneShot {
		if err = setupService(rootCmd); err == nil {
			runInteractiveMode(ctx)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	} else {
		err = rootCmd.ExecuteContext(ctx)
	}

	// 在程序结束时关闭队列服务
	shutdown()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	defaults := config.Default()

	flags := rootCmd.PersistentFlags()
	flags.String("store", defaults.Store, "Snapshot store: 'memory' or 'redis'")
	flags.String("redis-addr", defaults.RedisAddr, "Redis address for the redis store")
	flags.String("log-level", defaults.LogLevel, "Log level: debug, info, warn or error")
	flags.Bool("auto-save", defaults.AutoSave, "Save a snapshot after every change")
}

// loadConfig 按 默认值 < 环境变量 < 命令行参数 的顺序合并配置
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.FromEnv(config.Default())
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("store") {
		cfg.Store, _ = flags.GetString("store")
	}
	if flags.Changed("redis-addr") {
		cfg.RedisAddr, _ = flags.GetString("redis-addr")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("auto-save") {
		cfg.AutoSave, _ = flags.GetBool("auto-save")
	}

	return cfg, cfg.Validate()
}

// setupService 在第一次执行命令时创建队列服务
func setupService(cmd *cobra.Command) error {
	if queueSvc != nil {
		return nil
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	currentConfig = cfg

	logger, err = logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}

	switch cfg.Store {
	case config.StoreRedis:
		redisCfg := queueservice.DefaultRedisConfig()
		redisCfg.Addr = cfg.RedisAddr
		redisCfg.Password = cfg.RedisPassword
		redisCfg.DB = cfg.RedisDB
		snapshotStore = queueservice.NewRedisStore(redisCfg)
	default:
		snapshotStore = queueservice.NewMemoryStore()
	}

	queueSvc = queueservice.NewInMemoryService(
		queueservice.WithStore(snapshotStore),
		queueservice.WithLogger(logger),
		queueservice.WithAutoSave(cfg.AutoSave),
	)

	logger.Debug("queue service ready",
		zap.String("store", cfg.Store),
		zap.Bool("autoSave", cfg.AutoSave))
	return nil
}

// currentConfig 是生效的配置，供子命令读取默认值
var currentConfig = config.Default()

// shutdown 关闭队列服务和存储
func shutdown() {
	if queueSvc != nil {
		if err := queueSvc.Close(); err != nil {
			logger.Warn("close queue service", zap.Error(err))
		}
	}
	if closer, ok := snapshotStore.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
	queueSvc = nil
	snapshotStore = nil
}

// GetQueueService 返回队列服务实例，供子命令使用
func GetQueueService() queueservice.Service {
	return queueSvc
}

// resolveQueue 在本地没有该队列时尝试从存储加载
// 非交互模式下每条命令都从存储中的快照开始，修改后由commitQueue写回
func resolveQueue(ctx context.Context, name string) error {
	service := GetQueueService()
	if _, err := service.GetQueue(name); err == nil {
		return nil
	}

	err := service.LoadQueue(ctx, name)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, queueservice.ErrSnapshotNotFound), errors.Is(err, queueservice.ErrNoStore):
		return fmt.Errorf("queue '%s': %w", name, queueservice.ErrQueueNotFound)
	default:
		return err
	}
}

// commitQueue 在非交互模式下把修改后的队列写回存储
// 开启自动保存时每次修改已经写过快照
func commitQueue(ctx context.Context, name string) error {
	if !oneShot || currentConfig.AutoSave {
		return nil
	}

	err := GetQueueService().SaveQueue(ctx, name)
	if err != nil && !errors.Is(err, queueservice.ErrNoStore) {
		return fmt.Errorf("failed to save queue '%s': %w", name, err)
	}
	return nil
}

// dropSnapshot 在非交互模式下删除队列的快照
func dropSnapshot(ctx context.Context, name string) error {
	if !oneShot || currentConfig.AutoSave || snapshotStore == nil {
		return nil
	}

	if err := snapshotStore.Delete(ctx, name); err != nil {
		return fmt.Errorf("failed to delete snapshot of queue '%s': %w", name, err)
	}
	return nil
}
