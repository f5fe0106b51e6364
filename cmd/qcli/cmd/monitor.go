package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/fyerfyer/ringq/queue"
)

// monitorCmd 表示monitor命令，定时刷新队列的统计信息
var monitorCmd = &cobra.Command{
	Use:   "monitor [queue-name]",
	Short: "Watch a queue's statistics",
	Long: `Periodically print a queue's size, operation counters and throughput.
Stops on Ctrl+C, or after --duration when it is set.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		queueName := args[0]

		interval, _ := cmd.Flags().GetDuration("interval")
		duration, _ := cmd.Flags().GetDuration("duration")
		if interval <= 0 {
			return fmt.Errorf("interval must be positive")
		}

		if err := resolveQueue(cmd.Context(), queueName); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if duration > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, duration)
			defer cancel()
		}

		return watchQueue(ctx, cmd.OutOrStdout(), queueName, interval)
	},
}

// sample 是一次采样的统计信息
type sample struct {
	stats queue.Stats
	at    time.Time
}

// watchQueue 每隔interval输出一次队列统计，直到ctx结束
func watchQueue(ctx context.Context, out io.Writer, queueName string, interval time.Duration) error {
	service := GetQueueService()

	first, err := service.QueueStats(queueName)
	if err != nil {
		return statusError("failed to read queue statistics", err)
	}
	prev := sample{stats: first, at: time.Now()}

	fmt.Fprintf(out, "Watching queue '%s' every %v\n", queueName, interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(out, "Monitoring stopped.")
			return nil
		case now := <-ticker.C:
			stats, err := service.QueueStats(queueName)
			if err != nil {
				return statusError("failed to read queue statistics", err)
			}
			cur := sample{stats: stats, at: now}
			renderSample(out, queueName, prev, cur)
			prev = cur
		}
	}
}

// renderSample 输出一行统计，吞吐量按两次采样的差值计算
func renderSample(out io.Writer, queueName string, prev, cur sample) {
	secs := cur.at.Sub(prev.at).Seconds()
	var inRate, outRate float64
	if secs > 0 {
		inRate = float64(cur.stats.Enqueued-prev.stats.Enqueued) / secs
		outRate = float64(cur.stats.Dequeued-prev.stats.Dequeued) / secs
	}

	s := cur.stats
	fmt.Fprintf(out, "[%s] %s %d/%d (%.1f%%) in=%d out=%d rejected=%d empty-reads=%d | %.2f in/s %.2f out/s\n",
		cur.at.Format("15:04:05"), queueName,
		s.Size, s.Capacity, s.Utilization()*100,
		s.Enqueued, s.Dequeued, s.Rejected, s.EmptyReads,
		inRate, outRate)
}

func init() {
	rootCmd.AddCommand(monitorCmd)

	monitorCmd.Flags().DurationP("interval", "i", time.Second, "Refresh interval")
	monitorCmd.Flags().DurationP("duration", "d", 0, "Stop after this long (0 runs until interrupted)")
}
