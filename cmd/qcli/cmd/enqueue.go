package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/fyerfyer/ringq/internal/queueservice"
)

// enqueueCmd 表示enqueue命令，用于向队列添加项目
var enqueueCmd = &cobra.Command{
	Use:   "enqueue [queue-name]",
	Short: "Add items to a queue",
	Long: `Add one or more items to a specified queue.
You can add a single item or read multiple items from a file.
Items are rejected, not overwritten, once the queue is full.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		queueName := args[0]

		item, _ := cmd.Flags().GetString("item")
		filePath, _ := cmd.Flags().GetString("file")
		perSecond, _ := cmd.Flags().GetFloat64("rate")

		if item != "" && filePath != "" {
			return fmt.Errorf("cannot specify both --item and --file flags at the same time")
		}
		if item == "" && filePath == "" {
			return fmt.Errorf("must specify either --item or --file flag")
		}
		if perSecond < 0 {
			return fmt.Errorf("rate must be a non-negative number")
		}

		if err := resolveQueue(cmd.Context(), queueName); err != nil {
			return err
		}

		service := GetQueueService()
		out := cmd.OutOrStdout()

		// 从文件批量入队
		if filePath != "" {
			file, err := os.Open(filePath)
			if err != nil {
				return fmt.Errorf("failed to open file: %w", err)
			}
			defer file.Close()

			err = enqueueLines(cmd.Context(), out, service, queueName, file, perSecond)
			// 中途被打断时已入队的元素同样需要写回
			return errors.Join(err, commitQueue(cmd.Context(), queueName))
		}

		if err := service.EnqueueItem(queueName, item); err != nil {
			return statusError("failed to enqueue item", err)
		}
		if err := commitQueue(cmd.Context(), queueName); err != nil {
			return err
		}

		fmt.Fprintf(out, "Successfully enqueued item to queue '%s'\n", queueName)
		return nil
	},
}

// enqueueLines 逐行读取项目并入队，perSecond大于0时限制入队速率
func enqueueLines(ctx context.Context, out io.Writer, service queueservice.Service, queueName string, r io.Reader, perSecond float64) error {
	var limiter *rate.Limiter
	if perSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}

	scanner := bufio.NewScanner(r)
	var enqueued, failed int

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue // 跳过空行
		}

		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return fmt.Errorf("bulk enqueue interrupted: %w", err)
			}
		}

		if err := service.EnqueueItem(queueName, line); err != nil {
			failed++
			fmt.Fprintf(out, "Failed to enqueue: %s - %v\n", line, err)
		} else {
			enqueued++
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}

	fmt.Fprintf(out, "Bulk enqueue to queue '%s' completed: %d items enqueued, %d failed\n",
		queueName, enqueued, failed)
	return nil
}

func init() {
	rootCmd.AddCommand(enqueueCmd)

	enqueueCmd.Flags().StringP("item", "i", "", "Item to enqueue")
	enqueueCmd.Flags().StringP("file", "f", "", "File containing items to enqueue (one per line)")
	enqueueCmd.Flags().Float64P("rate", "r", 0, "Maximum items per second for --file (0 for unlimited)")
}
