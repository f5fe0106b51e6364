package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fyerfyer/ringq/internal/queueservice"
)

// createCmd 表示create命令，用于创建新队列
var createCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new queue",
	Long: `Create a new fixed-capacity circular queue.
The capacity cannot be changed after the queue is created.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		capacity, _ := cmd.Flags().GetInt("capacity")
		if !cmd.Flags().Changed("capacity") {
			capacity = currentConfig.DefaultCapacity
		}

		// 非交互模式下存储中已有同名快照时视为已存在
		if oneShot {
			if err := resolveQueue(cmd.Context(), name); err != nil && !errors.Is(err, queueservice.ErrQueueNotFound) {
				return err
			}
		}

		service := GetQueueService()
		if err := service.CreateQueue(name, queueservice.QueueOptions{Capacity: capacity}); err != nil {
			return statusError("failed to create queue", err)
		}
		if err := commitQueue(cmd.Context(), name); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Queue '%s' created successfully.\n", name)
		fmt.Fprintf(out, "Capacity: %d\n", capacity)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().IntP("capacity", "c", 0, "Queue capacity (defaults to the configured default capacity)")
}
