package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fyerfyer/ringq/internal/queueservice"
)

// statsCmd 表示stats命令，用于显示队列的统计信息
var statsCmd = &cobra.Command{
	Use:   "stats [queue-name]",
	Short: "Display queue statistics",
	Long: `Display detailed statistics for a specified queue.
This includes size, capacity, operation counts and rejections.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		queueName := args[0]

		if err := resolveQueue(cmd.Context(), queueName); err != nil {
			return err
		}

		stats, err := GetQueueService().QueueStats(queueName)
		if err != nil {
			return fmt.Errorf("failed to get queue statistics: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Statistics for queue '%s':\n\n", queueName)
		fmt.Fprint(out, queueservice.FormatQueueStats(stats))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
