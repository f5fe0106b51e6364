package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// saveCmd 表示save命令，保存队列快照
var saveCmd = &cobra.Command{
	Use:   "save [queue-name]",
	Short: "Save a queue snapshot to the configured store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		queueName := args[0]

		if err := GetQueueService().SaveQueue(cmd.Context(), queueName); err != nil {
			return fmt.Errorf("failed to save queue: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Queue '%s' saved.\n", queueName)
		return nil
	},
}

// loadCmd 表示load命令，从存储恢复队列
var loadCmd = &cobra.Command{
	Use:   "load [queue-name]",
	Short: "Load a queue snapshot from the configured store",
	Long: `Load a queue snapshot from the configured store.
An existing queue with the same name is replaced.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		queueName := args[0]

		service := GetQueueService()
		if err := service.LoadQueue(cmd.Context(), queueName); err != nil {
			return fmt.Errorf("failed to load queue: %w", err)
		}

		n, _ := service.Count(queueName)
		fmt.Fprintf(cmd.OutOrStdout(), "Queue '%s' loaded with %d item(s).\n", queueName, n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(loadCmd)
}
