package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// peekCmd 表示peek命令，查看队列头部或尾部的项目
var peekCmd = &cobra.Command{
	Use:   "peek [queue-name]",
	Short: "Show the front or rear item of a queue",
	Long: `Show the oldest (front) item of a queue without removing it.
Use --rear to show the newest item instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		queueName := args[0]
		rear, _ := cmd.Flags().GetBool("rear")

		if err := resolveQueue(cmd.Context(), queueName); err != nil {
			return err
		}

		service := GetQueueService()

		var (
			item  string
			err   error
			label = "Front"
		)
		if rear {
			label = "Rear"
			item, err = service.PeekRear(queueName)
		} else {
			item, err = service.PeekFront(queueName)
		}
		if err != nil {
			return statusError("failed to peek", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", label, item)
		return nil
	},
}

// countCmd 表示count命令，显示队列元素数量
var countCmd = &cobra.Command{
	Use:   "count [queue-name]",
	Short: "Show the number of items in a queue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		queueName := args[0]

		if err := resolveQueue(cmd.Context(), queueName); err != nil {
			return err
		}

		n, err := GetQueueService().Count(queueName)
		if err != nil {
			return statusError("failed to count", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Count = %d\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(peekCmd)
	rootCmd.AddCommand(countCmd)

	peekCmd.Flags().Bool("rear", false, "Show the newest item instead of the oldest")
}
