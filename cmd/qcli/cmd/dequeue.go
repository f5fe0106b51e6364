package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// dequeueCmd 表示dequeue命令，用于从队列获取项目
var dequeueCmd = &cobra.Command{
	Use:   "dequeue [queue-name]",
	Short: "Remove and display items from a queue",
	Long: `Remove and display one or more items from a specified queue,
oldest first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		queueName := args[0]

		count, _ := cmd.Flags().GetInt("count")
		silent, _ := cmd.Flags().GetBool("silent")

		if count < 0 {
			return fmt.Errorf("count must be a non-negative number")
		}
		if count == 0 {
			count = 1
		}

		if err := resolveQueue(cmd.Context(), queueName); err != nil {
			return err
		}

		service := GetQueueService()
		out := cmd.OutOrStdout()

		var dequeued int
		for i := 0; i < count; i++ {
			item, err := service.DequeueItem(queueName)
			if err != nil {
				// 如果是第一个项目就失败，返回错误
				if i == 0 {
					return statusError("failed to dequeue item", err)
				}
				fmt.Fprintf(out, "Dequeued %d item(s) before encountering an error: %v\n", i, err)
				break
			}

			dequeued++
			if !silent {
				fmt.Fprintf(out, "Item %d: %s\n", i+1, item)
			}
		}

		if silent || dequeued > 1 {
			fmt.Fprintf(out, "Successfully dequeued %d item(s) from queue '%s'\n", dequeued, queueName)
		}

		return commitQueue(cmd.Context(), queueName)
	},
}

func init() {
	rootCmd.AddCommand(dequeueCmd)

	dequeueCmd.Flags().IntP("count", "c", 1, "Number of items to dequeue")
	dequeueCmd.Flags().BoolP("silent", "s", false, "Silent mode (don't print items)")
}
