package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// deleteCmd 表示delete命令，销毁队列
var deleteCmd = &cobra.Command{
	Use:     "delete [queue-name]",
	Aliases: []string{"destroy"},
	Short:   "Destroy a queue",
	Long: `Destroy a queue and release its storage.
With --auto-save, or when run as a single command, the stored snapshot
is removed as well.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		queueName := args[0]

		if err := resolveQueue(cmd.Context(), queueName); err != nil {
			return err
		}

		if err := GetQueueService().DeleteQueue(queueName); err != nil {
			return statusError("failed to delete queue", err)
		}
		if err := dropSnapshot(cmd.Context(), queueName); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Queue '%s' destroyed.\n", queueName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
