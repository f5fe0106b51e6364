package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fyerfyer/ringq/internal/queueservice"
)

// listCmd 表示list命令，用于列出所有队列
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all queues",
	Long:  `Display a list of all available queues and their basic information.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		queues := GetQueueService().ListQueues()

		if len(queues) == 0 {
			fmt.Fprintln(out, "No queues available.")
			return
		}

		verbose, _ := cmd.Flags().GetBool("verbose")

		if verbose {
			// 详细模式：显示每个队列的完整信息
			fmt.Fprintf(out, "Found %d queue(s):\n\n", len(queues))
			for i, info := range queues {
				if i > 0 {
					fmt.Fprintln(out, "---")
				}
				fmt.Fprint(out, queueservice.FormatQueueInfo(info))
			}
			return
		}

		// 表格模式
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSTATE\tSIZE\tCAPACITY\tOPERATIONS")
		for _, info := range queues {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d enq, %d deq\n",
				info.Name,
				info.State,
				info.Stats.Size,
				info.Stats.Capacity,
				info.Stats.Enqueued,
				info.Stats.Dequeued)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolP("verbose", "v", false, "Show detailed information for each queue")
}
