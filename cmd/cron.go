package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"obracalc.GO/config"
	"obracalc.GO/cron"
)

var cronJobName string

var cronStartCmd = &cobra.Command{
	Use:   "cron:start",
	Short: "Start the job scheduler, or run one job by name and exit",
	Run: func(cmd *cobra.Command, args []string) {
		if cronJobName != "" {
			runSingleJob(strings.ToLower(cronJobName), args)
			return
		}
		fmt.Println("Starting scheduler...")
		c := cron.StartCron()
		defer c.Stop()
		fmt.Println("Scheduler running. Ctrl+C to exit.")
		select {}
	},
}

func runSingleJob(name string, args []string) {
	if job, ok := config.CronJobs[name]; ok {
		fmt.Printf("Running job %s\n", name)
		job.Job(args...)
		return
	}
	if job, ok := cron.Jobs()[name]; ok {
		fmt.Printf("Running job %s\n", name)
		job.Run(args...)
		return
	}
	fmt.Printf("Unknown job: %s\n", name)
	os.Exit(1)
}

func init() {
	cronStartCmd.Flags().StringVarP(&cronJobName, "job", "j", "", "Run a single job by name and exit")
	rootCmd.AddCommand(cronStartCmd)
}
