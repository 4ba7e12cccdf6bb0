package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/talent-concierge/fit-scorer/internal/audit"
	"github.com/talent-concierge/fit-scorer/internal/logger"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show recruiter analytics over recorded scoring runs",
	Run: func(cmd *cobra.Command, _ []string) {
		runReport(cmd)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().String("csv", "", "export the audit log as CSV to the given file")
}

func runReport(cmd *cobra.Command) {
	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		zlog.Fatal("getting a config", zap.Error(err))
	}

	if config == nil || config.AuditDB == "" {
		zlog.Fatal("audit database path is required under the audit-db key")
	}

	store, err := audit.Open(config.AuditDB)
	if err != nil {
		zlog.Fatal("opening audit database", zap.Error(err))
	}
	defer store.Close()

	if csvPath, _ := cmd.Flags().GetString("csv"); csvPath != "" {
		if err := exportCSV(store, csvPath); err != nil {
			zlog.Fatal("exporting csv", zap.Error(err))
		}
		zlog.Info("audit log exported", zap.String("csv", csvPath))
	}

	entries, err := store.List()
	if err != nil {
		zlog.Fatal("listing scoring runs", zap.Error(err))
	}

	if len(entries) == 0 {
		zlog.Info("exiting", zap.String("reason", "no scoring runs recorded yet"))
		return
	}

	printSummary(audit.Summarize(entries))
}

func exportCSV(store *audit.Store, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv file: %w", err)
	}
	defer file.Close()

	return store.ExportCSV(file)
}

func printSummary(summary audit.Summary) {
	fmt.Printf("Total candidates: %d\n", summary.Total)
	fmt.Printf("Priority-program candidates: %d (%.0f%%)\n", summary.Priority, summary.PriorityShare*100)
	fmt.Printf("Average score: %.2f / 100\n", summary.AverageScore)
	if summary.Priority > 0 {
		fmt.Printf("Average score (priority program): %.2f / 100\n", summary.AveragePriority)
	}
	if summary.Priority < summary.Total {
		fmt.Printf("Average score (standard): %.2f / 100\n", summary.AverageStandard)
	}

	fmt.Println("\nScore distribution:")
	for _, bucket := range summary.Buckets {
		fmt.Printf("  %-8s %d\n", bucket.Label, bucket.Count)
	}
}
