package cmd

import (
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/talent-concierge/fit-scorer/internal/concierge"
	"github.com/talent-concierge/fit-scorer/internal/logger"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Pick a concierge call slot and write the confirmation",
	Run: func(cmd *cobra.Command, _ []string) {
		runSchedule(cmd)
	},
}

func init() {
	rootCmd.AddCommand(scheduleCmd)

	scheduleCmd.Flags().StringP("candidate", "c", "", "candidate name")
	scheduleCmd.Flags().StringP("output", "o", "", "confirmation file path. Default is derived from the candidate name.")
	scheduleCmd.Flags().IntP("slots", "n", concierge.DefaultSlotCount, "number of call slots to offer")

	scheduleCmd.MarkFlagRequired("candidate")
}

// runSchedule is the candidate-facing command.
func runSchedule(cmd *cobra.Command) {
	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		zlog.Fatal("getting a config", zap.Error(err))
	}

	if config == nil || config.Role == "" {
		zlog.Fatal("role title is required under the role key")
	}

	candidate, _ := cmd.Flags().GetString("candidate")
	count, _ := cmd.Flags().GetInt("slots")

	slot, err := pickSlot(concierge.Slots(time.Now(), count))
	if err != nil {
		zlog.Fatal("picking a slot", zap.Error(err))
	}

	output, _ := cmd.Flags().GetString("output")
	if err := writeConfirmation(candidate, config.Role, slot, output, zlog); err != nil {
		zlog.Fatal("writing confirmation", zap.Error(err))
	}
}
