package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/talent-concierge/fit-scorer/internal/ai/gemini"
	"github.com/talent-concierge/fit-scorer/internal/audit"
	"github.com/talent-concierge/fit-scorer/internal/concierge"
	"github.com/talent-concierge/fit-scorer/internal/logger"
	"github.com/talent-concierge/fit-scorer/internal/resume"
	"github.com/talent-concierge/fit-scorer/internal/scoring"
	"github.com/talent-concierge/fit-scorer/internal/secrets"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against the configured weighted criteria",
	Run: func(cmd *cobra.Command, _ []string) {
		runScore(cmd)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringP("resume", "r", "", "path to the candidate resume (.txt or .md)")
	scoreCmd.Flags().StringP("candidate", "c", "", "candidate name")
	scoreCmd.Flags().Bool("priority-program", false, "candidate counts toward the national hiring program")
	scoreCmd.Flags().BoolP("yes", "y", false, "non-interactive mode: skip the booking prompt")

	scoreCmd.MarkFlagRequired("resume")
	scoreCmd.MarkFlagRequired("candidate")
}

// runScore is the recruiter-facing command: score, explain, prepare the call.
func runScore(cmd *cobra.Command) {
	ctx := context.Background()

	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		zlog.Fatal("getting a config", zap.Error(err))
	}

	zlog.Info("starting the fit-scorer", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	zlog.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config == nil {
		zlog.Fatal("config is required")
	}

	if strings.TrimSpace(config.Role) == "" {
		zlog.Fatal("role title is required under the role key")
	}

	criteria, err := config.criteria()
	if err != nil {
		zlog.Fatal("loading criteria", zap.Error(err))
	}

	resumeFile, _ := cmd.Flags().GetString("resume")
	resumeText, err := resume.Load(resumeFile)
	if err != nil {
		zlog.Fatal("loading resume", zap.Error(err))
	}

	jobDescription, err := resolveJobDescription(config)
	if err != nil {
		zlog.Fatal("loading job description", zap.Error(err))
	}

	if config.AI != nil && config.AI.Enabled {
		matcher, err := newAIMatcher(ctx, config.AI, zlog)
		if err != nil {
			zlog.Warn("falling back to keyword matching", zap.Error(err))
		} else {
			for i := range criteria {
				criteria[i].Matcher = matcher
			}
		}
	}

	result, err := scoring.Score(ctx, scoring.Input{
		JobDescription: jobDescription,
		ResumeText:     resumeText,
		Criteria:       criteria,
	})
	if err != nil {
		zlog.Fatal("scoring failed", zap.Error(err))
	}

	candidate, _ := cmd.Flags().GetString("candidate")
	priority, _ := cmd.Flags().GetBool("priority-program")

	zlog.Info("scoring completed",
		zap.String("candidate", candidate),
		zap.String("role", config.Role),
		zap.Float64("fit_score", result.Percent()),
		zap.Int("criteria", len(criteria)),
	)

	fmt.Printf("Fit Score: %.2f / 100\n\n", result.Percent())
	fmt.Println("Explainability:")
	fmt.Println(result.Explanation())

	fmt.Println("\nConcierge Call Script:")
	fmt.Println(concierge.Script(candidate, config.Role, result.TopStrengths(2)))

	if config.AuditDB != "" {
		if err := recordRun(config, candidate, priority, criteria, result); err != nil {
			zlog.Warn("recording audit entry failed", zap.Error(err))
		} else {
			zlog.Info("audit entry recorded", zap.String("audit_db", config.AuditDB))
		}
	}

	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		return
	}

	if err := offerBooking(candidate, config.Role, zlog); err != nil {
		zlog.Fatal("booking failed", zap.Error(err))
	}
}

func resolveJobDescription(config *Config) (string, error) {
	if strings.TrimSpace(config.JobDescription) != "" {
		return config.JobDescription, nil
	}

	if strings.TrimSpace(config.JobDescriptionFile) == "" {
		return "", nil
	}

	data, err := os.ReadFile(config.JobDescriptionFile)
	if err != nil {
		return "", fmt.Errorf("reading job description file: %w", err)
	}

	return string(data), nil
}

func newAIMatcher(ctx context.Context, cfg *AIConfig, zlog *zap.Logger) (scoring.Matcher, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required when the ai matcher is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	matcherLogger := logger.WithMatcherFields(zlog, "gemini", cfg.Gemini.Model)

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, matcherLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewMatcher(generator, cfg.MinimumStrength, cfg.Gemini.MaxLogLength, matcherLogger), nil
}

func recordRun(config *Config, candidate string, priority bool, criteria []scoring.Criterion, result *scoring.Result) error {
	store, err := audit.Open(config.AuditDB)
	if err != nil {
		return err
	}
	defer store.Close()

	entry, err := audit.NewEntry(candidate, config.Role, priority, criteria, result)
	if err != nil {
		return err
	}

	return store.Record(entry)
}

func offerBooking(candidate, role string, zlog *zap.Logger) error {
	prompt := promptui.Select{
		Label: "Book a concierge call?",
		Items: []string{PromptYes, PromptNo},
	}

	_, action, err := prompt.Run()
	if err != nil {
		return err
	}

	if action == PromptNo {
		zlog.Info("exiting", zap.String("reason", "got no from prompt"))
		return nil
	}

	slot, err := pickSlot(concierge.Slots(time.Now(), concierge.DefaultSlotCount))
	if err != nil {
		return err
	}

	return writeConfirmation(candidate, role, slot, "", zlog)
}

func pickSlot(slots []string) (string, error) {
	slotPrompt := promptui.Select{
		Label: "Choose a call slot and press ENTER",
		Items: slots,
	}

	_, slot, err := slotPrompt.Run()
	return slot, err
}

func writeConfirmation(candidate, role, slot, path string, zlog *zap.Logger) error {
	if path == "" {
		path = strings.ReplaceAll(candidate, " ", "_") + "_confirmation.txt"
	}

	confirmation := concierge.Confirmation{
		Candidate: candidate,
		Role:      role,
		Slot:      slot,
	}

	if err := confirmation.WriteFile(path); err != nil {
		return err
	}

	zlog.Info("concierge call booked",
		zap.String("candidate", candidate),
		zap.String("slot", slot),
		zap.String("confirmation", path),
	)

	return nil
}
