package cmd

import (
	"fmt"
	"log"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/talent-concierge/fit-scorer/internal/scoring"
)

const (
	app = "fit-scorer"
)

type Config struct {
	Role               string           `mapstructure:"role"`
	JobDescription     string           `mapstructure:"job-description"`
	JobDescriptionFile string           `mapstructure:"job-description-file"`
	AuditDB            string           `mapstructure:"audit-db"`
	Criteria           []map[string]any `mapstructure:"criteria"`
	AI                 *AIConfig        `mapstructure:"ai"`
}

type AIConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Provider        string        `mapstructure:"provider"`
	MinimumStrength float64       `mapstructure:"minimum-strength"`
	Gemini          *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "fit-scorer scores a resume against weighted criteria and prepares the concierge call",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is fit-scorer.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config is needed only for the score, schedule and report commands.
	if scoreCmd.CalledAs() == "" && scheduleCmd.CalledAs() == "" && reportCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// We can't proceed if the config file parsed with error.
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

// criteria decodes the raw criterion maps from the config file. Weights come
// out of YAML as ints, so decoding is weakly typed.
func (c *Config) criteria() ([]scoring.Criterion, error) {
	if len(c.Criteria) == 0 {
		return nil, fmt.Errorf("at least one criterion is required under the criteria key")
	}

	var criteria []scoring.Criterion
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &criteria,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(c.Criteria); err != nil {
		return nil, fmt.Errorf("decoding criteria: %w", err)
	}

	return criteria, nil
}
