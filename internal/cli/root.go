package cli

import (
	"fmt"
	"os"

	"github.com/healthsift/healthsift/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "healthsift",
	Short: "healthsift - trusted-source medical Q&A assistant",
	Long: `healthsift answers medical questions from an allow-list of trusted
health sources, scores each source's credibility, and composes an
answer with a completion model.

It also fact-checks health claims circulating on social platforms
against the same model, one post at a time.

healthsift is an assistant, not a clinician: every answer carries a
disclaimer, and emergency-sounding questions are flagged for
immediate care.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number and build information for healthsift.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("healthsift v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.healthsift/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.healthsift")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match HEALTHSIFT_*
	viper.SetEnvPrefix("HEALTHSIFT")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// buildConfig assembles the effective configuration: defaults, then the
// config file, then well-known environment variables. Command flags layer on
// top in each command's RunE.
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()

	// Config file overrides
	setString := func(dst *string, key string) {
		if v := viper.GetString(key); v != "" {
			*dst = v
		}
	}
	setString(&cfg.Search.APIKey, "search.api_key")
	setString(&cfg.Search.MedicalEngineID, "search.medical_engine_id")
	setString(&cfg.Search.SocialEngineID, "search.social_engine_id")
	setString(&cfg.Search.BaseURL, "search.base_url")
	setString(&cfg.LLM.Provider, "llm.provider")
	setString(&cfg.LLM.Model, "llm.model")
	setString(&cfg.LLM.APIKey, "llm.api_key")
	setString(&cfg.LLM.BaseURL, "llm.base_url")
	setString(&cfg.Feedback.SpreadsheetID, "feedback.spreadsheet_id")
	setString(&cfg.Feedback.SheetRange, "feedback.sheet_range")
	setString(&cfg.Feedback.APIKey, "feedback.api_key")
	setString(&cfg.Feedback.BaseURL, "feedback.base_url")

	// Environment fallbacks for credentials
	if cfg.Search.APIKey == "" {
		cfg.Search.APIKey = os.Getenv("GOOGLE_API_KEY")
	}
	if cfg.Feedback.APIKey == "" {
		cfg.Feedback.APIKey = cfg.Search.APIKey
	}

	cfg.Output.Verbose = verbose
	return cfg
}

// resolveLLMKey fills the provider API key from the environment. Missing
// credentials for a key-requiring provider fail here, before any retrieval
// work starts.
func resolveLLMKey(cfg *model.Config) error {
	if cfg.LLM.APIKey != "" {
		return nil
	}

	switch cfg.LLM.Provider {
	case "openai", "":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}
	return nil
}
