package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/clashlens/clashlens/config"
	"github.com/clashlens/clashlens/filter"
	"github.com/clashlens/clashlens/roster"
	"github.com/clashlens/clashlens/royale"
)

var (
	cfgFile    string
	cfg        *config.Config
	logger     zerolog.Logger
	client     *royale.Client
	operations *roster.Operations

	// Command flags
	filterExpr  string
	preset      string
	enrich      bool
	showDetails bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "clashlens",
	Short: "A CLI for browsing Clash Royale players, clans and rankings",
	Long: `clashlens is a CLI for the community Clash Royale API. It shows player
profiles, clan rosters with on-demand profile enrichment, battle feeds,
leaderboards and game constants, with expression filters for slicing
clan rosters.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

// initializeApp initializes the configuration and clients
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// The developer key may come from the environment instead of the file
	if key := os.Getenv("CLASHLENS_API_KEY"); key != "" {
		cfg.API.Key = key
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create the API client
	opts := []royale.Option{}
	if cfg.API.Key != "" {
		opts = append(opts, royale.WithDeveloperKey(cfg.API.Key))
	}
	if cfg.API.Timeout > 0 {
		opts = append(opts, royale.WithTimeout(cfg.API.Timeout))
	}

	client, err = royale.NewClient(cfg.API.URL, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	operations = roster.NewOperations(client, logger)
	operations.SetConcurrency(cfg.Roster.Concurrency)

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format, colored only when stderr is a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// getFilterExpression determines the filter expression to use
func getFilterExpression() (string, error) {
	// Priority: command line filter > preset > config default
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if expression, ok := cfg.Filters.Presets[preset]; ok {
			return expression, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return cfg.Filters.Default, nil
}

// memberPredicate compiles a filter expression into a roster predicate.
// Shorthand syntax is converted to expr syntax first.
func memberPredicate(expression string) (func(roster.MemberInfo) bool, error) {
	if filter.IsShorthandFilter(expression) {
		converted, err := filter.ConvertShorthandFilter(expression)
		if err != nil {
			return nil, fmt.Errorf("invalid shorthand filter: %w", err)
		}
		logger.Debug().Str("shorthand", expression).Str("expression", converted).Msg("Converted shorthand filter")
		expression = converted
	}

	compiled, err := filter.CompileFilter(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}

	return compiled.Evaluate, nil
}
