package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/neon-law-foundation/notation/internal/config"
	"github.com/neon-law-foundation/notation/internal/logging"
	"github.com/spf13/cobra"
)

// errFindings makes the process exit with status 1 without printing an error.
var errFindings = errors.New("validation findings")

var (
	cfg    config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "notation",
	Short: "Validate notation documents",
	Long: `notation checks notation documents (YAML frontmatter plus a Markdown body)
for structural errors, broken state machines, unknown questions and template
variable problems, and validates the JSON fields stored alongside them.

Settings come from NOTATION_* environment variables; flags override them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.FromEnv()
		applyFlags(cmd, &cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}
		l, err := logging.FromConfig(cfg.LogFormat, cfg.LogLevel)
		if err != nil {
			return err
		}
		logger = l
		slog.SetDefault(logger)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errFindings) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	flags.String("log-format", "", "Log format: text or json")
	flags.String("registry", "", "Registry backend: memory, redis or postgres")
	flags.String("questions", "", "YAML or JSON file of question codes (memory registry)")
	flags.String("notations", "", "YAML or JSON file of existing notation codes (memory registry)")
	flags.String("redis-url", "", "Redis URL (redis registry)")
	flags.String("database-url", "", "PostgreSQL DSN (postgres registry)")
	flags.Int("concurrency", 0, "Maximum concurrent question lookups")
}

// applyFlags overrides cfg with every flag set on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	str := func(name string, dst *string) {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	str("log-level", &cfg.LogLevel)
	str("log-format", &cfg.LogFormat)
	str("registry", &cfg.Registry)
	str("questions", &cfg.QuestionsFile)
	str("notations", &cfg.NotationsFile)
	str("redis-url", &cfg.RedisURL)
	str("database-url", &cfg.DatabaseURL)
	if flags.Changed("concurrency") {
		cfg.LookupConcurrency, _ = flags.GetInt("concurrency")
	}
	if flags.Lookup("addr") != nil && flags.Changed("addr") {
		cfg.HTTPAddr, _ = flags.GetString("addr")
	}
}
