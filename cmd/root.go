package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/lectio/internal/logging"
	"github.com/abhisek/lectio/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "lectio",
	Short: "Reading comprehension quizzes for primary-school pupils",
	Long:  "Lectio turns a photo of a printed French text into a ten-question reading quiz, evaluates the pupil's answers and writes a score report.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LECTIO_DB env var)")
	rootCmd.PersistentFlags().String("log-file", "", "Log file path, or stdout/stderr (default $XDG_STATE_HOME/lectio/lectio.log)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")

	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LECTIO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// newLogger builds the logger from the persistent log flags.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	path, _ := cmd.Flags().GetString("log-file")
	level, _ := cmd.Flags().GetString("log-level")
	return logging.New(logging.Config{Level: level, OutputPath: path})
}

// openStore opens the event store at the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}
