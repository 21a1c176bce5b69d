package fitcoach

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	dbPath    string
	configDir string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "fitcoach",
	Short: "fitcoach plans workouts, meals, and recovery from your terminal",
	Long: "fitcoach is a local-first training and nutrition companion: weekly workout plans,\n" +
		"seasonal meal plans with shopping lists, hydration and readiness tracking, and\n" +
		"macro targets, all stored in a single SQLite database.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		out := io.Discard
		level := slog.LevelInfo
		if verbose {
			out = cmd.ErrOrStderr()
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})))
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "Directory holding config.yaml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
