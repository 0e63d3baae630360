package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/yippiez/calib/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "calib",
	Short: "calib runs rule-based cellular automata in the terminal",
	Long: `calib is an engine for anisotropic cellular automata: cell states
carry ordered pattern-matching rules evaluated over Moore or von Neumann
neighborhoods. This tool runs the bundled simulations or a YAML scenario.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetString("log-level")
		slog.SetDefault(logging.New(logging.ParseLevel(level)))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
}
