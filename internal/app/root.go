// Package app contains the Cobra command tree for epscore.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
	flagDB      string
)

var rootCmd = &cobra.Command{
	Use:   "epscore",
	Short: "Activity scoring for Members of the European Parliament",
	Long: `epscore turns European Parliament activity dumps (speeches, reports,
amendments, questions, motions, opinions, declarations, roll-call votes and
office holdings) into per-member, per-term composite scores and rankings.

Run 'epscore' with no arguments for an overview of the subcommands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("epscore", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  aggregate  Build per-member activity and role counts from the dumps")
		fmt.Println("  score      Compute and rank composite scores for a term")
		fmt.Println("  outliers   Show IQR outlier bounds per indicator")
		fmt.Println("  roles      Show how free-text office titles were classified")
		fmt.Println("  doctor     Check which data sources are available")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/epscore/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite database path (default: ~/.config/epscore/epscore.db)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}
