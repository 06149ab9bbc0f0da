package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "adpilot",
	Short: "adpilot keeps ad platform campaigns in line with URL inventory and spend",
	Long: `adpilot reconciles campaigns on an external ad platform with locally
tracked click inventory and daily spend. Configuration is read from
environment variables.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

// main is the entry point of adpilot. Exit code 1 signals any failure of
// the selected command.
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
