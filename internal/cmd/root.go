package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "action-sync-workflows",
	Short: "Propagate workflow files to every repository tagged with a topic",
	Long: `action-sync-workflows keeps CI configuration consistent across a fleet of
repositories. It discovers every non-archived repository of a user or
organization that carries a given topic, then reconciles a local directory of
workflow files into each repository's .github/workflows directory, committing
only the files whose content actually changed.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
