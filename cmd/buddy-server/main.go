package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "buddy-server",
	Short: "Insurance Buddy site and plan catalog server",
	Long: `buddy-server serves the Insurance Buddy marketing site, the plan finder
and the admin JSON API.

Run without a subcommand to start the server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to buddy.toml (default: $BUDDY_CONFIG, then buddy.toml next to the binary)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(createSuperuserCmd)
	rootCmd.AddCommand(checkCatalogCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
