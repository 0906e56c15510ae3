package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clauselens/clauselens/internal/cli"
	"github.com/clauselens/clauselens/internal/cli/client"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "clauselens",
		Short: "Clauselens CLI - Legal contract analysis",
		Long: `Clauselens CLI analyzes plain-text legal contracts locally.

Documents are read from files or stdin; no server is required.`,
		Version: version,
	}

	rootCmd.PersistentFlags().Bool("output", false, "Output as JSON")
	cli.AddHelpJSONFlag(rootCmd)

	rootCmd.AddCommand(client.AnalyzeCmd())
	rootCmd.AddCommand(client.CompareCmd())

	cli.CheckHelpJSON(rootCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
