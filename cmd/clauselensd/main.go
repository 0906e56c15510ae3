package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clauselens/clauselens/internal/cli"
	"github.com/clauselens/clauselens/internal/cli/admin"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clauselensd",
		Short: "Clauselens daemon",
		Long:  "Clauselens daemon for running the contract analysis API server",
	}

	cli.AddHelpJSONFlag(rootCmd)
	rootCmd.AddCommand(admin.ServeCmd())

	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	cli.CheckHelpJSON(rootCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
