package client

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clauselens/clauselens/internal/domain"
	"github.com/clauselens/clauselens/internal/service"
)

// CompareCmd creates the compare command.
func CompareCmd() *cobra.Command {
	var normalize bool

	cmd := &cobra.Command{
		Use:   "compare <old-file> <new-file>",
		Short: "Compare two revisions of a contract",
		Long:  "Detects clauses added, removed, or modified between two plain-text contract revisions.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("output")
			return runCompare(cmd, args[0], args[1], normalize, outputJSON)
		},
	}

	cmd.Flags().BoolVar(&normalize, "normalize", false, "Strip headers, footers and page numbers before comparison")

	return cmd
}

func runCompare(cmd *cobra.Command, oldPath, newPath string, normalize, outputJSON bool) error {
	oldText, err := readDocument(oldPath)
	if err != nil {
		return err
	}
	newText, err := readDocument(newPath)
	if err != nil {
		return err
	}

	svc := service.NewAnalysisService()
	result, err := svc.Compare(cmd.Context(), oldText, newText, normalize)
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	if outputJSON {
		output, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	printComparison(result)
	return nil
}

func printComparison(result *domain.ComparisonResult) {
	fmt.Printf("Added: %d, removed: %d, modified: %d\n",
		len(result.Added), len(result.Removed), len(result.Modified))

	for _, clause := range result.Added {
		fmt.Printf("  + %s (%s)\n", clause.Title, clause.Category)
	}
	for _, clause := range result.Removed {
		fmt.Printf("  - %s (%s)\n", clause.Title, clause.Category)
	}
	for _, modified := range result.Modified {
		fmt.Printf("  ~ %s (%d change(s))\n", modified.NewClause.Title, len(modified.Differences))
		for _, diff := range modified.Differences {
			fmt.Printf("      [%s@%d] %s\n", diff.Type, diff.Position, diff.Text)
		}
	}
}
