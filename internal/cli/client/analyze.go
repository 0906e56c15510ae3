package client

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clauselens/clauselens/internal/domain"
	"github.com/clauselens/clauselens/internal/service"
)

// AnalyzeCmd creates the analyze command.
func AnalyzeCmd() *cobra.Command {
	var normalize bool

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Analyze a contract document",
		Long:  "Runs the full analysis pipeline on a plain-text contract read from a file or stdin and prints the report.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			outputJSON, _ := cmd.Flags().GetBool("output")
			return runAnalyze(cmd, path, normalize, outputJSON)
		},
	}

	cmd.Flags().BoolVar(&normalize, "normalize", false, "Strip headers, footers and page numbers before analysis")

	return cmd
}

func runAnalyze(cmd *cobra.Command, path string, normalize, outputJSON bool) error {
	text, err := readDocument(path)
	if err != nil {
		return err
	}

	svc := service.NewAnalysisService()
	report, err := svc.Analyze(cmd.Context(), service.AnalyzeInput{
		Text:      text,
		Normalize: normalize,
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if outputJSON {
		output, _ := json.MarshalIndent(report, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	printReport(report)
	return nil
}

func printReport(report *domain.AnalysisReport) {
	fmt.Printf("Report: %s\n", report.ID)
	fmt.Printf("Purpose: %s\n", report.Summary.Purpose)
	if len(report.Summary.KeyParties) > 0 {
		fmt.Println("Parties:")
		for _, party := range report.Summary.KeyParties {
			fmt.Printf("  - %s\n", party)
		}
	}
	fmt.Printf("Length: %s\n", report.Summary.ContractLength)
	fmt.Printf("Complexity: %d (%s)\n", report.Complexity.Score, report.Complexity.Label)

	fmt.Println()
	fmt.Printf("Clauses: %d\n", len(report.Clauses))
	fmt.Printf("Risk: %d high, %d medium, %d low\n",
		len(report.RiskMap.High), len(report.RiskMap.Medium), len(report.RiskMap.Low))
	for _, assessment := range report.RiskMap.High {
		fmt.Printf("  [high] %s: %s\n", assessment.Clause.Title, assessment.Reason)
	}

	if len(report.Compliance) > 0 {
		fmt.Println()
		fmt.Println("Compliance findings:")
		for _, issue := range report.Compliance {
			fmt.Printf("  [%s] %s\n", issue.Severity, issue.Issue)
			fmt.Printf("    %s\n", issue.Details)
		}
	}

	if !report.Costs.Total.IsZero() {
		fmt.Println()
		fmt.Println("Costs:")
		fmt.Printf("  One-time: %d item(s), recurring: %d, fees: %d\n",
			len(report.Costs.OneTimeCosts), len(report.Costs.RecurringCosts), len(report.Costs.Fees))
		fmt.Printf("  Total: %s\n", report.Costs.Total.String())
	}

	if len(report.Timeline.Milestones) > 0 {
		fmt.Println()
		fmt.Println("Timeline:")
		for _, milestone := range report.Timeline.Milestones {
			fmt.Printf("  %s  %s\n", milestone.Date.Format("2006-01-02"), milestone.Label)
		}
	}
}
