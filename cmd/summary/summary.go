// Package summary implements the summary command.
package summary

import (
	"fjacquet/txn-analyzer/cmd/root"
	"fjacquet/txn-analyzer/internal/report"

	"github.com/spf13/cobra"
)

var (
	precision int32
	limit     int
)

// Cmd prints every aggregate over the loaded transactions.
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Print a summary report of the loaded transactions",
	Long: `Print a summary report of the loaded transactions: count, types, totals,
average amount, busiest months, dominant type and descriptions.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Int32Var(&precision, "precision", 0, "Fractional digits of the average amount (defaults to analysis.precision)")
	Cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of descriptions listed (defaults to analysis.description_limit)")
}

func run(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	a, err := root.LoadAnalyzer(cmd)
	if err != nil {
		return err
	}

	opts := report.SummaryOptions{
		Precision:        c.GetConfig().Analysis.Precision,
		DescriptionLimit: c.GetConfig().Analysis.DescriptionLimit,
	}
	if cmd.Flags().Changed("precision") {
		opts.Precision = precision
	}
	if cmd.Flags().Changed("limit") {
		opts.DescriptionLimit = limit
	}

	s, err := report.BuildSummary(a, opts)
	if err != nil {
		return err
	}
	root.Log.Debug("Summary built")
	return c.GetReportGenerator().WriteSummary(cmd.OutOrStdout(), s, root.OutputFormat())
}
