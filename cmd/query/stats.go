package query

import (
	"fjacquet/txn-analyzer/cmd/root"
	"fjacquet/txn-analyzer/internal/analyzer"

	"github.com/spf13/cobra"
)

var (
	averagePrecision int32
	monthType        string
)

var averageCmd = &cobra.Command{
	Use:   "average",
	Short: "Mean transaction amount with a fixed number of fractional digits",
	Args:  cobra.NoArgs,
	RunE: analyzerRunE(func(cmd *cobra.Command, _ []string, a *analyzer.Analyzer) error {
		precision := analyzer.DefaultPrecision
		if c, err := root.GetContainer(); err == nil {
			precision = c.GetConfig().Analysis.Precision
		}
		if cmd.Flags().Changed("precision") {
			precision = averagePrecision
		}
		avg, err := a.AverageAmount(precision)
		return writeOptional(cmd, "average_amount", avg, err)
	}),
}

var monthCmd = &cobra.Command{
	Use:   "month",
	Short: "Month with the most transactions, optionally of one --type",
	Args:  cobra.NoArgs,
	RunE: analyzerRunE(func(cmd *cobra.Command, _ []string, a *analyzer.Analyzer) error {
		name, err := a.MostTransactionsMonth(monthType)
		return writeOptional(cmd, "month", name, err)
	}),
}

var debitMonthCmd = &cobra.Command{
	Use:   "debit-month",
	Short: "Month with the most debit transactions",
	Args:  cobra.NoArgs,
	RunE: analyzerRunE(func(cmd *cobra.Command, _ []string, a *analyzer.Analyzer) error {
		name, err := a.MostDebitTransactionsMonth()
		return writeOptional(cmd, "month", name, err)
	}),
}

var dominantCmd = &cobra.Command{
	Use:   "dominant",
	Short: "Whether debit or credit transactions are more numerous",
	Args:  cobra.NoArgs,
	RunE: analyzerRunE(func(cmd *cobra.Command, _ []string, a *analyzer.Analyzer) error {
		return writeValue(cmd, "dominant_type", a.DominantType())
	}),
}

func init() {
	averageCmd.Flags().Int32Var(&averagePrecision, "precision", analyzer.DefaultPrecision, "Fractional digits (defaults to analysis.precision)")
	monthCmd.Flags().StringVar(&monthType, "type", "", "Only count transactions of this type")
}
