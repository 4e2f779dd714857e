package query

import (
	"fjacquet/txn-analyzer/internal/analyzer"

	"github.com/spf13/cobra"
)

var dateFilter analyzer.DateFilter

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the distinct transaction types in order of first appearance",
	Args:  cobra.NoArgs,
	RunE: analyzerRunE(func(cmd *cobra.Command, _ []string, a *analyzer.Analyzer) error {
		return writeValue(cmd, "unique_types", a.UniqueTransactionTypes())
	}),
}

var totalCmd = &cobra.Command{
	Use:   "total",
	Short: "Sum of all transaction amounts",
	Args:  cobra.NoArgs,
	RunE: analyzerRunE(func(cmd *cobra.Command, _ []string, a *analyzer.Analyzer) error {
		return writeValue(cmd, "total_amount", a.TotalAmount().String())
	}),
}

var debitTotalCmd = &cobra.Command{
	Use:   "debit-total",
	Short: "Sum of debit transaction amounts",
	Args:  cobra.NoArgs,
	RunE: analyzerRunE(func(cmd *cobra.Command, _ []string, a *analyzer.Analyzer) error {
		return writeValue(cmd, "total_debit_amount", a.TotalDebitAmount().String())
	}),
}

var totalByDateCmd = &cobra.Command{
	Use:   "total-by-date",
	Short: "Sum of amounts for transactions matching a year, month and/or day",
	Long: `Sum of amounts for transactions matching every given date component.
Omitted components are not constrained; --month is 1-based.`,
	Args: cobra.NoArgs,
	RunE: analyzerRunE(func(cmd *cobra.Command, _ []string, a *analyzer.Analyzer) error {
		total, err := a.TotalAmountByDate(dateFilter)
		if err != nil {
			return err
		}
		return writeValue(cmd, "total_amount", total.String())
	}),
}

func init() {
	totalByDateCmd.Flags().IntVar(&dateFilter.Year, "year", 0, "Calendar year")
	totalByDateCmd.Flags().IntVar(&dateFilter.Month, "month", 0, "Month, 1 to 12")
	totalByDateCmd.Flags().IntVar(&dateFilter.Day, "day", 0, "Day of month")
}
