package query

import (
	"fjacquet/txn-analyzer/cmd/root"
	"fjacquet/txn-analyzer/internal/analyzer"
	"fjacquet/txn-analyzer/internal/dateutils"
	"fjacquet/txn-analyzer/internal/logging"

	"github.com/spf13/cobra"
)

var (
	rangeFrom, rangeTo string
	beforeDate         string
	minAmount          string
	maxAmount          string
)

var byTypeCmd = &cobra.Command{
	Use:   "by-type TYPE",
	Short: "Transactions whose type equals TYPE exactly",
	Args:  cobra.ExactArgs(1),
	RunE: analyzerRunE(func(cmd *cobra.Command, args []string, a *analyzer.Analyzer) error {
		return writeTransactions(cmd, a.TransactionsByType(args[0]))
	}),
}

var rangeCmd = &cobra.Command{
	Use:   "range",
	Short: "Transactions dated between --from and --to, both inclusive",
	Args:  cobra.NoArgs,
	RunE: analyzerRunE(func(cmd *cobra.Command, _ []string, a *analyzer.Analyzer) error {
		from, err := parseDateFlag("from", rangeFrom)
		if err != nil {
			return err
		}
		to, err := parseDateFlag("to", rangeTo)
		if err != nil {
			return err
		}
		root.Log.Debug("Date window",
			logging.F("from", dateutils.ToISODate(from)),
			logging.F("to", dateutils.ToISODate(to)))
		txs, err := a.TransactionsInDateRange(from, to)
		if err != nil {
			return err
		}
		return writeTransactions(cmd, txs)
	}),
}

var beforeCmd = &cobra.Command{
	Use:   "before",
	Short: "Transactions dated strictly before --date",
	Args:  cobra.NoArgs,
	RunE: analyzerRunE(func(cmd *cobra.Command, _ []string, a *analyzer.Analyzer) error {
		date, err := parseDateFlag("date", beforeDate)
		if err != nil {
			return err
		}
		root.Log.Debug("Date bound", logging.F("before", dateutils.ToISODate(date)))
		txs, err := a.TransactionsBeforeDate(date)
		if err != nil {
			return err
		}
		return writeTransactions(cmd, txs)
	}),
}

var merchantCmd = &cobra.Command{
	Use:   "merchant NAME",
	Short: "Transactions whose merchant matches NAME, ignoring case",
	Args:  cobra.ExactArgs(1),
	RunE: analyzerRunE(func(cmd *cobra.Command, args []string, a *analyzer.Analyzer) error {
		return writeTransactions(cmd, a.TransactionsByMerchant(args[0]))
	}),
}

var amountRangeCmd = &cobra.Command{
	Use:   "amount-range",
	Short: "Transactions with --min <= amount <= --max",
	Args:  cobra.NoArgs,
	RunE: analyzerRunE(func(cmd *cobra.Command, _ []string, a *analyzer.Analyzer) error {
		lo, err := parseAmountFlag("min", minAmount)
		if err != nil {
			return err
		}
		hi, err := parseAmountFlag("max", maxAmount)
		if err != nil {
			return err
		}
		return writeTransactions(cmd, a.TransactionsByAmountRange(lo, hi))
	}),
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Every transaction in load order",
	Args:  cobra.NoArgs,
	RunE: analyzerRunE(func(cmd *cobra.Command, _ []string, a *analyzer.Analyzer) error {
		return writeTransactions(cmd, a.GetAllTransactions())
	}),
}

func init() {
	rangeCmd.Flags().StringVar(&rangeFrom, "from", "", "First day of the window")
	rangeCmd.Flags().StringVar(&rangeTo, "to", "", "Last day of the window")
	_ = rangeCmd.MarkFlagRequired("from")
	_ = rangeCmd.MarkFlagRequired("to")

	beforeCmd.Flags().StringVar(&beforeDate, "date", "", "Exclusive upper bound")
	_ = beforeCmd.MarkFlagRequired("date")

	amountRangeCmd.Flags().StringVar(&minAmount, "min", "", "Lowest amount, inclusive")
	amountRangeCmd.Flags().StringVar(&maxAmount, "max", "", "Highest amount, inclusive")
	_ = amountRangeCmd.MarkFlagRequired("min")
	_ = amountRangeCmd.MarkFlagRequired("max")
}
