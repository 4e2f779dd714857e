// Package query implements the query command and one subcommand per analyzer operation.
package query

import (
	"errors"
	"fmt"
	"time"

	"fjacquet/txn-analyzer/cmd/root"
	"fjacquet/txn-analyzer/internal/analyzer"
	"fjacquet/txn-analyzer/internal/dateutils"
	"fjacquet/txn-analyzer/internal/logging"
	"fjacquet/txn-analyzer/internal/models"
	"fjacquet/txn-analyzer/internal/report"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// Cmd groups the single-operation query commands.
var Cmd = &cobra.Command{
	Use:   "query",
	Short: "Run a single query over the loaded transactions",
	Long: `Run a single query over the loaded transactions and print its result
in the selected output format.`,
}

func init() {
	Cmd.AddCommand(
		typesCmd, totalCmd, totalByDateCmd, debitTotalCmd,
		byTypeCmd, rangeCmd, beforeCmd, merchantCmd, amountRangeCmd, allCmd,
		averageCmd, monthCmd, debitMonthCmd, dominantCmd,
		findCmd, descriptionsCmd,
	)
}

// analyzerRunE adapts a function that needs the loaded analyzer into a cobra RunE.
func analyzerRunE(fn func(cmd *cobra.Command, args []string, a *analyzer.Analyzer) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := root.LoadAnalyzer(cmd)
		if err != nil {
			return err
		}
		return fn(cmd, args, a)
	}
}

func writeValue(cmd *cobra.Command, label string, value interface{}) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	root.Log.Debug("Query answered", logging.F(logging.FieldOperation, cmd.Name()))
	return c.GetReportGenerator().WriteValue(cmd.OutOrStdout(), label, value, root.OutputFormat())
}

func writeTransactions(cmd *cobra.Command, txs []models.Transaction) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	root.Log.Debug("Query matched transactions",
		logging.F(logging.FieldOperation, cmd.Name()),
		logging.F(logging.FieldCount, len(txs)))
	return c.GetReportGenerator().WriteTransactions(cmd.OutOrStdout(), txs, root.OutputFormat())
}

// writeOptional prints value, or n/a when the query had no data to work on.
func writeOptional(cmd *cobra.Command, label, value string, err error) error {
	if errors.Is(err, analyzer.ErrNoData) {
		return writeValue(cmd, label, report.NotAvailable)
	}
	if err != nil {
		return err
	}
	return writeValue(cmd, label, value)
}

func parseDateFlag(name, value string) (time.Time, error) {
	t, _, err := dateutils.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return t, nil
}

func parseAmountFlag(name, value string) (decimal.Decimal, error) {
	d, err := models.ParseAmount(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return d, nil
}
