package query

import (
	"fmt"

	"fjacquet/txn-analyzer/cmd/root"
	"fjacquet/txn-analyzer/internal/analyzer"
	"fjacquet/txn-analyzer/internal/logging"

	"github.com/spf13/cobra"
)

var descriptionLimit int

var findCmd = &cobra.Command{
	Use:   "find ID",
	Short: "The first transaction whose identifier is ID",
	Args:  cobra.ExactArgs(1),
	RunE: analyzerRunE(func(cmd *cobra.Command, args []string, a *analyzer.Analyzer) error {
		tx, ok := a.FindTransactionByID(args[0])
		if !ok {
			root.Log.Debug("Transaction not found", logging.F(logging.FieldTransactionID, args[0]))
			return fmt.Errorf("transaction %s not found", args[0])
		}
		return writeValue(cmd, "transaction", tx)
	}),
}

var descriptionsCmd = &cobra.Command{
	Use:   "descriptions",
	Short: "Transaction descriptions in load order",
	Args:  cobra.NoArgs,
	RunE: analyzerRunE(func(cmd *cobra.Command, _ []string, a *analyzer.Analyzer) error {
		limit := 0
		if c, err := root.GetContainer(); err == nil {
			limit = c.GetConfig().Analysis.DescriptionLimit
		}
		if cmd.Flags().Changed("limit") {
			limit = descriptionLimit
		}
		descriptions := a.TransactionDescriptions()
		if limit > 0 && len(descriptions) > limit {
			descriptions = descriptions[:limit]
		}
		return writeValue(cmd, "descriptions", descriptions)
	}),
}

func init() {
	descriptionsCmd.Flags().IntVar(&descriptionLimit, "limit", 0, "Maximum number of descriptions, 0 for all (defaults to analysis.description_limit)")
}
