package report

import (
	"errors"
	"time"

	"fjacquet/txn-analyzer/internal/analyzer"

	"github.com/google/uuid"
)

// NotAvailable stands in for values that cannot be computed from an empty selection.
const NotAvailable = "n/a"

// SummaryOptions controls how a Summary is computed.
type SummaryOptions struct {
	// Precision is the number of fractional digits of the average amount.
	Precision int32
	// DescriptionLimit caps the number of descriptions listed; zero or less lists all of them.
	DescriptionLimit int
}

// Summary is a snapshot of every aggregate the analyzer offers.
type Summary struct {
	ReportID                   uuid.UUID `json:"report_id" yaml:"report_id"`
	GeneratedAt                time.Time `json:"generated_at" yaml:"generated_at"`
	TransactionCount           int       `json:"transaction_count" yaml:"transaction_count"`
	UniqueTypes                []string  `json:"unique_types" yaml:"unique_types"`
	TotalAmount                string    `json:"total_amount" yaml:"total_amount"`
	TotalDebitAmount           string    `json:"total_debit_amount" yaml:"total_debit_amount"`
	AverageAmount              string    `json:"average_amount" yaml:"average_amount"`
	MostTransactionsMonth      string    `json:"most_transactions_month" yaml:"most_transactions_month"`
	MostDebitTransactionsMonth string    `json:"most_debit_transactions_month" yaml:"most_debit_transactions_month"`
	DominantType               string    `json:"dominant_type" yaml:"dominant_type"`
	Descriptions               []string  `json:"descriptions" yaml:"descriptions"`
}

// BuildSummary computes a Summary over a. Queries that find no data are reported as
// NotAvailable; any other query error is returned.
func BuildSummary(a *analyzer.Analyzer, opts SummaryOptions) (*Summary, error) {
	average, err := orNotAvailable(a.AverageAmount(opts.Precision))
	if err != nil {
		return nil, err
	}
	busiest, err := orNotAvailable(a.MostTransactionsMonth(""))
	if err != nil {
		return nil, err
	}
	busiestDebit, err := orNotAvailable(a.MostDebitTransactionsMonth())
	if err != nil {
		return nil, err
	}

	descriptions := a.TransactionDescriptions()
	if opts.DescriptionLimit > 0 && len(descriptions) > opts.DescriptionLimit {
		descriptions = descriptions[:opts.DescriptionLimit]
	}

	return &Summary{
		ReportID:                   uuid.New(),
		GeneratedAt:                time.Now().UTC(),
		TransactionCount:           a.Len(),
		UniqueTypes:                a.UniqueTransactionTypes(),
		TotalAmount:                a.TotalAmount().String(),
		TotalDebitAmount:           a.TotalDebitAmount().String(),
		AverageAmount:              average,
		MostTransactionsMonth:      busiest,
		MostDebitTransactionsMonth: busiestDebit,
		DominantType:               a.DominantType(),
		Descriptions:               descriptions,
	}, nil
}

func orNotAvailable(value string, err error) (string, error) {
	if errors.Is(err, analyzer.ErrNoData) {
		return NotAvailable, nil
	}
	return value, err
}
