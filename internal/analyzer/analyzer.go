// Package analyzer holds an ordered collection of transactions and answers
// aggregate and filtering queries over it.
//
// An Analyzer owns its records exclusively. AddTransaction is the only mutation;
// every other method is a read that leaves the stored records untouched. All methods
// are safe for concurrent use.
package analyzer

import (
	"errors"
	"strings"
	"sync"
	"time"

	"fjacquet/txn-analyzer/internal/dateutils"
	"fjacquet/txn-analyzer/internal/logging"
	"fjacquet/txn-analyzer/internal/models"
	"fjacquet/txn-analyzer/internal/month"
	"fjacquet/txn-analyzer/internal/parsererror"

	"github.com/shopspring/decimal"
)

// DefaultPrecision is the number of fractional digits AverageAmount is usually called with.
const DefaultPrecision int32 = 2

// DominantEqual is returned by DominantType when debit and credit counts are the same.
const DominantEqual = "Equal"

var (
	// ErrNoData is returned when a query needs at least one record and none matched.
	ErrNoData = errors.New("no transactions to analyze")

	// ErrInvalidPrecision is returned for a negative number of fractional digits.
	ErrInvalidPrecision = errors.New("precision must not be negative")
)

// DateFilter selects records by calendar date components. Zero fields are not
// constrained; Month is 1-based.
type DateFilter struct {
	Year  int
	Month int
	Day   int
}

// Analyzer answers queries over an ordered collection of transactions.
type Analyzer struct {
	mu           sync.RWMutex
	transactions []models.Transaction
	logger       logging.Logger
}

// NewAnalyzer creates an Analyzer over a copy of transactions, keeping their order.
// A nil logger disables logging.
func NewAnalyzer(transactions []models.Transaction, logger logging.Logger) *Analyzer {
	if logger == nil {
		logger = logging.Nop()
	}
	owned := make([]models.Transaction, len(transactions))
	copy(owned, transactions)

	logger.Debug("Analyzer created", logging.F(logging.FieldCount, len(owned)))
	return &Analyzer{
		transactions: owned,
		logger:       logger,
	}
}

// AddTransaction appends a transaction to the end of the collection.
func (a *Analyzer) AddTransaction(tx models.Transaction) {
	a.mu.Lock()
	a.transactions = append(a.transactions, tx)
	a.mu.Unlock()

	a.logger.Debug("Transaction added", logging.F(logging.FieldTransactionID, tx.ID.String()))
}

// Len returns the number of stored transactions.
func (a *Analyzer) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.transactions)
}

// GetAllTransactions returns every transaction in insertion order.
// The returned slice is a copy; modifying it does not affect the analyzer.
func (a *Analyzer) GetAllTransactions() []models.Transaction {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]models.Transaction, len(a.transactions))
	copy(out, a.transactions)
	return out
}

// UniqueTransactionTypes returns the distinct transaction types in order of first appearance.
func (a *Analyzer) UniqueTransactionTypes() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	seen := make(map[string]struct{})
	types := make([]string, 0)
	for _, tx := range a.transactions {
		if _, ok := seen[tx.Type]; ok {
			continue
		}
		seen[tx.Type] = struct{}{}
		types = append(types, tx.Type)
	}
	return types
}

// TotalAmount returns the sum of all amounts, zero for an empty collection.
func (a *Analyzer) TotalAmount() decimal.Decimal {
	return a.sum(func(models.Transaction) bool { return true })
}

// TotalDebitAmount returns the sum of amounts of transactions typed exactly "debit".
func (a *Analyzer) TotalDebitAmount() decimal.Decimal {
	return a.sum(models.Transaction.IsDebit)
}

// TotalAmountByDate sums the amounts of transactions whose date matches every
// non-zero component of filter. It returns zero when nothing matches.
func (a *Analyzer) TotalAmountByDate(filter DateFilter) (decimal.Decimal, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	total := decimal.Zero
	for _, tx := range a.transactions {
		date, err := transactionDate(tx)
		if err != nil {
			return decimal.Zero, err
		}
		if dateutils.MatchesComponents(date, filter.Year, filter.Month, filter.Day) {
			total = total.Add(tx.Amount)
		}
	}
	return total, nil
}

// TransactionsByType returns transactions whose type equals txType exactly.
func (a *Analyzer) TransactionsByType(txType string) []models.Transaction {
	return a.filter(func(tx models.Transaction) bool { return tx.Type == txType })
}

// TransactionsInDateRange returns transactions dated within [start, end],
// both ends inclusive, compared by calendar day.
func (a *Analyzer) TransactionsInDateRange(start, end time.Time) ([]models.Transaction, error) {
	return a.filterByDate(func(date time.Time) bool {
		return dateutils.InRange(date, start, end)
	})
}

// TransactionsBeforeDate returns transactions dated strictly before date.
func (a *Analyzer) TransactionsBeforeDate(date time.Time) ([]models.Transaction, error) {
	return a.filterByDate(func(txDate time.Time) bool {
		return dateutils.CompareDates(txDate, date) < 0
	})
}

// TransactionsByMerchant returns transactions whose merchant name matches name, ignoring case.
func (a *Analyzer) TransactionsByMerchant(name string) []models.Transaction {
	want := strings.ToLower(name)
	matched := a.filter(func(tx models.Transaction) bool {
		return strings.ToLower(tx.MerchantName) == want
	})
	a.logger.Debug("Merchant lookup",
		logging.F(logging.FieldMerchant, name),
		logging.F(logging.FieldCount, len(matched)))
	return matched
}

// TransactionsByAmountRange returns transactions with min <= amount <= max.
func (a *Analyzer) TransactionsByAmountRange(min, max decimal.Decimal) []models.Transaction {
	return a.filter(func(tx models.Transaction) bool {
		return tx.Amount.GreaterThanOrEqual(min) && tx.Amount.LessThanOrEqual(max)
	})
}

// AverageAmount returns the mean amount rendered with exactly precision fractional
// digits, rounding half away from zero. It returns ErrNoData for an empty collection.
func (a *Analyzer) AverageAmount(precision int32) (string, error) {
	if precision < 0 {
		return "", ErrInvalidPrecision
	}

	a.mu.RLock()
	defer a.mu.RUnlock()

	if len(a.transactions) == 0 {
		return "", ErrNoData
	}
	total := decimal.Zero
	for _, tx := range a.transactions {
		total = total.Add(tx.Amount)
	}
	avg := total.Div(decimal.NewFromInt(int64(len(a.transactions))))
	return avg.StringFixed(precision), nil
}

// MostTransactionsMonth returns the name of the month with the most transactions,
// considering only transactions of txType when it is not empty.
//
// When several months share the highest count, the month whose first transaction
// comes earliest in the collection wins. ErrNoData is returned when no transaction
// is considered.
func (a *Analyzer) MostTransactionsMonth(txType string) (string, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	counts := make(map[string]int)
	var order []string
	for _, tx := range a.transactions {
		if txType != "" && tx.Type != txType {
			continue
		}
		date, err := transactionDate(tx)
		if err != nil {
			return "", err
		}
		name, ok := month.Name(int(date.Month()) - 1)
		if !ok {
			a.logger.Warn("Skipping transaction with unknown month",
				logging.F(logging.FieldTransactionID, tx.ID.String()),
				logging.F(logging.FieldMonth, int(date.Month())))
			continue
		}
		if _, seen := counts[name]; !seen {
			order = append(order, name)
		}
		counts[name]++
	}

	if len(order) == 0 {
		return "", ErrNoData
	}

	best := order[0]
	for _, name := range order[1:] {
		if counts[name] > counts[best] {
			best = name
		}
	}

	a.logger.Debug("Most frequent month resolved",
		logging.F(logging.FieldType, txType),
		logging.F(logging.FieldMonth, best),
		logging.F(logging.FieldCount, counts[best]))
	return best, nil
}

// MostDebitTransactionsMonth is MostTransactionsMonth restricted to debit transactions.
func (a *Analyzer) MostDebitTransactionsMonth() (string, error) {
	return a.MostTransactionsMonth(models.TransactionTypeDebit)
}

// DominantType compares the number of debit and credit transactions and returns
// "debit" or "credit" for the strictly larger one, or DominantEqual when they are
// the same, including when neither type occurs. Other types are counted but never win.
func (a *Analyzer) DominantType() string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	debits, credits := 0, 0
	for _, tx := range a.transactions {
		switch {
		case tx.IsDebit():
			debits++
		case tx.IsCredit():
			credits++
		}
	}

	switch {
	case debits > credits:
		return models.TransactionTypeDebit
	case credits > debits:
		return models.TransactionTypeCredit
	default:
		return DominantEqual
	}
}

// FindTransactionByID returns the first transaction whose identifier equals id.
// Numeric identifiers are compared by their string form, so 999 finds "999".
func (a *Analyzer) FindTransactionByID(id interface{}) (models.Transaction, bool) {
	want := models.NewTransactionID(id)

	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, tx := range a.transactions {
		if tx.ID == want {
			return tx, true
		}
	}
	return models.Transaction{}, false
}

// TransactionDescriptions returns every description in insertion order, duplicates included.
func (a *Analyzer) TransactionDescriptions() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	descriptions := make([]string, len(a.transactions))
	for i, tx := range a.transactions {
		descriptions[i] = tx.Description
	}
	return descriptions
}

func (a *Analyzer) sum(keep func(models.Transaction) bool) decimal.Decimal {
	a.mu.RLock()
	defer a.mu.RUnlock()

	total := decimal.Zero
	for _, tx := range a.transactions {
		if keep(tx) {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

func (a *Analyzer) filter(keep func(models.Transaction) bool) []models.Transaction {
	a.mu.RLock()
	defer a.mu.RUnlock()

	matched := make([]models.Transaction, 0)
	for _, tx := range a.transactions {
		if keep(tx) {
			matched = append(matched, tx)
		}
	}
	return matched
}

func (a *Analyzer) filterByDate(keep func(time.Time) bool) ([]models.Transaction, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	matched := make([]models.Transaction, 0)
	for _, tx := range a.transactions {
		date, err := transactionDate(tx)
		if err != nil {
			return nil, err
		}
		if keep(date) {
			matched = append(matched, tx)
		}
	}
	return matched, nil
}

func transactionDate(tx models.Transaction) (time.Time, error) {
	date, err := dateutils.ParseISODate(tx.Date)
	if err != nil {
		return time.Time{}, &parsererror.ParseError{
			Parser: "analyzer",
			Field:  models.FieldTransactionDate,
			Value:  tx.Date,
			Err:    err,
		}
	}
	return date, nil
}
