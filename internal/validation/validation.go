// Package validation checks input files and loaded records before analysis.
package validation

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"fjacquet/txn-analyzer/internal/dateutils"
	"fjacquet/txn-analyzer/internal/models"
)

// IsValidInputFile checks that path exists and is a regular file.
// A missing file yields an error matching os.ErrNotExist.
func IsValidInputFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("path %s is not a regular file", path)
	}
	return nil
}

// ValidateTransaction reports every problem with tx: an empty identifier or type,
// or a date that is not ISO 8601.
func ValidateTransaction(tx models.Transaction) error {
	var errs []error
	if strings.TrimSpace(tx.ID.String()) == "" {
		errs = append(errs, fmt.Errorf("%s is empty", models.FieldTransactionID))
	}
	if _, err := dateutils.ParseISODate(tx.Date); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", models.FieldTransactionDate, err))
	}
	if strings.TrimSpace(tx.Type) == "" {
		errs = append(errs, fmt.Errorf("%s is empty", models.FieldTransactionType))
	}
	return errors.Join(errs...)
}

// ValidateTransactions validates every record and joins the failures, each prefixed
// with the record's position (1-based) and identifier.
func ValidateTransactions(txs []models.Transaction) error {
	var errs []error
	for i, tx := range txs {
		if err := ValidateTransaction(tx); err != nil {
			errs = append(errs, fmt.Errorf("record %d (id %q): %w", i+1, tx.ID.String(), err))
		}
	}
	return errors.Join(errs...)
}
