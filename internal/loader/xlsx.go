package loader

import (
	"fmt"
	"strings"

	"fjacquet/txn-analyzer/internal/models"
	"fjacquet/txn-analyzer/internal/parsererror"

	"github.com/xuri/excelize/v2"
)

// readXLSX reads the first worksheet. Row 1 holds the column names; blank rows are skipped.
func (l *Loader) readXLSX(path string) ([]models.Transaction, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "XLSX workbook",
			Msg:            err.Error(),
			Err:            err,
		}
	}
	defer func() {
		if err := f.Close(); err != nil {
			l.logger.WithError(err).Warn("Failed to close workbook")
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "XLSX workbook",
			Msg:            "workbook has no sheets",
		}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %s: %w", sheets[0], err)
	}

	transactions := make([]models.Transaction, 0)
	if len(rows) == 0 {
		return transactions, nil
	}

	columns := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns[models.FieldTransactionAmount]; !ok {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "header row naming " + strings.Join(models.Columns, ", "),
			Msg:            "missing " + models.FieldTransactionAmount + " column",
		}
	}

	cell := func(row []string, field string) string {
		i, ok := columns[field]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	for r, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		raw := cell(row, models.FieldTransactionAmount)
		if raw == "" {
			return nil, &parsererror.DataExtractionError{
				FilePath:  path,
				Row:       r + 2,
				FieldName: models.FieldTransactionAmount,
				Reason:    "cell is empty",
			}
		}
		amount, err := models.ParseAmount(raw)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", r+2, amountError("xlsx", raw, err))
		}
		transactions = append(transactions, models.Transaction{
			ID:           models.TransactionID(cell(row, models.FieldTransactionID)),
			Date:         cell(row, models.FieldTransactionDate),
			Amount:       amount,
			Type:         cell(row, models.FieldTransactionType),
			Description:  cell(row, models.FieldTransactionDescription),
			MerchantName: cell(row, models.FieldMerchantName),
			CardType:     cell(row, models.FieldCardType),
		})
	}
	return transactions, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
