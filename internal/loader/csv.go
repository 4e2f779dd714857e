package loader

import (
	"encoding/csv"
	"fmt"

	"fjacquet/txn-analyzer/internal/models"
	"fjacquet/txn-analyzer/internal/parsererror"

	"github.com/gocarina/gocsv"
)

// csvRow maps one CSV line; the amount is parsed separately so that a bad value
// is reported with its row.
type csvRow struct {
	ID           string `csv:"transaction_id"`
	Date         string `csv:"transaction_date"`
	Amount       string `csv:"transaction_amount"`
	Type         string `csv:"transaction_type"`
	Description  string `csv:"transaction_description"`
	MerchantName string `csv:"merchant_name"`
	CardType     string `csv:"card_type"`
}

func (l *Loader) readCSV(path string) ([]models.Transaction, error) {
	file, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer l.closeFile(file)

	reader := csv.NewReader(file)
	reader.Comma = l.delimiter
	reader.TrimLeadingSpace = true

	var rows []csvRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: fmt.Sprintf("CSV with header row, delimiter %q", l.delimiter),
			Msg:            err.Error(),
			Err:            err,
		}
	}

	transactions := make([]models.Transaction, 0, len(rows))
	for i, row := range rows {
		amount, err := models.ParseAmount(row.Amount)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, amountError("csv", row.Amount, err))
		}
		transactions = append(transactions, models.Transaction{
			ID:           models.TransactionID(row.ID),
			Date:         row.Date,
			Amount:       amount,
			Type:         row.Type,
			Description:  row.Description,
			MerchantName: row.MerchantName,
			CardType:     row.CardType,
		})
	}
	return transactions, nil
}
