package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"fjacquet/txn-analyzer/internal/models"
	"fjacquet/txn-analyzer/internal/parsererror"
)

const snippetLength = 40

// jsonRow keeps the amount raw so that a missing or null amount is rejected
// instead of decoding to zero.
type jsonRow struct {
	ID           models.TransactionID `json:"transaction_id"`
	Date         string               `json:"transaction_date"`
	Amount       json.RawMessage      `json:"transaction_amount"`
	Type         string               `json:"transaction_type"`
	Description  string               `json:"transaction_description"`
	MerchantName string               `json:"merchant_name"`
	CardType     string               `json:"card_type"`
}

func (l *Loader) readJSON(path string) ([]models.Transaction, error) {
	file, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer l.closeFile(file)

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	var rows []jsonRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath:             path,
			ExpectedFormat:       "JSON array of transaction objects",
			ActualContentSnippet: snippet(data),
			Msg:                  err.Error(),
			Err:                  err,
		}
	}

	transactions := make([]models.Transaction, 0, len(rows))
	for i, row := range rows {
		raw := jsonAmountText(row.Amount)
		amount, err := models.ParseAmount(raw)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, amountError("json", raw, err))
		}
		transactions = append(transactions, models.Transaction{
			ID:           row.ID,
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

// jsonAmountText returns the amount as text: the string content when quoted, the
// literal otherwise, and "" when absent or null.
func jsonAmountText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}

func snippet(data []byte) string {
	if len(data) > snippetLength {
		return string(data[:snippetLength])
	}
	return string(data)
}
