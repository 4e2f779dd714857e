package loader

import (
	"errors"
	"fmt"
	"io"

	"fjacquet/txn-analyzer/internal/models"
	"fjacquet/txn-analyzer/internal/parsererror"

	"gopkg.in/yaml.v3"
)

type yamlRow struct {
	ID           models.TransactionID `yaml:"transaction_id"`
	Date         string               `yaml:"transaction_date"`
	Amount       yaml.Node            `yaml:"transaction_amount"`
	Type         string               `yaml:"transaction_type"`
	Description  string               `yaml:"transaction_description"`
	MerchantName string               `yaml:"merchant_name"`
	CardType     string               `yaml:"card_type"`
}

func (l *Loader) readYAML(path string) ([]models.Transaction, error) {
	file, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer l.closeFile(file)

	var rows []yamlRow
	if err := yaml.NewDecoder(file).Decode(&rows); err != nil && !errors.Is(err, io.EOF) {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "YAML sequence of transaction mappings",
			Msg:            err.Error(),
			Err:            err,
		}
	}

	transactions := make([]models.Transaction, 0, len(rows))
	for i, row := range rows {
		amount, err := models.ParseAmount(row.Amount.Value)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, amountError("yaml", row.Amount.Value, err))
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
