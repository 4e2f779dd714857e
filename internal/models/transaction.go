// Package models provides the data structures used throughout the application.
package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Describable is implemented by values that can render themselves for display.
type Describable interface {
	DisplayString() string
}

// Transaction is a single financial transaction record.
type Transaction struct {
	ID           TransactionID   `json:"transaction_id" yaml:"transaction_id"`
	Date         string          `json:"transaction_date" yaml:"transaction_date"` // ISO YYYY-MM-DD
	Amount       decimal.Decimal `json:"transaction_amount" yaml:"transaction_amount"`
	Type         string          `json:"transaction_type" yaml:"transaction_type"`
	Description  string          `json:"transaction_description" yaml:"transaction_description"`
	MerchantName string          `json:"merchant_name" yaml:"merchant_name"`
	CardType     string          `json:"card_type" yaml:"card_type"`
}

var _ Describable = Transaction{}

// displayRecord mirrors Transaction with the amount as a JSON number.
type displayRecord struct {
	ID           TransactionID   `json:"transaction_id"`
	Date         string          `json:"transaction_date"`
	Amount       json.RawMessage `json:"transaction_amount"`
	Type         string          `json:"transaction_type"`
	Description  string          `json:"transaction_description"`
	MerchantName string          `json:"merchant_name"`
	CardType     string          `json:"card_type"`
}

// yamlRecord mirrors Transaction with the amount as a plain YAML scalar.
type yamlRecord struct {
	ID           TransactionID `yaml:"transaction_id"`
	Date         string        `yaml:"transaction_date"`
	Amount       yaml.Node     `yaml:"transaction_amount"`
	Type         string        `yaml:"transaction_type"`
	Description  string        `yaml:"transaction_description"`
	MerchantName string        `yaml:"merchant_name"`
	CardType     string        `yaml:"card_type"`
}

// MarshalJSON writes the amount as a bare number rather than decimal's quoted string.
func (t Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(displayRecord{
		ID:           t.ID,
		Date:         t.Date,
		Amount:       json.RawMessage(t.Amount.String()),
		Type:         t.Type,
		Description:  t.Description,
		MerchantName: t.MerchantName,
		CardType:     t.CardType,
	})
}

// MarshalYAML writes the amount as an unquoted number.
func (t Transaction) MarshalYAML() (interface{}, error) {
	return yamlRecord{
		ID:           t.ID,
		Date:         t.Date,
		Amount:       yaml.Node{Kind: yaml.ScalarNode, Value: t.Amount.String()},
		Type:         t.Type,
		Description:  t.Description,
		MerchantName: t.MerchantName,
		CardType:     t.CardType,
	}, nil
}

// DisplayString renders the transaction as a JSON object.
func (t Transaction) DisplayString() string {
	data, err := json.Marshal(t)
	if err != nil {
		// Only reachable with an amount that is not a valid number literal.
		return fmt.Sprintf("%+v", t)
	}
	return string(data)
}

// IsDebit reports whether the transaction type is exactly "debit".
func (t Transaction) IsDebit() bool {
	return t.Type == TransactionTypeDebit
}

// IsCredit reports whether the transaction type is exactly "credit".
func (t Transaction) IsCredit() bool {
	return t.Type == TransactionTypeCredit
}

// ParseAmount parses a textual amount into a decimal. Surrounding whitespace is ignored.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	amount := strings.TrimSpace(amountStr)
	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount string '%s': %w", amountStr, err)
	}
	return dec, nil
}
