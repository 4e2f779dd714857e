package validation_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/txn-analyzer/internal/models"
	"fjacquet/txn-analyzer/internal/validation"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidInputFile(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "transactions.json")
	require.NoError(t, os.WriteFile(testFile, []byte("[]"), 0600))

	tests := []struct {
		name        string
		path        string
		expectError bool
	}{
		{"regular file", testFile, false},
		{"directory", tmpDir, true},
		{"missing file", filepath.Join(tmpDir, "missing.json"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.IsValidInputFile(tt.path)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	err := validation.IsValidInputFile(filepath.Join(tmpDir, "missing.json"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestValidateTransaction(t *testing.T) {
	valid := models.Transaction{ID: "1", Date: "2024-01-15", Amount: decimal.NewFromInt(5), Type: "debit"}

	tests := []struct {
		name     string
		mutate   func(tx *models.Transaction)
		contains []string
	}{
		{"valid", func(*models.Transaction) {}, nil},
		{"timestamp date", func(tx *models.Transaction) { tx.Date = "2024-01-15T10:00:00Z" }, nil},
		{"empty id", func(tx *models.Transaction) { tx.ID = " " }, []string{"transaction_id is empty"}},
		{"bad date", func(tx *models.Transaction) { tx.Date = "15.01.2024" }, []string{"transaction_date"}},
		{"empty type", func(tx *models.Transaction) { tx.Type = "" }, []string{"transaction_type is empty"}},
		{
			"several problems",
			func(tx *models.Transaction) { tx.ID = ""; tx.Type = "" },
			[]string{"transaction_id is empty", "transaction_type is empty"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := valid
			tt.mutate(&tx)
			err := validation.ValidateTransaction(tx)
			if len(tt.contains) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, err.Error(), s)
			}
		})
	}
}

func TestValidateTransactions(t *testing.T) {
	txs := []models.Transaction{
		{ID: "1", Date: "2024-01-15", Type: "debit"},
		{ID: "2", Date: "yesterday", Type: "credit"},
		{ID: "3", Date: "2024-01-17", Type: "credit"},
	}

	err := validation.ValidateTransactions(txs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `record 2 (id "2")`)
	assert.NotContains(t, err.Error(), "record 1")

	assert.NoError(t, validation.ValidateTransactions(txs[:1]))
	assert.NoError(t, validation.ValidateTransactions(nil))
}
