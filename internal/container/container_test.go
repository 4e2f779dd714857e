package container

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/txn-analyzer/internal/config"
	"fjacquet/txn-analyzer/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestNewContainer(t *testing.T) {
	tests := []struct {
		name        string
		config      *config.Config
		expectError bool
		errorMsg    string
	}{
		{
			name:        "nil config",
			config:      nil,
			expectError: true,
			errorMsg:    "configuration cannot be nil",
		},
		{
			name:   "default config",
			config: config.Default(),
		},
		{
			name: "json logging with semicolon delimiter",
			config: func() *config.Config {
				cfg := config.Default()
				cfg.Log = config.LogConfig{Level: "debug", Format: "json"}
				cfg.Input.Delimiter = ";"
				return cfg
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewContainer(tt.config)
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, c)
			assert.NotNil(t, c.GetLogger())
			assert.Same(t, tt.config, c.GetConfig())
			assert.NotNil(t, c.GetLoader())
			assert.NotNil(t, c.GetReportGenerator())
			assert.NoError(t, c.Close())
		})
	}
}

func TestNewContainerWithLogger_NilLogger(t *testing.T) {
	_, err := NewContainerWithLogger(config.Default(), nil)
	assert.Error(t, err)
}

func TestContainer_NewAnalyzer(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "first.json", `[
		{"transaction_id": "1", "transaction_date": "2024-01-10", "transaction_amount": 100, "transaction_type": "debit"},
		{"transaction_id": "2", "transaction_date": "2024-01-11", "transaction_amount": 50, "transaction_type": "credit"}
	]`)
	extra := writeFile(t, dir, "extra.csv", "transaction_id,transaction_date,transaction_amount,transaction_type\n3,2024-02-01,30,debit\n")

	logger := logging.NewMockLogger()
	c, err := NewContainerWithLogger(config.Default(), logger)
	require.NoError(t, err)

	a, err := c.NewAnalyzer(context.Background(), []string{first}, []string{extra})
	require.NoError(t, err)

	assert.Equal(t, 3, a.Len())
	assert.Equal(t, "180", a.TotalAmount().String())
	assert.Equal(t, "3", a.GetAllTransactions()[2].ID.String())
	assert.True(t, logger.HasEntry("INFO", "Transactions ready for analysis"))
	assert.True(t, logger.HasEntry("DEBUG", "Transaction added"))
}

func TestContainer_NewAnalyzer_FallsBackToConfiguredFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "configured.yaml", "- transaction_id: 7\n  transaction_date: \"2024-03-01\"\n  transaction_amount: 12\n  transaction_type: debit\n")

	cfg := config.Default()
	cfg.Input.Files = []string{path}
	c, err := NewContainerWithLogger(cfg, logging.Nop())
	require.NoError(t, err)

	a, err := c.NewAnalyzer(context.Background(), nil, nil)
	require.NoError(t, err)
	_, found := a.FindTransactionByID(7)
	assert.True(t, found)
}

func TestContainer_NewAnalyzer_Errors(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.json", "[]")
	missing := filepath.Join(dir, "missing.json")

	c, err := NewContainerWithLogger(config.Default(), logging.Nop())
	require.NoError(t, err)

	_, err = c.NewAnalyzer(context.Background(), []string{missing}, nil)
	assert.Error(t, err)

	_, err = c.NewAnalyzer(context.Background(), []string{good}, []string{missing})
	assert.Error(t, err)
}

func TestContainer_NewAnalyzer_ExpandsDirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "01.json", `[{"transaction_id": "a", "transaction_date": "2024-01-01", "transaction_amount": 1, "transaction_type": "debit"}]`)
	writeFile(t, dir, "02.csv", "transaction_id,transaction_date,transaction_amount,transaction_type\nb,2024-02-01,2,credit\n")
	writeFile(t, dir, "readme.txt", "not a record file")

	c, err := NewContainerWithLogger(config.Default(), logging.Nop())
	require.NoError(t, err)

	a, err := c.NewAnalyzer(context.Background(), []string{dir}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, "a", a.GetAllTransactions()[0].ID.String())
}

func TestContainer_NewAnalyzer_Validate(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "tx.json", `[{"transaction_id": "1", "transaction_date": "01/15/2024", "transaction_amount": 1, "transaction_type": "debit"}]`)

	cfg := config.Default()
	c, err := NewContainerWithLogger(cfg, logging.Nop())
	require.NoError(t, err)

	_, err = c.NewAnalyzer(context.Background(), []string{path}, nil)
	require.NoError(t, err, "records are not checked unless input.validate is set")

	cfg.Input.Validate = true
	_, err = c.NewAnalyzer(context.Background(), []string{path}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid transactions")
}
