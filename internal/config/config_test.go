package config

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/txn-analyzer/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv_ReadsDotEnvOnce(t *testing.T) {
	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, ".env"), []byte("TXN_TEST_DOTENV=from-file\n"), 0600))
	chdir(t, tempDir)
	t.Cleanup(func() { _ = os.Unsetenv("TXN_TEST_DOTENV") })

	mock := logging.NewMockLogger()
	LoadEnv(mock)

	assert.Equal(t, "from-file", os.Getenv("TXN_TEST_DOTENV"))
	assert.True(t, mock.HasEntry("DEBUG", "Loaded environment variables"))

	require.NoError(t, os.WriteFile(filepath.Join(tempDir, ".env"), []byte("TXN_TEST_DOTENV=changed\n"), 0600))
	require.NoError(t, os.Unsetenv("TXN_TEST_DOTENV"))
	LoadEnv(mock)
	assert.Empty(t, os.Getenv("TXN_TEST_DOTENV"), "subsequent calls do nothing")
}
