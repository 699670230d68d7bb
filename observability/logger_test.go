package observability

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLoggerDefaultsToNop(t *testing.T) {
	ResetForTest()
	logger := GetLogger()
	require.NotNil(t, logger)
	logger.Info("should be silently dropped")
}

func TestInitializeInstallsLogger(t *testing.T) {
	defer ResetForTest()

	cfg := DefaultConfig()
	cfg.Console = false

	logger, err := Initialize(cfg)
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.Equal(t, logger, GetLogger())
}

func TestInitializeWithFileSink(t *testing.T) {
	defer ResetForTest()

	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Console = false
	cfg.FilePath = filepath.Join(dir, "neuromotor.log")

	logger, err := Initialize(cfg)
	require.NoError(t, err)
	logger.Info("hello")
	require.NoError(t, Sync())

	_, err = os.Stat(cfg.FilePath)
	assert.NoError(t, err)
}
