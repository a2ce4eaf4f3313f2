package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// unsetEnv clears key for the test and restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

// chdir switches the working directory for the test and restores it afterwards
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestBootstrapHonoursAppEnvFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("APP_ENV=development\n"), 0o600))
	chdir(t, dir)
	unsetEnv(t, "APP_ENV")
	unsetEnv(t, "RAILWAY_ENVIRONMENT")
	t.Cleanup(func() { SetLogger(zap.NewNop()) })

	l := Bootstrap()

	assert.Equal(t, "development", AppEnv)
	assert.Same(t, l, Log())
	// development loggers log at debug, production starts at info
	assert.True(t, l.Core().Enabled(zap.DebugLevel))
}

func TestInitLoggerDefaultsToProduction(t *testing.T) {
	unsetEnv(t, "APP_ENV")
	t.Cleanup(func() { SetLogger(zap.NewNop()) })

	l := InitLogger()
	assert.False(t, l.Core().Enabled(zap.DebugLevel))
}
