package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// unsetenv clears key for the test and restores it afterwards. t.Setenv
// alone would leave the key set to "", which LookupEnv still sees.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "DATA_DIR", "UPLOAD_DIR", "SESSION_SECRET", "IS_PROD"} {
		unsetenv(t, key)
	}

	cfg := LoadConfig()
	require.Equal(t, "8080", cfg.AppPort)
	require.Equal(t, "data", cfg.DataDir)
	require.Equal(t, "static/uploads", cfg.UploadDir)
	require.Equal(t, devSessionSecret, cfg.SessionSecret)
	require.False(t, cfg.IsProd)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("DATA_DIR", "/tmp/records")
	t.Setenv("SESSION_SECRET", "super-secret")
	t.Setenv("IS_PROD", "false")

	cfg := LoadConfig()
	require.Equal(t, "9000", cfg.AppPort)
	require.Equal(t, "/tmp/records", cfg.DataDir)
	require.Equal(t, "super-secret", cfg.SessionSecret)
}
