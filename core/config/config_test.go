package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"teapot-fortune/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable the resolver reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"RESPONSE_CODE", "DATABASE_URL", "TEAPOT_FORTUNE_PORT",
		"SERVER_PORT", "SERVER_RESPONSE_CODE", "SERVER_WORKERS", "DATABASE_DRIVER",
		"DATABASE_FALLBACK_MAX_ID", "FORTUNE_MAX_ATTEMPTS", "LOG_LEVEL", "STORAGE_USE_SSL",
	} {
		t.Setenv(name, "")
	}
}

// unsetenv removes name for the duration of the test; t.Setenv restores it afterwards.
func unsetenv(t *testing.T, name string) {
	t.Helper()
	t.Setenv(name, "")
	require.NoError(t, os.Unsetenv(name))
}

func noticeFor(cfg *config.Config, env string) *config.Notice {
	for i := range cfg.Notices {
		if cfg.Notices[i].Env == env {
			return &cfg.Notices[i]
		}
	}
	return nil
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 418, cfg.Server.ResponseCode)
	assert.Equal(t, "./data/copypastas.sqlite", cfg.Database.URL)
	assert.Equal(t, 6757, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.Workers)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "copypastas", cfg.Database.Table)
	assert.Equal(t, int64(388800), cfg.Database.FallbackMaxID)
	assert.Equal(t, 1000, cfg.Fortune.MaxAttempts)
	assert.Equal(t, "info", cfg.Log.Level)

	assert.Equal(t, config.NoticeNoEnvFile, cfg.Notices[0].Kind)
	for _, env := range []string{"RESPONSE_CODE", "DATABASE_URL", "TEAPOT_FORTUNE_PORT"} {
		n := noticeFor(cfg, env)
		require.NotNil(t, n, env)
		assert.Equal(t, config.NoticeMissing, n.Kind)
		assert.False(t, n.IsWarning())
	}
	assert.Equal(t, `RESPONSE_CODE env variable not set, using default "418".`, noticeFor(cfg, "RESPONSE_CODE").Message())
}

func TestLoadConfig_MalformedPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("RESPONSE_CODE", "404")
	t.Setenv("TEAPOT_FORTUNE_PORT", "abc")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 404, cfg.Server.ResponseCode)
	assert.Equal(t, 6757, cfg.Server.Port)
	assert.Nil(t, noticeFor(cfg, "RESPONSE_CODE"))

	n := noticeFor(cfg, "TEAPOT_FORTUNE_PORT")
	require.NotNil(t, n)
	assert.Equal(t, config.NoticeInvalid, n.Kind)
	assert.Equal(t, "abc", n.Raw)
	assert.True(t, n.IsWarning())
	assert.Contains(t, n.Message(), `"abc"`)
	assert.Contains(t, n.Message(), `"6757"`)
}

func TestLoadConfig_OutOfRange(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		raw      string
		wantCode int
		wantPort int
	}{
		{"Code Too High", "RESPONSE_CODE", "999", 418, 6757},
		{"Code Too Low", "RESPONSE_CODE", "99", 418, 6757},
		{"Port Too High", "TEAPOT_FORTUNE_PORT", "70000", 418, 6757},
		{"Port Negative", "TEAPOT_FORTUNE_PORT", "-1", 418, 6757},
		{"Port Zero", "TEAPOT_FORTUNE_PORT", "0", 418, 0},
		{"Code Padded", "RESPONSE_CODE", " 503 ", 503, 6757},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.env, tt.raw)

			cfg, err := config.LoadConfig(t.TempDir())
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, cfg.Server.ResponseCode)
			assert.Equal(t, tt.wantPort, cfg.Server.Port)
		})
	}
}

func TestLoadConfig_AmbientFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_WORKERS", "lots")
	t.Setenv("STORAGE_USE_SSL", "maybe")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Server.Workers)
	assert.False(t, cfg.Storage.UseSSL)

	n := noticeFor(cfg, "SERVER_WORKERS")
	require.NotNil(t, n)
	assert.Equal(t, config.NoticeInvalid, n.Kind)
	assert.Equal(t, "lots", n.Raw)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	clearEnv(t)
	unsetenv(t, "RESPONSE_CODE")
	unsetenv(t, "DATABASE_URL")
	t.Setenv("TEAPOT_FORTUNE_PORT", "8080")

	dir := t.TempDir()
	content := "RESPONSE_CODE=451\nDATABASE_URL=/srv/fortunes.sqlite\nTEAPOT_FORTUNE_PORT=9999\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("RESPONSE_CODE")
		os.Unsetenv("DATABASE_URL")
	})

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 451, cfg.Server.ResponseCode)
	assert.Equal(t, "/srv/fortunes.sqlite", cfg.Database.URL)
	// Process environment wins over the file
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Empty(t, cfg.Notices)
}

func TestConfig_Redacted(t *testing.T) {
	cfg := config.Config{}
	cfg.Storage.SecretKey = "hunter2"
	cfg.Database.Driver = "mysql"
	cfg.Database.URL = "fortune:s3cret@tcp(db:3306)/fortunes"

	out := cfg.Redacted()
	assert.Equal(t, "***", out.Storage.SecretKey)
	assert.Equal(t, "fortune:***@tcp(db:3306)/fortunes", out.Database.URL)
	assert.Equal(t, "hunter2", cfg.Storage.SecretKey)
}

func TestLoadConfig_DocumentedNamesOnly(t *testing.T) {
	t.Run("Nested Name Ignored When Documented Unset", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SERVER_PORT", "1234")
		t.Setenv("SERVER_RESPONSE_CODE", "500")

		cfg, err := config.LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, 6757, cfg.Server.Port)
		assert.Equal(t, 418, cfg.Server.ResponseCode)

		n := noticeFor(cfg, "TEAPOT_FORTUNE_PORT")
		require.NotNil(t, n)
		assert.Equal(t, config.NoticeMissing, n.Kind)
		require.NotNil(t, noticeFor(cfg, "RESPONSE_CODE"))
	})

	t.Run("Documented Name Wins", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SERVER_PORT", "1234")
		t.Setenv("TEAPOT_FORTUNE_PORT", "7000")

		cfg, err := config.LoadConfig(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, 7000, cfg.Server.Port)
		assert.Nil(t, noticeFor(cfg, "TEAPOT_FORTUNE_PORT"))
	})
}

func TestLoadConfig_FallbackMaxIDMustBePositive(t *testing.T) {
	for _, raw := range []string{"0", "-5"} {
		t.Run(raw, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("DATABASE_FALLBACK_MAX_ID", raw)

			cfg, err := config.LoadConfig(t.TempDir())
			require.NoError(t, err)
			assert.Equal(t, int64(388800), cfg.Database.FallbackMaxID)

			n := noticeFor(cfg, "DATABASE_FALLBACK_MAX_ID")
			require.NotNil(t, n)
			assert.Equal(t, config.NoticeInvalid, n.Kind)
			assert.Equal(t, raw, n.Raw)
		})
	}

	t.Run("Positive Kept", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DATABASE_FALLBACK_MAX_ID", "5000")

		cfg, err := config.LoadConfig(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, int64(5000), cfg.Database.FallbackMaxID)
	})
}
