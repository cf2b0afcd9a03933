package env

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("VIDEO_HUNTER_TEST_KEY=from-file\n"), 0o600))

	t.Setenv("ENV_PATH", path)
	t.Setenv("VIDEO_HUNTER_TEST_KEY", "")
	require.NoError(t, os.Unsetenv("VIDEO_HUNTER_TEST_KEY"))

	require.NoError(t, LoadDotEnv("local"))
	assert.Equal(t, "from-file", os.Getenv("VIDEO_HUNTER_TEST_KEY"))
}

func TestLoadDotEnv_Missing(t *testing.T) {
	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "absent.env"))

	assert.Error(t, LoadDotEnv("local"))
	assert.NoError(t, LoadDotEnv("production"))
}

func TestDuration(t *testing.T) {
	t.Setenv("SEARCH_TIMEOUT", "")
	d, err := Duration("SEARCH_TIMEOUT", 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, d)

	t.Setenv("SEARCH_TIMEOUT", "250ms")
	d, err = Duration("SEARCH_TIMEOUT", 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, d)

	t.Setenv("SEARCH_TIMEOUT", "soon")
	_, err = Duration("SEARCH_TIMEOUT", 0)
	assert.Error(t, err)
}

func TestInt(t *testing.T) {
	t.Setenv("EMBEDDING_MAX_LENGTH", "512")
	n, err := Int("EMBEDDING_MAX_LENGTH", 0)
	require.NoError(t, err)
	assert.Equal(t, 512, n)

	t.Setenv("EMBEDDING_MAX_LENGTH", "x")
	_, err = Int("EMBEDDING_MAX_LENGTH", 0)
	assert.Error(t, err)
}

func TestLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"loud":  slog.LevelInfo,
	}
	for in, want := range tests {
		t.Setenv("LOG_LEVEL", in)
		assert.Equal(t, want, LogLevel(), in)
	}
}
