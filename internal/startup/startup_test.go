package startup

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"file-indexer/internal/config"
	"file-indexer/internal/logging"
	"file-indexer/internal/memory"
	"file-indexer/internal/workers"
)

func TestGetBuildInfo(t *testing.T) {
	info := GetBuildInfo()

	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.OS)
	assert.NotEmpty(t, info.Arch)
	assert.Equal(t, GoVersion, info.GoVersion)
	assert.Contains(t, info.String(), "file-indexer "+info.Version)
}

func TestWorkersString(t *testing.T) {
	t.Setenv(workers.EnvOverride, "")
	assert.Equal(t, "6", workersString(6))
	assert.Equal(t, "4", workersString(-1))
	assert.Contains(t, workersString(workers.Auto), "auto (")
}

func TestMemorySource(t *testing.T) {
	assert.Equal(t, "not set", memorySource(memory.ConfigResult{}))
	assert.Equal(t, "100 bytes (from MEMORY_LIMIT)",
		memorySource(memory.ConfigResult{Configured: true, Source: "MEMORY_LIMIT", GoMemLimit: 100}))
}

func TestLogConfigOnlyAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logging.SetOutput(&buf)
	defer logging.SetOutput(os.Stderr)

	original := logging.GetLevel()
	defer logging.SetLevel(original)

	cfg := &config.Config{Workers: 2, LogLevel: logging.LevelInfo}

	logging.SetLevel(logging.LevelInfo)
	LogConfig(cfg, memory.ConfigResult{})
	assert.Empty(t, buf.String())

	logging.SetLevel(logging.LevelDebug)
	LogConfig(cfg, memory.ConfigResult{})
	assert.Contains(t, buf.String(), "CONFIGURATION")
	assert.Contains(t, buf.String(), "Metrics textfile: (none)")
}
