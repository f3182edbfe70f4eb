package startup

import (
	"fmt"
	"os"
	"runtime"

	"file-indexer/internal/config"
	"file-indexer/internal/logging"
	"file-indexer/internal/memory"
	"file-indexer/internal/workers"
)

// Build-time variables (injected via -ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
)

// BuildInfo contains version and build information
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// GetBuildInfo returns the current build information
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: GoVersion,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// String renders the build info on one line
func (b BuildInfo) String() string {
	return fmt.Sprintf("file-indexer %s (commit: %s, built: %s, %s %s/%s)",
		b.Version, b.Commit, b.BuildTime, b.GoVersion, b.OS, b.Arch)
}

// LogConfig writes the resolved configuration and runtime environment at
// debug level, so a normal run stays quiet on stderr.
func LogConfig(cfg *config.Config, mem memory.ConfigResult) {
	if !logging.IsDebugEnabled() {
		return
	}

	logging.Debug("------------------------------------------------------------")
	logging.Debug("CONFIGURATION")
	logging.Debug("------------------------------------------------------------")
	logging.Debug("  Version:          %s", Version)
	logging.Debug("  Workers:          %s", workersString(cfg.Workers))
	logging.Debug("  Skip hidden:      %v", cfg.SkipHidden)
	logging.Debug("  Log level:        %s", cfg.LogLevel)
	logging.Debug("  Metrics textfile: %s", valueOrNone(cfg.MetricsTextfile))
	logging.Debug("  GOMEMLIMIT:       %s", memorySource(mem))
	logging.Debug("  Go version:       %s", runtime.Version())
	logging.Debug("  OS/Arch:          %s/%s", runtime.GOOS, runtime.GOARCH)
	logging.Debug("  GOMAXPROCS:       %d", runtime.GOMAXPROCS(0))

	if runtime.GOMAXPROCS(0) < runtime.NumCPU() {
		logging.Debug("  (Container CPU limit detected)")
	}

	if wd, err := os.Getwd(); err == nil {
		logging.Debug("  Working dir:      %s", wd)
	}
}

func workersString(n int) string {
	if n == workers.Auto {
		return fmt.Sprintf("auto (%d)", workers.Resolve(n))
	}
	return fmt.Sprintf("%d", workers.Resolve(n))
}

func valueOrNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func memorySource(mem memory.ConfigResult) string {
	if !mem.Configured {
		return "not set"
	}
	return fmt.Sprintf("%d bytes (from %s)", mem.GoMemLimit, mem.Source)
}
