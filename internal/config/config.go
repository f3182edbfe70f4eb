package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"file-indexer/internal/logging"
	"file-indexer/internal/workers"
)

// EnvPrefix is prepended to every key when reading environment variables
const EnvPrefix = "FILE_INDEXER"

// Configuration keys, shared by the YAML file, environment and flags
const (
	KeyWorkers         = "workers"
	KeyLogLevel        = "log_level"
	KeySkipHidden      = "skip_hidden"
	KeyMetricsTextfile = "metrics_textfile"
)

// Config holds the resolved settings for one invocation
type Config struct {
	Workers         int
	LogLevel        logging.LogLevel
	SkipHidden      bool
	MetricsTextfile string
}

// New returns a viper instance with defaults and environment binding set up.
// Callers bind command-line flags onto it before calling Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyWorkers, workers.Default)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeySkipHidden, false)
	v.SetDefault(KeyMetricsTextfile, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	// LOG_LEVEL is honored without the prefix as well
	_ = v.BindEnv(KeyLogLevel, EnvPrefix+"_LOG_LEVEL", "LOG_LEVEL")

	return v
}

// Load reads the optional config file and returns the resolved Config.
// A missing or malformed file named explicitly is an error.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
		logging.Debug("Loaded configuration from %s", v.ConfigFileUsed())
	}

	level, err := logging.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", KeyLogLevel, err)
	}

	return &Config{
		Workers:         v.GetInt(KeyWorkers),
		LogLevel:        level,
		SkipHidden:      v.GetBool(KeySkipHidden),
		MetricsTextfile: v.GetString(KeyMetricsTextfile),
	}, nil
}
