package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Environment string `toml:"-"`

	Host string `toml:"host"`
	Port int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// storage: "bolt" keeps the log in a local db file, "memory" keeps it
	// in memory only (everything is gone on restart)
	StorageEngine string `toml:"storage_engine"`
	// StoragePath is the path of the bolt db file, empty means
	// a default file in the user config dir
	StoragePath string `toml:"storage_path"`

	// Timezone is the IANA location used to resolve entry timestamps
	// to calendar dates, empty means the system local zone
	Timezone string `toml:"timezone"`

	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	OtelTracingEnabled bool   `toml:"otel_tracing_enabled"`
	OtelExporterOTLP   string `toml:"otel_exporter_otlp_endpoint"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML config file at path and returns the section for env.
// A missing config file is not an error: the tool should run with zero
// setup, so defaults are returned instead.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		if os.IsNotExist(err) {
			log.Warnf("config file [%s] not found, using defaults", path)
			cfg := defaults()
			cfg.Environment = env
			return cfg, nil
		}
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config file has no section for env: %s", env)
	}

	cfg.Environment = env
	cfg.fillMissing()

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Host:                  "localhost",
		Port:                  8080,
		LogLevel:              "debug",
		LogToStdout:           true,
		StorageEngine:         "bolt",
		PrometheusMetricsHost: "localhost",
		PrometheusMetricsPort: "2112",
	}
}

func (c *Config) fillMissing() {
	def := defaults()
	if c.Host == "" {
		c.Host = def.Host
	}
	if c.Port == 0 {
		c.Port = def.Port
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.StorageEngine == "" {
		c.StorageEngine = def.StorageEngine
	}
	if c.PrometheusMetricsHost == "" {
		c.PrometheusMetricsHost = def.PrometheusMetricsHost
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = def.PrometheusMetricsPort
	}
}
