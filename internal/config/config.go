// Package config loads CLI configuration from defaults, an optional YAML
// file, WATERSORT_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/comalice/watersort/internal/core"
	"github.com/comalice/watersort/internal/logging"
)

// EnvPrefix is prepended to every environment variable, with dots in keys
// replaced by underscores: search.max_iterations is
// WATERSORT_SEARCH_MAX_ITERATIONS.
const EnvPrefix = "WATERSORT"

// Config is the complete CLI configuration.
type Config struct {
	Search    SearchConfig    `mapstructure:"search"`
	Log       LogConfig       `mapstructure:"log"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Output    OutputConfig    `mapstructure:"output"`
}

type SearchConfig struct {
	MaxIterations    int `mapstructure:"max_iterations" validate:"min=1"`
	ProgressInterval int `mapstructure:"progress_interval" validate:"min=0"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

type TelemetryConfig struct {
	// TraceExporter is none, stdout or otlp.
	TraceExporter string `mapstructure:"trace_exporter" validate:"oneof=none stdout otlp"`
	// OTLPEndpoint is host:port of an OTLP/gRPC collector. Empty uses the
	// exporter's default or OTEL_EXPORTER_OTLP_ENDPOINT.
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	// MetricsFile, when set, receives the Prometheus text exposition on exit.
	MetricsFile string `mapstructure:"metrics_file"`
}

type OutputConfig struct {
	Color string `mapstructure:"color" validate:"oneof=auto always never"`
}

// flagKeys maps CLI flag names to configuration keys.
var flagKeys = map[string]string{
	"max-iterations":    "search.max_iterations",
	"progress-interval": "search.progress_interval",
	"log-level":         "log.level",
	"log-json":          "log.json",
	"trace-exporter":    "telemetry.trace_exporter",
	"otlp-endpoint":     "telemetry.otlp_endpoint",
	"metrics-file":      "telemetry.metrics_file",
	"color":             "output.color",
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Search: SearchConfig{
			MaxIterations:    core.DefaultMaxIterations,
			ProgressInterval: core.DefaultProgressInterval,
		},
		Log:       LogConfig{Level: "warn"},
		Telemetry: TelemetryConfig{TraceExporter: "none"},
		Output:    OutputConfig{Color: "auto"},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("search.max_iterations", d.Search.MaxIterations)
	v.SetDefault("search.progress_interval", d.Search.ProgressInterval)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.json", d.Log.JSON)
	v.SetDefault("telemetry.trace_exporter", d.Telemetry.TraceExporter)
	v.SetDefault("telemetry.otlp_endpoint", d.Telemetry.OTLPEndpoint)
	v.SetDefault("telemetry.metrics_file", d.Telemetry.MetricsFile)
	v.SetDefault("output.color", d.Output.Color)
}

// Load builds a Config. configFile may be empty; flags may be nil. Only
// flags the user actually set override lower layers.
func Load(configFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file %s: %w", configFile, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = validator.New()

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// LoggingConfig converts the log section for logging.New.
func (c Config) LoggingConfig() logging.Config {
	level, _ := logging.ParseLevel(c.Log.Level)
	return logging.Config{Level: level, JSON: c.Log.JSON, Service: "watersort"}
}
