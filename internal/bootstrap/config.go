package bootstrap

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	DefaultListenAddr  = ":8080"
	DefaultMetricsAddr = ":9090"
	DefaultLogLevel    = "info"
	DefaultServiceName = "dropwizard-fixture"

	// ConfigFileEnv names an optional YAML file read before the environment.
	ConfigFileEnv = "FIXTURE_CONFIG"
)

type Config struct {
	ServiceName  string `yaml:"service_name"`
	ListenAddr   string `yaml:"listen_addr"`
	MetricsAddr  string `yaml:"metrics_addr"`
	LogLevel     string `yaml:"log_level"`
	OTLPEndpoint string `yaml:"otlp_endpoint"`
}

func DefaultConfig() Config {
	return Config{
		ServiceName: DefaultServiceName,
		ListenAddr:  DefaultListenAddr,
		MetricsAddr: DefaultMetricsAddr,
		LogLevel:    DefaultLogLevel,
	}
}

// LoadConfig applies, in order, the defaults, the file named by
// FIXTURE_CONFIG and the environment variables SERVICE_NAME, LISTEN_ADDR,
// METRICS_ADDR, LOG_LEVEL and OTLP_ENDPOINT. A variable that is set but empty
// still overrides, so METRICS_ADDR= disables the metrics server.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if path := os.Getenv(ConfigFileEnv); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := decodeYAML(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	overrides := []struct {
		env string
		dst *string
	}{
		{"SERVICE_NAME", &cfg.ServiceName},
		{"LISTEN_ADDR", &cfg.ListenAddr},
		{"METRICS_ADDR", &cfg.MetricsAddr},
		{"LOG_LEVEL", &cfg.LogLevel},
		{"OTLP_ENDPOINT", &cfg.OTLPEndpoint},
	}
	for _, o := range overrides {
		if v, ok := os.LookupEnv(o.env); ok {
			*o.dst = v
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.ServiceName == "" {
		errs = append(errs, errors.New("service name is empty"))
	}
	if _, _, err := net.SplitHostPort(c.ListenAddr); err != nil {
		errs = append(errs, fmt.Errorf("listen addr %q: %w", c.ListenAddr, err))
	}
	if c.MetricsAddr != "" {
		if _, _, err := net.SplitHostPort(c.MetricsAddr); err != nil {
			errs = append(errs, fmt.Errorf("metrics addr %q: %w", c.MetricsAddr, err))
		}
		if c.MetricsAddr == c.ListenAddr {
			errs = append(errs, fmt.Errorf("metrics addr %q collides with listen addr", c.MetricsAddr))
		}
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}
	return errors.Join(errs...)
}

// decodeYAML rejects unknown keys so typos in the file surface at startup.
func decodeYAML(b []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
