package telemetry

import "github.com/meschbach/go-junk-bucket/pkg"

// ExporterNone disables exporting spans; the tracers stay no-ops.
const ExporterNone = "none"

type Config struct {
	Exporter    string `json:"exporter"`
	ServiceName string `json:"service-name"`
}

func DefaultConfig(serviceName string) Config {
	return Config{
		Exporter:    pkg.EnvOrDefault("OTEL_EXPORTER", ExporterNone),
		ServiceName: pkg.EnvOrDefault("OTEL_SERVICE_NAME", serviceName),
	}
}

func (c Config) Enabled() bool {
	return c.Exporter != "" && c.Exporter != ExporterNone
}
