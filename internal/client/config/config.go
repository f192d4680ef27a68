package config

import "time"

// Config holds runtime settings for the filedeck CLI.
//
// Fields:
//   - ServerEndpointURL: base URL of the external file service.
//   - RequestTimeout: per-request HTTP timeout.
//   - PageSize: files fetched per list page.
//   - GalleryWidth: container width (px) the justified gallery renders into.
//   - MaxFileSize: upload size cap in bytes; files over it fail validation.
//   - OTLPEndpoint: optional OTLP/HTTP collector host:port; empty disables
//     tracing export.
//   - MetricsAddr: optional host:port to serve Prometheus metrics on; empty
//     disables the metrics endpoint.
type Config struct {
	ServerEndpointURL string
	RequestTimeout    time.Duration
	PageSize          int
	GalleryWidth      float64
	MaxFileSize       int64
	OTLPEndpoint      string
	MetricsAddr       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 30 * time.Second
	c.PageSize = 20
	c.GalleryWidth = 1000
	c.MaxFileSize = 100 << 20
	c.OTLPEndpoint = ""
	c.MetricsAddr = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
