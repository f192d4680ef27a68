package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/filedeck/filedeck/internal/flagx"
	"github.com/filedeck/filedeck/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "30s" or as integer nanoseconds. Zero-valued fields are treated as absent
// and do not override earlier sources.
type JsonConfig struct {
	ServerEndpointURL string         `json:"server_endpoint_url"`
	RequestTimeout    timex.Duration `json:"request_timeout"`
	PageSize          int            `json:"page_size"`
	GalleryWidth      float64        `json:"gallery_width"`
	MaxFileSize       int64          `json:"max_file_size"`
	OTLPEndpoint      string         `json:"otlp_endpoint"`
	MetricsAddr       string         `json:"metrics_addr"`
}

// parseJson overlays Config with values loaded from a JSON file resolved via
// the -c/-config flags. When no file is given, the function returns without
// touching cfg. Read or unmarshal errors panic; LoadConfig runs before any
// UI exists, so failing loudly at startup is the right behavior.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointURL != "" {
		cfg.ServerEndpointURL = jc.ServerEndpointURL
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.PageSize > 0 {
		cfg.PageSize = jc.PageSize
	}
	if jc.GalleryWidth > 0 {
		cfg.GalleryWidth = jc.GalleryWidth
	}
	if jc.MaxFileSize > 0 {
		cfg.MaxFileSize = jc.MaxFileSize
	}
	if jc.OTLPEndpoint != "" {
		cfg.OTLPEndpoint = jc.OTLPEndpoint
	}
	if jc.MetricsAddr != "" {
		cfg.MetricsAddr = jc.MetricsAddr
	}
}
