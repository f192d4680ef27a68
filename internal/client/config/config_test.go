package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080", c.ServerEndpointURL)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Equal(t, 20, c.PageSize)
	assert.Equal(t, float64(1000), c.GalleryWidth)
	assert.Equal(t, int64(100<<20), c.MaxFileSize)
	assert.Equal(t, "", c.OTLPEndpoint)
	assert.Equal(t, "", c.MetricsAddr)
}

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"filedeck"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfigFlagsOverrideDefaults(t *testing.T) {
	withArgs(t, "-a", "http://files.internal:9000", "-t", "5", "-p", "50", "-w", "720", "-m", "127.0.0.1:9100")

	cfg := LoadConfig()
	assert.Equal(t, "http://files.internal:9000", cfg.ServerEndpointURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 50, cfg.PageSize)
	assert.Equal(t, float64(720), cfg.GalleryWidth)
	assert.Equal(t, "127.0.0.1:9100", cfg.MetricsAddr)
}

func TestLoadConfigJsonThenFlags(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "cfg-*.json")
	require.NoError(t, err)
	_, err = f.WriteString(`{
		"server_endpoint_url": "http://json.example:8000",
		"request_timeout": "7s",
		"page_size": 40,
		"otlp_endpoint": "collector:4318",
		"metrics_addr": "127.0.0.1:9101"
	}`)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	// Flags beat JSON for the endpoint; JSON beats defaults for the rest.
	withArgs(t, "-c", f.Name(), "-a", "http://flags.example:8001")

	cfg := LoadConfig()
	assert.Equal(t, "http://flags.example:8001", cfg.ServerEndpointURL)
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 40, cfg.PageSize)
	assert.Equal(t, "collector:4318", cfg.OTLPEndpoint)
	assert.Equal(t, "127.0.0.1:9101", cfg.MetricsAddr)
}
