package config

import (
	"flag"
	"os"
	"time"

	"github.com/filedeck/filedeck/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string    base URL of the file service (default from Config)
//	-t int       request timeout in seconds (default from Config)
//	-p int       list page size (default from Config)
//	-w float     gallery container width in pixels (default from Config)
//	-o string    OTLP collector endpoint, empty disables tracing
//	-m string    metrics listen address, empty disables the endpoint
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-p", "-w", "-o", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointURL, "a", cfg.ServerEndpointURL, "base URL of the file service")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "list page size")
	fs.Float64Var(&cfg.GalleryWidth, "w", cfg.GalleryWidth, "gallery width in pixels")
	fs.StringVar(&cfg.OTLPEndpoint, "o", cfg.OTLPEndpoint, "OTLP collector endpoint (host:port)")
	fs.StringVar(&cfg.MetricsAddr, "m", cfg.MetricsAddr, "metrics listen address (host:port)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
