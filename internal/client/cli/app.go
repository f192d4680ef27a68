package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/filedeck/filedeck/internal/client/client"
	"github.com/filedeck/filedeck/internal/client/config"
	"github.com/filedeck/filedeck/internal/client/layout"
	"github.com/filedeck/filedeck/internal/client/ledger"
	"github.com/filedeck/filedeck/internal/client/probe"
	"github.com/filedeck/filedeck/internal/client/services"
	"github.com/filedeck/filedeck/internal/logging"
)

// App wires the file service client, ledger, orchestration service, and
// gallery for one interactive session.
type App struct {
	config  *config.Config
	api     client.Client
	files   *services.FileService
	gallery *services.Gallery
	reader  *bufio.Reader
	log     logging.Logger
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	httpc := client.NewInstrumentedHTTPClient(c.RequestTimeout)
	api := client.NewHTTPClient(c.ServerEndpointURL, httpc, log)

	files := services.NewFileService(api, ledger.New(), services.Options{
		PageSize:      c.PageSize,
		MaxFileSize:   c.MaxFileSize,
		SilentRefresh: true,
		Log:           log,
	})
	gallery := services.NewGallery(files, probe.New(httpc, 0, log), layout.Options{})

	return &App{
		config:  c,
		api:     api,
		files:   files,
		gallery: gallery,
		reader:  bufio.NewReader(os.Stdin),
		log:     log,
	}, nil
}

// Run performs the initial list fetch and enters the REPL. A failed initial
// fetch is reported once; the shell still starts so the user can retry.
func (a *App) Run(ctx context.Context) {
	if err := a.Refresh(ctx); err != nil {
		a.log.Error(ctx, "initial list fetch failed", "error", err)
	}

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))

	a.files.Flush()
	_ = a.api.Close()
}

// status renders the prompt suffix: record count and pagination hint.
func (a *App) status() string {
	page := a.files.Page()
	s := fmt.Sprintf("%d files", len(a.files.Files()))
	if page.HasMore {
		s += " +"
	}
	return "(" + s + ")"
}
