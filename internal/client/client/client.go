package client

import (
	"context"
	"io"

	"github.com/filedeck/filedeck/internal/client/models"
)

// ListResult is one page of the file listing.
type ListResult struct {
	Files   []models.RawFile `json:"files"`
	Total   int              `json:"total"`
	HasMore bool             `json:"hasMore"`
}

// EntityLink attaches a file to a business entity in another app.
type EntityLink struct {
	App        string `json:"app"`
	EntityType string `json:"entityType"`
	EntityID   string `json:"entityId"`
	Visibility string `json:"visibility,omitempty"`
	WebhookURL string `json:"webhookUrl,omitempty"`
}

// Client is the capability contract the file service provides. All calls are
// single-attempt; retry policy belongs to the service's own infrastructure.
type Client interface {
	// ListFiles fetches one page of file metadata.
	ListFiles(ctx context.Context, offset, limit int) (ListResult, error)

	// UploadRaw streams one file's content to the service and returns the
	// confirmed metadata record.
	UploadRaw(ctx context.Context, name, contentType string, body io.Reader, size int64, visibility string) (models.RawFile, error)

	// DeleteFile removes a file.
	DeleteFile(ctx context.Context, id string) error

	// UpdateVisibility changes who can see a file. Best-effort from the
	// caller's perspective.
	UpdateVisibility(ctx context.Context, id, visibility string) error

	// UpdateMetadata merges metadata fields (e.g. description) server-side.
	UpdateMetadata(ctx context.Context, id string, metadata map[string]any) error

	// LinkToEntity attaches the file to an external entity. Best-effort.
	LinkToEntity(ctx context.Context, id string, link EntityLink) error

	// DownloadURL resolves the URL for a file's content or one of its
	// variants. Pure function of its inputs; performs no network call.
	DownloadURL(id, variant string) string

	// Ping probes service reachability.
	Ping(ctx context.Context) error

	Close() error
}
