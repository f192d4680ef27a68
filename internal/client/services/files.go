// Package services orchestrates the optimistic file-management flows:
// listing with pagination, batch upload (validate, insert optimistically,
// upload, then merge or roll back), batch delete, visibility changes, and
// the best-effort silent reconciliation that follows creative or destructive
// batches.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/filedeck/filedeck/internal/client/client"
	"github.com/filedeck/filedeck/internal/client/ledger"
	"github.com/filedeck/filedeck/internal/client/metrics"
	"github.com/filedeck/filedeck/internal/client/models"
	"github.com/filedeck/filedeck/internal/common"
	"github.com/filedeck/filedeck/internal/idx"
	"github.com/filedeck/filedeck/internal/logging"
)

const (
	defaultPageSize      = 20
	defaultMaxFileSize   = 100 << 20 // 100 MiB
	defaultMaxErrorsKept = 3
)

// BatchResult aggregates a fan-out operation. Batches never fail fast: every
// item is attempted, and at most the first few error messages are kept
// verbatim for display.
type BatchResult struct {
	Succeeded int
	Failed    int
	Errors    []string
}

func (r *BatchResult) fail(keep int, err error) {
	r.Failed++
	if len(r.Errors) < keep {
		r.Errors = append(r.Errors, err.Error())
	}
}

// Options tune a FileService. Zero values select defaults.
type Options struct {
	PageSize      int
	MaxFileSize   int64
	MaxErrorsKept int
	// SilentRefresh enables the background reconciliation fetch after
	// creative/destructive batches.
	SilentRefresh bool
	Log           logging.Logger
}

// FileService owns the ledger and page state for one screen/session and
// runs every user-initiated file flow against the external service.
type FileService struct {
	client client.Client
	ledger *ledger.Ledger
	ids    *idx.Generator
	log    logging.Logger
	opts   Options

	mu   sync.Mutex
	page models.PageState

	background sync.WaitGroup
}

func NewFileService(c client.Client, led *ledger.Ledger, opts Options) *FileService {
	if opts.PageSize <= 0 {
		opts.PageSize = defaultPageSize
	}
	if opts.MaxFileSize <= 0 {
		opts.MaxFileSize = defaultMaxFileSize
	}
	if opts.MaxErrorsKept <= 0 {
		opts.MaxErrorsKept = defaultMaxErrorsKept
	}
	return &FileService{
		client: c,
		ledger: led,
		ids:    idx.NewGenerator(),
		log:    opts.Log,
		opts:   opts,
		page:   models.NewPageState(opts.PageSize),
	}
}

// Files returns the current ledger contents in display order.
func (s *FileService) Files() []models.FileRecord {
	return s.ledger.Snapshot()
}

// Page returns a copy of the pagination state.
func (s *FileService) Page() models.PageState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// Refresh performs a full list fetch and replaces the ledger. A failed fetch
// is reported once and leaves previously-loaded state untouched.
func (s *FileService) Refresh(ctx context.Context) error {
	res, err := s.client.ListFiles(ctx, 0, s.opts.PageSize)
	metrics.Observe("list", err)
	if err != nil {
		return fmt.Errorf("refreshing file list: %w", err)
	}

	s.ledger.SetFiles(models.NormalizeAll(res.Files), false)
	metrics.LedgerRecords.Set(float64(s.ledger.Len()))

	s.mu.Lock()
	s.page.Reset(res.Total, res.HasMore)
	s.mu.Unlock()
	return nil
}

// LoadMore fetches the next page and merge-appends it. It is a no-op when
// the cursor reports no more pages or a load is already in flight.
func (s *FileService) LoadMore(ctx context.Context) error {
	s.mu.Lock()
	if !s.page.CanLoadMore() {
		s.mu.Unlock()
		return nil
	}
	s.page.LoadingMore = true
	offset := s.page.Offset + s.page.Limit
	s.mu.Unlock()

	res, err := s.client.ListFiles(ctx, offset, s.opts.PageSize)
	metrics.Observe("list", err)
	if err != nil {
		s.mu.Lock()
		s.page.LoadingMore = false
		s.mu.Unlock()
		return fmt.Errorf("loading more files: %w", err)
	}

	s.ledger.SetFiles(models.NormalizeAll(res.Files), true)
	metrics.LedgerRecords.Set(float64(s.ledger.Len()))

	s.mu.Lock()
	s.page.Advance(res.Total, res.HasMore)
	s.mu.Unlock()
	return nil
}

// UploadBatch uploads the picked files one by one. Each item is validated
// before any network call; offending items are excluded and the rest of the
// batch proceeds. Per item, an optimistic record is prepended under a temp
// id, then the upload runs. On success the temp record is replaced with the
// confirmed one (server fields win, locally known values fill whatever the
// server omitted); on failure the temp record is removed. Visibility sync
// and entity linking after a successful upload are best-effort and never
// fail the upload.
func (s *FileService) UploadBatch(ctx context.Context, picked []models.PickedFile, visibility string, link *client.EntityLink) BatchResult {
	var res BatchResult

	for _, item := range picked {
		if err := item.Validate(s.opts.MaxFileSize); err != nil {
			s.warn(ctx, "upload rejected", "filename", item.Name, "error", err)
			metrics.Observe("upload", err)
			res.fail(s.opts.MaxErrorsKept, err)
			continue
		}

		if err := s.uploadOne(ctx, item, visibility, link); err != nil {
			s.warn(ctx, "upload failed", "filename", item.Name, "error", err)
			res.fail(s.opts.MaxErrorsKept, err)
			continue
		}
		res.Succeeded++
	}

	if res.Succeeded > 0 {
		s.scheduleSilentRefresh(ctx)
	}
	return res
}

func (s *FileService) uploadOne(ctx context.Context, item models.PickedFile, visibility string, link *client.EntityLink) error {
	tempID := s.ids.TempID()
	optimistic := models.FileRecord{
		ID:          tempID,
		Filename:    item.Name,
		ContentType: item.MimeType,
		Length:      item.Size,
		UploadDate:  time.Now().UTC(),
		Metadata:    map[string]any{models.MetaUploading: true},
	}
	if visibility != "" {
		optimistic.Metadata[models.MetaVisibility] = visibility
	}
	s.ledger.AddFile(optimistic, true)
	metrics.LedgerRecords.Set(float64(s.ledger.Len()))

	body, err := item.Open()
	if err != nil {
		s.rollback(tempID)
		metrics.Observe("upload", err)
		return err
	}

	raw, err := s.client.UploadRaw(ctx, item.Name, item.MimeType, body, item.Size, visibility)
	_ = body.Close()
	metrics.Observe("upload", err)
	if err != nil {
		s.rollback(tempID)
		return err
	}

	confirmed := mergeConfirmed(raw, optimistic)
	s.ledger.RemoveFile(tempID)
	s.ledger.AddFile(confirmed, true)
	metrics.LedgerRecords.Set(float64(s.ledger.Len()))

	// Best-effort side operations; their failure never fails the upload.
	if visibility != "" {
		if err := s.client.UpdateVisibility(ctx, confirmed.ID, visibility); err != nil {
			s.warn(ctx, "visibility sync failed", "id", confirmed.ID, "error", err)
		}
	}
	if link != nil {
		if err := s.client.LinkToEntity(ctx, confirmed.ID, *link); err != nil {
			s.warn(ctx, "entity link failed", "id", confirmed.ID, "error", err)
		}
	}
	return nil
}

// mergeConfirmed normalizes the server response, falling back to the locally
// known values for any field the server omitted.
func mergeConfirmed(raw models.RawFile, local models.FileRecord) models.FileRecord {
	rec := raw.Normalize()
	if rec.Filename == "" {
		rec.Filename = local.Filename
	}
	if rec.ContentType == "" {
		rec.ContentType = local.ContentType
	}
	if rec.Length == 0 {
		rec.Length = local.Length
	}
	if rec.UploadDate.Equal(time.Unix(0, 0).UTC()) {
		rec.UploadDate = local.UploadDate
	}
	for k, v := range local.Metadata {
		if k == models.MetaUploading {
			continue
		}
		if _, ok := rec.Metadata[k]; !ok {
			rec.Metadata[k] = v
		}
	}
	delete(rec.Metadata, models.MetaUploading)
	return rec
}

// DeleteBatch removes files optimistically and confirms with the service.
// A NotFound response counts as success (the end state matches). Any other
// failure rolls the record back into its original list position and the
// batch continues.
func (s *FileService) DeleteBatch(ctx context.Context, ids []string) BatchResult {
	var res BatchResult

	for _, id := range ids {
		prev, pos, existed := s.ledger.TakeFile(id)

		err := s.client.DeleteFile(ctx, id)
		metrics.Observe("delete", err)
		if err != nil && !errors.Is(err, common.ErrNotFound) {
			if existed {
				s.ledger.InsertFile(prev, pos)
				metrics.RollbacksTotal.Inc()
			}
			s.warn(ctx, "delete failed", "id", id, "error", err)
			res.fail(s.opts.MaxErrorsKept, err)
			continue
		}
		res.Succeeded++
	}

	metrics.LedgerRecords.Set(float64(s.ledger.Len()))
	if res.Succeeded > 0 {
		s.scheduleSilentRefresh(ctx)
	}
	return res
}

// SetVisibilityBatch updates visibility per item, optimistically reflecting
// the change in ledger metadata. Failures do not roll back; the silent
// refresh corrects any drift.
func (s *FileService) SetVisibilityBatch(ctx context.Context, ids []string, visibility string) BatchResult {
	var res BatchResult

	for _, id := range ids {
		s.ledger.UpdateFile(id, ledger.Patch{
			Metadata: map[string]any{models.MetaVisibility: visibility},
		})

		err := s.client.UpdateVisibility(ctx, id, visibility)
		metrics.Observe("visibility", err)
		if err != nil {
			s.warn(ctx, "visibility change failed", "id", id, "error", err)
			res.fail(s.opts.MaxErrorsKept, err)
			continue
		}
		res.Succeeded++
	}

	if res.Succeeded > 0 {
		s.scheduleSilentRefresh(ctx)
	}
	return res
}

// UpdateDescription sets a file's description locally and server-side.
func (s *FileService) UpdateDescription(ctx context.Context, id, text string) error {
	if !s.ledger.UpdateFile(id, ledger.Patch{Metadata: map[string]any{models.MetaDescription: text}}) {
		return fmt.Errorf("%w: %s", common.ErrNotFound, id)
	}

	err := s.client.UpdateMetadata(ctx, id, map[string]any{models.MetaDescription: text})
	metrics.Observe("describe", err)
	if err != nil {
		return fmt.Errorf("updating description of %s: %w", id, err)
	}
	return nil
}

// DownloadURL resolves a display URL for a file, preferring the named
// variant when the record carries it.
func (s *FileService) DownloadURL(id, variant string) (string, error) {
	rec, ok := s.ledger.Get(id)
	if !ok {
		return "", fmt.Errorf("%w: %s", common.ErrNotFound, id)
	}
	if variant != "" {
		if _, ok := rec.Variant(variant); !ok {
			variant = ""
		}
	}
	return s.client.DownloadURL(id, variant), nil
}

// scheduleSilentRefresh re-fetches the first page in the background to
// correct optimistic drift against the authoritative source. Best-effort:
// its failure never rolls back already-applied optimistic changes.
func (s *FileService) scheduleSilentRefresh(ctx context.Context) {
	if !s.opts.SilentRefresh {
		return
	}

	// The refresh must outlive the user action that triggered it.
	bg := context.WithoutCancel(ctx)
	s.background.Add(1)
	go func() {
		defer s.background.Done()
		if err := s.Refresh(bg); err != nil {
			s.warn(bg, "silent refresh failed", "error", err)
		}
	}()
}

// Flush waits for in-flight background reconciliations. Called on shutdown
// and by tests.
func (s *FileService) Flush() {
	s.background.Wait()
}

// rollback removes an optimistic temp record after its upload failed.
func (s *FileService) rollback(tempID string) {
	if s.ledger.RemoveFile(tempID) {
		metrics.RollbacksTotal.Inc()
	}
	metrics.LedgerRecords.Set(float64(s.ledger.Len()))
}

func (s *FileService) warn(ctx context.Context, msg string, args ...any) {
	if s.log != nil {
		s.log.Warn(ctx, msg, args...)
	}
}
