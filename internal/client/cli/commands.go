package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/filedeck/filedeck/internal/client/client"
	"github.com/filedeck/filedeck/internal/client/models"
	"github.com/filedeck/filedeck/internal/client/services"
	"github.com/filedeck/filedeck/internal/filex"
)

// List prints the current ledger contents in display order.
func (a *App) List(ctx context.Context) error {
	files := a.files.Files()
	if len(files) == 0 {
		printlnFn("No files. Try 'refresh' or 'upload <path>'.")
		return nil
	}

	for _, f := range files {
		line := fmt.Sprintf("%-30s  %-8s  %10s  %s  %s",
			f.ID, f.Kind(), filex.HumanSize(f.Length), f.UploadDate.Format("2006-01-02"), f.Filename)
		if f.Uploading() {
			line += "  (uploading...)"
		}
		if d := f.Description(); d != "" {
			line += "  :: " + d
		}
		printlnFn(line)
	}

	page := a.files.Page()
	if page.HasMore {
		printlnFn(fmt.Sprintf("Showing %d of %d. Type 'more' for the next page.", len(files), page.Total))
	}
	return nil
}

// More loads the next page, if any.
func (a *App) More(ctx context.Context) error {
	if !a.files.Page().CanLoadMore() {
		printlnFn("Nothing more to load.")
		return nil
	}
	if err := a.files.LoadMore(ctx); err != nil {
		a.log.Error(ctx, "load more failed", "error", err)
		return err
	}
	return a.List(ctx)
}

// Refresh re-fetches the first page, replacing the list.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.files.Refresh(ctx); err != nil {
		a.log.Error(ctx, "refresh failed", "error", err)
		return err
	}
	return nil
}

// Upload validates and uploads the given local paths as one batch. An empty
// selection is a no-op, matching a cancelled picker.
func (a *App) Upload(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		printlnFn("Usage: upload <path> [path...]")
		return nil
	}

	picked := make([]models.PickedFile, 0, len(paths))
	for _, path := range paths {
		p, err := models.PickNative(path)
		if err != nil {
			a.log.Error(ctx, "skipping path", "path", path, "error", err)
			continue
		}
		picked = append(picked, p)
	}
	if len(picked) == 0 {
		return nil
	}

	res := a.files.UploadBatch(ctx, picked, "", nil)
	reportBatch("Uploaded", res)
	return nil
}

// Delete prompts for ids, asks for confirmation, then deletes as one batch.
func (a *App) Delete(ctx context.Context) error {
	ids, err := GetIDList(a.reader, "Enter file id(s) to delete", os.Stdout)
	if err != nil || len(ids) == 0 {
		return err
	}

	if !GetConfirmation(a.reader, fmt.Sprintf("Delete %d file(s)? This cannot be undone.", len(ids)), os.Stdout) {
		printlnFn("Cancelled.")
		return nil
	}

	res := a.files.DeleteBatch(ctx, ids)
	reportBatch("Deleted", res)
	return nil
}

// Describe sets a file's description.
func (a *App) Describe(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter file id", os.Stdout)
	if err != nil {
		return err
	}
	text, err := GetSimpleText(a.reader, "Enter description", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.files.UpdateDescription(ctx, id, text); err != nil {
		a.log.Error(ctx, "describe failed", "id", id, "error", err)
		return err
	}
	return nil
}

// Visibility changes visibility for one or more files.
func (a *App) Visibility(ctx context.Context) error {
	ids, err := GetIDList(a.reader, "Enter file id(s)", os.Stdout)
	if err != nil || len(ids) == 0 {
		return err
	}
	visibility, err := GetSimpleText(a.reader, "Enter visibility (private/team/public)", os.Stdout)
	if err != nil {
		return err
	}

	res := a.files.SetVisibilityBatch(ctx, ids, visibility)
	reportBatch("Updated", res)
	return nil
}

// Link attaches a file to an external entity.
func (a *App) Link(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter file id", os.Stdout)
	if err != nil {
		return err
	}
	app, err := GetSimpleText(a.reader, "Enter app name", os.Stdout)
	if err != nil {
		return err
	}
	entityType, err := GetSimpleText(a.reader, "Enter entity type", os.Stdout)
	if err != nil {
		return err
	}
	entityID, err := GetSimpleText(a.reader, "Enter entity id", os.Stdout)
	if err != nil {
		return err
	}

	link := client.EntityLink{App: app, EntityType: entityType, EntityID: entityID}
	if err := a.api.LinkToEntity(ctx, id, link); err != nil {
		a.log.Error(ctx, "link failed", "id", id, "error", err)
		return err
	}
	return nil
}

// URL resolves and prints a download URL.
func (a *App) URL(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter file id", os.Stdout)
	if err != nil {
		return err
	}
	variant, err := GetSimpleText(a.reader, "Enter variant (empty for original)", os.Stdout)
	if err != nil {
		return err
	}

	u, err := a.files.DownloadURL(id, variant)
	if err != nil {
		a.log.Error(ctx, "url resolution failed", "id", id, "error", err)
		return err
	}
	printlnFn(u)
	return nil
}

// Gallery prints the justified row plan for the current images. An optional
// argument overrides the configured container width.
func (a *App) Gallery(ctx context.Context, args []string) error {
	width := a.config.GalleryWidth
	if len(args) > 0 {
		w, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			printlnFn("Usage: gallery [width]")
			return nil
		}
		width = w
	}

	rows := a.gallery.Rows(ctx, width)
	if len(rows) == 0 {
		printlnFn("No images to lay out.")
		return nil
	}

	for i, row := range rows {
		printlnFn(fmt.Sprintf("row %d (h=%s):", i+1, strconv.FormatFloat(row.Height, 'f', 1, 64)))
		for _, item := range row.Items {
			printlnFn(fmt.Sprintf("  %-30s %6.1f x %-6.1f %s", item.Record.Filename, item.Width, item.Height, item.Record.ID))
		}
	}
	return nil
}

func reportBatch(verb string, res services.BatchResult) {
	printlnFn(fmt.Sprintf("%s %d file(s), %d failed.", verb, res.Succeeded, res.Failed))
	for _, msg := range res.Errors {
		printlnFn("  - " + msg)
	}
}
