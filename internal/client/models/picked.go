package models

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/filedeck/filedeck/internal/common"
	"github.com/filedeck/filedeck/internal/filex"
)

// PickedKind tags the origin of a user-picked file.
type PickedKind string

const (
	// PickedNative is a file referenced by a filesystem path.
	PickedNative PickedKind = "native"
	// PickedBlob is an in-memory payload (drag-and-drop, clipboard paste).
	PickedBlob PickedKind = "blob"
)

// PickedFile normalizes the loosely-shaped objects different pickers produce
// into one explicit union, before any core logic sees them. Exactly one of
// URI (native) or Data (blob) is populated, per Kind.
type PickedFile struct {
	Kind     PickedKind
	Name     string
	Size     int64
	MimeType string

	URI  string
	Data []byte
}

// PickNative builds a PickedFile from a filesystem path, reading name, size
// and MIME type from the file itself.
func PickNative(path string) (PickedFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return PickedFile{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return PickedFile{}, fmt.Errorf("%w: %s is a directory", common.ErrValidation, path)
	}
	name := filepath.Base(path)
	return PickedFile{
		Kind:     PickedNative,
		Name:     name,
		Size:     info.Size(),
		MimeType: filex.ContentTypeFor(name),
		URI:      path,
	}, nil
}

// PickBlob builds a PickedFile from an in-memory payload.
func PickBlob(name string, data []byte, mimeType string) PickedFile {
	if mimeType == "" {
		mimeType = filex.ContentTypeFor(name)
	}
	return PickedFile{
		Kind:     PickedBlob,
		Name:     name,
		Size:     int64(len(data)),
		MimeType: mimeType,
		Data:     data,
	}
}

// Validate checks the picked file before any network call. Violations are
// reported as common.ErrValidation so batch callers can classify them.
func (p PickedFile) Validate(maxSize int64) error {
	if p.Name == "" {
		return fmt.Errorf("%w: file has no name", common.ErrValidation)
	}
	if p.Size <= 0 {
		return fmt.Errorf("%w: %s is empty", common.ErrValidation, p.Name)
	}
	if maxSize > 0 && p.Size > maxSize {
		return fmt.Errorf("%w: %s exceeds the %s limit", common.ErrValidation, p.Name, filex.HumanSize(maxSize))
	}
	return nil
}

// Open returns the payload for upload. Native files are opened lazily so a
// picker result can be validated without touching the file contents.
func (p PickedFile) Open() (io.ReadCloser, error) {
	switch p.Kind {
	case PickedNative:
		f, err := os.Open(p.URI)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", p.URI, err)
		}
		return f, nil
	case PickedBlob:
		return io.NopCloser(bytes.NewReader(p.Data)), nil
	default:
		return nil, fmt.Errorf("%w: unknown picked kind %q", common.ErrValidation, p.Kind)
	}
}
