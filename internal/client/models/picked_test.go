package models

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filedeck/filedeck/internal/common"
)

func TestPickNative(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 data"), 0o600))

	p, err := PickNative(path)
	require.NoError(t, err)
	assert.Equal(t, PickedNative, p.Kind)
	assert.Equal(t, "report.pdf", p.Name)
	assert.Equal(t, int64(13), p.Size)
	assert.Equal(t, "application/pdf", p.MimeType)

	rc, err := p.Open()
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 data", string(data))
}

func TestPickNativeRejectsDirectory(t *testing.T) {
	_, err := PickNative(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrValidation))
}

func TestPickBlob(t *testing.T) {
	p := PickBlob("note.txt", []byte("hello"), "")
	assert.Equal(t, PickedBlob, p.Kind)
	assert.Equal(t, int64(5), p.Size)
	assert.Equal(t, "text/plain", p.MimeType)

	rc, err := p.Open()
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestPickedFileValidate(t *testing.T) {
	tests := []struct {
		name    string
		file    PickedFile
		maxSize int64
		wantErr bool
	}{
		{name: "valid", file: PickBlob("a.txt", []byte("x"), ""), maxSize: 100},
		{name: "zero byte", file: PickedFile{Kind: PickedBlob, Name: "empty.txt"}, maxSize: 100, wantErr: true},
		{name: "missing name", file: PickedFile{Kind: PickedBlob, Size: 10}, maxSize: 100, wantErr: true},
		{name: "oversized", file: PickBlob("big.bin", make([]byte, 200), ""), maxSize: 100, wantErr: true},
		{name: "no limit configured", file: PickBlob("big.bin", make([]byte, 200), ""), maxSize: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.file.Validate(tt.maxSize)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, common.ErrValidation))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestPageState(t *testing.T) {
	p := NewPageState(20)
	assert.False(t, p.CanLoadMore())

	p.Reset(45, true)
	assert.True(t, p.CanLoadMore())
	assert.Equal(t, 0, p.Offset)

	p.LoadingMore = true
	assert.False(t, p.CanLoadMore())

	p.Advance(45, true)
	assert.Equal(t, 20, p.Offset)
	assert.True(t, p.CanLoadMore())

	p.Advance(45, false)
	assert.Equal(t, 40, p.Offset)
	assert.False(t, p.CanLoadMore())
}
