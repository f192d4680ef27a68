package probe

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filedeck/filedeck/internal/client/layout"
	"github.com/filedeck/filedeck/internal/client/models"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func TestDecodeDimensions(t *testing.T) {
	d, err := DecodeDimensions(bytes.NewReader(pngBytes(t, 640, 480)))
	require.NoError(t, err)
	assert.Equal(t, layout.Dimensions{Width: 640, Height: 480}, d)
}

func TestDecodeDimensionsRejectsGarbage(t *testing.T) {
	_, err := DecodeDimensions(strings.NewReader("definitely not an image"))
	require.Error(t, err)
}

func TestResolveAll(t *testing.T) {
	sizes := map[string][2]int{
		"/img/a": {300, 200},
		"/img/b": {200, 200},
	}
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		size, ok := sizes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(pngBytes(t, size[0], size[1]))
	}))
	defer srv.Close()

	p := New(srv.Client(), 2, nil)
	records := []models.FileRecord{
		{ID: "a", ContentType: "image/png"},
		{ID: "b", ContentType: "image/png"},
		{ID: "broken", ContentType: "image/png"},
	}
	urlFor := func(rec models.FileRecord) string { return srv.URL + "/img/" + rec.ID }

	p.ResolveAll(context.Background(), records, urlFor)

	dims := p.Dimensions()
	assert.Equal(t, layout.Dimensions{Width: 300, Height: 200}, dims["a"])
	assert.Equal(t, layout.Dimensions{Width: 200, Height: 200}, dims["b"])
	_, ok := dims["broken"]
	assert.False(t, ok, "failed probe must leave no entry")

	// Cached ids are not re-fetched.
	before := hits.Load()
	p.ResolveAll(context.Background(), records[:2], urlFor)
	assert.Equal(t, before, hits.Load())
}

func TestSetLastWriteWins(t *testing.T) {
	p := New(nil, 0, nil)
	p.Set("x", layout.Dimensions{Width: 1, Height: 1})
	p.Set("x", layout.Dimensions{Width: 2, Height: 3})
	assert.Equal(t, layout.Dimensions{Width: 2, Height: 3}, p.Dimensions()["x"])
}

func TestDimensionsReturnsCopy(t *testing.T) {
	p := New(nil, 0, nil)
	p.Set("x", layout.Dimensions{Width: 4, Height: 3})

	snap := p.Dimensions()
	snap["x"] = layout.Dimensions{Width: 9, Height: 9}

	assert.Equal(t, layout.Dimensions{Width: 4, Height: 3}, p.Dimensions()["x"])
}
