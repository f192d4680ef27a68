package services

import (
	"context"

	"github.com/filedeck/filedeck/internal/client/layout"
	"github.com/filedeck/filedeck/internal/client/models"
	"github.com/filedeck/filedeck/internal/client/probe"
)

// Gallery composes the ledger's image records with the dimension prober and
// the justified packer into a render plan.
type Gallery struct {
	svc    *FileService
	prober *probe.Prober
	opts   layout.Options
}

func NewGallery(svc *FileService, prober *probe.Prober, opts layout.Options) *Gallery {
	return &Gallery{svc: svc, prober: prober, opts: opts}
}

// Rows builds the justified row plan for the current image set at the given
// container width. Unknown dimensions are probed first (fan-out, bounded);
// an image whose probe fails is still placed with the default aspect ratio.
// The plan is derived state: callers re-invoke Rows whenever the image set,
// dimensions, or width changes, and never mutate a returned plan in place.
func (g *Gallery) Rows(ctx context.Context, availableWidth float64) []layout.Row {
	images := g.svc.ledger.Images()
	g.prober.ResolveAll(ctx, images, g.urlFor)
	return layout.JustifiedRows(images, g.prober.Dimensions(), availableWidth, g.opts)
}

// urlFor prefers the thumb variant for probing when the record carries one.
func (g *Gallery) urlFor(rec models.FileRecord) string {
	variant := ""
	if _, ok := rec.Variant("thumb"); ok {
		variant = "thumb"
	}
	return g.svc.client.DownloadURL(rec.ID, variant)
}
