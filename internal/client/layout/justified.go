package layout

import (
	"github.com/filedeck/filedeck/internal/client/models"
)

// Policy constants for the justified grid.
const (
	DefaultItemsPerRow = 3
	DefaultGap         = 4.0
	DefaultMinHeight   = 120.0
	DefaultMaxHeight   = 300.0

	// DefaultAspectRatio is used for items whose pixel dimensions are not
	// known yet (4:3).
	DefaultAspectRatio = 4.0 / 3.0
)

// Dimensions holds an image's pixel size.
type Dimensions struct {
	Width  int
	Height int
}

// DimensionMap maps record id to known pixel dimensions. It may be
// incomplete; missing or degenerate entries fall back to the default aspect.
type DimensionMap map[string]Dimensions

// Item is one placed image with its computed render size. IsLast marks the
// final item of a row; collaborators use it for border/margin decisions
// only, it has no geometric effect.
type Item struct {
	Record models.FileRecord
	Width  float64
	Height float64
	IsLast bool
}

// Row is one justified row. All items share Height.
type Row struct {
	Items  []Item
	Height float64
}

// Options tune the packer. The zero value selects the policy defaults.
type Options struct {
	ItemsPerRow int
	Gap         float64
	MinHeight   float64
	MaxHeight   float64
}

func (o Options) withDefaults() Options {
	if o.ItemsPerRow <= 0 {
		o.ItemsPerRow = DefaultItemsPerRow
	}
	if o.Gap <= 0 {
		o.Gap = DefaultGap
	}
	if o.MinHeight <= 0 {
		o.MinHeight = DefaultMinHeight
	}
	if o.MaxHeight <= 0 {
		o.MaxHeight = DefaultMaxHeight
	}
	return o
}

// JustifiedRows partitions items into consecutive batches of ItemsPerRow
// (the last batch may be smaller) and computes each row's height so the
// row's items plus inter-item gaps fill availableWidth:
//
//	h = (availableWidth - gap*(rowSize-1)) / sum(aspectRatios)
//
// clamped to [MinHeight, MaxHeight]. Clamped rows do not perfectly fill the
// width; that is the accepted trade-off for visual consistency. The input
// slice and dimension map are never mutated.
func JustifiedRows(items []models.FileRecord, dims DimensionMap, availableWidth float64, opts Options) []Row {
	opts = opts.withDefaults()

	if len(items) == 0 {
		return []Row{}
	}

	k := opts.ItemsPerRow
	rows := make([]Row, 0, (len(items)+k-1)/k)

	for start := 0; start < len(items); start += k {
		end := start + k
		if end > len(items) {
			end = len(items)
		}
		batch := items[start:end]

		aspects := make([]float64, len(batch))
		totalAspect := 0.0
		for i, rec := range batch {
			aspects[i] = aspectFor(rec.ID, dims)
			totalAspect += aspects[i]
		}

		usable := availableWidth - opts.Gap*float64(len(batch)-1)
		h := opts.MinHeight
		if usable > 0 {
			h = usable / totalAspect
			if h < opts.MinHeight {
				h = opts.MinHeight
			} else if h > opts.MaxHeight {
				h = opts.MaxHeight
			}
		}

		row := Row{Height: h, Items: make([]Item, len(batch))}
		for i, rec := range batch {
			row.Items[i] = Item{
				Record: rec,
				Width:  h * aspects[i],
				Height: h,
				IsLast: i == len(batch)-1,
			}
		}
		rows = append(rows, row)
	}

	return rows
}

func aspectFor(id string, dims DimensionMap) float64 {
	d, ok := dims[id]
	if !ok || d.Width <= 0 || d.Height <= 0 {
		return DefaultAspectRatio
	}
	return float64(d.Width) / float64(d.Height)
}
