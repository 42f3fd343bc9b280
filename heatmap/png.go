// png.go
// Renders the play heatmap as a PNG image.
package heatmap

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/jiftechnify/iidx-calendar-heatmap/calendar"
)

// RenderPNG draws the given cells into a PNG image. The image holds the
// bare grid without labels, on a white background.
func RenderPNG(cells []Cell, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	geom := calendar.Geometry{CellSize: opts.CellSize, CellMargin: opts.CellMargin}
	width := geom.Width() + 2*opts.CellMargin
	height := geom.Height() + 2*opts.CellMargin

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for _, cell := range cells {
		col, err := colorful.Hex(cell.FillColor(opts))
		if err != nil {
			return nil, fmt.Errorf("invalid cell color for %s: %w", cell.Date, err)
		}
		dc.SetColor(col)
		dc.DrawRoundedRectangle(
			float64(opts.CellMargin+cell.X),
			float64(opts.CellMargin+cell.Y),
			float64(cell.Size),
			float64(cell.Size),
			float64(cell.Radius),
		)
		dc.Fill()
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}
