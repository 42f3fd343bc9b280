// Package heatmap turns aggregated play stats into drawable cell
// instructions and renders them as SVG or PNG.
package heatmap

import (
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/jiftechnify/iidx-calendar-heatmap/activity"
	"github.com/jiftechnify/iidx-calendar-heatmap/calendar"
	"github.com/jiftechnify/iidx-calendar-heatmap/model"
	"github.com/jiftechnify/iidx-calendar-heatmap/palette"
)

// Options configures rendering parameters.
type Options struct {
	CellSize   int    // size of each day cell (px)
	CellMargin int    // margin between cells (px)
	CellRadius int    // corner radius of each cell (px)
	FontSize   int    // font size for labels (px)
	FontFamily string // font family for labels
	ZeroFill   string // fill for played-window days with no plays
	BlankFill  string // fill for days still in the future
	Title      string // optional title above the grid
}

// DefaultOptions returns the rendering defaults.
func DefaultOptions() *Options {
	return &Options{
		CellSize:   12,
		CellMargin: 2,
		CellRadius: 2,
		FontSize:   10,
		FontFamily: "sans-serif",
		ZeroFill:   "#ebedf0",
		BlankFill:  "#f6f8fa",
	}
}

// Color is a resolved HSL color.
type Color struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Lightness  float64 `json:"lightness"`
	// IsZero marks a day whose metric value is 0; renderers draw it with
	// the zero fill instead of the resolved color.
	IsZero bool `json:"isZero"`
}

// Cell is a single draw instruction for one day of the grid.
// Already-played days carry a resolved Color; future days are blank
// placeholders drawn with Fill alone. Positions depend only on the
// calendar, never on the selected metric.
type Cell struct {
	Date   string `json:"date"`
	Offset int    `json:"offset"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Size   int    `json:"size"`
	Radius int    `json:"radius"`
	Blank  bool   `json:"blank"`
	// Fill is the placeholder color of a blank cell.
	Fill string `json:"fill,omitempty"`
	// Color is the resolved color of an already-played cell.
	Color *Color `json:"color,omitempty"`
	// Value is the day's value under the selected metric, for tooltips.
	Value float64 `json:"value"`
}

// BuildCells lays out the full window as draw instructions: one colored
// cell per already-played day and one blank cell per future day, in
// offset order.
func BuildCells(agg *activity.Aggregation, win calendar.Window, metric model.Metric, opts *Options) []Cell {
	if opts == nil {
		opts = DefaultOptions()
	}
	geom := calendar.Geometry{CellSize: opts.CellSize, CellMargin: opts.CellMargin}
	style := palette.StyleFor(metric)
	max := agg.Maxima()

	cells := make([]Cell, 0, calendar.WindowDays)
	for off := 0; off < calendar.WindowDays; off++ {
		x, y := geom.Pos(calendar.OffsetToCoord(off))
		cell := Cell{
			Date:   calendar.OffsetToDate(off).Format(time.DateOnly),
			Offset: off,
			X:      x,
			Y:      y,
			Size:   opts.CellSize,
			Radius: opts.CellRadius,
		}

		if !win.Past(off) {
			// 未来の日はプレースホルダーだけを描く
			cell.Blank = true
			cell.Fill = opts.BlankFill
			cells = append(cells, cell)
			continue
		}

		st := agg.Lookup(off)
		p := palette.Derive(metric, st, max)
		h, s, l := style.Resolve(p)
		cell.Color = &Color{Hue: h, Saturation: s, Lightness: l, IsZero: p.IsZero}
		cell.Value = metricValue(metric, st)
		cells = append(cells, cell)
	}
	return cells
}

// FillColor resolves the cell's final CSS color: the blank fill, the zero
// fill, or the HSL color as hex.
func (c Cell) FillColor(opts *Options) string {
	if c.Blank {
		return c.Fill
	}
	if c.Color.IsZero {
		return opts.ZeroFill
	}
	return colorful.Hsl(c.Color.Hue, c.Color.Saturation, c.Color.Lightness).Hex()
}

// metricValue returns the day's value under the metric.
func metricValue(m model.Metric, st activity.DayStats) float64 {
	switch m {
	case model.MetricKeyboard:
		return float64(st.Keyboard)
	case model.MetricScratch:
		return float64(st.Scratch)
	default:
		return st.Heat
	}
}
