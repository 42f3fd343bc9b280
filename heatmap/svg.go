// svg.go
// Generates the play heatmap as an SVG string.
package heatmap

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jiftechnify/iidx-calendar-heatmap/calendar"
)

// GenerateSVG returns an SVG document drawing the given cells.
// Cell positions stay in grid coordinates; the whole grid is shifted
// below the header with a single translate.
func GenerateSVG(cells []Cell, opts *Options) string {
	if opts == nil {
		opts = DefaultOptions()
	}
	geom := calendar.Geometry{CellSize: opts.CellSize, CellMargin: opts.CellMargin}

	titleHeight := 0
	if opts.Title != "" {
		titleHeight = opts.FontSize + 8 // title text + padding
	}
	headerHeight := titleHeight + opts.FontSize + 4 // month labels
	width := geom.Width() + 2*opts.CellMargin
	height := geom.Height() + headerHeight + 2*opts.CellMargin

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+"\n", width, height))
	sb.WriteString(fmt.Sprintf(`  <style>.label{font-family:%s;font-size:%dpx;fill:#666}.title{font-family:%s;font-size:%dpx;fill:#333;font-weight:bold}</style>`+"\n",
		opts.FontFamily, opts.FontSize, opts.FontFamily, opts.FontSize))

	if opts.Title != "" {
		sb.WriteString(fmt.Sprintf(`  <text x="%d" y="%d" class="title">%s</text>`+"\n",
			opts.CellMargin, opts.FontSize, opts.Title))
	}

	// month labels
	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	lastMonth := -1
	for col := 0; col <= calendar.LastColumn(); col++ {
		x := opts.CellMargin + col*(opts.CellSize+opts.CellMargin)
		current := calendar.ColumnStart(col)
		if current.Day() <= 7 && int(current.Month())-1 != lastMonth {
			sb.WriteString(fmt.Sprintf(`  <text x="%d" y="%d" class="label">%s</text>`+"\n",
				x, titleHeight+opts.FontSize, months[current.Month()-1]))
			lastMonth = int(current.Month()) - 1
		}
	}

	// 各セルに矩形と、その中にtitle要素（ツールチップ）を追加
	sb.WriteString(fmt.Sprintf(`  <g transform="translate(%d,%d)">`+"\n", opts.CellMargin, headerHeight+opts.CellMargin))
	for _, cell := range cells {
		fill := cell.FillColor(opts)
		if cell.Blank {
			sb.WriteString(fmt.Sprintf(`    <rect x="%d" y="%d" width="%d" height="%d" rx="%d" fill="%s" data-date="%s"/>`+"\n",
				cell.X, cell.Y, cell.Size, cell.Size, cell.Radius, fill, cell.Date))
			continue
		}

		value := formatValue(cell.Value)
		sb.WriteString(fmt.Sprintf(`    <rect x="%d" y="%d" width="%d" height="%d" rx="%d" fill="%s" data-date="%s" data-value="%s">`+"\n",
			cell.X, cell.Y, cell.Size, cell.Size, cell.Radius, fill, cell.Date, value))

		// 日付をフォーマットして表示用の文字列を作成
		displayDate := calendar.OffsetToDate(cell.Offset).Format("2006年01月02日")
		sb.WriteString(fmt.Sprintf(`      <title>%s: %s</title>`+"\n", displayDate, value))
		sb.WriteString(`    </rect>` + "\n")
	}
	sb.WriteString(`  </g>` + "\n")

	sb.WriteString(`</svg>`)
	return sb.String()
}

// formatValue renders metric values compactly: whole numbers without a
// decimal point, fractions rounded to one digit.
func formatValue(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}
