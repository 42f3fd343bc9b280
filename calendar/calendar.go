// Package calendar maps play dates onto the one-year heatmap grid.
//
// Day offsets count from the epoch, the IIDX 29 CastHour arcade launch
// date. Grid coordinates follow the contribution-graph layout: one column
// per week, Sunday on the top row.
package calendar

import "time"

// WindowDays is the number of days in the display window.
const WindowDays = 365

// Epoch is day 0 of the window: the IIDX 29 CastHour arcade launch date.
var Epoch = time.Date(2021, time.October, 13, 0, 0, 0, 0, time.UTC)

// epochShift aligns the epoch's column to Sunday.
// CastHour launched on a Wednesday, so the shift is 3.
var epochShift = int(Epoch.Weekday())

// DateOnly truncates t to its calendar date, normalized to UTC midnight.
// The date components are taken in t's own location, so a play recorded
// late at night stays on its local day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateToOffset returns the number of whole days from the epoch to t.
// Both ends are truncated to calendar dates first, so the result is always
// an integral number of days.
func DateToOffset(t time.Time) int {
	return int(DateOnly(t).Sub(Epoch) / (24 * time.Hour))
}

// OffsetToDate is the inverse of DateToOffset.
func OffsetToDate(offset int) time.Time {
	return Epoch.AddDate(0, 0, offset)
}

// Contains reports whether the offset falls inside the display window.
func Contains(offset int) bool {
	return offset >= 0 && offset < WindowDays
}

// Coord is a cell position on the week grid.
// Col grows rightward one column per week; Row 0 is Sunday, Row 6 Saturday.
type Coord struct {
	Col int
	Row int
}

// OffsetToCoord maps a day offset to its grid cell.
// Offsets outside the window are not meaningful here; callers iterate the
// window only.
func OffsetToCoord(offset int) Coord {
	n := offset + epochShift
	return Coord{Col: n / 7, Row: n % 7}
}

// CoordToOffset is the inverse of OffsetToCoord. The returned offset can
// fall outside the window for slots before the epoch or after the final
// day; check Contains before using it.
func CoordToOffset(c Coord) int {
	return c.Col*7 + c.Row - epochShift
}

// LastColumn returns the column of the final window offset.
func LastColumn() int {
	return OffsetToCoord(WindowDays - 1).Col
}

// ColumnStart returns the date of the Sunday slot at the top of the
// column. For column 0 this falls before the epoch.
func ColumnStart(col int) time.Time {
	return Epoch.AddDate(0, 0, col*7-epochShift)
}

// Window splits the fixed one-year display window into past and future
// around an as-of date.
type Window struct {
	// TodayOffset is the as-of day's offset, clamped to [-1, WindowDays-1].
	// -1 means the whole window is still in the future.
	TodayOffset int
}

// NewWindow builds the window as of the given date. The as-of offset is
// evaluated here exactly once; callers decide what "today" means.
func NewWindow(today time.Time) Window {
	off := DateToOffset(today)
	if off < -1 {
		off = -1
	}
	if off > WindowDays-1 {
		off = WindowDays - 1
	}
	return Window{TodayOffset: off}
}

// Past reports whether the offset falls in the already-played part of the
// window. Every window offset is either past or future, never both.
func (w Window) Past(offset int) bool {
	return offset >= 0 && offset <= w.TodayOffset
}

// Geometry converts grid cells to pixel positions.
type Geometry struct {
	CellSize   int
	CellMargin int
}

// Pos returns the top-left pixel position of a cell.
func (g Geometry) Pos(c Coord) (x, y int) {
	x = c.Col * (g.CellSize + g.CellMargin)
	y = c.Row * (g.CellSize + g.CellMargin)
	return x, y
}

// Width returns the total grid width in pixels: full cells plus the
// margins between them, with no trailing margin.
func (g Geometry) Width() int {
	maxCol := LastColumn()
	return (maxCol+1)*g.CellSize + maxCol*g.CellMargin
}

// Height returns the total grid height in pixels.
func (g Geometry) Height() int {
	return 7*g.CellSize + 6*g.CellMargin
}
