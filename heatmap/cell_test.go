package heatmap

import (
	"testing"

	"github.com/jiftechnify/iidx-calendar-heatmap/activity"
	"github.com/jiftechnify/iidx-calendar-heatmap/calendar"
	"github.com/jiftechnify/iidx-calendar-heatmap/model"
)

func testRecords() []model.PlayRecord {
	return []model.PlayRecord{
		{Date: "20211013", KeyboardCount: 70, ScratchCount: 5},
		{Date: "20211014", KeyboardCount: 1400, ScratchCount: 10},
		{Date: "20211101", KeyboardCount: 7, ScratchCount: 300},
	}
}

func TestBuildCellsCoversWindow(t *testing.T) {
	agg := activity.Aggregate(testRecords())
	win := calendar.NewWindow(calendar.OffsetToDate(100))

	cells := BuildCells(agg, win, model.MetricHeat, nil)

	if len(cells) != calendar.WindowDays {
		t.Fatalf("Expected %d cells, got %d", calendar.WindowDays, len(cells))
	}
	for i, cell := range cells {
		if cell.Offset != i {
			t.Fatalf("Expected cells in offset order, got offset %d at index %d", cell.Offset, i)
		}
	}
}

func TestBuildCellsPastFuturePartition(t *testing.T) {
	agg := activity.Aggregate(testRecords())
	win := calendar.NewWindow(calendar.OffsetToDate(100))

	cells := BuildCells(agg, win, model.MetricHeat, nil)

	for _, cell := range cells {
		if cell.Offset <= 100 {
			if cell.Blank {
				t.Fatalf("Offset %d should be a colored cell", cell.Offset)
			}
			if cell.Color == nil {
				t.Fatalf("Offset %d is missing its color", cell.Offset)
			}
		} else {
			if !cell.Blank {
				t.Fatalf("Offset %d should be a blank cell", cell.Offset)
			}
			if cell.Color != nil {
				t.Fatalf("Blank cell %d should not carry a color", cell.Offset)
			}
			if cell.Fill != DefaultOptions().BlankFill {
				t.Fatalf("Blank cell %d has fill %q", cell.Offset, cell.Fill)
			}
		}
	}
}

func TestBuildCellsPositions(t *testing.T) {
	agg := activity.Aggregate(nil)
	win := calendar.NewWindow(calendar.OffsetToDate(364))
	opts := DefaultOptions()

	cells := BuildCells(agg, win, model.MetricHeat, opts)

	// エポックは水曜日なので先頭セルは第0列・第3行
	if cells[0].X != 0 || cells[0].Y != 3*(opts.CellSize+opts.CellMargin) {
		t.Errorf("Unexpected epoch cell position: (%d, %d)", cells[0].X, cells[0].Y)
	}

	// オフセット4は第1列の日曜スロット
	if cells[4].X != opts.CellSize+opts.CellMargin || cells[4].Y != 0 {
		t.Errorf("Unexpected offset-4 position: (%d, %d)", cells[4].X, cells[4].Y)
	}
}

func TestBuildCellsMetricNeverMovesCells(t *testing.T) {
	agg := activity.Aggregate(testRecords())
	win := calendar.NewWindow(calendar.OffsetToDate(100))

	base := BuildCells(agg, win, model.MetricHeat, nil)
	for _, m := range []model.Metric{model.MetricKeyboard, model.MetricScratch} {
		other := BuildCells(agg, win, m, nil)
		for i := range base {
			if base[i].X != other[i].X || base[i].Y != other[i].Y {
				t.Fatalf("%s: cell %d moved from (%d,%d) to (%d,%d)",
					m, i, base[i].X, base[i].Y, other[i].X, other[i].Y)
			}
			if base[i].Size != other[i].Size || base[i].Radius != other[i].Radius {
				t.Fatalf("%s: cell %d changed size or radius", m, i)
			}
			if base[i].Blank != other[i].Blank {
				t.Fatalf("%s: cell %d changed blank state", m, i)
			}
		}
	}
}

func TestBuildCellsMetricChangesColors(t *testing.T) {
	agg := activity.Aggregate(testRecords())
	win := calendar.NewWindow(calendar.OffsetToDate(100))

	heat := BuildCells(agg, win, model.MetricHeat, nil)
	keyboard := BuildCells(agg, win, model.MetricKeyboard, nil)

	// エポック日はスクラッチ成分があるので、heat指標では色相が青から動く
	if heat[0].Color.Hue == keyboard[0].Color.Hue {
		t.Error("Expected the heat metric to shift the epoch day's hue")
	}
}

func TestBuildCellsZeroDay(t *testing.T) {
	agg := activity.Aggregate(testRecords())
	win := calendar.NewWindow(calendar.OffsetToDate(100))

	cells := BuildCells(agg, win, model.MetricHeat, nil)

	// オフセット2（2021-10-15）にはレコードがないのでゼロセル
	if !cells[2].Color.IsZero {
		t.Error("Expected unplayed past day to be a zero cell")
	}
	if cells[2].Value != 0 {
		t.Errorf("Expected value 0, got %v", cells[2].Value)
	}

	// プレーした日はゼロセルではない
	if cells[0].Color.IsZero {
		t.Error("Expected played day not to be a zero cell")
	}
}

func TestBuildCellsValues(t *testing.T) {
	agg := activity.Aggregate(testRecords())
	win := calendar.NewWindow(calendar.OffsetToDate(100))

	heat := BuildCells(agg, win, model.MetricHeat, nil)
	if heat[0].Value != 15 {
		t.Errorf("Expected heat value 15, got %v", heat[0].Value)
	}

	keyboard := BuildCells(agg, win, model.MetricKeyboard, nil)
	if keyboard[0].Value != 70 {
		t.Errorf("Expected keyboard value 70, got %v", keyboard[0].Value)
	}

	scratch := BuildCells(agg, win, model.MetricScratch, nil)
	if scratch[0].Value != 5 {
		t.Errorf("Expected scratch value 5, got %v", scratch[0].Value)
	}
}

func TestFillColor(t *testing.T) {
	opts := DefaultOptions()

	blank := Cell{Blank: true, Fill: "#f6f8fa"}
	if got := blank.FillColor(opts); got != "#f6f8fa" {
		t.Errorf("Blank fill = %q", got)
	}

	zero := Cell{Color: &Color{Hue: 215, Saturation: 0.65, Lightness: 0.25, IsZero: true}}
	if got := zero.FillColor(opts); got != opts.ZeroFill {
		t.Errorf("Zero fill = %q, want %q", got, opts.ZeroFill)
	}

	played := Cell{Color: &Color{Hue: 215, Saturation: 0.65, Lightness: 0.5}}
	got := played.FillColor(opts)
	if len(got) != 7 || got[0] != '#' {
		t.Errorf("Expected #rrggbb color, got %q", got)
	}
	if got == opts.ZeroFill || got == opts.BlankFill {
		t.Errorf("Played day resolved to a placeholder fill: %q", got)
	}
}
