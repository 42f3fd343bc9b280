package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jiftechnify/iidx-calendar-heatmap/model"
	"github.com/jiftechnify/iidx-calendar-heatmap/palette"
)

func testRecords() []model.PlayRecord {
	return []model.PlayRecord{
		{Date: "20211013", KeyboardCount: 70, ScratchCount: 5},
		{Date: "20211014", KeyboardCount: 1400, ScratchCount: 10},
	}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelPlacesCursorOnToday(t *testing.T) {
	tests := []struct {
		name   string
		today  time.Time
		cursor int
	}{
		{"epoch day", time.Date(2021, 10, 13, 12, 0, 0, 0, time.UTC), 0},
		{"mid window", time.Date(2021, 11, 2, 0, 0, 0, 0, time.UTC), 20},
		{"before epoch", time.Date(2021, 10, 1, 0, 0, 0, 0, time.UTC), 0},
		{"after window end", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), 364},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewModel(testRecords(), tc.today)
			if m.cursor != tc.cursor {
				t.Errorf("cursor = %d, want %d", m.cursor, tc.cursor)
			}
		})
	}
}

func TestCursorMovement(t *testing.T) {
	m := NewModel(testRecords(), time.Date(2021, 11, 2, 0, 0, 0, 0, time.UTC))

	press := func(msg tea.KeyMsg) {
		updated, _ := m.handleKey(msg)
		m = updated.(Model)
	}

	press(keyMsg("g"))
	if m.cursor != 0 {
		t.Fatalf("cursor after g = %d, want 0", m.cursor)
	}

	press(tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 1 {
		t.Errorf("cursor after down = %d, want 1", m.cursor)
	}

	press(tea.KeyMsg{Type: tea.KeyRight})
	if m.cursor != 8 {
		t.Errorf("cursor after right = %d, want 8", m.cursor)
	}

	press(keyMsg("k"))
	if m.cursor != 7 {
		t.Errorf("cursor after k = %d, want 7", m.cursor)
	}

	press(keyMsg("h"))
	if m.cursor != 0 {
		t.Errorf("cursor after h = %d, want 0", m.cursor)
	}

	// already at the first day, moving further is a no-op
	press(keyMsg("h"))
	if m.cursor != 0 {
		t.Errorf("cursor after h at origin = %d, want 0", m.cursor)
	}

	press(keyMsg("G"))
	if m.cursor != 20 {
		t.Errorf("cursor after G = %d, want 20", m.cursor)
	}

	// the cursor never passes today
	press(keyMsg("l"))
	if m.cursor != 20 {
		t.Errorf("cursor after l at today = %d, want 20", m.cursor)
	}
}

func TestMetricCycling(t *testing.T) {
	m := NewModel(testRecords(), time.Date(2021, 11, 2, 0, 0, 0, 0, time.UTC))
	if m.metric != model.MetricHeat {
		t.Fatalf("initial metric = %q, want %q", m.metric, model.MetricHeat)
	}

	updated, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	if m.metric != model.MetricKeyboard {
		t.Errorf("metric after tab = %q, want %q", m.metric, model.MetricKeyboard)
	}

	updated, _ = m.handleKey(keyMsg("m"))
	m = updated.(Model)
	if m.metric != model.MetricScratch {
		t.Errorf("metric after m = %q, want %q", m.metric, model.MetricScratch)
	}

	updated, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	if m.metric != model.MetricHeat {
		t.Errorf("metric after full cycle = %q, want %q", m.metric, model.MetricHeat)
	}

	updated, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(Model)
	if m.metric != model.MetricScratch {
		t.Errorf("metric after shift+tab = %q, want %q", m.metric, model.MetricScratch)
	}

	// 数字キーで直接選択できる
	for i, key := range []string{"1", "2", "3"} {
		updated, _ = m.handleKey(keyMsg(key))
		m = updated.(Model)
		if m.metric != model.Metrics[i] {
			t.Errorf("metric after %q = %q, want %q", key, m.metric, model.Metrics[i])
		}
	}
}

func TestQuitKey(t *testing.T) {
	m := NewModel(testRecords(), time.Date(2021, 11, 2, 0, 0, 0, 0, time.UTC))

	_, cmd := m.handleKey(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected quit command, got nil")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}
}

func TestViewTooSmall(t *testing.T) {
	m := NewModel(testRecords(), time.Date(2021, 11, 2, 0, 0, 0, 0, time.UTC))
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 10})
	m = updated.(Model)

	if !strings.Contains(m.View(), "Terminal too small") {
		t.Errorf("expected too-small notice, got:\n%s", m.View())
	}
}

func TestViewShowsGridAndDetail(t *testing.T) {
	m := NewModel(testRecords(), time.Date(2021, 10, 16, 0, 0, 0, 0, time.UTC))
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	m = updated.(Model)

	view := m.View()
	if !strings.Contains(view, "IIDX Play Heatmap") {
		t.Errorf("view misses the title:\n%s", view)
	}
	if !strings.Contains(view, "Mon") || !strings.Contains(view, "Fri") {
		t.Errorf("view misses weekday labels:\n%s", view)
	}
	// Nov 7 opens a column within the month's first week, so Nov gets a label
	if !strings.Contains(view, "Nov") {
		t.Errorf("view misses the Nov month label:\n%s", view)
	}

	// cursor starts on today (a day without plays)
	if !strings.Contains(view, "2021-10-16 Sat") {
		t.Errorf("view misses the selected date:\n%s", view)
	}

	// jump to the epoch day and check its stats
	updated, _ = m.handleKey(keyMsg("g"))
	m = updated.(Model)
	view = m.View()
	if !strings.Contains(view, "2021-10-13 Wed") {
		t.Errorf("view misses the epoch date:\n%s", view)
	}
	if !strings.Contains(view, "70") || !strings.Contains(view, "15") {
		t.Errorf("view misses the epoch day stats:\n%s", view)
	}
	if !strings.Contains(view, "33%") {
		t.Errorf("view misses the scratch ratio:\n%s", view)
	}
}

func TestViewShowsSkippedNote(t *testing.T) {
	records := append(testRecords(), model.PlayRecord{Date: "bogus", KeyboardCount: 1})
	m := NewModel(records, time.Date(2021, 10, 16, 0, 0, 0, 0, time.UTC))
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	m = updated.(Model)

	if !strings.Contains(m.View(), "1 records skipped") {
		t.Errorf("expected skipped note in view:\n%s", m.View())
	}
}

func TestHelpOverlay(t *testing.T) {
	m := NewModel(testRecords(), time.Date(2021, 11, 2, 0, 0, 0, 0, time.UTC))
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	m = updated.(Model)

	updated, _ = m.handleKey(keyMsg("?"))
	m = updated.(Model)
	if !m.showHelp {
		t.Fatal("showHelp = false after ?, want true")
	}
	if !strings.Contains(m.View(), "Keys") {
		t.Errorf("help view misses key list:\n%s", m.View())
	}

	// any key closes the overlay
	updated, _ = m.handleKey(keyMsg("j"))
	m = updated.(Model)
	if m.showHelp {
		t.Error("showHelp = true after key press, want false")
	}
}

func TestRenderCellOutsideWindow(t *testing.T) {
	m := NewModel(testRecords(), time.Date(2021, 11, 2, 0, 0, 0, 0, time.UTC))

	got := m.renderCell(-1, palette.StyleFor(model.MetricHeat), m.agg.Maxima())
	if got != "  " {
		t.Errorf("cell before the window = %q, want two spaces", got)
	}
}
