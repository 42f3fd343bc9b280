// Package tui implements the interactive terminal heatmap viewer.
package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/jiftechnify/iidx-calendar-heatmap/activity"
	"github.com/jiftechnify/iidx-calendar-heatmap/calendar"
	"github.com/jiftechnify/iidx-calendar-heatmap/model"
	"github.com/jiftechnify/iidx-calendar-heatmap/palette"
)

// each grid cell is two runes wide so the grid reads roughly square
const cellWidth = 2

const (
	minWidth  = 112
	minHeight = 15
)

// Model is the viewer state: the aggregated records, the selected metric
// and the cursor position on the grid.
type Model struct {
	agg    *activity.Aggregation
	win    calendar.Window
	metric model.Metric

	cursor   int // selected day offset
	width    int
	height   int
	showHelp bool
}

// NewModel aggregates the records and places the cursor on today.
func NewModel(records []model.PlayRecord, today time.Time) Model {
	win := calendar.NewWindow(today)
	return Model{
		agg:    activity.Aggregate(records),
		win:    win,
		metric: model.MetricHeat,
		cursor: lo.Clamp(win.TodayOffset, 0, calendar.WindowDays-1),
	}
}

// Run starts the viewer in the alternate screen and blocks until quit.
func Run(records []model.PlayRecord, today time.Time, metric model.Metric) error {
	m := NewModel(records, today)
	m.metric = metric
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "?" {
		m.showHelp = !m.showHelp
		return m, nil
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		m.cursor = m.moveCursor(-1)
	case "down", "j":
		m.cursor = m.moveCursor(1)
	case "left", "h":
		m.cursor = m.moveCursor(-7)
	case "right", "l":
		m.cursor = m.moveCursor(7)
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = m.lastOffset()
	case "tab", "m":
		m.metric = m.nextMetric(1)
	case "shift+tab":
		m.metric = m.nextMetric(-1)
	case "1", "2", "3":
		m.metric = model.Metrics[msg.String()[0]-'1']
	}
	return m, nil
}

// moveCursor moves by step days. Rows are weekdays, so ±1 moves within a
// column and ±7 moves across columns.
func (m Model) moveCursor(step int) int {
	return lo.Clamp(m.cursor+step, 0, m.lastOffset())
}

// lastOffset is the newest selectable day. Future days carry no stats, so
// the cursor stays inside the already-played part of the window.
func (m Model) lastOffset() int {
	return lo.Clamp(m.win.TodayOffset, 0, calendar.WindowDays-1)
}

func (m Model) nextMetric(step int) model.Metric {
	idx := 0
	for i, metric := range model.Metrics {
		if metric == m.metric {
			idx = i
			break
		}
	}
	next := (idx + step + len(model.Metrics)) % len(model.Metrics)
	return model.Metrics[next]
}

func (m Model) View() string {
	if m.width < minWidth || m.height < minHeight {
		return dimStyle.Render(fmt.Sprintf("\n  Terminal too small. Resize to at least %d×%d.", minWidth, minHeight))
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return strings.Join([]string{
		m.renderHeader(),
		m.renderGrid(),
		m.renderDetail(),
		helpStyle.Render("  ↑↓←→ move · tab metric · g/G first/latest · ? help · q quit"),
	}, "\n")
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("IIDX Play Heatmap")

	var tabs []string
	for _, metric := range model.Metrics {
		label := " " + metric.String() + " "
		if metric == m.metric {
			tabs = append(tabs, tabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, tabInactiveStyle.Render(label))
		}
	}

	line := " " + title + "  " + strings.Join(tabs, " ")
	if n := m.agg.Skipped(); n > 0 {
		line += "  " + dimStyle.Render(fmt.Sprintf("(%d records skipped)", n))
	}
	return line + "\n"
}

func (m Model) renderGrid() string {
	var sb strings.Builder
	sb.WriteString(m.renderMonthLabels())
	sb.WriteString("\n")

	style := palette.StyleFor(m.metric)
	max := m.agg.Maxima()

	// row 0 is Sunday; label the rows GitHub-style
	weekdays := [7]string{"   ", "Mon", "   ", "Wed", "   ", "Fri", "   "}
	for row := 0; row < 7; row++ {
		sb.WriteString(" " + labelStyle.Render(weekdays[row]) + " ")
		for col := 0; col <= calendar.LastColumn(); col++ {
			off := calendar.CoordToOffset(calendar.Coord{Col: col, Row: row})
			sb.WriteString(m.renderCell(off, style, max))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderMonthLabels builds the label line above the grid. A column gets
// its month name when it starts within the first week of a new month.
func (m Model) renderMonthLabels() string {
	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	label := []byte(strings.Repeat(" ", (calendar.LastColumn()+1)*cellWidth))
	lastMonth := -1
	for col := 0; col <= calendar.LastColumn(); col++ {
		start := calendar.ColumnStart(col)
		if start.Day() <= 7 && int(start.Month())-1 != lastMonth {
			copy(label[col*cellWidth:], months[start.Month()-1])
			lastMonth = int(start.Month()) - 1
		}
	}
	return "     " + labelStyle.Render(string(label))
}

func (m Model) renderCell(off int, style palette.Style, max activity.Maxima) string {
	if off < 0 || off >= calendar.WindowDays {
		// before the epoch or past the window end
		return strings.Repeat(" ", cellWidth)
	}

	if !m.win.Past(off) {
		st := blankStyle
		if off == m.cursor {
			st = st.Reverse(true)
		}
		return st.Render("··")
	}

	st := m.agg.Lookup(off)
	p := palette.Derive(m.metric, st, max)
	hex := zeroFillHex
	if !p.IsZero {
		hex = style.Hex(p)
	}
	cell := lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	if off == m.cursor {
		cell = cell.Reverse(true)
	}
	return cell.Render("██")
}

func (m Model) renderDetail() string {
	date := calendar.OffsetToDate(m.cursor)
	header := " " + detailDateStyle.Render(date.Format("2006-01-02 Mon"))

	if !m.win.Past(m.cursor) {
		return header + "\n " + dimStyle.Render("まだプレーしていない日です") + "\n"
	}

	st := m.agg.Lookup(m.cursor)
	max := m.agg.Maxima()

	stats := fmt.Sprintf(" %s %s  %s %s  %s %s  %s %s",
		labelStyle.Render("鍵盤:"), valueStyle.Render(strconv.Itoa(st.Keyboard)),
		labelStyle.Render("皿:"), valueStyle.Render(strconv.Itoa(st.Scratch)),
		labelStyle.Render("熱量:"), valueStyle.Render(formatValue(st.Heat)),
		labelStyle.Render("皿率:"), valueStyle.Render(fmt.Sprintf("%.0f%%", st.ScratchRatio*100)),
	)
	maxima := " " + dimStyle.Render(fmt.Sprintf("max: 熱量 %s / 鍵盤 %d / 皿 %d",
		formatValue(max.Heat), max.Keyboard, max.Scratch))

	return header + "\n" + stats + "\n" + maxima
}

func (m Model) renderHelp() string {
	keys := []struct{ key, desc string }{
		{"↑/k ↓/j", "前の日 / 次の日"},
		{"←/h →/l", "前の週 / 次の週"},
		{"tab / m", "指標の切り替え"},
		{"1 / 2 / 3", "指標を直接選択"},
		{"g / home", "最初の日へ"},
		{"G / end", "最新の日へ"},
		{"?", "このヘルプ"},
		{"q / esc", "終了"},
	}

	var sb strings.Builder
	sb.WriteString("\n " + titleStyle.Render("Keys") + "\n\n")
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("  %s %s\n", helpKeyStyle.Width(12).Render(k.key), helpStyle.Render(k.desc)))
	}
	return sb.String()
}

// formatValue renders metric values compactly, matching the SVG tooltips.
func formatValue(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}
