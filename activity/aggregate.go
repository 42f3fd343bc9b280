// Package activity は、プレー記録から日次統計を集計します。
package activity

import (
	"time"

	"github.com/jiftechnify/iidx-calendar-heatmap/calendar"
	"github.com/jiftechnify/iidx-calendar-heatmap/model"
)

// DayStats は1日分の集計済み統計です。
type DayStats struct {
	Date     time.Time
	Offset   int
	Keyboard int
	Scratch  int
	// Heat は鍵盤7レーン分を1レーン相当に正規化した合成プレー密度です。
	Heat float64
	// ScratchRatio はHeatに占めるスクラッチ成分の割合です。
	// Heatが0の日は0になります。
	ScratchRatio float64
}

// Maxima は供給されたレコード全体での各指標の最大値です。
// レコードのない日（ゼロ埋めされた日）は寄与しません。
type Maxima struct {
	Heat     float64
	Keyboard int
	Scratch  int
}

// Aggregation holds per-day stats keyed by window offset plus the running
// maxima over the supplied records.
type Aggregation struct {
	days    map[int]DayStats
	maxima  Maxima
	skipped int
}

// Aggregate はプレー記録を1パスで集計します。
// 日付が不正なレコードや負のカウントを持つレコードはスキップされます。
// 同一日付のレコードは後勝ちで上書きされます。
func Aggregate(records []model.PlayRecord) *Aggregation {
	agg := &Aggregation{days: make(map[int]DayStats, len(records))}
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			agg.skipped++
			continue
		}
		day, err := rec.Day()
		if err != nil {
			agg.skipped++
			continue
		}

		st := newDayStats(day, rec.KeyboardCount, rec.ScratchCount)
		agg.days[st.Offset] = st

		// 最大値はレコードが供給された日のみから更新する
		if st.Heat > agg.maxima.Heat {
			agg.maxima.Heat = st.Heat
		}
		if st.Keyboard > agg.maxima.Keyboard {
			agg.maxima.Keyboard = st.Keyboard
		}
		if st.Scratch > agg.maxima.Scratch {
			agg.maxima.Scratch = st.Scratch
		}
	}
	return agg
}

func newDayStats(day time.Time, keyboard, scratch int) DayStats {
	// 鍵盤は7レーン分あるので1/7に圧縮してスクラッチと合成する
	heat := float64(keyboard)/7 + float64(scratch)
	ratio := 0.0
	if heat > 0 {
		ratio = float64(scratch) / heat
	}
	return DayStats{
		Date:         calendar.DateOnly(day),
		Offset:       calendar.DateToOffset(day),
		Keyboard:     keyboard,
		Scratch:      scratch,
		Heat:         heat,
		ScratchRatio: ratio,
	}
}

// Lookup は指定オフセットの統計を返します。
// レコードのない日はゼロ埋めの統計を合成して返すため、ウィンドウ内の
// どのオフセットに対しても必ず値が得られます。
func (a *Aggregation) Lookup(offset int) DayStats {
	if st, ok := a.days[offset]; ok {
		return st
	}
	return DayStats{
		Date:   calendar.OffsetToDate(offset),
		Offset: offset,
	}
}

// Maxima は集計済みの最大値を返します。
func (a *Aggregation) Maxima() Maxima {
	return a.maxima
}

// Skipped は検証に失敗してスキップされたレコード数を返します。
func (a *Aggregation) Skipped() int {
	return a.skipped
}

// Days はレコードのある日数を返します。
func (a *Aggregation) Days() int {
	return len(a.days)
}
