// Package palette derives cell colors from aggregated day stats.
//
// Coloring is split in two stages. Derive computes normalized parameters
// in [0, 1] from a day's stats and the running maxima; Resolve maps the
// parameters onto a per-metric style. Every renderer (SVG, PNG, terminal)
// goes through the same two stages, so a day has one color everywhere.
package palette

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/jiftechnify/iidx-calendar-heatmap/activity"
	"github.com/jiftechnify/iidx-calendar-heatmap/model"
)

// Style は指標ごとの色域です。
type Style struct {
	MinHue       float64 // hueParam=0のときの色相（度）
	MaxHue       float64 // hueParam=1のときの色相（度）
	Saturation   float64 // 彩度（固定）
	MinLightness float64 // lightnessParam=0のときの明度
	MaxLightness float64 // lightnessParam=1のときの明度
}

// Keyboard days read as key-blue and scratch days as turntable-red; the
// heat metric sweeps between the two by scratch ratio.
var styles = map[model.Metric]Style{
	model.MetricHeat:     {MinHue: 215, MaxHue: 360, Saturation: 0.65, MinLightness: 0.25, MaxLightness: 0.65},
	model.MetricKeyboard: {MinHue: 215, MaxHue: 215, Saturation: 0.70, MinLightness: 0.25, MaxLightness: 0.65},
	model.MetricScratch:  {MinHue: 2, MaxHue: 2, Saturation: 0.70, MinLightness: 0.25, MaxLightness: 0.65},
}

// StyleFor returns the fixed color style of the metric.
func StyleFor(m model.Metric) Style {
	return styles[m]
}

// Params は1セル分の正規化された色パラメータです。
type Params struct {
	HueParam       float64
	LightnessParam float64
	// IsZero はその日の指標値が0であることを示します。
	// 真のセルは導出色ではなく専用の空色で塗られます。
	IsZero bool
}

// Derive computes color parameters for one day under the given metric.
// Days closer to the metric's maximum come out lighter. A zero maximum
// yields LightnessParam 0, so sparse data never divides by zero.
func Derive(m model.Metric, st activity.DayStats, max activity.Maxima) Params {
	switch m {
	case model.MetricKeyboard:
		return deriveCount(st.Keyboard, max.Keyboard)
	case model.MetricScratch:
		return deriveCount(st.Scratch, max.Scratch)
	default:
		return deriveHeat(st, max)
	}
}

// deriveHeat colors by composite heat: the hue follows the scratch ratio
// and the lightness follows the heat relative to the maximum.
func deriveHeat(st activity.DayStats, max activity.Maxima) Params {
	p := Params{
		HueParam: clamp01(st.ScratchRatio),
		IsZero:   st.Heat == 0,
	}
	if max.Heat > 0 {
		p.LightnessParam = clamp01(1 - (max.Heat-st.Heat)/max.Heat)
	}
	return p
}

// deriveCount colors by a single counter; the hue stays fixed.
func deriveCount(count, max int) Params {
	p := Params{IsZero: count == 0}
	if max > 0 {
		p.LightnessParam = clamp01(1 - float64(max-count)/float64(max))
	}
	return p
}

// Resolve maps normalized parameters onto the style's hue and lightness
// ranges.
func (s Style) Resolve(p Params) (hue, saturation, lightness float64) {
	hue = s.MinHue + p.HueParam*(s.MaxHue-s.MinHue)
	lightness = s.MinLightness + p.LightnessParam*(s.MaxLightness-s.MinLightness)
	return hue, s.Saturation, lightness
}

// Hex resolves the parameters all the way to a CSS hex color.
func (s Style) Hex(p Params) string {
	h, sat, l := s.Resolve(p)
	return colorful.Hsl(h, sat, l).Hex()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
