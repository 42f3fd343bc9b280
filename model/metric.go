package model

import "fmt"

// Metric selects which counter drives the heatmap coloring.
type Metric string

const (
	// MetricHeat is the composite play density of keyboard and scratch.
	MetricHeat Metric = "heat"
	// MetricKeyboard colors by keyboard note counts alone.
	MetricKeyboard Metric = "keyboard"
	// MetricScratch colors by scratch note counts alone.
	MetricScratch Metric = "scratch"
)

// Metrics lists the selectable metrics in display order.
var Metrics = []Metric{MetricHeat, MetricKeyboard, MetricScratch}

// ParseMetric creates a Metric from its string form.
// The empty string selects MetricHeat.
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "", string(MetricHeat):
		return MetricHeat, nil
	case string(MetricKeyboard):
		return MetricKeyboard, nil
	case string(MetricScratch):
		return MetricScratch, nil
	}
	return "", fmt.Errorf("%w: %q (expected one of heat, keyboard, scratch)", ErrUnknownMetric, s)
}

// String returns the metric's string form.
func (m Metric) String() string {
	return string(m)
}
