package model

import (
	"errors"
	"testing"
)

func TestParseMetric(t *testing.T) {
	tests := []struct {
		input string
		want  Metric
	}{
		{input: "heat", want: MetricHeat},
		{input: "keyboard", want: MetricKeyboard},
		{input: "scratch", want: MetricScratch},
		{input: "", want: MetricHeat}, // default
	}

	for _, tt := range tests {
		got, err := ParseMetric(tt.input)
		if err != nil {
			t.Errorf("ParseMetric(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMetric(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseMetricUnknown(t *testing.T) {
	_, err := ParseMetric("turntable")
	if err == nil {
		t.Fatal("Expected error for unknown metric")
	}
	if !errors.Is(err, ErrUnknownMetric) {
		t.Errorf("Expected ErrUnknownMetric, got %v", err)
	}
}

func TestMetricsOrder(t *testing.T) {
	if len(Metrics) != 3 {
		t.Fatalf("Expected 3 metrics, got %d", len(Metrics))
	}
	if Metrics[0] != MetricHeat {
		t.Errorf("Expected heat first, got %v", Metrics[0])
	}
}
