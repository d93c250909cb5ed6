package compression

import (
	"fmt"
	"math"
	"testing"
)

func TestNewResult_Statistics(t *testing.T) {
	req := Request{InputPath: "in.pdf", OutputPath: "out.pdf", Level: 3}

	tests := []struct {
		inputSize   int64
		outputSize  int64
		wantRatio   float64
		wantPercent float64
	}{
		{10 * 1024 * 1024, 2*1024*1024 + 512*1024, 4.0, 75.0},
		{1000, 500, 2.0, 50.0},
		{1000, 1000, 1.0, 0.0},
		{1000, 1250, 0.8, -25.0}, // engine can grow an already optimal file
	}

	for _, tt := range tests {
		r := NewResult(req, tt.inputSize, tt.outputSize)
		if math.Abs(r.Ratio-tt.wantRatio) > 1e-9 {
			t.Errorf("%d/%d: expected ratio %f, got %f", tt.inputSize, tt.outputSize, tt.wantRatio, r.Ratio)
		}
		if math.Abs(r.PercentSaved-tt.wantPercent) > 1e-9 {
			t.Errorf("%d/%d: expected percent saved %f, got %f", tt.inputSize, tt.outputSize, tt.wantPercent, r.PercentSaved)
		}
		if r.InputSize != tt.inputSize || r.OutputSize != tt.outputSize {
			t.Errorf("expected sizes to be carried through unchanged")
		}
	}
}

func TestNewResult_ZeroSizes(t *testing.T) {
	req := Request{Level: 3}

	r := NewResult(req, 0, 0)
	if r.Ratio != 0 || r.PercentSaved != 0 {
		t.Errorf("expected zero statistics for zero sizes, got ratio=%f percent=%f", r.Ratio, r.PercentSaved)
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{10 * 1024 * 1024, "10.00 MB"},
		{3 * 1024 * 1024 * 1024, "3.00 GB"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d", tt.bytes), func(t *testing.T) {
			if got := FormatSize(tt.bytes); got != tt.want {
				t.Errorf("FormatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}
