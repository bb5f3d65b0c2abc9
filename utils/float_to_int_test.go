// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloatToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float64
		want  int16
	}{
		{name: "zero", input: 0, want: 0},
		{name: "max positive saturates", input: 1, want: math.MaxInt16},
		{name: "max negative", input: -1, want: math.MinInt16},
		{name: "half positive", input: 0.5, want: 16384},
		{name: "half negative", input: -0.5, want: -16384},
		{name: "rounds half away from zero", input: 1.5 / 32768, want: 2},
		{name: "rounds negative half away from zero", input: -1.5 / 32768, want: -2},
		{name: "clamp over max", input: 1.5, want: math.MaxInt16},
		{name: "clamp under min", input: -100, want: math.MinInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FloatToInt16(tt.input); got != tt.want {
				t.Errorf("FloatToInt16(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestInt16RoundTrip(t *testing.T) {
	t.Parallel()

	for v := math.MinInt16; v <= math.MaxInt16; v++ {
		f := Int16ToFloat(int16(v))
		if f != float64(v)/32768.0 {
			t.Fatalf("Int16ToFloat(%d) = %v, want %v", v, f, float64(v)/32768.0)
		}
		if got := FloatToInt16(f); got != int16(v) {
			t.Fatalf("FloatToInt16(Int16ToFloat(%d)) = %d", v, got)
		}
	}
}
