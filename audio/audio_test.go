// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
	"testing"
)

func TestNewWaveform_FloatMirrorsInt(t *testing.T) {
	t.Parallel()

	ints := []int16{0, 1, -1, 16384, -16384, math.MaxInt16, math.MinInt16}
	w, err := NewWaveform(ints, 8000, 1)
	if err != nil {
		t.Fatalf("NewWaveform() error = %v", err)
	}

	if len(w.Floats) != len(w.Ints) {
		t.Fatalf("len(Floats) = %d, len(Ints) = %d", len(w.Floats), len(w.Ints))
	}
	for i, v := range w.Ints {
		if w.Floats[i] != float64(v)/32768.0 {
			t.Errorf("Floats[%d] = %v, want %v", i, w.Floats[i], float64(v)/32768.0)
		}
	}
}

func TestNewWaveform_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ints     []int16
		rate     int
		channels int
		want     error
	}{
		{"zero rate", []int16{1}, 0, 1, ErrInvalidRate},
		{"negative rate", []int16{1}, -8000, 1, ErrInvalidRate},
		{"zero channels", []int16{1}, 8000, 0, ErrInvalidChannels},
		{"partial frame", []int16{1, 2, 3}, 8000, 2, ErrPartialFrame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewWaveform(tt.ints, tt.rate, tt.channels)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewWaveform() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestWaveform_FramesAndDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		frames   int
		channels int
		rate     int
		wantMs   int
	}{
		{"reference recording", 51597, 1, 22050, 2340},
		{"one second", 8000, 1, 8000, 1000},
		{"fraction rounds down", 3, 1, 8000, 0},
		{"stereo counts frames", 44100, 2, 44100, 1000},
		{"empty", 0, 1, 16000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, err := NewWaveform(make([]int16, tt.frames*tt.channels), tt.rate, tt.channels)
			if err != nil {
				t.Fatalf("NewWaveform() error = %v", err)
			}
			if w.Frames() != tt.frames {
				t.Errorf("Frames() = %d, want %d", w.Frames(), tt.frames)
			}
			if w.DurationMs() != tt.wantMs {
				t.Errorf("DurationMs() = %d, want %d", w.DurationMs(), tt.wantMs)
			}
		})
	}
}

func TestWaveformSource_ReadsEverything(t *testing.T) {
	t.Parallel()

	w, _ := NewWaveform([]int16{100, 200, 300, 400, 500, 600}, 8000, 2)
	src := w.Source()

	if src.SampleRate() != 8000 || src.Channels() != 2 {
		t.Fatalf("source reports %d Hz / %d ch", src.SampleRate(), src.Channels())
	}

	// An odd-sized buffer is trimmed to whole frames.
	buf := make([]float64, 5)
	var got []float64
	for {
		n, err := src.ReadSamples(buf)
		if n%2 != 0 {
			t.Fatalf("ReadSamples() returned partial frame: n=%d", n)
		}
		got = append(got, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if len(got) != len(w.Floats) {
		t.Fatalf("read %d samples, want %d", len(got), len(w.Floats))
	}
	for i := range got {
		if got[i] != w.Floats[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], w.Floats[i])
		}
	}
}

func TestWaveformSource_Independent(t *testing.T) {
	t.Parallel()

	w, _ := NewWaveform([]int16{1, 2, 3}, 8000, 1)
	a, b := w.Source(), w.Source()

	buf := make([]float64, 3)
	if n, _ := a.ReadSamples(buf); n != 3 {
		t.Fatalf("first source read %d, want 3", n)
	}
	if n, _ := b.ReadSamples(buf); n != 3 {
		t.Fatalf("second source read %d, want 3", n)
	}
}
