// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"

	"github.com/ik5/soundgrid/internal/audiotest"
)

func TestResample_ReferenceRecording(t *testing.T) {
	t.Parallel()

	w, err := NewWaveform(audiotest.SinePCM16(22050, 51597, 180), 22050, 1)
	if err != nil {
		t.Fatalf("NewWaveform() error = %v", err)
	}

	rs, err := Resample(w, 16000)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}

	if rs.Rate != 16000 {
		t.Errorf("Rate = %d, want 16000", rs.Rate)
	}
	if rs.Channels != 1 {
		t.Errorf("Channels = %d, want 1", rs.Channels)
	}
	if rs.Frames() != 37440 {
		t.Errorf("Frames() = %d, want 37440", rs.Frames())
	}
	for i, v := range rs.Ints {
		if rs.Floats[i] != float64(v)/32768.0 {
			t.Fatalf("Floats[%d] = %v, want %v", i, rs.Floats[i], float64(v)/32768.0)
		}
	}

	// The source is untouched.
	if w.Frames() != 51597 || w.Rate != 22050 {
		t.Errorf("source waveform changed: %d frames at %d Hz", w.Frames(), w.Rate)
	}
}

func TestResample_SameRateKeepsSamples(t *testing.T) {
	t.Parallel()

	ints := []int16{0, 1, -1, 1000, -1000, 32767, -32768, 5}
	w, _ := NewWaveform(append([]int16(nil), ints...), 16000, 1)

	rs, err := Resample(w, 16000)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}

	if len(rs.Ints) != len(ints) {
		t.Fatalf("len(Ints) = %d, want %d", len(rs.Ints), len(ints))
	}
	for i := range ints {
		if rs.Ints[i] != ints[i] {
			t.Errorf("Ints[%d] = %d, want %d", i, rs.Ints[i], ints[i])
		}
	}
}

func TestResample_StereoIsMixedDown(t *testing.T) {
	t.Parallel()

	// Left 1000, right 3000.
	ints := make([]int16, 2*800)
	for i := 0; i < len(ints); i += 2 {
		ints[i], ints[i+1] = 1000, 3000
	}
	w, _ := NewWaveform(ints, 8000, 2)

	rs, err := Resample(w, 16000)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}

	if rs.Channels != 1 || rs.Frames() != 1600 {
		t.Fatalf("got %d channels, %d frames; want 1, 1600", rs.Channels, rs.Frames())
	}
	for i, v := range rs.Ints {
		if v != 2000 {
			t.Fatalf("Ints[%d] = %d, want 2000", i, v)
		}
	}
}

func TestResample_InvalidRate(t *testing.T) {
	t.Parallel()

	w, _ := NewWaveform([]int16{1, 2}, 8000, 1)

	for _, rate := range []int{0, -16000} {
		if _, err := Resample(w, rate); !errors.Is(err, ErrInvalidRate) {
			t.Errorf("Resample(%d) error = %v, want ErrInvalidRate", rate, err)
		}
		if _, _, err := ResampleToMono16(w.Source(), rate, 16); !errors.Is(err, ErrInvalidRate) {
			t.Errorf("ResampleToMono16(%d) error = %v, want ErrInvalidRate", rate, err)
		}
	}
}

func TestResampleToMono16_Stereo(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(44100, 2, 44100, 440)

	pcm16, rate, err := ResampleToMono16(src, 8000, 4096)
	if err != nil {
		t.Fatalf("ResampleToMono16() error = %v", err)
	}
	if rate != 8000 {
		t.Errorf("rate = %d, want 8000", rate)
	}
	if len(pcm16) != 8000 {
		t.Errorf("got %d samples, want 8000", len(pcm16))
	}
}

func TestExpectedFrames_Degenerate(t *testing.T) {
	t.Parallel()

	if got := ExpectedFrames(100, 0, 8000); got != 0 {
		t.Errorf("ExpectedFrames with zero source rate = %d, want 0", got)
	}
	if got := ExpectedFrames(-1, 8000, 8000); got != 0 {
		t.Errorf("ExpectedFrames with negative frames = %d, want 0", got)
	}
}
