// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
	"testing"

	"github.com/ik5/soundgrid/internal/audiotest"
)

func TestMonoMixer_MonoPassthrough(t *testing.T) {
	t.Parallel()

	got := drain(t, NewMonoMixer(audiotest.NewRampSource(8000, 1, 50, 0.01)), 16)

	if len(got) != 50 {
		t.Fatalf("read %d samples, want 50", len(got))
	}
	for i, v := range got {
		if v != float64(i)*0.01 {
			t.Fatalf("sample %d = %v, want %v", i, v, float64(i)*0.01)
		}
	}
}

func TestMonoMixer_Averages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		want     float64
	}{
		{"stereo", 2, 0.25},
		{"three channels", 3, 0.5},
		{"quad", 4, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// Channel c carries c*0.5, so the mean is (channels-1)*0.25.
			src := audiotest.NewMockSource(8000, tt.channels, 100, func(_ int, c int) float64 {
				return float64(c) * 0.5
			})
			got := drain(t, NewMonoMixer(src), 7)

			if len(got) != 100 {
				t.Fatalf("read %d frames, want 100", len(got))
			}
			for i, v := range got {
				if math.Abs(v-tt.want) > 1e-12 {
					t.Fatalf("frame %d = %v, want %v", i, v, tt.want)
				}
			}
		})
	}
}

func TestMonoMixer_EmptyBuffer(t *testing.T) {
	t.Parallel()

	n, err := NewMonoMixer(audiotest.NewSilentSource(8000, 2, 10)).ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestMonoMixer_EOF(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(audiotest.NewSilentSource(8000, 2, 4))
	_ = drain(t, mixer, 8)

	n, err := mixer.ReadSamples(make([]float64, 8))
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after EOF = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestMonoMixer_Metadata(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(22050, 2, 10)
	mixer := NewMonoMixer(src)

	if mixer.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", mixer.Channels())
	}
	if mixer.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", mixer.SampleRate())
	}
	if err := mixer.Close(); err != nil || !src.Closed() {
		t.Errorf("Close() = %v, source closed = %v", err, src.Closed())
	}
}

func TestMonoMixer_LargeBuffer(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(8000, 2, 20000, 0.5)
	got := drain(t, NewMonoMixer(src), 10000)

	if len(got) != 20000 {
		t.Errorf("read %d frames, want 20000", len(got))
	}
}
