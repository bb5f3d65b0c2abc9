// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/soundgrid/audio"
	"github.com/ik5/soundgrid/internal/audiotest"
)

func TestWriteWAV16_RoundTrip(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 100, -100, 32767, -32768, 12345}
	path := filepath.Join(t.TempDir(), "out.wav")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteWAV16(f, 16000, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	w, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if w.Rate != 16000 || w.Channels != 1 {
		t.Errorf("got %d Hz / %d ch, want 16000 Hz / 1 ch", w.Rate, w.Channels)
	}
	if len(w.Ints) != len(samples) {
		t.Fatalf("len(Ints) = %d, want %d", len(w.Ints), len(samples))
	}
	for i := range samples {
		if w.Ints[i] != samples[i] {
			t.Errorf("Ints[%d] = %d, want %d", i, w.Ints[i], samples[i])
		}
	}
}

func TestWriteFile_Header(t *testing.T) {
	t.Parallel()

	wf, _ := audio.NewWaveform([]int16{1, 2, 3, 4}, 44100, 2)
	path := filepath.Join(t.TempDir(), "stereo.wav")

	if err := WriteFile(path, wf); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Errorf("header = %q, want RIFF....WAVE", data[:12])
	}

	back, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if back.Channels != 2 || back.Rate != 44100 || back.Frames() != 2 {
		t.Errorf("got %d ch / %d Hz / %d frames", back.Channels, back.Rate, back.Frames())
	}
}

func TestWriteFile_Overwrites(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := audiotest.WriteFile(t, dir, "old.wav", []byte("stale contents that are much longer than nothing"))

	wf, _ := audio.NewWaveform(audiotest.SinePCM16(8000, 80, 100), 8000, 1)
	if err := WriteFile(path, wf); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	back, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if back.Frames() != 80 {
		t.Errorf("Frames() = %d, want 80", back.Frames())
	}
}

func TestWriteFile_BadDirectory(t *testing.T) {
	t.Parallel()

	wf, _ := audio.NewWaveform([]int16{1}, 8000, 1)
	path := filepath.Join(t.TempDir(), "missing", "out.wav")

	if err := WriteFile(path, wf); err == nil {
		t.Error("WriteFile() into a missing directory succeeded")
	}
}

func TestWriteWaveform_Validation(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "x.wav"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	tests := []struct {
		name string
		wf   *audio.Waveform
		want error
	}{
		{"zero rate", &audio.Waveform{Rate: 0, Channels: 1}, audio.ErrInvalidRate},
		{"zero channels", &audio.Waveform{Rate: 8000, Channels: 0}, audio.ErrInvalidChannels},
		{"partial frame", &audio.Waveform{Rate: 8000, Channels: 2, Ints: []int16{1}}, audio.ErrPartialFrame},
	}

	for _, tt := range tests {
		if err := WriteWaveform(f, tt.wf); !errors.Is(err, tt.want) {
			t.Errorf("%s: WriteWaveform() error = %v, want %v", tt.name, err, tt.want)
		}
	}
}
