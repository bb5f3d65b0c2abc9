// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/soundgrid/audio"
)

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate.
func WriteWAV16(w io.WriteSeeker, sampleRate int, samples []int16) error {
	return writePCM16(w, sampleRate, 1, samples)
}

// WriteWaveform writes wf as 16-bit PCM, keeping its rate and channel count.
func WriteWaveform(w io.WriteSeeker, wf *audio.Waveform) error {
	return writePCM16(w, wf.Rate, wf.Channels, wf.Ints)
}

// WriteFile creates (or truncates) path and writes wf to it.
func WriteFile(path string, wf *audio.Waveform) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := WriteWaveform(f, wf); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

func writePCM16(w io.WriteSeeker, sampleRate, channels int, samples []int16) error {
	if sampleRate <= 0 {
		return audio.ErrInvalidRate
	}
	if channels <= 0 {
		return audio.ErrInvalidChannels
	}
	if len(samples)%channels != 0 {
		return audio.ErrPartialFrame
	}

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	enc := gowav.NewEncoder(w, sampleRate, bitDepthPCM16, channels, formatPCM)
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepthPCM16,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing PCM data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing WAV header: %w", err)
	}

	return nil
}
