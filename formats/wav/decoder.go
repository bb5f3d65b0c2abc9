// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/soundgrid/audio"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
	bitDepthPCM16    = 16
)

// Decoder decodes PCM 16-bit WAV streams. It implements both
// audio.Decoder and audio.WaveformDecoder.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	w, err := DecodeWaveform(r)
	if err != nil {
		return nil, err
	}

	return w.Source(), nil
}

func (Decoder) DecodeWaveform(r io.Reader) (*audio.Waveform, error) {
	return DecodeWaveform(r)
}

// DecodeWaveform reads a whole PCM 16-bit WAV stream. Any other encoding,
// including 8/24/32-bit PCM and IEEE float, fails with
// ErrOnlyPCM16bitSupported; nothing is reinterpreted.
func DecodeWaveform(r io.Reader) (*audio.Waveform, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNotWavFile, err)
		}
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return nil, fmt.Errorf("%w: format tag %#x", ErrOnlyPCM16bitSupported, dec.WavAudioFormat)
	}
	if dec.BitDepth != bitDepthPCM16 {
		return nil, fmt.Errorf("%w: %d bits per sample", ErrOnlyPCM16bitSupported, dec.BitDepth)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding PCM data: %w", err)
	}
	if buf == nil {
		return nil, ErrUnsupportedWavLayout
	}

	channels := int(dec.NumChans)
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedWavLayout, channels)
	}

	// A truncated data chunk may end mid-frame; drop the partial frame.
	ints := make([]int16, len(buf.Data)-len(buf.Data)%channels)
	for i := range ints {
		ints[i] = int16(buf.Data[i])
	}

	w, err := audio.NewWaveform(ints, int(dec.SampleRate), channels)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedWavLayout, err)
	}

	return w, nil
}

// LoadFile opens path and decodes it with DecodeWaveform. Errors from
// opening the file are returned unwrapped (*fs.PathError).
func LoadFile(path string) (*audio.Waveform, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DecodeWaveform(f)
}
