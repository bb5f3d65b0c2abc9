// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/soundgrid/audio"
)

const (
	bitDepthPCM16 = 16
	readChunk     = 4096
)

// aiffReader is the part of aiff.Decoder used after validation; tests
// substitute it.
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Decoder decodes 16-bit PCM AIFF streams. It implements both
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

// DecodeWaveform reads a whole 16-bit PCM AIFF stream.
func DecodeWaveform(r io.Reader) (*audio.Waveform, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	if dec.BitDepth != bitDepthPCM16 {
		return nil, fmt.Errorf("%w: %d bits per sample", ErrOnlyPCM16bitSupported, dec.BitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	ints, err := readAll(dec, format.NumChannels)
	if err != nil {
		return nil, err
	}

	w, err := audio.NewWaveform(ints, format.SampleRate, format.NumChannels)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedAiffLayout, err)
	}

	return w, nil
}

// readAll drains dec. A trailing partial frame is dropped.
func readAll(dec aiffReader, channels int) ([]int16, error) {
	buf := &goaudio.IntBuffer{
		Data:   make([]int, readChunk*channels),
		Format: dec.Format(),
	}

	var out []int16
	for {
		n, err := dec.PCMBuffer(buf)
		for _, v := range buf.Data[:n] {
			out = append(out, int16(v))
		}

		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("decoding PCM data: %w", err)
		}
		if n == 0 || err == io.EOF {
			break
		}
	}

	return out[:len(out)-len(out)%channels], nil
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
