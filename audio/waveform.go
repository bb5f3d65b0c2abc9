// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"

	"github.com/ik5/soundgrid/utils"
)

const defaultBufSize = 4096

// Waveform is a fully loaded PCM16 recording kept in two parallel
// representations. Ints holds the 16-bit samples as stored in the file and
// Floats holds the same samples divided by 32768. Both are interleaved when
// Channels > 1.
//
// Build waveforms with NewWaveform so the two slices never disagree.
type Waveform struct {
	Rate     int
	Channels int
	Ints     []int16
	Floats   []float64
}

// NewWaveform wraps ints (taking ownership of the slice) and derives the
// float representation.
func NewWaveform(ints []int16, rate, channels int) (*Waveform, error) {
	if rate <= 0 {
		return nil, ErrInvalidRate
	}
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}
	if len(ints)%channels != 0 {
		return nil, ErrPartialFrame
	}

	floats := make([]float64, len(ints))
	for i, v := range ints {
		floats[i] = utils.Int16ToFloat(v)
	}

	return &Waveform{
		Rate:     rate,
		Channels: channels,
		Ints:     ints,
		Floats:   floats,
	}, nil
}

// Frames returns the number of sample frames (samples per channel).
func (w *Waveform) Frames() int {
	return len(w.Ints) / w.Channels
}

// DurationMs returns the duration in whole milliseconds, rounded half away
// from zero.
func (w *Waveform) DurationMs() int {
	return utils.RoundHalfAwayFromZero(float64(w.Frames()) / float64(w.Rate) * 1000)
}

// Source streams the float representation of w. Every call returns an
// independent reader positioned at the first sample.
func (w *Waveform) Source() Source {
	return &waveformSource{w: w}
}

type waveformSource struct {
	w   *Waveform
	pos int
}

func (s *waveformSource) SampleRate() int { return s.w.Rate }
func (s *waveformSource) Channels() int   { return s.w.Channels }
func (s *waveformSource) BufSize() int    { return defaultBufSize }
func (s *waveformSource) Close() error    { return nil }

func (s *waveformSource) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.pos >= len(s.w.Floats) {
		return 0, io.EOF
	}

	// Whole frames only.
	want := len(dst) - len(dst)%s.w.Channels
	if want == 0 {
		return 0, ErrInvalidDstSize
	}

	n := copy(dst[:want], s.w.Floats[s.pos:])
	s.pos += n

	return n, nil
}
