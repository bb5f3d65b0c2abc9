// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"

	"github.com/ik5/soundgrid/utils"
)

// Resampler streams from src to a target sample rate using Catmull-Rom cubic
// interpolation. Works on interleaved samples and preserves channel count.
//
// Output frame k is taken at source position k*srcRate/dstRate, computed in
// integer arithmetic so positions never drift. A source of n frames yields
// exactly ceil(n*dstRate/srcRate) output frames; frames past either end of
// the source are clamped to the first or last frame.
//
// When downsampling, source frames pass through a one-pole low-pass filter
// with its cutoff just below the destination Nyquist frequency.
type Resampler struct {
	src      Source
	srcRate  int64
	dstRate  int64
	channels int

	// history holds the four most recently read source frames; frame i
	// lives in history[i%4].
	history [4][]float64
	loaded  int64 // source frames read so far
	eof     bool

	step int64 // index of the next output frame

	readBuf []float64
	lowpass *onePole
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()

	r := &Resampler{
		src:      src,
		srcRate:  int64(src.SampleRate()),
		dstRate:  int64(dstRate),
		channels: channels,
		readBuf:  make([]float64, max(channels, 0)),
	}

	for i := range r.history {
		r.history[i] = make([]float64, max(channels, 0))
	}

	if dstRate > 0 && dstRate < src.SampleRate() {
		r.lowpass = newOnePole(channels, 0.45*float64(dstRate), float64(src.SampleRate()))
	}

	return r
}

func (r *Resampler) SampleRate() int { return int(r.dstRate) }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	err := r.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// ReadSamples produces dst samples at the destination rate.
// dst length should be a multiple of r.channels.
func (r *Resampler) ReadSamples(dst []float64) (int, error) {
	if r.channels <= 0 {
		return 0, ErrInvalidChannels
	}
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if r.srcRate <= 0 || r.dstRate <= 0 {
		return 0, ErrInvalidRate
	}

	written := 0
	framesNeeded := len(dst) / r.channels

	for written < framesNeeded {
		pos := r.step * r.srcRate
		idx := pos / r.dstRate

		// Cubic interpolation needs frames idx-1 .. idx+2.
		for !r.eof && r.loaded < idx+3 {
			if err := r.readFrame(); err != nil {
				return written * r.channels, err
			}
		}

		if idx >= r.loaded {
			return written * r.channels, io.EOF
		}

		frac := float64(pos%r.dstRate) / float64(r.dstRate)
		y0, y1, y2, y3 := r.frame(idx-1), r.frame(idx), r.frame(idx+1), r.frame(idx+2)

		out := dst[written*r.channels:]
		for c := range r.channels {
			out[c] = utils.CubicInterpolate(y0[c], y1[c], y2[c], y3[c], frac)
		}

		written++
		r.step++
	}

	return written * r.channels, nil
}

// readFrame pulls one frame from src into the history ring.
func (r *Resampler) readFrame() error {
	n, err := r.src.ReadSamples(r.readBuf)
	if n == r.channels {
		slot := r.history[r.loaded%4]
		copy(slot, r.readBuf)
		if r.lowpass != nil {
			r.lowpass.apply(slot)
		}
		r.loaded++
	}

	switch {
	case err == io.EOF:
		r.eof = true
		return nil
	case err != nil:
		return fmt.Errorf("reading source frame %d: %w", r.loaded, err)
	case n != r.channels:
		return io.ErrUnexpectedEOF
	}

	return nil
}

// frame returns source frame i, clamped to the frames read so far.
func (r *Resampler) frame(i int64) []float64 {
	if i < 0 {
		i = 0
	}
	if i > r.loaded-1 {
		i = r.loaded - 1
	}

	return r.history[i%4]
}

// onePole is a per-channel y[n] = y[n-1] + alpha*(x[n]-y[n-1]) filter.
type onePole struct {
	alpha   float64
	state   []float64
	started bool
}

func newOnePole(channels int, cutoff, sampleRate float64) *onePole {
	return &onePole{
		alpha: 1 - math.Exp(-2*math.Pi*cutoff/sampleRate),
		state: make([]float64, max(channels, 0)),
	}
}

func (f *onePole) apply(frame []float64) {
	// Seed with the first frame to avoid a warm-up transient.
	if !f.started {
		copy(f.state, frame)
		f.started = true
		return
	}

	for c := range frame {
		f.state[c] += f.alpha * (frame[c] - f.state[c])
		frame[c] = f.state[c]
	}
}
