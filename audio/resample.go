// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/soundgrid/utils"
)

// ResampleToMono16 drains src through a Resampler and a MonoMixer and
// returns the result as 16-bit PCM at targetRate.
//
// bufferSize is the read chunk size in samples; values <= 0 fall back to
// src.BufSize().
//
// Example:
//
//	pcm16, rate, err := audio.ResampleToMono16(src, 8000, 4096)
//	if err != nil {
//	    return err
//	}
func ResampleToMono16(src Source, targetRate int, bufferSize int) ([]int16, int, error) {
	if targetRate <= 0 {
		return nil, targetRate, ErrInvalidRate
	}
	if bufferSize <= 0 {
		bufferSize = max(src.BufSize(), 1)
	}

	mono := NewMonoMixer(NewResampler(src, targetRate))

	// Pre-size from the source duration when it is known.
	var pcm16 []int16
	if w, ok := src.(*waveformSource); ok {
		pcm16 = make([]int16, 0, ExpectedFrames(w.w.Frames(), w.w.Rate, targetRate))
	}

	buf := make([]float64, bufferSize)
	for {
		n, err := mono.ReadSamples(buf)
		for i := range n {
			pcm16 = append(pcm16, utils.FloatToInt16(buf[i]))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, targetRate, fmt.Errorf("resampling to %d Hz: %w", targetRate, err)
		}
	}

	return pcm16, targetRate, nil
}

// Resample converts w to a mono PCM16 waveform at targetRate. Multi-channel
// input is averaged down to one channel. The result keeps the
// Floats[i] == Ints[i]/32768 relation of every Waveform.
func Resample(w *Waveform, targetRate int) (*Waveform, error) {
	if targetRate <= 0 {
		return nil, ErrInvalidRate
	}

	pcm16, rate, err := ResampleToMono16(w.Source(), targetRate, defaultBufSize)
	if err != nil {
		return nil, err
	}

	return NewWaveform(pcm16, rate, 1)
}

// ExpectedFrames returns the number of frames a Resampler produces for a
// source of frames samples: ceil(frames*dstRate/srcRate).
func ExpectedFrames(frames, srcRate, dstRate int) int {
	if frames <= 0 || srcRate <= 0 || dstRate <= 0 {
		return 0
	}

	num := int64(frames) * int64(dstRate)
	den := int64(srcRate)

	return int((num + den - 1) / den)
}
