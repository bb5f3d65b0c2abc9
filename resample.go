// SPDX-License-Identifier: EPL-2.0

package soundgrid

import (
	"fmt"
	"path/filepath"

	"github.com/ik5/soundgrid/audio"
	"github.com/ik5/soundgrid/formats/wav"
)

// ResampledPath returns where the copy of wavPath resampled to hz is
// stored: <dir>/<stem>-resample-<hz>Hz.wav.
func ResampledPath(wavPath string, hz int) string {
	return filepath.Join(filepath.Dir(wavPath), fmt.Sprintf("%s-resample-%dHz.wav", stem(wavPath), hz))
}

// resampleToFile converts w to a mono PCM16 waveform at hz and persists it
// next to wavPath, replacing any earlier copy.
func resampleToFile(w *audio.Waveform, wavPath string, hz int) (*audio.Waveform, string, error) {
	rs, err := audio.Resample(w, hz)
	if err != nil {
		return nil, "", fmt.Errorf("resampling %s to %d Hz: %w", wavPath, hz, err)
	}

	path := ResampledPath(wavPath, hz)
	if err := wav.WriteFile(path, rs); err != nil {
		return nil, "", &FileAccessError{Path: path, Op: "write", Err: err}
	}

	return rs, path, nil
}
