// SPDX-License-Identifier: EPL-2.0

package soundgrid

import (
	"strconv"
	"strings"
)

// Option configures Open.
//
// Example:
//
//	sf, err := soundgrid.Open("take1.wav",
//	    soundgrid.WithResampleFreq(16000),
//	    soundgrid.WithTextGridDir("annotations"),
//	)
type Option func(*openOptions)

type openOptions struct {
	resampleFreq int
	resampleRaw  string // text as given, for error messages
	resampleSet  bool
	resampleErr  error
	textGridDir  string
	textGridFile string
}

func defaultOptions() *openOptions {
	return &openOptions{}
}

// WithResampleFreq requests a resampled copy at hz. The copy is written next
// to the recording as <stem>-resample-<hz>Hz.wav. Values <= 0 make Open
// fail with ErrResampleNotPositive.
func WithResampleFreq(hz int) Option {
	return func(o *openOptions) {
		o.resampleFreq = hz
		o.resampleRaw = strconv.Itoa(hz)
		o.resampleSet = true
		o.resampleErr = nil
	}
}

// WithResampleFreqString is WithResampleFreq for untyped input such as
// command line flags. Text that is not an integer makes Open fail with
// ErrResampleNotInteger.
func WithResampleFreqString(s string) Option {
	return func(o *openOptions) {
		o.resampleFreq, o.resampleErr = ParseResampleFreq(s)
		o.resampleRaw = s
		o.resampleSet = true
	}
}

// WithTextGridDir sets the directory searched for the annotation file. The
// default is the recording's own directory.
func WithTextGridDir(dir string) Option {
	return func(o *openOptions) {
		o.textGridDir = dir
	}
}

// WithTextGridFile names the annotation file explicitly. Relative names are
// resolved against the TextGrid directory. When the file does not exist no
// other location is tried.
func WithTextGridFile(name string) Option {
	return func(o *openOptions) {
		o.textGridFile = name
	}
}

// ParseResampleFreq parses a resample frequency in Hz.
func ParseResampleFreq(s string) (int, error) {
	hz, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrResampleNotInteger
	}
	if hz <= 0 {
		return 0, ErrResampleNotPositive
	}

	return hz, nil
}

func (o *openOptions) validate() error {
	if !o.resampleSet {
		return nil
	}

	err := o.resampleErr
	if err == nil && o.resampleFreq <= 0 {
		err = ErrResampleNotPositive
	}
	if err != nil {
		return &ValidationError{Option: "resample frequency", Value: o.resampleRaw, Err: err}
	}

	return nil
}
