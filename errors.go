// SPDX-License-Identifier: EPL-2.0

package soundgrid

import (
	"errors"
	"fmt"
)

var (
	ErrResampleNotInteger  = errors.New("Resample frequency must be an integer") //nolint:staticcheck // message is part of the API
	ErrResampleNotPositive = errors.New("Resample frequency must be positive")   //nolint:staticcheck // message is part of the API
	ErrNoTextGrid          = errors.New("no TextGrid file found")
)

// ValidationError reports an option value rejected before any file is
// touched.
type ValidationError struct {
	Option string
	Value  string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Option, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// FileAccessError is returned when a sound file cannot be read, or a
// resampled copy cannot be written.
type FileAccessError struct {
	Path string
	Op   string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("%s: cannot %s file: %v", e.Path, e.Op, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// FormatError is returned when a file is readable but its decoder rejects
// it: not a 16-bit PCM recording, or a corrupt one.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: unsupported format: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// AnnotationNotFoundError is returned when annotation intervals are
// requested for a recording with no companion TextGrid.
type AnnotationNotFoundError struct {
	WavFile string
	Dir     string
}

func (e *AnnotationNotFoundError) Error() string {
	return fmt.Sprintf("no TextGrid file found for %s in %s", e.WavFile, e.Dir)
}

func (e *AnnotationNotFoundError) Unwrap() error {
	return ErrNoTextGrid
}
