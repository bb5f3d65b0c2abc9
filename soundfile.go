// SPDX-License-Identifier: EPL-2.0

package soundgrid

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/ik5/soundgrid/audio"
	"github.com/ik5/soundgrid/formats/aiff"
	"github.com/ik5/soundgrid/formats/wav"
	"github.com/ik5/soundgrid/textgrid"
)

var errIsDirectory = errors.New("is a directory")

// Recordings are picked by extension; anything unregistered is read as WAV.
var decoders = func() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})

	return r
}()

// SoundFile is a loaded 16-bit PCM recording (WAV, or AIFF by extension), an optional resampled copy
// and, on demand, its TextGrid annotation.
//
// Slices returned by the accessors are shared with the SoundFile and must
// not be modified. A SoundFile is not safe for concurrent use.
type SoundFile struct {
	path string
	wave *audio.Waveform

	resampled     *audio.Waveform
	resampledPath string

	tgDir  string
	tgFile string

	tgResolved bool
	tgPath     string
	tgFound    bool

	gridParsed bool
	grid       *textgrid.TextGrid
	gridErr    error
}

// Open loads the recording at path. The resample frequency is validated
// before the file is read. When a frequency is set, the resampled copy is
// computed and written to ResampledPath before Open returns. The TextGrid
// is not looked for until it is first asked for.
func Open(path string, opts ...Option) (*SoundFile, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if err := o.validate(); err != nil {
		return nil, err
	}

	w, err := load(path, decoders)
	if err != nil {
		return nil, err
	}

	sf := &SoundFile{
		path:   path,
		wave:   w,
		tgDir:  o.textGridDir,
		tgFile: o.textGridFile,
	}

	if o.resampleSet {
		sf.resampled, sf.resampledPath, err = resampleToFile(w, path, o.resampleFreq)
		if err != nil {
			return nil, err
		}
	}

	return sf, nil
}

// load reads path with the decoder registered for its extension. Failures
// to reach the file are *FileAccessError; anything the decoder rejects once
// the file is open is a *FormatError.
func load(path string, reg *audio.Registry) (*audio.Waveform, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Op: "read", Err: err}
	}
	if info.IsDir() {
		return nil, &FileAccessError{Path: path, Op: "read", Err: errIsDirectory}
	}

	dec, ok := reg.Get(filepath.Ext(path))
	if !ok {
		dec = wav.Decoder{}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Op: "read", Err: err}
	}
	defer f.Close()

	w, err := dec.DecodeWaveform(f)
	if err != nil {
		return nil, &FormatError{Path: path, Err: err}
	}

	return w, nil
}

func (sf *SoundFile) WavPath() string { return sf.path }

// WavData returns the samples scaled to [-1, 1), interleaved by channel.
func (sf *SoundFile) WavData() []float64 { return sf.wave.Floats }

// WavDataInt returns the samples as stored in the file.
func (sf *SoundFile) WavDataInt() []int16 { return sf.wave.Ints }

// Fs is the sampling rate in Hz.
func (sf *SoundFile) Fs() int { return sf.wave.Rate }

// Ns is the number of sample frames.
func (sf *SoundFile) Ns() int { return sf.wave.Frames() }

// MsLen is the duration in milliseconds, rounded half away from zero.
func (sf *SoundFile) MsLen() int { return sf.wave.DurationMs() }

func (sf *SoundFile) Channels() int { return sf.wave.Channels }

func (sf *SoundFile) Waveform() *audio.Waveform { return sf.wave }

// Resampled returns the mono resampled waveform, or nil when Open was not
// given a resample frequency.
func (sf *SoundFile) Resampled() *audio.Waveform { return sf.resampled }

func (sf *SoundFile) WavDataRS() []float64 {
	if sf.resampled == nil {
		return nil
	}

	return sf.resampled.Floats
}

func (sf *SoundFile) WavDataRSInt() []int16 {
	if sf.resampled == nil {
		return nil
	}

	return sf.resampled.Ints
}

func (sf *SoundFile) FsRS() (int, bool) {
	if sf.resampled == nil {
		return 0, false
	}

	return sf.resampled.Rate, true
}

func (sf *SoundFile) NsRS() (int, bool) {
	if sf.resampled == nil {
		return 0, false
	}

	return sf.resampled.Frames(), true
}

// WavPathRS is the path the resampled copy was written to.
func (sf *SoundFile) WavPathRS() (string, bool) {
	return sf.resampledPath, sf.resampled != nil
}

// TextGrid returns the path of the companion annotation file. The lookup
// runs once; later calls return the first answer even if files appear or
// vanish in between.
func (sf *SoundFile) TextGrid() (string, bool) {
	if !sf.tgResolved {
		sf.tgPath, sf.tgFound = LocateTextGrid(sf.path, sf.tgDir, sf.tgFile)
		sf.tgResolved = true
	}

	return sf.tgPath, sf.tgFound
}

// TgPath is an alias of TextGrid.
func (sf *SoundFile) TgPath() (string, bool) {
	return sf.TextGrid()
}

// TextGridData parses the annotation file on first use and caches the
// result, failures included. The returned grid is shared.
func (sf *SoundFile) TextGridData() (*textgrid.TextGrid, error) {
	if !sf.gridParsed {
		sf.grid, sf.gridErr = sf.parseTextGrid()
		sf.gridParsed = true
	}

	return sf.grid, sf.gridErr
}

// TextGridIntervals returns the intervals of the first interval tier. The
// slice is a copy. Without an annotation file the error is an
// *AnnotationNotFoundError; a file with no interval tier gives a
// *textgrid.ParseError wrapping textgrid.ErrNoIntervalTier.
func (sf *SoundFile) TextGridIntervals() ([]textgrid.Interval, error) {
	g, err := sf.TextGridData()
	if err != nil {
		return nil, err
	}

	intervals, err := g.Intervals()
	if err != nil {
		path, _ := sf.TextGrid()
		return nil, &textgrid.ParseError{Path: path, Err: err}
	}

	return intervals, nil
}

func (sf *SoundFile) parseTextGrid() (*textgrid.TextGrid, error) {
	path, ok := sf.TextGrid()
	if !ok {
		return nil, &AnnotationNotFoundError{
			WavFile: filepath.Base(sf.path),
			Dir:     sf.textGridDir(),
		}
	}

	return textgrid.ParseFile(path)
}

func (sf *SoundFile) textGridDir() string {
	if sf.tgDir != "" {
		return sf.tgDir
	}

	return filepath.Dir(sf.path)
}
