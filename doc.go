// SPDX-License-Identifier: EPL-2.0

// Package soundgrid loads 16-bit PCM WAV recordings together with their
// Praat TextGrid annotations.
//
// A SoundFile keeps the samples in two forms: the int16 values stored in
// the file and the same values divided by 32768. It can also produce a mono
// copy at another sampling rate, written next to the recording as
// <stem>-resample-<rate>Hz.wav.
//
// # Quick Start
//
//	sf, err := soundgrid.Open("beijing_f3_50_a.wav", soundgrid.WithResampleFreq(16000))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(sf.Fs(), sf.Ns(), sf.MsLen())
//
//	intervals, err := sf.TextGridIntervals()
//	if err != nil {
//	    return err
//	}
//	for _, iv := range intervals {
//	    fmt.Println(iv.Label, iv.Start, iv.End)
//	}
//
// # Annotation Lookup
//
// The TextGrid is found on first use, in this order:
//   - the file named by WithTextGridFile, inside the WithTextGridDir
//     directory (or the recording's directory); nothing else is tried
//   - <stem>.TextGrid in that same directory
//
// Parsing is delegated to the textgrid subpackage, which understands both
// Praat text layouts and ASCII, UTF-8 and UTF-16 files.
//
// # Error Handling
//
//   - *ValidationError: a bad resample frequency (ErrResampleNotInteger,
//     ErrResampleNotPositive)
//   - *FileAccessError: the recording cannot be read or the resampled copy
//     cannot be written
//   - *FormatError: the recording is not 16-bit PCM WAV
//   - *AnnotationNotFoundError: no TextGrid for the recording
//   - *textgrid.ParseError: the TextGrid exists but cannot be parsed
//
// # Subpackages
//
//   - audio: waveforms, streaming sources, resampler and mono mixer
//   - formats/wav: PCM 16-bit WAV decoding and encoding
//   - textgrid: TextGrid parsing
//   - utils: sample conversion and interpolation helpers
package soundgrid
