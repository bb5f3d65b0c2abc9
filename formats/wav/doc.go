// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Only 16-bit integer PCM is accepted. It uses the github.com/go-audio
// library for RIFF chunk handling.
//
// # Decoding WAV Files
//
// LoadFile and DecodeWaveform read a whole recording into an audio.Waveform,
// which carries both the raw int16 samples and the same samples scaled to
// [-1.0, 1.0):
//
//	w, err := wav.LoadFile("audio.wav")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(w.Rate, w.Frames(), w.DurationMs())
//
// Decoder implements audio.Decoder for streaming pipelines:
//
//	src, err := wav.Decoder{}.Decode(file)
//
// 8, 24 and 32-bit PCM, IEEE float and compressed encodings are rejected
// with ErrOnlyPCM16bitSupported; they are never silently converted.
//
// # Writing WAV Files
//
// WriteWAV16 writes mono samples; WriteWaveform and WriteFile keep the
// waveform's channel count:
//
//	err := wav.WriteFile("out.wav", w)
//
// The go-audio encoder patches the RIFF sizes on close, so writers need an
// io.WriteSeeker (an *os.File works).
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a readable RIFF/WAVE stream
//   - ErrOnlyPCM16bitSupported: the stream is not 16-bit PCM
//   - ErrUnsupportedWavLayout: the stream declares an unusable layout
//
// Errors from opening files are returned as *fs.PathError.
package wav
