// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes 16-bit PCM AIFF recordings.
//
// It mirrors formats/wav: DecodeWaveform and LoadFile return an
// audio.Waveform, and Decoder implements audio.Decoder and
// audio.WaveformDecoder so it can be registered in an audio.Registry.
// Decoding is done by github.com/go-audio/aiff.
//
//	w, err := aiff.LoadFile("take1.aiff")
//	if err != nil {
//	    // Handle error
//	}
//
// Other bit depths fail with ErrOnlyPCM16bitSupported.
package aiff
