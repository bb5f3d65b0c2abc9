// SPDX-License-Identifier: EPL-2.0

// Package audio provides the in-memory waveform model and the low-level
// processing primitives used to resample recordings.
//
// # Waveform
//
// A Waveform holds a decoded PCM16 recording in two parallel
// representations:
//
//	w, _ := audio.NewWaveform(ints, 22050, 1)
//	w.Ints   // []int16, as stored in the file
//	w.Floats // []float64, Ints[i] / 32768
//	w.Frames()     // samples per channel
//	w.DurationMs() // rounded half away from zero
//
// Frames and DurationMs are derived on each call and never cached.
//
// # Source Interface
//
// Streaming processors share the Source interface:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float64) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Waveform.Source streams a loaded waveform; decoders in formats/ return
// Sources as well, so the pieces chain into pipelines.
//
// # Decoder Registry
//
// A Registry picks a WaveformDecoder by file extension:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	reg.Register("aiff", aiff.Decoder{})
//	dec, ok := reg.Get(filepath.Ext(path))
//
// # Resampling
//
// The Resampler changes the sample rate using Catmull-Rom cubic
// interpolation. Source positions are computed with integer arithmetic, so a
// source of n frames always yields ceil(n*dst/src) frames:
//
//	resampler := audio.NewResampler(source, 16000)
//	buf := make([]float64, 4096)
//	n, err := resampler.ReadSamples(buf)
//
// For whole recordings Resample does the full job and returns a mono
// Waveform:
//
//	rs, err := audio.Resample(w, 16000)
//
// # Channel Mixing
//
// The MonoMixer converts multi-channel audio to mono by averaging:
//
//	mono := audio.NewMonoMixer(source)
//
// # Error Handling
//
// Streaming functions return io.EOF when no more data is available; the final
// call may return n > 0 together with io.EOF.
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // process buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
