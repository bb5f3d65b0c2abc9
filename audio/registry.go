// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"slices"
	"strings"
	"sync"
)

// WaveformDecoder reads a whole recording into memory.
type WaveformDecoder interface {
	DecodeWaveform(r io.Reader) (*Waveform, error)
}

// Registry maps file extensions ("wav", "aiff") to decoders. Keys are
// case-insensitive and a leading dot is ignored, so filepath.Ext output can
// be used directly.
type Registry struct {
	codecs map[string]WaveformDecoder

	mtx sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]WaveformDecoder),
	}
}

func (r *Registry) Register(ext string, d WaveformDecoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[normalizeExt(ext)] = d
}

func (r *Registry) Get(ext string) (WaveformDecoder, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	d, ok := r.codecs[normalizeExt(ext)]
	return d, ok
}

// Formats lists the registered extensions in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	out := make([]string, 0, len(r.codecs))
	for ext := range r.codecs {
		out = append(out, ext)
	}
	slices.Sort(out)

	return out
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
