// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	// BufSize is a read size, in samples, that holds whole frames.
	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps file extensions (e.g., "aif", "aifc", "wav") to decoders.
type Registry struct {
	codecs map[string]Decoder

	mtx sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
	}
}

// Register binds d to every extension given. Extensions are matched
// without the leading dot and case-insensitively.
func (r *Registry) Register(d Decoder, exts ...string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	for _, ext := range exts {
		r.codecs[normalizeExt(ext)] = d
	}
}

func (r *Registry) Get(ext string) (Decoder, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	d, ok := r.codecs[normalizeExt(ext)]
	return d, ok
}

// ForPath returns the decoder registered for the extension of path.
func (r *Registry) ForPath(path string) (Decoder, error) {
	ext := filepath.Ext(path)
	d, ok := r.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%q: %w", ext, ErrUnknownFormat)
	}
	return d, nil
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
