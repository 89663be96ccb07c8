// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/diemonster/amiga-sample-convert/audio"
)

// sampleReader is the slice of oggvorbis.Reader the source needs; tests
// substitute a fake since Ogg Vorbis bytes cannot be synthesized
// in-process.
type sampleReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type vorbisSource struct {
	dec sampleReader
}

func (s *vorbisSource) SampleRate() int { return s.dec.SampleRate() }
func (s *vorbisSource) Channels() int   { return s.dec.Channels() }
func (s *vorbisSource) Close() error    { return nil }

func (s *vorbisSource) ReadSamples(dst []float32) (int, error) {
	// oggvorbis already hands out interleaved float32 in [-1, 1] and
	// only returns whole frames.
	n, err := s.dec.Read(dst)
	if n == 0 && err == nil {
		return 0, io.EOF
	}
	return n, err
}

// Decoder decodes Ogg Vorbis streams into audio sources.
type Decoder struct{}

// Decode wraps r in a Vorbis decoder.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return &vorbisSource{dec: dec}, nil
}
