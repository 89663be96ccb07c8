// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/diemonster/amiga-sample-convert/audio"
)

// pcmReader is the slice of gomp3.Decoder the source needs; tests
// substitute a fake since MP3 bytes cannot be synthesized in-process.
type pcmReader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type mp3Source struct {
	dec pcmReader
	buf []byte
}

func (s *mp3Source) SampleRate() int { return s.dec.SampleRate() }
func (s *mp3Source) Channels() int   { return 2 } // go-mp3 always emits stereo
func (s *mp3Source) Close() error    { return nil }

func (s *mp3Source) ReadSamples(dst []float32) (int, error) {
	need := len(dst) * 2
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	n, err := s.dec.Read(s.buf)
	if n == 0 {
		if err == io.EOF {
			return 0, io.EOF
		}
		if err != nil {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, nil
	}

	// go-mp3 hands back interleaved 16-bit little-endian PCM.
	samples := n / 2
	for i := range samples {
		v := int16(uint16(s.buf[2*i]) | uint16(s.buf[2*i+1])<<8)
		dst[i] = float32(v) / 32768.0
	}

	if err == io.EOF {
		return samples, io.EOF
	}
	return samples, err
}

// Decoder decodes MP3 streams into audio sources.
type Decoder struct{}

// Decode wraps r in an MP3 decoder. The returned Source is always two
// channels; mono streams come back with both channels identical.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return &mp3Source{dec: dec}, nil
}
