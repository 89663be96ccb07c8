// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/diemonster/amiga-sample-convert/audio"
)

type aiffSource struct {
	dec   *goaiff.Decoder
	buf   *goaudio.IntBuffer
	scale float32
}

func (s *aiffSource) SampleRate() int { return int(s.dec.SampleRate) }
func (s *aiffSource) Channels() int   { return int(s.dec.NumChans) }
func (s *aiffSource) Close() error    { return nil }

func (s *aiffSource) ReadSamples(dst []float32) (int, error) {
	if s.buf == nil || len(s.buf.Data) != len(dst) {
		s.buf = &goaudio.IntBuffer{
			Format: &goaudio.Format{
				NumChannels: int(s.dec.NumChans),
				SampleRate:  int(s.dec.SampleRate),
			},
			Data:           make([]int, len(dst)),
			SourceBitDepth: int(s.dec.BitDepth),
		}
	}

	n, err := s.dec.PCMBuffer(s.buf)
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}

	for i := range n {
		dst[i] = float32(s.buf.Data[i]) * s.scale
	}
	return n, nil
}

// Decoder decodes AIFF streams into audio sources.
type Decoder struct{}

// Decode validates r as an AIFF stream and returns a Source over its
// sample data. AIFF stores signed PCM at 8, 16, 24 or 32 bits. When r
// is not seekable the whole stream is buffered in memory first.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := goaiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	bits := int(dec.BitDepth)
	switch bits {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d-bit", ErrUnsupportedFormat, bits)
	}
	if dec.SampleRate == 0 || dec.NumChans == 0 {
		return nil, ErrUnsupportedFormat
	}

	return &aiffSource{
		dec:   dec,
		scale: 1.0 / float32(int64(1)<<(bits-1)),
	}, nil
}
