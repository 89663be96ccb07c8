// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/diemonster/amiga-sample-convert/audio"
)

type wavSource struct {
	dec    *gowav.Decoder
	buf    *goaudio.IntBuffer
	scale  float32
	offset int // 8-bit WAV stores unsigned samples
}

func (s *wavSource) SampleRate() int { return int(s.dec.SampleRate) }
func (s *wavSource) Channels() int   { return int(s.dec.NumChans) }
func (s *wavSource) Close() error    { return nil }

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
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
		dst[i] = float32(s.buf.Data[i]-s.offset) * s.scale
	}
	return n, nil
}

// Decoder decodes PCM WAV streams into audio sources.
type Decoder struct{}

// Decode validates r as a WAV stream and returns a Source over its PCM
// data. 8, 16, 24 and 32-bit PCM are accepted; compressed variants are
// not. When r is not seekable the whole stream is buffered in memory
// first.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	if dec.WavAudioFormat != 1 {
		return nil, ErrUnsupportedFormat
	}

	bits := int(dec.BitDepth)
	switch bits {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d-bit", ErrUnsupportedFormat, bits)
	}

	src := &wavSource{
		dec:   dec,
		scale: 1.0 / float32(int64(1)<<(bits-1)),
	}
	if bits == 8 {
		src.offset = 128
	}
	return src, nil
}
