// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// BufferSource serves an in-memory mono sample buffer as a Source. It is
// how buffered intermediate results re-enter a streaming pipeline, e.g.
// feeding a trimmed buffer to the Resampler.
type BufferSource struct {
	samples    []float32
	sampleRate int
	pos        int
}

func NewBufferSource(samples []float32, sampleRate int) *BufferSource {
	return &BufferSource{samples: samples, sampleRate: sampleRate}
}

func (b *BufferSource) SampleRate() int { return b.sampleRate }
func (b *BufferSource) Channels() int   { return 1 }
func (b *BufferSource) Close() error    { return nil }

func (b *BufferSource) ReadSamples(dst []float32) (int, error) {
	if b.pos >= len(b.samples) {
		return 0, io.EOF
	}

	n := copy(dst, b.samples[b.pos:])
	b.pos += n

	if b.pos >= len(b.samples) {
		return n, io.EOF
	}
	return n, nil
}
