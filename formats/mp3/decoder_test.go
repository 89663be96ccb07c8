// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"
)

// fakeReader serves canned 16-bit little-endian PCM the way
// gomp3.Decoder does.
type fakeReader struct {
	data []byte
	pos  int
	rate int
}

func newFakeReader(rate int, samples []int16) *fakeReader {
	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[2*i:], uint16(s))
	}
	return &fakeReader{data: data, rate: rate}
}

func (f *fakeReader) SampleRate() int { return f.rate }

func (f *fakeReader) Read(p []byte) (int, error) {
	if f.pos >= len(f.data) {
		return 0, io.EOF
	}
	n := copy(p, f.data[f.pos:])
	f.pos += n
	return n, nil
}

func TestReadSamples_ConvertsPCM(t *testing.T) {
	t.Parallel()

	src := &mp3Source{dec: newFakeReader(44100, []int16{0, 16384, -16384, -32768})}

	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() n = %d, want 4", n)
	}

	for i, want := range []float32{0, 0.5, -0.5, -1} {
		diff := dst[i] - want
		if diff < -0.0001 || diff > 0.0001 {
			t.Errorf("dst[%d] = %v, want ≈%v", i, dst[i], want)
		}
	}
}

func TestReadSamples_Metadata(t *testing.T) {
	t.Parallel()

	src := &mp3Source{dec: newFakeReader(32000, nil)}
	if src.SampleRate() != 32000 {
		t.Errorf("SampleRate() = %d, want 32000", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
}

func TestReadSamples_EOF(t *testing.T) {
	t.Parallel()

	src := &mp3Source{dec: newFakeReader(44100, []int16{1, 2})}

	dst := make([]float32, 8)
	if n, _ := src.ReadSamples(dst); n != 2 {
		t.Fatalf("first read n = %d, want 2", n)
	}
	if _, err := src.ReadSamples(dst); err != io.EOF {
		t.Errorf("second read error = %v, want io.EOF", err)
	}
}

func TestDecode_NotMP3(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte("definitely not an mpeg stream"))); err == nil {
		t.Error("Decode() succeeded on garbage input")
	}
}
