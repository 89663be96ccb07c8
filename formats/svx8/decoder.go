// SPDX-License-Identifier: EPL-2.0

package svx8

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
)

// Decode parses an 8SVX file produced by Encode and returns the voice
// header and the sample buffer.
//
// Validation is strict: the fixed 48-byte header region must be present,
// every chunk tag must match exactly and the VHDR size must be 20. The
// sample buffer is read using the recorded BODY size, so a trailing pad
// byte after an odd-length body is ignored. A structural violation is
// never repaired.
func Decode(data []byte) (VoiceHeader, []int8, error) {
	var hdr VoiceHeader

	if len(data) < HeaderBytes {
		return hdr, nil, ErrTruncated
	}
	if !bytes.Equal(data[0:4], []byte(formTag)) {
		return hdr, nil, ErrNotIFFForm
	}
	if !bytes.Equal(data[8:12], []byte(typeTag)) {
		return hdr, nil, ErrNot8SVX
	}
	if !bytes.Equal(data[12:16], []byte(vhdrTag)) {
		return hdr, nil, ErrBadVoiceHeader
	}
	if binary.BigEndian.Uint32(data[16:20]) != vhdrSize {
		return hdr, nil, ErrBadVoiceHeader
	}
	if !bytes.Equal(data[40:44], []byte(bodyTag)) {
		return hdr, nil, ErrBadBodyChunk
	}

	hdr.OneShotSamples = binary.BigEndian.Uint32(data[20:24])
	hdr.RepeatSamples = binary.BigEndian.Uint32(data[24:28])
	hdr.SamplesPerCycle = binary.BigEndian.Uint32(data[28:32])
	hdr.SampleRate = binary.BigEndian.Uint16(data[32:34])
	hdr.Octaves = data[34]
	hdr.Compression = data[35]
	hdr.Volume = binary.BigEndian.Uint32(data[36:40])

	bodySize := int(binary.BigEndian.Uint32(data[44:48]))
	if bodySize > len(data)-HeaderBytes {
		return hdr, nil, ErrBodyTruncated
	}

	samples := make([]int8, bodySize)
	for i, b := range data[HeaderBytes : HeaderBytes+bodySize] {
		samples[i] = int8(b)
	}

	return hdr, samples, nil
}

// FormSize returns the FORM size field of an encoded file. Provided for
// verifiers; for a well-formed file it equals len(data) - 8.
func FormSize(data []byte) (uint32, error) {
	if len(data) < 8 {
		return 0, ErrTruncated
	}
	return binary.BigEndian.Uint32(data[4:8]), nil
}

// DecodeFile reads and decodes an 8SVX file from disk.
func DecodeFile(path string) (VoiceHeader, []int8, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return VoiceHeader{}, nil, fmt.Errorf("reading 8SVX file: %w", err)
	}
	return Decode(data)
}
