// SPDX-License-Identifier: EPL-2.0

package svx8

import (
	"encoding/binary"
	"fmt"
	"os"
)

// Encode builds a complete 8SVX file for a mono signed 8-bit sample buffer.
//
// The BODY chunk records len(samples) as its size; when that is odd a
// single zero pad byte follows so every chunk starts on an even boundary,
// but the pad is not counted in the size field. rate is written as-is:
// range sanity is the caller's responsibility.
func Encode(samples []int8, rate uint16) []byte {
	bodySize := len(samples)
	pad := bodySize & 1

	// formSize covers everything after the FORM tag and its own size field.
	formSize := 4 + (8 + vhdrSize) + 8 + bodySize + pad

	out := make([]byte, HeaderBytes+bodySize+pad)

	copy(out[0:4], formTag)
	binary.BigEndian.PutUint32(out[4:8], uint32(formSize))
	copy(out[8:12], typeTag)

	// VHDR chunk
	copy(out[12:16], vhdrTag)
	binary.BigEndian.PutUint32(out[16:20], vhdrSize)
	binary.BigEndian.PutUint32(out[20:24], uint32(bodySize)) // oneShotHiSamples
	binary.BigEndian.PutUint32(out[24:28], 0)                // repeatHiSamples
	binary.BigEndian.PutUint32(out[28:32], 0)                // samplesPerHiCycle
	binary.BigEndian.PutUint16(out[32:34], rate)
	out[34] = 1 // ctOctave
	out[35] = 0 // sCompression
	binary.BigEndian.PutUint32(out[36:40], UnityVolume)

	// BODY chunk
	copy(out[40:44], bodyTag)
	binary.BigEndian.PutUint32(out[44:48], uint32(bodySize))
	for i, s := range samples {
		out[HeaderBytes+i] = byte(s)
	}
	// out is zero-initialized, so the pad byte (if any) is already 0.

	return out
}

// EncodeToFile encodes samples and writes the result to path in one shot.
func EncodeToFile(path string, samples []int8, rate uint16) error {
	if err := os.WriteFile(path, Encode(samples, rate), 0644); err != nil {
		return fmt.Errorf("writing 8SVX file: %w", err)
	}
	return nil
}
