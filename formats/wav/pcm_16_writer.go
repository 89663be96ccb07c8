// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

const wavHeaderSize = 44

// WriteWAV16 writes samples as a mono 16-bit PCM WAV at sampleRate.
// Used mostly to produce fixtures for exercising the conversion path.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	dataSize := uint32(len(samples) * 2)

	header := make([]byte, wavHeaderSize)
	le := binary.LittleEndian

	copy(header[0:4], "RIFF")
	le.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	le.PutUint32(header[16:20], 16)                // PCM fmt chunk size
	le.PutUint16(header[20:22], 1)                 // PCM
	le.PutUint16(header[22:24], 1)                 // mono
	le.PutUint32(header[24:28], uint32(sampleRate))
	le.PutUint32(header[28:32], uint32(sampleRate)*2) // byte rate
	le.PutUint16(header[32:34], 2)                    // block align
	le.PutUint16(header[34:36], 16)

	copy(header[36:40], "data")
	le.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing WAV header: %w", err)
	}

	// Write the body in bounded chunks so large sample sets don't need
	// a full-size scratch buffer.
	const chunkFrames = 8192
	buf := make([]byte, min(len(samples), chunkFrames)*2)
	for start := 0; start < len(samples); start += chunkFrames {
		chunk := samples[start:min(start+chunkFrames, len(samples))]
		for i, s := range chunk {
			le.PutUint16(buf[2*i:], uint16(s))
		}
		if _, err := w.Write(buf[:len(chunk)*2]); err != nil {
			return fmt.Errorf("writing WAV data: %w", err)
		}
	}
	return nil
}
