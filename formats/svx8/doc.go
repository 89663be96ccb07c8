// SPDX-License-Identifier: EPL-2.0

// Package svx8 reads and writes IFF FORM 8SVX sound files, the sample
// container used by Amiga trackers and sound hardware.
//
// An 8SVX file is a chunked big-endian document:
//
//	"FORM" formSize "8SVX"
//	  "VHDR" 20  Voice8Header fields
//	  "BODY" n   raw signed 8-bit mono PCM, zero-padded to even length
//
// The writer produces exactly one VHDR chunk followed by exactly one BODY
// chunk. Loop fields are always zero (one-shot samples only), compression
// is always 0 (uncompressed) and volume is fixed at unity.
//
// Encoding:
//
//	data := svx8.Encode(samples, 16726)
//	err := svx8.EncodeToFile("bass.8svx", samples, 16726)
//
// Decoding (used for verification; playback is someone else's job):
//
//	hdr, samples, err := svx8.Decode(data)
//
// Decode validates the chunk structure strictly and never repairs a
// malformed file. The BODY is read using the recorded chunk size, so the
// optional trailing pad byte is never mistaken for sample data.
package svx8
