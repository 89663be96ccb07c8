// SPDX-License-Identifier: EPL-2.0

package svx8

// Chunk identifiers, 4 ASCII bytes each.
const (
	formTag = "FORM"
	typeTag = "8SVX"
	vhdrTag = "VHDR"
	bodyTag = "BODY"
)

const (
	// vhdrSize is the VHDR payload size. Fixed regardless of content.
	vhdrSize = 20

	// HeaderBytes is the size of everything before the BODY sample data:
	// FORM header (12) + VHDR chunk (8+20) + BODY chunk header (8).
	HeaderBytes = 48

	// UnityVolume is 1.0 in the 16.16 fixed-point scale VHDR uses.
	UnityVolume = 0x00010000
)

// VoiceHeader is the decoded VHDR payload.
//
// The writer always emits zero loop fields, a single octave, no
// compression and unity volume; the reader reports whatever the file
// carries so a verifier can inspect it.
type VoiceHeader struct {
	OneShotSamples  uint32 // sample count of the one-shot (non-looping) part
	RepeatSamples   uint32 // loop length, always 0 here
	SamplesPerCycle uint32 // loop cycle length, always 0 here
	SampleRate      uint16 // playback rate in Hz
	Octaves         uint8  // number of octaves stored, always 1 here
	Compression     uint8  // 0 = uncompressed PCM
	Volume          uint32 // playback volume, 16.16 fixed point
}
