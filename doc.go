// SPDX-License-Identifier: EPL-2.0

// Package sampleconvert converts digital audio into Amiga 8SVX samples.
//
// The package ties together the format decoders under formats/, the
// processing plan builder in plan, the audio engine in engine and the
// 8SVX container writer in formats/svx8. A typical conversion decodes a
// source file to a float32 stream, plans the processing stages for the
// requested target, runs them through an engine and writes the 8-bit
// result as an IFF FORM 8SVX file.
//
// # Quick Start
//
//	eng := engine.NewPipeline()
//	err := sampleconvert.ConvertFile("kick.wav", "kick.8svx", eng, sampleconvert.Options{
//		TargetRate: 16726,
//		Normalize:  true,
//	})
//
// # Supported Inputs
//
//   - WAV (PCM 8/16/24-bit) via formats/wav
//   - AIFF via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//
// Output is always mono, signed 8-bit, one octave, uncompressed.
package sampleconvert
