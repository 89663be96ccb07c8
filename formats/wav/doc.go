// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and writes PCM WAV files.
//
// Decoding is built on github.com/go-audio/wav and accepts 8, 16, 24
// and 32-bit PCM at any rate and channel count. The Decoder returns an
// audio.Source streaming float32 samples in [-1, 1].
//
// WriteWAV16 writes mono 16-bit PCM and exists mainly to produce test
// fixtures for the conversion path.
package wav
