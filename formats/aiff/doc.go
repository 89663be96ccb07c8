// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF audio files.
//
// Decoding is built on github.com/go-audio/aiff and accepts signed PCM
// at 8, 16, 24 and 32 bits. The Decoder returns an audio.Source
// streaming float32 samples in [-1, 1]. AIFF is the native sample
// interchange format on the classic Mac side of the tracker world, so
// sources in this format come up often.
package aiff
