// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams using github.com/hajimehoshi/go-mp3.
//
// The underlying decoder always produces interleaved stereo 16-bit PCM,
// so the returned audio.Source reports two channels even for mono
// input. The mono mixdown later in the conversion collapses that back
// without loss.
package mp3
