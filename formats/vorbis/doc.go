// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams using
// github.com/jfreymuth/oggvorbis. The library already produces
// interleaved float32 samples, so the Source here is a thin shim.
package vorbis
