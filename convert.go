// SPDX-License-Identifier: EPL-2.0

package sampleconvert

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diemonster/amiga-sample-convert/audio"
	"github.com/diemonster/amiga-sample-convert/engine"
	"github.com/diemonster/amiga-sample-convert/formats/aiff"
	"github.com/diemonster/amiga-sample-convert/formats/mp3"
	"github.com/diemonster/amiga-sample-convert/formats/svx8"
	"github.com/diemonster/amiga-sample-convert/formats/vorbis"
	"github.com/diemonster/amiga-sample-convert/formats/wav"
	"github.com/diemonster/amiga-sample-convert/plan"
)

// ErrNoDecoder is returned when no registered decoder matches the input
// file's extension.
var ErrNoDecoder = errors.New("no decoder for file extension")

// Options selects the processing applied during a conversion. The zero
// value is not usable; TargetRate must be set.
type Options struct {
	// TargetRate is the output sample rate in Hz. Must be 1..65535 so it
	// fits the 8SVX voice header.
	TargetRate int

	// TrimSilence strips leading and trailing silence below -48 dBFS.
	TrimSilence bool

	// Normalize scales the signal so its peak hits full scale. Takes
	// precedence over GainDB when both are set.
	Normalize bool

	// GainDB applies a fixed gain. Only honored when SetGain is true, so
	// an explicit 0 dB stage can be requested.
	GainDB  float64
	SetGain bool

	// AmigaFilter applies the fixed 3300 Hz hardware-style low-pass.
	AmigaFilter bool

	// LowPassHz applies an additional low-pass at the given cutoff. It
	// stacks with AmigaFilter when both are set.
	LowPassHz float64

	// NoDither truncates to 8 bits instead of dithering.
	NoDither bool
}

func (o Options) planConfig(src audio.Source) plan.Config {
	return plan.Config{
		SourceRate:     src.SampleRate(),
		SourceChannels: src.Channels(),
		TargetRate:     o.TargetRate,
		TrimSilence:    o.TrimSilence,
		Normalize:      o.Normalize,
		GainDB:         o.GainDB,
		SetGain:        o.SetGain,
		AmigaFilter:    o.AmigaFilter,
		LowPassHz:      o.LowPassHz,
		NoDither:       o.NoDither,
	}
}

// Convert plans the processing stages for src under opts and runs them
// through eng, returning the finished 8-bit mono sample buffer.
func Convert(src audio.Source, eng engine.Engine, opts Options) ([]int8, error) {
	stages, err := plan.Build(opts.planConfig(src))
	if err != nil {
		return nil, err
	}
	return eng.Process(stages, src)
}

// ConvertFile decodes inPath, converts it under opts using eng and
// writes the result to outPath as an 8SVX file.
func ConvertFile(inPath, outPath string, eng engine.Engine, opts Options) error {
	d, err := DecoderFor(inPath)
	if err != nil {
		return err
	}

	f, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	src, err := d.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", filepath.Base(inPath), err)
	}
	defer src.Close()

	samples, err := Convert(src, eng, opts)
	if err != nil {
		return err
	}

	return svx8.EncodeToFile(outPath, samples, uint16(opts.TargetRate))
}

// NewRegistry returns a registry with every built-in decoder registered
// under its usual file extensions.
func NewRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	return r
}

// DecoderFor picks a decoder for path by its extension.
func DecoderFor(path string) (audio.Decoder, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	d, ok := NewRegistry().Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoDecoder, ext)
	}
	return d, nil
}

// UniqueOutputPath returns path if nothing exists there, otherwise the
// first "name_N.ext" variant that is free. Callers batching conversions
// concurrently must serialize around this, since it only observes what
// is already on disk.
func UniqueOutputPath(path string) string {
	if _, err := os.Stat(path); err != nil {
		return path
	}

	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, n, ext)
		if _, err := os.Stat(candidate); err != nil {
			return candidate
		}
	}
}
