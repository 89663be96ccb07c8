// SPDX-License-Identifier: EPL-2.0

// Package selftest checks a conversion engine and the 8SVX container
// code against synthetic signals. Every check runs regardless of
// earlier failures; the report carries one entry per check so a broken
// build shows everything that is wrong at once.
package selftest

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	sampleconvert "github.com/diemonster/amiga-sample-convert"
	"github.com/diemonster/amiga-sample-convert/engine"
	"github.com/diemonster/amiga-sample-convert/formats/svx8"
)

// Check is one named assertion. Err is nil when it passed.
type Check struct {
	Name string
	Err  error
}

// Report is the outcome of a full oracle run.
type Report struct {
	Checks []Check
}

// Failures counts the checks that did not pass.
func (r Report) Failures() int {
	n := 0
	for _, c := range r.Checks {
		if c.Err != nil {
			n++
		}
	}
	return n
}

func (r Report) String() string {
	var b strings.Builder
	for _, c := range r.Checks {
		if c.Err != nil {
			fmt.Fprintf(&b, "FAIL %s: %v\n", c.Name, c.Err)
		} else {
			fmt.Fprintf(&b, "ok   %s\n", c.Name)
		}
	}
	fmt.Fprintf(&b, "%d of %d checks failed\n", r.Failures(), len(r.Checks))
	return b.String()
}

const (
	testRate   = 16726
	sourceRate = 44100
	toneHz     = 440
)

// Run converts synthetic signals through eng and verifies the results
// against the container contract. Checks accumulate; a failure never
// stops the remaining checks.
func Run(eng engine.Engine) Report {
	var r Report
	add := func(name string, err error) {
		r.Checks = append(r.Checks, Check{Name: name, Err: err})
	}

	add("round-trip structure", checkRoundTripStructure(eng))
	add("target rate stored", checkTargetRate(eng))
	add("sample count near expected", checkSampleCount(eng))
	add("form size is file size minus 8", checkFormSize())
	add("odd body gets one pad byte", checkOddPadding())
	add("even body gets no pad byte", checkEvenPadding())
	add("normalize raises an attenuated peak", checkNormalize(eng))
	add("silence stays within one step", checkSilenceFloor(eng))
	add("awkward file names still encode", checkAwkwardName())

	return r
}

func convertTone(eng engine.Engine, channels int, amplitude float64, opts sampleconvert.Options) ([]int8, error) {
	src := newTone(sourceRate, channels, sourceRate/20, toneHz, amplitude) // 0.05 s
	return sampleconvert.Convert(src, eng, opts)
}

// checkRoundTripStructure encodes a converted tone and decodes it
// again, verifying every header field the format fixes.
func checkRoundTripStructure(eng engine.Engine) error {
	samples, err := convertTone(eng, 2, 0.8, sampleconvert.Options{TargetRate: testRate})
	if err != nil {
		return err
	}

	hdr, decoded, err := svx8.Decode(svx8.Encode(samples, testRate))
	if err != nil {
		return err
	}

	switch {
	case hdr.OneShotSamples != uint32(len(samples)):
		return fmt.Errorf("one-shot count = %d, want %d", hdr.OneShotSamples, len(samples))
	case hdr.RepeatSamples != 0:
		return fmt.Errorf("repeat count = %d, want 0", hdr.RepeatSamples)
	case hdr.SamplesPerCycle != 0:
		return fmt.Errorf("samples per cycle = %d, want 0", hdr.SamplesPerCycle)
	case hdr.Octaves != 1:
		return fmt.Errorf("octaves = %d, want 1", hdr.Octaves)
	case hdr.Compression != 0:
		return fmt.Errorf("compression = %d, want 0", hdr.Compression)
	case hdr.Volume != svx8.UnityVolume:
		return fmt.Errorf("volume = %#x, want %#x", hdr.Volume, svx8.UnityVolume)
	case len(decoded) != len(samples):
		return fmt.Errorf("decoded %d samples, want %d", len(decoded), len(samples))
	}
	for i := range samples {
		if decoded[i] != samples[i] {
			return fmt.Errorf("sample %d changed from %d to %d in transit", i, samples[i], decoded[i])
		}
	}
	return nil
}

// checkTargetRate runs the rates Paula playback periods actually land
// on and expects each stored verbatim.
func checkTargetRate(eng engine.Engine) error {
	for _, rate := range []int{8363, 16726, 22050} {
		samples, err := convertTone(eng, 1, 0.8, sampleconvert.Options{TargetRate: rate})
		if err != nil {
			return fmt.Errorf("%d Hz: %w", rate, err)
		}
		hdr, _, err := svx8.Decode(svx8.Encode(samples, uint16(rate)))
		if err != nil {
			return fmt.Errorf("%d Hz: %w", rate, err)
		}
		if int(hdr.SampleRate) != rate {
			return fmt.Errorf("stored rate = %d, want %d", hdr.SampleRate, rate)
		}
	}
	return nil
}

// checkSampleCount converts a known-duration tone and expects the
// output length within ±10% of the analytic count.
func checkSampleCount(eng engine.Engine) error {
	samples, err := convertTone(eng, 1, 0.8, sampleconvert.Options{TargetRate: testRate, NoDither: true})
	if err != nil {
		return err
	}

	want := sampleconvert.EstimateSize(sourceRate/20, sourceRate, testRate).Samples
	lo, hi := want*9/10, want*11/10
	if len(samples) < lo || len(samples) > hi {
		return fmt.Errorf("got %d samples, want within %d..%d", len(samples), lo, hi)
	}
	return nil
}

func checkFormSize() error {
	for _, n := range []int{0, 1, 100, 127, 128} {
		data := svx8.Encode(make([]int8, n), testRate)
		formSize, err := svx8.FormSize(data)
		if err != nil {
			return err
		}
		if int(formSize) != len(data)-8 {
			return fmt.Errorf("%d samples: form size = %d, file size - 8 = %d", n, formSize, len(data)-8)
		}
	}
	return nil
}

func checkOddPadding() error {
	data := svx8.Encode(make([]int8, 127), testRate)
	if len(data) != svx8.HeaderBytes+127+1 {
		return fmt.Errorf("file size = %d, want %d", len(data), svx8.HeaderBytes+128)
	}
	if data[len(data)-1] != 0 {
		return errors.New("pad byte is not zero")
	}
	return nil
}

func checkEvenPadding() error {
	data := svx8.Encode(make([]int8, 128), testRate)
	if len(data) != svx8.HeaderBytes+128 {
		return fmt.Errorf("file size = %d, want %d", len(data), svx8.HeaderBytes+128)
	}
	return nil
}

// checkNormalize converts a deliberately quiet tone twice and expects
// normalization to push the peak near full scale.
func checkNormalize(eng engine.Engine) error {
	quiet, err := convertTone(eng, 1, 0.2, sampleconvert.Options{TargetRate: testRate, NoDither: true})
	if err != nil {
		return err
	}
	boosted, err := convertTone(eng, 1, 0.2, sampleconvert.Options{TargetRate: testRate, Normalize: true, NoDither: true})
	if err != nil {
		return err
	}

	qp, bp := peak(quiet), peak(boosted)
	if bp <= qp {
		return fmt.Errorf("normalized peak %d did not exceed raw peak %d", bp, qp)
	}
	if bp < 100 {
		return fmt.Errorf("normalized peak = %d, want at least 100", bp)
	}
	return nil
}

func checkSilenceFloor(eng engine.Engine) error {
	src := newTone(testRate, 1, 2000, toneHz, 0)
	samples, err := sampleconvert.Convert(src, eng, sampleconvert.Options{TargetRate: testRate})
	if err != nil {
		return err
	}
	if p := peak(samples); p > 1 {
		return fmt.Errorf("silent input peaked at %d, want at most 1", p)
	}
	return nil
}

// checkAwkwardName encodes under a deliberately unpleasant file name;
// naming policy is the caller's business, the container must not care.
func checkAwkwardName() error {
	dir, err := os.MkdirTemp("", "svx-selftest-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	name := "a name with spaces and an unreasonable  amount of padding in it.8svx"
	path := filepath.Join(dir, name)
	if err := svx8.EncodeToFile(path, make([]int8, 99), testRate); err != nil {
		return err
	}

	hdr, samples, err := svx8.DecodeFile(path)
	if err != nil {
		return err
	}
	if hdr.OneShotSamples != 99 || len(samples) != 99 {
		return fmt.Errorf("decoded %d samples, want 99", len(samples))
	}
	return nil
}

func peak(samples []int8) int {
	p := 0
	for _, s := range samples {
		v := int(s)
		if v < 0 {
			v = -v
		}
		if v > p {
			p = v
		}
	}
	return p
}

// toneSource generates a sine tone without touching the decoders, so
// the oracle only depends on the parts it is checking.
type toneSource struct {
	rate      int
	channels  int
	total     int
	generated int
	freq      float64
	amp       float64
}

func newTone(rate, channels, total int, freq, amp float64) *toneSource {
	return &toneSource{rate: rate, channels: channels, total: total, freq: freq, amp: amp}
}

func (s *toneSource) SampleRate() int { return s.rate }
func (s *toneSource) Channels() int   { return s.channels }
func (s *toneSource) Close() error    { return nil }

func (s *toneSource) ReadSamples(dst []float32) (int, error) {
	if s.generated >= s.total {
		return 0, io.EOF
	}

	frames := len(dst) / s.channels
	if remaining := s.total - s.generated; frames > remaining {
		frames = remaining
	}

	for f := range frames {
		t := float64(s.generated+f) / float64(s.rate)
		v := float32(s.amp * math.Sin(2*math.Pi*s.freq*t))
		for c := range s.channels {
			dst[f*s.channels+c] = v
		}
	}
	s.generated += frames

	if s.generated >= s.total {
		return frames * s.channels, io.EOF
	}
	return frames * s.channels, nil
}
