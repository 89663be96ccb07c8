// SPDX-License-Identifier: EPL-2.0

package sampleconvert

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/diemonster/amiga-sample-convert/engine"
	"github.com/diemonster/amiga-sample-convert/formats/svx8"
	"github.com/diemonster/amiga-sample-convert/formats/wav"
	"github.com/diemonster/amiga-sample-convert/internal/audiotest"
	"github.com/diemonster/amiga-sample-convert/plan"
)

func TestConvert(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(16726, 1, 100, 0.5)
	eng := audiotest.NewFakeEngine()

	out, err := Convert(src, eng, Options{TargetRate: 16726, NoDither: true})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if len(out) != 100 {
		t.Fatalf("got %d samples, want 100", len(out))
	}
	for i, s := range out {
		if s != 63 { // 0.5 * 127, truncated
			t.Fatalf("out[%d] = %d, want 63", i, s)
		}
	}
}

func TestConvert_PassesPlanToEngine(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(44100, 2, 1000, 440)
	eng := audiotest.NewFakeEngine()

	if _, err := Convert(src, eng, Options{TargetRate: 16726, Normalize: true}); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	want := []plan.StageKind{plan.StageMixdown, plan.StageNormalize, plan.StageResample, plan.StageDither}
	if len(eng.LastStages) != len(want) {
		t.Fatalf("engine saw %d stages, want %d", len(eng.LastStages), len(want))
	}
	for i, k := range want {
		if eng.LastStages[i].Kind != k {
			t.Errorf("stage %d = %q, want %q", i, eng.LastStages[i].Kind, k)
		}
	}
}

func TestConvert_InvalidOptions(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(44100, 1, 100)
	_, err := Convert(src, audiotest.NewFakeEngine(), Options{})
	if !errors.Is(err, plan.ErrZeroTargetRate) {
		t.Errorf("Convert() error = %v, want ErrZeroTargetRate", err)
	}
}

func TestConvert_EngineFailure(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(44100, 1, 100)
	eng := audiotest.NewFakeEngine()
	eng.Fail = errors.New("engine broke")

	_, err := Convert(src, eng, Options{TargetRate: 16726})
	if !errors.Is(err, eng.Fail) {
		t.Errorf("Convert() error = %v, want the engine's error", err)
	}
}

func TestConvertFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	inPath := filepath.Join(dir, "tone.wav")
	outPath := filepath.Join(dir, "tone.8svx")

	writeWAVFixture(t, inPath, 44100, 4410)

	err := ConvertFile(inPath, outPath, engine.NewPipeline(), Options{TargetRate: 16726})
	if err != nil {
		t.Fatalf("ConvertFile() error = %v", err)
	}

	hdr, samples, err := svx8.DecodeFile(outPath)
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if hdr.SampleRate != 16726 {
		t.Errorf("output rate = %d, want 16726", hdr.SampleRate)
	}
	// 0.1 s in, 0.1 s out, within resampler edge losses.
	if len(samples) < 1500 || len(samples) > 1750 {
		t.Errorf("got %d samples, want ≈1672", len(samples))
	}
}

func TestConvertFile_UnknownExtension(t *testing.T) {
	t.Parallel()

	err := ConvertFile("input.flac", "out.8svx", audiotest.NewFakeEngine(), Options{TargetRate: 16726})
	if !errors.Is(err, ErrNoDecoder) {
		t.Errorf("ConvertFile() error = %v, want ErrNoDecoder", err)
	}
}

func TestConvertFile_MissingInput(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope.wav")
	err := ConvertFile(missing, "out.8svx", audiotest.NewFakeEngine(), Options{TargetRate: 16726})
	if err == nil {
		t.Fatal("ConvertFile() succeeded on a missing file")
	}
}

func TestDecoderFor(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"a.wav", "b.WAV", "c.aiff", "d.aif", "e.mp3", "f.ogg"} {
		if _, err := DecoderFor(name); err != nil {
			t.Errorf("DecoderFor(%q) error = %v", name, err)
		}
	}

	if _, err := DecoderFor("song.flac"); !errors.Is(err, ErrNoDecoder) {
		t.Errorf("DecoderFor(flac) error = %v, want ErrNoDecoder", err)
	}
}

func TestUniqueOutputPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "drum.8svx")

	if got := UniqueOutputPath(path); got != path {
		t.Errorf("free path changed: %q", got)
	}

	touch(t, path)
	first := UniqueOutputPath(path)
	if want := filepath.Join(dir, "drum_1.8svx"); first != want {
		t.Errorf("UniqueOutputPath() = %q, want %q", first, want)
	}

	touch(t, first)
	if got, want := UniqueOutputPath(path), filepath.Join(dir, "drum_2.8svx"); got != want {
		t.Errorf("UniqueOutputPath() = %q, want %q", got, want)
	}
}

func writeWAVFixture(t *testing.T, path string, rate, samples int) {
	t.Helper()

	pcm := make([]int16, samples)
	src := audiotest.NewSineSource(rate, 1, samples, 440)
	buf := make([]float32, samples)
	if _, err := src.ReadSamples(buf); err != nil && !errors.Is(err, io.EOF) {
		t.Fatalf("generating fixture: %v", err)
	}
	for i, x := range buf {
		pcm[i] = int16(x * 32767)
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating fixture: %v", err)
	}
	defer f.Close()
	if err := wav.WriteWAV16(f, rate, pcm); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
}
