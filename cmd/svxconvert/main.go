// SPDX-License-Identifier: EPL-2.0

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	sampleconvert "github.com/diemonster/amiga-sample-convert"
	"github.com/diemonster/amiga-sample-convert/engine"
	"github.com/diemonster/amiga-sample-convert/selftest"
)

var (
	inputPath    string
	outputPath   string
	targetRate   int
	normalizeOut bool
	gainDB       float64
	trimSilence  bool
	rcFilter     bool
	lowPassHz    float64
	noDither     bool
	estimateOnly bool
	runSelfTest  bool
	version      bool
)

func init() {
	flag.StringVar(&inputPath, "i", "", "Input audio file or directory (wav, aiff, mp3, ogg)")
	flag.StringVar(&outputPath, "o", "", "Output file, or output directory when converting a directory (defaults to the input name with an .8svx extension)")
	flag.IntVar(&targetRate, "r", 16726, "Target sample rate in Hz (max 65535)")
	flag.BoolVar(&normalizeOut, "normalize", false, "Normalize peak amplitude to full scale")
	flag.Float64Var(&gainDB, "gain", 0, "Apply a fixed gain in dB (ignored when -normalize is set)")
	flag.BoolVar(&trimSilence, "trim", false, "Trim leading and trailing silence below -48 dBFS")
	flag.BoolVar(&rcFilter, "rc-filter", false, "Apply the Amiga-style 3300 Hz low-pass filter")
	flag.Float64Var(&lowPassHz, "lowpass", 0, "Apply an extra low-pass at the given cutoff in Hz")
	flag.BoolVar(&noDither, "no-dither", false, "Truncate to 8 bits instead of dithering")
	flag.BoolVar(&estimateOnly, "estimate-only", false, "Print the estimated output size and exit")
	flag.BoolVar(&runSelfTest, "selftest", false, "Run the built-in conversion checks and exit")
	flag.BoolVar(&version, "version", false, "Display version information")
}

const VERSION = "1.0.0"

func main() {
	flag.Parse()

	if version {
		fmt.Printf("svxconvert version %s\n", VERSION)
		os.Exit(0)
	}

	if runSelfTest {
		report := selftest.Run(engine.NewPipeline())
		fmt.Print(report)
		if report.Failures() > 0 {
			os.Exit(1)
		}
		return
	}

	if inputPath == "" {
		fmt.Println("Error: Input file is required. Use -i to name one.")
		flag.Usage()
		os.Exit(1)
	}

	opts := sampleconvert.Options{
		TargetRate:  targetRate,
		TrimSilence: trimSilence,
		Normalize:   normalizeOut,
		GainDB:      gainDB,
		AmigaFilter: rcFilter,
		LowPassHz:   lowPassHz,
		NoDither:    noDither,
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "gain" {
			opts.SetGain = true
		}
	})

	info, err := os.Stat(inputPath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if info.IsDir() {
		processDirectory(inputPath, outputPath, opts)
		return
	}

	if estimateOnly {
		if err := printEstimate(inputPath, targetRate); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	out := outputPath
	if out == "" {
		stem := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		out = sampleconvert.UniqueOutputPath(stem + ".8svx")
	}

	if err := sampleconvert.ConvertFile(inputPath, out, engine.NewPipeline(), opts); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	written, err := os.Stat(out)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", out, written.Size())

	est := sampleconvert.Estimate{Samples: int(written.Size()), Bytes: int(written.Size())}
	if msg := est.Advisory(); msg != "" {
		fmt.Println(msg)
	}
}

// processDirectory converts every file with a known extension directly
// under dir, reporting per-file results and totals.
func processDirectory(dir, outDir string, opts sampleconvert.Options) {
	if outDir == "" {
		outDir = dir
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	converted, failed := 0, 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		in := filepath.Join(dir, entry.Name())
		if _, err := sampleconvert.DecoderFor(in); err != nil {
			continue
		}

		stem := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		out := sampleconvert.UniqueOutputPath(filepath.Join(outDir, stem+".8svx"))

		if err := sampleconvert.ConvertFile(in, out, engine.NewPipeline(), opts); err != nil {
			fmt.Printf("failed  %s: %v\n", entry.Name(), err)
			failed++
			continue
		}
		fmt.Printf("wrote   %s\n", out)
		converted++
	}

	fmt.Printf("\nConverted %d file(s), %d failure(s) in %v\n",
		converted, failed, time.Since(start).Round(time.Millisecond))
	if failed > 0 {
		os.Exit(1)
	}
}

// printEstimate decodes just enough of the input to count its frames,
// then prints the predicted output size without converting anything.
func printEstimate(path string, rate int) error {
	d, err := sampleconvert.DecoderFor(path)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	src, err := d.Decode(f)
	if err != nil {
		return err
	}
	defer src.Close()

	frames := 0
	buf := make([]float32, 4096)
	for {
		n, err := src.ReadSamples(buf)
		frames += n / src.Channels()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}

	est := sampleconvert.EstimateSize(frames, src.SampleRate(), rate)
	fmt.Printf("%d source frames at %d Hz -> %d samples (%d bytes) at %d Hz\n",
		frames, src.SampleRate(), est.Samples, est.Bytes, rate)
	if msg := est.Advisory(); msg != "" {
		fmt.Println(msg)
	}
	return nil
}
