// SPDX-License-Identifier: EPL-2.0

package plan

import "fmt"

// StageKind names one signal-processing operation.
type StageKind string

const (
	StageMixdown     StageKind = "mixdown"
	StageTrimSilence StageKind = "trim-silence"
	StageGain        StageKind = "gain"
	StageNormalize   StageKind = "normalize"
	StageResample    StageKind = "resample"
	StageLowPass     StageKind = "lowpass"
	StageDither      StageKind = "dither"
	StageTruncate    StageKind = "truncate"
)

// Fixed stage parameters.
const (
	// TrimThresholdDB is the silence threshold applied symmetrically to
	// leading and trailing samples.
	TrimThresholdDB = -48.0

	// AmigaCutoffHz approximates the fixed RC low-pass filter on classic
	// Amiga audio output.
	AmigaCutoffHz = 3300.0

	// TargetBits is the output bit depth of every plan.
	TargetBits = 8

	// MaxRate is the highest rate the 16-bit container header can record.
	MaxRate = 65535
)

// Stage is one operation in an ordered conversion plan. Kind selects the
// operation; the numeric fields only carry meaning for the kinds that use
// them (ThresholdDB for trim, GainDB for gain, TargetRate for resample,
// CutoffHz for lowpass, Bits for dither/truncate).
type Stage struct {
	Kind        StageKind
	ThresholdDB float64
	GainDB      float64
	TargetRate  int
	CutoffHz    float64
	Bits        int
}

func (s Stage) String() string {
	switch s.Kind {
	case StageTrimSilence:
		return fmt.Sprintf("%s(%g dBFS)", s.Kind, s.ThresholdDB)
	case StageGain:
		return fmt.Sprintf("%s(%+g dB)", s.Kind, s.GainDB)
	case StageResample:
		return fmt.Sprintf("%s(%d Hz)", s.Kind, s.TargetRate)
	case StageLowPass:
		return fmt.Sprintf("%s(%g Hz)", s.Kind, s.CutoffHz)
	case StageDither, StageTruncate:
		return fmt.Sprintf("%s(%d bit)", s.Kind, s.Bits)
	default:
		return string(s.Kind)
	}
}

// Config describes one conversion. Zero values mean "not requested";
// GainDB needs SetGain because 0 dB is a meaningful adjustment.
type Config struct {
	SourceRate     int
	SourceChannels int
	TargetRate     int

	TrimSilence bool
	Normalize   bool // wins over GainDB when both are set
	GainDB      float64
	SetGain     bool

	AmigaFilter bool    // fixed 3300 Hz low-pass
	LowPassHz   float64 // manual cutoff, 0 = not requested; stacks with AmigaFilter

	NoDither bool // truncate instead of TPDF dithering
}

// Build validates cfg and produces the ordered stage sequence for it.
// The order is never affected by configuration; see the package comment
// for why each position is fixed.
func Build(cfg Config) ([]Stage, error) {
	if cfg.SourceRate <= 0 {
		return nil, ErrZeroSourceRate
	}
	if cfg.SourceChannels <= 0 {
		return nil, ErrNoChannels
	}
	if cfg.TargetRate <= 0 {
		return nil, ErrZeroTargetRate
	}
	if cfg.TargetRate > MaxRate {
		return nil, ErrTargetRateRange
	}
	if cfg.LowPassHz < 0 {
		return nil, ErrNegativeCutoff
	}

	var stages []Stage

	if cfg.SourceChannels > 1 {
		stages = append(stages, Stage{Kind: StageMixdown})
	}

	if cfg.TrimSilence {
		stages = append(stages, Stage{Kind: StageTrimSilence, ThresholdDB: TrimThresholdDB})
	}

	switch {
	case cfg.Normalize:
		stages = append(stages, Stage{Kind: StageNormalize})
	case cfg.SetGain:
		stages = append(stages, Stage{Kind: StageGain, GainDB: cfg.GainDB})
	}

	if cfg.TargetRate != cfg.SourceRate {
		stages = append(stages, Stage{Kind: StageResample, TargetRate: cfg.TargetRate})
	}

	if cfg.AmigaFilter {
		stages = append(stages, Stage{Kind: StageLowPass, CutoffHz: AmigaCutoffHz})
	}
	if cfg.LowPassHz > 0 {
		stages = append(stages, Stage{Kind: StageLowPass, CutoffHz: cfg.LowPassHz})
	}

	if cfg.NoDither {
		stages = append(stages, Stage{Kind: StageTruncate, Bits: TargetBits})
	} else {
		stages = append(stages, Stage{Kind: StageDither, Bits: TargetBits})
	}

	return stages, nil
}
