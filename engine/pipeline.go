// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"
	"math/rand/v2"

	"github.com/diemonster/amiga-sample-convert/audio"
	"github.com/diemonster/amiga-sample-convert/plan"
	"github.com/diemonster/amiga-sample-convert/utils"
)

// Pipeline is the built-in Engine. Mixdown and resampling run as
// streaming stages; trimming, gain, normalization and filtering operate
// on the collected buffer, since they need to see the whole signal (the
// peak for normalization, both ends for trimming).
type Pipeline struct {
	rng *rand.Rand
}

// NewPipeline returns a Pipeline with a fixed dither noise seed, so
// converting the same input twice produces identical bytes.
func NewPipeline() *Pipeline {
	return NewPipelineSeeded(0x8577c0de)
}

// NewPipelineSeeded returns a Pipeline whose dither noise derives from
// seed.
func NewPipelineSeeded(seed uint64) *Pipeline {
	return &Pipeline{rng: rand.New(rand.NewPCG(seed, seed^0xa5a5a5a5))}
}

// Process runs stages in order over src. The stage list is trusted to be
// well-formed in the way plan.Build guarantees: mixdown first when
// present, quantization last.
func (p *Pipeline) Process(stages []plan.Stage, src audio.Source) ([]int8, error) {
	cur := src
	next := 0
	if len(stages) > 0 && stages[0].Kind == plan.StageMixdown {
		cur = audio.NewMonoMixer(cur)
		next = 1
	}

	buf, err := audio.ReadAll(cur)
	if err != nil {
		return nil, &Error{Stages: stages, Err: err}
	}
	rate := src.SampleRate()

	for ; next < len(stages); next++ {
		st := stages[next]
		switch st.Kind {
		case plan.StageTrimSilence:
			buf = trimSilence(buf, st.ThresholdDB)
		case plan.StageGain:
			applyGain(buf, st.GainDB)
		case plan.StageNormalize:
			normalize(buf)
		case plan.StageResample:
			buf, err = resampleBuffer(buf, rate, st.TargetRate)
			if err != nil {
				return nil, &Error{Stages: stages, Err: err}
			}
			rate = st.TargetRate
		case plan.StageLowPass:
			lowPass(buf, st.CutoffHz, rate)
		case plan.StageDither:
			return p.quantize(buf, true), nil
		case plan.StageTruncate:
			return p.quantize(buf, false), nil
		default:
			return nil, &Error{Stages: stages, Err: fmt.Errorf("%w: %q", ErrUnknownStage, st.Kind)}
		}
	}

	// A plan from plan.Build always ends in dither or truncate; this is
	// the fallback for hand-built stage lists.
	return p.quantize(buf, false), nil
}

func (p *Pipeline) quantize(buf []float32, dither bool) []int8 {
	out := make([]int8, len(buf))
	for i, x := range buf {
		if dither {
			// Difference of two uniforms is triangular in (-1, 1).
			out[i] = utils.DitherToInt8(x, p.rng.Float64()-p.rng.Float64())
		} else {
			out[i] = utils.Float32ToInt8(x)
		}
	}
	return out
}
