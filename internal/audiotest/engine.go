// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"

	"github.com/diemonster/amiga-sample-convert/audio"
	"github.com/diemonster/amiga-sample-convert/plan"
)

// FakeEngine is a deterministic stand-in for the real conversion engine.
// It satisfies the engine.Engine interface (without importing that package,
// so engine's own tests can use it) by mixing the source to mono, applying
// a fixed scale factor and quantizing to 8 bits. No resampling, trimming
// or dithering happens, so tests can predict its output exactly.
type FakeEngine struct {
	// Scale multiplies every sample; 1.0 is identity, 0.5 a fixed
	// attenuation.
	Scale float32

	// Fail, when set, is returned from Process before any work.
	Fail error

	// LastStages records the plan most recently passed in.
	LastStages []plan.Stage
}

// NewFakeEngine returns an identity fake (Scale 1.0).
func NewFakeEngine() *FakeEngine {
	return &FakeEngine{Scale: 1.0}
}

func (e *FakeEngine) Process(stages []plan.Stage, src audio.Source) ([]int8, error) {
	e.LastStages = stages
	if e.Fail != nil {
		return nil, e.Fail
	}

	channels := src.Channels()
	buf := make([]float32, 4096)
	var out []int8

	for {
		n, err := src.ReadSamples(buf)
		for f := 0; f+channels <= n; f += channels {
			sum := float32(0)
			for c := range channels {
				sum += buf[f+c]
			}
			v := e.Scale * sum / float32(channels)
			if v > 1 {
				v = 1
			} else if v < -1 {
				v = -1
			}
			out = append(out, int8(v*127))
		}
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
