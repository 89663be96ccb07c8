// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"math"

	"github.com/diemonster/amiga-sample-convert/audio"
)

func dbToLinear(db float64) float32 {
	return float32(math.Pow(10, db/20))
}

// trimSilence drops leading and trailing samples whose magnitude stays
// below thresholdDB (dBFS). The threshold is applied symmetrically; a
// fully silent buffer trims to nothing.
func trimSilence(buf []float32, thresholdDB float64) []float32 {
	threshold := dbToLinear(thresholdDB)

	start := len(buf)
	for i, x := range buf {
		if x >= threshold || x <= -threshold {
			start = i
			break
		}
	}
	if start == len(buf) {
		return buf[:0]
	}

	end := len(buf)
	for end > start {
		x := buf[end-1]
		if x >= threshold || x <= -threshold {
			break
		}
		end--
	}

	return buf[start:end]
}

// applyGain scales every sample by gainDB. No clamping happens here;
// quantization clamps at the end of the pipeline.
func applyGain(buf []float32, gainDB float64) {
	g := dbToLinear(gainDB)
	for i := range buf {
		buf[i] *= g
	}
}

// normalize scales the buffer so its peak hits full scale (0 dBFS).
// Silence is left untouched.
func normalize(buf []float32) {
	var peak float32
	for _, x := range buf {
		if x < 0 {
			x = -x
		}
		if x > peak {
			peak = x
		}
	}
	if peak == 0 {
		return
	}

	scale := 1 / peak
	for i := range buf {
		buf[i] *= scale
	}
}

// lowPass runs a single-pole RC filter over the buffer in place.
func lowPass(buf []float32, cutoffHz float64, rate int) {
	if len(buf) == 0 || cutoffHz <= 0 || rate <= 0 {
		return
	}

	dt := 1.0 / float64(rate)
	rc := 1.0 / (2 * math.Pi * cutoffHz)
	alpha := float32(dt / (rc + dt))

	// Seed the state with the first sample so the filter has no attack
	// transient.
	state := buf[0]
	for i := range buf {
		state += alpha * (buf[i] - state)
		buf[i] = state
	}
}

// resampleBuffer converts a mono buffer from srcRate to dstRate through
// the streaming resampler.
func resampleBuffer(buf []float32, srcRate, dstRate int) ([]float32, error) {
	r := audio.NewResampler(audio.NewBufferSource(buf, srcRate), dstRate)
	return audio.ReadAll(r)
}
