// SPDX-License-Identifier: EPL-2.0

package sampleconvert

import "fmt"

// SizeBudget is the output size in bytes above which EstimateSize flags
// an advisory. Chip RAM on a stock machine is tight; a sample past half
// a megabyte is rarely what the user wants.
const SizeBudget = 512000

// Estimate is the predicted output size of a conversion before any
// processing runs. Bytes equals Samples because the output is 8-bit
// mono.
type Estimate struct {
	Samples int
	Bytes   int
}

// EstimateSize predicts the output sample count when sourceSamples
// frames at sourceRate are resampled to targetRate. The count rounds
// up.
func EstimateSize(sourceSamples, sourceRate, targetRate int) Estimate {
	n := (int64(sourceSamples)*int64(targetRate) + int64(sourceRate) - 1) / int64(sourceRate)
	return Estimate{Samples: int(n), Bytes: int(n)}
}

// OverBudget reports whether the estimate exceeds SizeBudget.
func (e Estimate) OverBudget() bool {
	return e.Bytes > SizeBudget
}

// Advisory returns a human-readable warning when the estimate is over
// budget, or the empty string. The warning is informational; nothing
// stops an over-budget conversion.
func (e Estimate) Advisory() string {
	if !e.OverBudget() {
		return ""
	}
	return fmt.Sprintf("warning: estimated output is %d bytes, above the %d byte sample memory budget", e.Bytes, SizeBudget)
}
