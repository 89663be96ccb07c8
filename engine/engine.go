// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/diemonster/amiga-sample-convert/audio"
	"github.com/diemonster/amiga-sample-convert/plan"
)

// Engine turns a planned stage sequence and a source stream into a mono
// signed 8-bit sample buffer at the plan's target rate.
type Engine interface {
	Process(stages []plan.Stage, src audio.Source) ([]int8, error)
}

var ErrUnknownStage = errors.New("unknown processing stage")

// Error is an engine failure with the stage sequence that was being
// executed attached for diagnostics.
type Error struct {
	Stages []plan.Stage
	Err    error
}

func (e *Error) Error() string {
	names := make([]string, len(e.Stages))
	for i, s := range e.Stages {
		names[i] = s.String()
	}
	return fmt.Sprintf("engine failed running [%s]: %v", strings.Join(names, " -> "), e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
